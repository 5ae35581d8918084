// Package can answers permission checks for the current user.
package can

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/web/handler"
	authmiddleware "github.com/projecthub/projecthub/internal/web/middleware/auth"
)

// Path is the permission check endpoint.
const Path = handler.APIPath + "/can"

// Service is the permission check handler service.
type Service struct {
	authService *auth.Service
}

// Response is the answer of a permission check.
type Response struct {
	auth.Decision

	Permissions []string `json:"permissions,omitempty"`
}

// Init registers the permission check route.
func (s *Service) Init(router fiber.Router, authService *auth.Service) {
	if router == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilRouterFatalLogMsg)
		return
	}

	s.authService = authService

	router.Get(Path, s.Get)
}

// Get evaluates ?resource_type=&resource_id=&action= for the current user.
// action may list several comma separated actions; any allowed action allows.
// With effective=true the answer lists every permission the user holds on the resource.
func (s *Service) Get(c fiber.Ctx) error {
	actor := authmiddleware.CurrentUser(c)
	if actor == nil {
		return &auth.ValidationError{Field: "actor", Message: "an acting user is required"}
	}

	ref, err := handler.QueryResource(c)
	if err != nil {
		return err
	}

	if ref.IsZero() {
		return &auth.ValidationError{Field: "resource", Message: "resource_type and resource_id are required"}
	}

	actions := splitActions(c.Query("action"))
	if len(actions) == 0 {
		return &auth.ValidationError{Field: "action", Message: "at least one action is required"}
	}

	resource, err := s.authService.LoadResource(c.Context(), ref)
	if err != nil {
		return err
	}

	out := Response{Decision: s.authService.Evaluate(c.Context(), actor, resource, actions...)}

	if c.Query("effective") == "true" {
		if out.Permissions, err = s.authService.EffectivePermissions(c.Context(), actor.ActorID(), ref); err != nil {
			return err
		}
	}

	return c.JSON(out)
}

func splitActions(raw string) []string {
	var actions []string

	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			actions = append(actions, a)
		}
	}

	return actions
}
