// Package authorization serves the grant endpoints of the JSON API.
package authorization

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/auth"
	store "github.com/projecthub/projecthub/internal/db/controller/authorization"
	"github.com/projecthub/projecthub/internal/db/models"
	"github.com/projecthub/projecthub/internal/web/handler"
	authmiddleware "github.com/projecthub/projecthub/internal/web/middleware/auth"
)

// Path is the path of the authorization collection.
const Path = handler.APIPath + "/authorizations"

// Service is the authorization handler service.
type Service struct {
	authService *auth.Service
}

// RevokeRequest selects the authorization to delete by filter.
type RevokeRequest struct {
	Resource       models.ResourceRef   `json:"resource"`
	GranteeID      uint64               `json:"grantee_id"`
	Capability     models.CapabilityRef `json:"capability"`
	CapabilityName string               `json:"capability_name"`
}

// Init registers the authorization routes.
func (s *Service) Init(router fiber.Router, authService *auth.Service) {
	if router == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilRouterFatalLogMsg)
		return
	}

	s.authService = authService

	router.Post(Path, s.Create)
	router.Get(Path, s.List)
	router.Delete(Path, s.Delete)
	router.Delete(Path+"/:id", s.DeleteByID)
}

// Create grants a capability and answers 201 with the new authorization.
func (s *Service) Create(c fiber.Ctx) error {
	var in auth.GrantInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	a, err := s.authService.Grant(c.Context(), authmiddleware.CurrentUser(c), in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}

// List answers one page of authorizations matching the query.
func (s *Service) List(c fiber.Ctx) error {
	var (
		f   store.Filter
		err error
	)

	if f.Resource, err = handler.QueryResource(c); err != nil {
		return err
	}

	if f.GranteeID, err = handler.QueryID(c, "grantee_id"); err != nil {
		return err
	}

	if f.Capability, err = handler.QueryCapability(c); err != nil {
		return err
	}

	if f.Page, err = handler.QueryInt(c, "page"); err != nil {
		return err
	}

	f.CapabilityName = c.Query("capability_name")

	page, err := s.authService.ListGrants(c.Context(), authmiddleware.CurrentUser(c), f)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Delete revokes the newest authorization matching the JSON filter body.
func (s *Service) Delete(c fiber.Ctx) error {
	var in RevokeRequest
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	a, err := s.authService.Revoke(c.Context(), authmiddleware.CurrentUser(c), store.Filter{
		Resource:       in.Resource,
		GranteeID:      in.GranteeID,
		Capability:     in.Capability,
		CapabilityName: in.CapabilityName,
	})
	if err != nil {
		return err
	}

	return c.JSON(a)
}

// DeleteByID revokes one authorization.
func (s *Service) DeleteByID(c fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	a, err := s.authService.RevokeByID(c.Context(), authmiddleware.CurrentUser(c), id)
	if err != nil {
		return err
	}

	return c.JSON(a)
}
