// Package permission serves the permission catalog endpoints of the JSON API.
package permission

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/web/handler"
	authmiddleware "github.com/projecthub/projecthub/internal/web/middleware/auth"
)

// Path is the path of the permission collection.
const Path = handler.APIPath + "/permissions"

// Service is the permission handler service.
type Service struct {
	authService *auth.Service
}

// Init registers the permission routes.
func (s *Service) Init(router fiber.Router, authService *auth.Service) {
	if router == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilRouterFatalLogMsg)
		return
	}

	s.authService = authService

	router.Get(Path, s.List)
	router.Post(Path, s.Create)
	router.Delete(Path+"/:id", s.Delete)
}

// List answers every permission.
func (s *Service) List(c fiber.Ctx) error {
	perms, err := s.authService.ListPermissions(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(perms)
}

// Create creates a permission owned by the current user.
func (s *Service) Create(c fiber.Ctx) error {
	var in auth.PermissionInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	perm, err := s.authService.CreatePermission(c.Context(), authmiddleware.CurrentUser(c), in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(perm)
}

// Delete deletes a permission, its authorizations and role links.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	if err = s.authService.DeletePermission(c.Context(), authmiddleware.CurrentUser(c), id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted{Deleted: true, ID: id})
}
