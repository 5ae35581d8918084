// Package role serves the role catalog endpoints of the JSON API.
package role

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/web/handler"
	authmiddleware "github.com/projecthub/projecthub/internal/web/middleware/auth"
)

// Path is the path of the role collection.
const Path = handler.APIPath + "/roles"

// Service is the role handler service.
type Service struct {
	authService *auth.Service
}

// PermissionsRequest lists the permissions to attach or detach.
type PermissionsRequest struct {
	PermissionIDs []uint64 `json:"permission_ids"`
}

// Init registers the role routes.
func (s *Service) Init(router fiber.Router, authService *auth.Service) {
	if router == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilRouterFatalLogMsg)
		return
	}

	s.authService = authService

	router.Get(Path, s.List)
	router.Post(Path, s.Create)
	router.Get(Path+"/:id", s.Get)
	router.Put(Path+"/:id", s.Update)
	router.Delete(Path+"/:id", s.Delete)
	router.Post(Path+"/:id/permissions", s.Attach)
	router.Delete(Path+"/:id/permissions", s.Detach)
}

// List answers every role with its permissions.
func (s *Service) List(c fiber.Ctx) error {
	roles, err := s.authService.ListRoles(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(roles)
}

// Get answers one role with its permissions.
func (s *Service) Get(c fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	role, err := s.authService.GetRole(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(role)
}

// Create creates a role owned by the current user.
func (s *Service) Create(c fiber.Ctx) error {
	var in auth.RoleInput
	if err := handler.BindJSON(c, &in); err != nil {
		return err
	}

	role, err := s.authService.CreateRole(c.Context(), authmiddleware.CurrentUser(c), in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(role)
}

// Update replaces the mutable fields of a role.
func (s *Service) Update(c fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	var in auth.RoleInput
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	role, err := s.authService.UpdateRole(c.Context(), authmiddleware.CurrentUser(c), id, in)
	if err != nil {
		return err
	}

	return c.JSON(role)
}

// Delete deletes a role and every authorization granting it.
func (s *Service) Delete(c fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	if err = s.authService.DeleteRole(c.Context(), authmiddleware.CurrentUser(c), id); err != nil {
		return err
	}

	return c.JSON(handler.Deleted{Deleted: true, ID: id})
}

// Attach adds permissions to a role.
func (s *Service) Attach(c fiber.Ctx) error {
	return s.changePermissions(c, s.authService.AttachPermissions)
}

// Detach removes permissions from a role.
func (s *Service) Detach(c fiber.Ctx) error {
	return s.changePermissions(c, s.authService.DetachPermissions)
}

func (s *Service) changePermissions(c fiber.Ctx, change changeFunc) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	var in PermissionsRequest
	if err = handler.BindJSON(c, &in); err != nil {
		return err
	}

	role, err := change(c.Context(), authmiddleware.CurrentUser(c), id, in.PermissionIDs)
	if err != nil {
		return err
	}

	return c.JSON(role)
}
