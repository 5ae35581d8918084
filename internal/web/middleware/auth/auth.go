package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/db/models"
	fiberlogger "github.com/projecthub/projecthub/internal/logger/adapter/fiber"
)

// LocalsCurrentUser is the fiber.Locals key holding the *models.User of the request.
const LocalsCurrentUser = "CurrentUser"

// New returns a middleware resolving the actor named by header.
func New(header string, authService *auth.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(header))
		if raw == "" {
			return c.Next()
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return &auth.ValidationError{Field: "actor", Message: "malformed " + header + " header"}
		}

		user, err := authService.LoadActor(c.Context(), id)
		if err != nil {
			if auth.IsNotFound(err) {
				return &auth.ValidationError{Field: "actor", Message: "unknown actor " + raw}
			}

			return err
		}

		c.Locals(LocalsCurrentUser, user)
		c.Locals(fiberlogger.LocalsActorID, user.ID)

		return c.Next()
	}
}

// CurrentUser returns the actor of the request, nil for anonymous requests.
func CurrentUser(c fiber.Ctx) auth.Actor {
	if user, ok := c.Locals(LocalsCurrentUser).(*models.User); ok && user != nil {
		return user
	}

	return nil
}
