package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/projecthub/projecthub/internal/auth"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, authService *auth.Service)
}
