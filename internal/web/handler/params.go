package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/db/models"
)

// ParamID parses a positive id route parameter.
func ParamID(c fiber.Ctx, name string) (uint64, error) {
	return parseID(name, c.Params(name), true)
}

// QueryID parses an optional positive id query parameter, 0 when absent.
func QueryID(c fiber.Ctx, name string) (uint64, error) {
	return parseID(name, c.Query(name), false)
}

// QueryInt parses an optional int query parameter, 0 when absent.
func QueryInt(c fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &auth.ValidationError{Field: name, Message: "must be a positive number"}
	}

	return v, nil
}

// QueryResource parses the resource_type and resource_id query parameters.
// Both absent yields the zero reference.
func QueryResource(c fiber.Ctx) (models.ResourceRef, error) {
	rawKind := c.Query("resource_type")

	id, err := QueryID(c, "resource_id")
	if err != nil {
		return models.ResourceRef{}, err
	}

	if rawKind == "" && id == 0 {
		return models.ResourceRef{}, nil
	}

	kind, ok := models.ParseResourceKind(rawKind)
	if !ok {
		return models.ResourceRef{}, &auth.ValidationError{Field: "resource_type", Message: "unknown resource type " + rawKind}
	}

	return models.ResourceRef{Kind: kind, ID: id}, nil
}

// QueryCapability parses the capability_type and capability_id query parameters.
func QueryCapability(c fiber.Ctx) (models.CapabilityRef, error) {
	rawKind := c.Query("capability_type")

	id, err := QueryID(c, "capability_id")
	if err != nil {
		return models.CapabilityRef{}, err
	}

	if rawKind == "" {
		return models.CapabilityRef{ID: id}, nil
	}

	kind, ok := models.ParseCapabilityKind(rawKind)
	if !ok {
		return models.CapabilityRef{}, &auth.ValidationError{Field: "capability_type", Message: "unknown capability type " + rawKind}
	}

	return models.CapabilityRef{Kind: kind, ID: id}, nil
}

// BindJSON decodes the request body, reporting malformed bodies as validation errors.
func BindJSON(c fiber.Ctx, out any) error {
	if err := c.Bind().JSON(out); err != nil {
		return &auth.ValidationError{Field: "body", Message: err.Error()}
	}

	return nil
}

func parseID(name, raw string, required bool) (uint64, error) {
	if raw == "" {
		if required {
			return 0, &auth.ValidationError{Field: name, Message: "is required"}
		}

		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, &auth.ValidationError{Field: name, Message: "must be a positive id"}
	}

	return v, nil
}
