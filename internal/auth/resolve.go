package auth

import (
	"context"
	"errors"

	"github.com/projecthub/projecthub/internal/db/controller/authorization"
	"github.com/projecthub/projecthub/internal/db/models"
)

// Resolve looks up the authorization granting name to the actor on the resource.
//
// Lookup order is explicit: a direct permission grant named name, then a role grant whose role
// is named name, then a role grant whose role carries a permission named name. Names are not
// unique, so within a step the newest matching authorization wins.
func (s *Service) Resolve(
	ctx context.Context,
	actorID uint64,
	resource models.ResourceRef,
	name string,
) (*models.Authorization, bool, error) {
	if actorID == 0 || resource.Kind == "" || resource.ID == 0 || name == "" {
		return nil, false, nil
	}

	base := authorization.Filter{Resource: resource, GranteeID: actorID}

	steps := []authorization.Filter{
		withCapability(base, models.CapabilityPermission, name),
		withCapability(base, models.CapabilityRole, name),
		withRoleCarrying(base, name),
	}

	db := s.conn(ctx)

	for _, f := range steps {
		a, err := authorization.First(db, f)
		if err == nil {
			return a, true, nil
		}

		if !errors.Is(err, authorization.ErrAuthorizationNotFound) {
			return nil, false, err
		}
	}

	return nil, false, nil
}

func withCapability(f authorization.Filter, kind models.CapabilityKind, name string) authorization.Filter {
	f.CapabilityKind = kind
	f.CapabilityName = name

	return f
}

func withRoleCarrying(f authorization.Filter, name string) authorization.Filter {
	f.RoleCarries = name

	return f
}
