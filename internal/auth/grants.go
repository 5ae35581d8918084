package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/db/controller/authorization"
	"github.com/projecthub/projecthub/internal/db/controller/setting"
	"github.com/projecthub/projecthub/internal/db/models"
)

// GrantInput describes one delegation.
type GrantInput struct {
	Resource   models.ResourceRef   `json:"resource"`
	GranteeID  uint64               `json:"grantee_id" validate:"required"`
	Capability models.CapabilityRef `json:"capability"`
}

// Grant records that granter gives grantee the capability on the resource.
// The granter needs ASSIGNAUTHORIZATIONS on the resource.
func (s *Service) Grant(ctx context.Context, granter Actor, in GrantInput) (*models.Authorization, error) {
	if granter == nil {
		return nil, missingActor()
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	resource, err := s.LoadResource(ctx, in.Resource)
	if err != nil {
		return nil, err
	}

	capability, err := s.LoadCapability(ctx, in.Capability)
	if err != nil {
		return nil, err
	}

	if _, err = s.LoadActor(ctx, in.GranteeID); err != nil {
		return nil, err
	}

	if scope := capability.Scope(); scope != "" && scope != in.Resource.Kind {
		return nil, &ValidationError{
			Field:   "capability",
			Message: fmt.Sprintf("%s is restricted to %s resources", capability.CapabilityRef(), scope),
		}
	}

	if err = s.AssertCan(ctx, granter, resource, PermAssignAuthorizations); err != nil {
		return nil, err
	}

	var created *models.Authorization

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		created, err = authorization.Create(tx, &models.Authorization{
			GranterID:         granter.ActorID(),
			AuthorizableType:  in.Resource.Kind,
			AuthorizableID:    in.Resource.ID,
			AuthorizedType:    models.ActorKindUser,
			AuthorizedID:      in.GranteeID,
			AuthorizationType: in.Capability.Kind,
			AuthorizationID:   in.Capability.ID,
		})

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create authorization: %w", err)
	}

	log.Info().
		Uint64("granter", granter.ActorID()).
		Uint64("grantee", in.GranteeID).
		Stringer("resource", in.Resource).
		Stringer("capability", in.Capability).
		Msg("authorization granted")

	return created, nil
}

// Revoke deletes the newest authorization matching f.
// The actor needs REMOVEAUTHORIZATIONS on the authorization's resource.
func (s *Service) Revoke(ctx context.Context, actor Actor, f authorization.Filter) (*models.Authorization, error) {
	if actor == nil {
		return nil, missingActor()
	}

	if f.Resource.IsZero() && f.GranteeID == 0 && f.Capability.IsZero() && f.CapabilityName == "" {
		return nil, &ValidationError{Field: "filter", Message: "at least one criterion is required"}
	}

	main, err := authorization.First(s.conn(ctx), f)
	if err != nil {
		return nil, notFound(err, 0)
	}

	return main, s.revoke(ctx, actor, main)
}

// RevokeByID deletes one authorization by id.
func (s *Service) RevokeByID(ctx context.Context, actor Actor, id uint64) (*models.Authorization, error) {
	if actor == nil {
		return nil, missingActor()
	}

	main, err := authorization.GetByID(s.conn(ctx), id)
	if err != nil {
		return nil, notFound(err, id)
	}

	return main, s.revoke(ctx, actor, main)
}

func (s *Service) revoke(ctx context.Context, actor Actor, main *models.Authorization) error {
	if !actor.IsAdmin() {
		resource, err := s.LoadResource(ctx, main.Resource())
		if err != nil {
			return err
		}

		if err = s.AssertCan(ctx, actor, resource, PermRemoveAuthorizations); err != nil {
			return err
		}
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return authorization.Delete(tx, main.ID)
	})
	if err != nil {
		return notFound(err, main.ID)
	}

	log.Info().
		Uint64("actor", actor.ActorID()).
		Uint64("authorization", main.ID).
		Stringer("resource", main.Resource()).
		Msg("authorization revoked")

	return nil
}

// ListGrants returns one page of authorizations, newest first.
// Admins see everything, others need VIEWAUTHORIZATIONS on the filtered resource
// or may list their own authorizations.
func (s *Service) ListGrants(ctx context.Context, actor Actor, f authorization.Filter) (*authorization.Page, error) {
	if actor == nil {
		return nil, missingActor()
	}

	switch {
	case actor.IsAdmin():
	case f.Resource.Kind != "" && f.Resource.ID != 0:
		resource, err := s.LoadResource(ctx, f.Resource)
		if err != nil {
			return nil, err
		}

		if f.GranteeID != actor.ActorID() {
			if err = s.AssertCan(ctx, actor, resource, PermViewAuthorizations); err != nil {
				return nil, err
			}
		}
	case f.GranteeID == actor.ActorID():
	default:
		return nil, denied(actor, PermViewAuthorizations, "all resources")
	}

	db := s.conn(ctx)

	f.PageSize = setting.GetInt(db, setting.AuthorizationsPageSize, s.pageSize)
	if f.PageSize < 1 || f.PageSize > config.MaxPageSize {
		f.PageSize = s.pageSize
	}

	page, err := authorization.Query(db, f)
	if err != nil {
		return nil, fmt.Errorf("failed to query authorizations: %w", err)
	}

	return page, nil
}

// notFound maps the store sentinel to a NotFoundError and passes anything else through.
func notFound(err error, id uint64) error {
	if errors.Is(err, authorization.ErrAuthorizationNotFound) {
		return &NotFoundError{Kind: "authorization", ID: id}
	}

	return err
}
