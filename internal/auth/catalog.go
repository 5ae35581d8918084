package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/db/controller/authorization"
	"github.com/projecthub/projecthub/internal/db/models"
)

// RoleInput holds the mutable fields of a role.
type RoleInput struct {
	Name          string              `json:"name" validate:"required,max=100"`
	Description   string              `json:"description" validate:"max=255"`
	ResourceClass models.ResourceKind `json:"resource_class" validate:"omitempty,oneof=company project"`
	Private       bool                `json:"private"`
}

// PermissionInput holds the fields of a new permission.
type PermissionInput struct {
	Name          string              `json:"name" validate:"required,max=100"`
	Description   string              `json:"description" validate:"max=255"`
	ResourceClass models.ResourceKind `json:"resource_class" validate:"omitempty,oneof=company project"`
	Public        bool                `json:"public"`
}

// CreateRole creates a role owned by creator.
func (s *Service) CreateRole(ctx context.Context, creator Actor, in RoleInput) (*models.Role, error) {
	if creator == nil {
		return nil, missingActor()
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate(in); err != nil {
		return nil, err
	}

	if !CanCreateRole(creator) {
		return nil, denied(creator, "create role", "the role catalog")
	}

	role := &models.Role{
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		CreatorID:     creator.ActorID(),
		ResourceClass: in.ResourceClass,
		Private:       in.Private,
	}

	if err := s.conn(ctx).Create(role).Error; err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	log.Info().Uint64("creator", creator.ActorID()).Uint64("role", role.ID).Str("name", role.Name).Msg("role created")

	return role, nil
}

// UpdateRole replaces the mutable fields of a role.
func (s *Service) UpdateRole(ctx context.Context, actor Actor, roleID uint64, in RoleInput) (*models.Role, error) {
	if actor == nil {
		return nil, missingActor()
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate(in); err != nil {
		return nil, err
	}

	role, err := s.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if !CanMutateRole(actor, role) {
		return nil, denied(actor, "update role", role.CapabilityRef().String())
	}

	err = s.conn(ctx).Model(role).
		Select("name", "description", "resource_class", "private").
		Updates(models.Role{
			Name:          in.Name,
			Description:   strings.TrimSpace(in.Description),
			ResourceClass: in.ResourceClass,
			Private:       in.Private,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return s.GetRole(ctx, roleID)
}

// AttachPermissions adds permissions to a role. Already attached ones are ignored.
func (s *Service) AttachPermissions(ctx context.Context, actor Actor, roleID uint64, permissionIDs []uint64) (*models.Role, error) {
	return s.changePermissions(ctx, actor, roleID, permissionIDs, func(a *gorm.Association, perms []models.Permission) error {
		return a.Append(perms)
	})
}

// DetachPermissions removes permissions from a role. The role itself is kept even when emptied.
func (s *Service) DetachPermissions(ctx context.Context, actor Actor, roleID uint64, permissionIDs []uint64) (*models.Role, error) {
	return s.changePermissions(ctx, actor, roleID, permissionIDs, func(a *gorm.Association, perms []models.Permission) error {
		return a.Delete(perms)
	})
}

func (s *Service) changePermissions(
	ctx context.Context,
	actor Actor,
	roleID uint64,
	permissionIDs []uint64,
	change func(*gorm.Association, []models.Permission) error,
) (*models.Role, error) {
	if actor == nil {
		return nil, missingActor()
	}

	if len(permissionIDs) == 0 {
		return nil, &ValidationError{Field: "permission_ids", Message: "at least one permission id is required"}
	}

	role, err := s.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if !CanMutateRole(actor, role) {
		return nil, denied(actor, "update role", role.CapabilityRef().String())
	}

	perms, err := s.permissionsByID(ctx, permissionIDs)
	if err != nil {
		return nil, err
	}

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return change(tx.Model(role).Association("Permissions"), perms)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change role permissions: %w", err)
	}

	return s.GetRole(ctx, roleID)
}

// DeleteRole deletes a role together with every authorization granting it
// and its permission associations.
func (s *Service) DeleteRole(ctx context.Context, actor Actor, roleID uint64) error {
	if actor == nil {
		return missingActor()
	}

	role, err := s.GetRole(ctx, roleID)
	if err != nil {
		return err
	}

	if !CanDeleteRole(actor, role) {
		return denied(actor, "delete role", role.CapabilityRef().String())
	}

	var revoked int64

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if revoked, err = authorization.DeleteByCapability(tx, role.CapabilityRef()); err != nil {
			return err
		}

		if err = tx.Model(role).Association("Permissions").Clear(); err != nil {
			return err
		}

		return tx.Delete(&models.Role{}, role.ID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	log.Info().Uint64("actor", actor.ActorID()).Uint64("role", role.ID).Int64("revoked", revoked).Msg("role deleted")

	return nil
}

// GetRole loads a role with its permissions.
func (s *Service) GetRole(ctx context.Context, roleID uint64) (*models.Role, error) {
	var role models.Role
	if err := first(s.conn(ctx).Preload("Permissions"), &role, roleID, string(models.CapabilityRole)); err != nil {
		return nil, err
	}

	return &role, nil
}

// ListRoles returns every role with its permissions, ordered by name.
func (s *Service) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := s.conn(ctx).Preload("Permissions").Order("name ASC, id ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

// CreatePermission creates a permission owned by creator. Public permissions need an admin.
func (s *Service) CreatePermission(ctx context.Context, creator Actor, in PermissionInput) (*models.Permission, error) {
	if creator == nil {
		return nil, missingActor()
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate(in); err != nil {
		return nil, err
	}

	if !CanCreatePermission(creator, in.Public) {
		return nil, denied(creator, "create public permission", "the permission catalog")
	}

	perm := &models.Permission{
		Name:          in.Name,
		Description:   strings.TrimSpace(in.Description),
		CreatorID:     creator.ActorID(),
		Public:        in.Public,
		ResourceClass: in.ResourceClass,
	}

	if err := s.conn(ctx).Create(perm).Error; err != nil {
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}

	s.public.purge()

	return perm, nil
}

// DeletePermission deletes a permission, every authorization granting it directly
// and its role associations.
func (s *Service) DeletePermission(ctx context.Context, actor Actor, permissionID uint64) error {
	if actor == nil {
		return missingActor()
	}

	var perm models.Permission
	if err := first(s.conn(ctx), &perm, permissionID, string(models.CapabilityPermission)); err != nil {
		return err
	}

	if !CanDeletePermission(actor, &perm) {
		return denied(actor, "delete permission", perm.CapabilityRef().String())
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := authorization.DeleteByCapability(tx, perm.CapabilityRef()); err != nil {
			return err
		}

		if err := tx.Where("permission_id = ?", perm.ID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Permission{}, perm.ID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}

	s.public.purge()

	log.Info().Uint64("actor", actor.ActorID()).Uint64("permission", perm.ID).Msg("permission deleted")

	return nil
}

// ListPermissions returns every permission ordered by name.
func (s *Service) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	var perms []models.Permission
	if err := s.conn(ctx).Order("name ASC, id ASC").Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return perms, nil
}

// EffectivePermissions returns the names of the permissions actor holds on resource through
// direct grants, granted roles and public permissions. Ownership and admin are not expanded.
func (s *Service) EffectivePermissions(ctx context.Context, actorID uint64, resource models.ResourceRef) ([]string, error) {
	var names []string

	grants := s.conn(ctx).Model(&models.Authorization{}).
		Where("authorized_type = ? AND authorized_id = ?", models.ActorKindUser, actorID).
		Where("authorizable_type = ? AND authorizable_id = ?", resource.Kind, resource.ID)

	err := s.conn(ctx).Model(&models.Permission{}).
		Distinct("name").
		Where("id IN (?)", grants.Session(&gorm.Session{}).
			Select("authorization_id").
			Where("authorization_type = ?", models.CapabilityPermission)).
		Or("id IN (?)", s.conn(ctx).Model(&models.RolePermission{}).
			Select("permission_id").
			Where("role_id IN (?)", grants.Session(&gorm.Session{}).
				Select("authorization_id").
				Where("authorization_type = ?", models.CapabilityRole))).
		Or("public = ? AND (resource_class = ? OR resource_class = ? OR resource_class IS NULL)", true, "", resource.Kind).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get effective permissions: %w", err)
	}

	return names, nil
}

func (s *Service) permissionsByID(ctx context.Context, ids []uint64) ([]models.Permission, error) {
	var perms []models.Permission
	if err := s.conn(ctx).Where("id IN ?", ids).Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}

	found := make(map[uint64]bool, len(perms))
	for _, p := range perms {
		found[p.ID] = true
	}

	for _, id := range ids {
		if !found[id] {
			return nil, &NotFoundError{Kind: string(models.CapabilityPermission), ID: id}
		}
	}

	return perms, nil
}
