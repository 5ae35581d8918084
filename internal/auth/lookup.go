package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/db/models"
)

// AdminFlagged is implemented by actors carrying a global admin flag.
type AdminFlagged interface {
	IsAdmin() bool
}

// Ownable is implemented by entities with an owning actor.
type Ownable interface {
	OwnedBy(actorID uint64) bool
}

// Officiable is implemented by resources that can vouch for an actor.
type Officiable interface {
	IsOfficialFor(actorID uint64) bool
}

// Actor is the acting user of an evaluation.
type Actor interface {
	AdminFlagged
	ActorID() uint64
	String() string
}

// Resource is an authorizable entity.
type Resource interface {
	Ownable
	Officiable
	ResourceRef() models.ResourceRef
}

// Capability is a grantable role or permission.
type Capability interface {
	Ownable
	CapabilityRef() models.CapabilityRef
	CapabilityName() string
	Scope() models.ResourceKind
}

type (
	resourceLoader   func(db *gorm.DB, id uint64) (Resource, error)
	capabilityLoader func(db *gorm.DB, id uint64) (Capability, error)
)

//nolint:gochecknoglobals
var (
	resourceLoaders = map[models.ResourceKind]resourceLoader{
		models.ResourceCompany: loadCompany,
		models.ResourceProject: loadProject,
	}

	capabilityLoaders = map[models.CapabilityKind]capabilityLoader{
		models.CapabilityRole:       loadRole,
		models.CapabilityPermission: loadPermission,
	}
)

// LoadResource resolves a resource reference through the loader registered for its kind.
func (s *Service) LoadResource(ctx context.Context, ref models.ResourceRef) (Resource, error) {
	load, ok := resourceLoaders[ref.Kind]
	if !ok {
		return nil, &ValidationError{Field: "resource.type", Message: "unknown resource type " + string(ref.Kind)}
	}

	if ref.ID == 0 {
		return nil, &ValidationError{Field: "resource.id", Message: "resource id is required"}
	}

	return load(s.conn(ctx), ref.ID)
}

// LoadCapability resolves a capability reference through the loader registered for its kind.
func (s *Service) LoadCapability(ctx context.Context, ref models.CapabilityRef) (Capability, error) {
	load, ok := capabilityLoaders[ref.Kind]
	if !ok {
		return nil, &ValidationError{Field: "capability.type", Message: "unknown capability type " + string(ref.Kind)}
	}

	if ref.ID == 0 {
		return nil, &ValidationError{Field: "capability.id", Message: "capability id is required"}
	}

	return load(s.conn(ctx), ref.ID)
}

// LoadActor loads the user behind an actor id.
func (s *Service) LoadActor(ctx context.Context, id uint64) (*models.User, error) {
	var u models.User
	if err := first(s.conn(ctx), &u, id, "user"); err != nil {
		return nil, err
	}

	return &u, nil
}

func loadCompany(db *gorm.DB, id uint64) (Resource, error) {
	var c models.Company
	if err := first(db.Preload("Officials"), &c, id, string(models.ResourceCompany)); err != nil {
		return nil, err
	}

	return &c, nil
}

func loadProject(db *gorm.DB, id uint64) (Resource, error) {
	var p models.Project
	if err := first(db.Preload("Company.Officials"), &p, id, string(models.ResourceProject)); err != nil {
		return nil, err
	}

	return &p, nil
}

func loadRole(db *gorm.DB, id uint64) (Capability, error) {
	var r models.Role
	if err := first(db, &r, id, string(models.CapabilityRole)); err != nil {
		return nil, err
	}

	return &r, nil
}

func loadPermission(db *gorm.DB, id uint64) (Capability, error) {
	var p models.Permission
	if err := first(db, &p, id, string(models.CapabilityPermission)); err != nil {
		return nil, err
	}

	return &p, nil
}

// first loads dest by primary key and maps a missing row to NotFoundError.
func first(db *gorm.DB, dest any, id uint64, kind string) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}

	return err
}
