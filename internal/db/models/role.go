package models

import "time"

// Role is a named collection of permissions, owned by the user who created it.
// Granting a role on a resource grants every permission it carries on that resource.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name of the role. Not unique.
	Name string `gorm:"size:100;not null;index" json:"name"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255" json:"description"`
	// CreatorID is the user who created the role and may mutate it.
	CreatorID uint64 `gorm:"not null;index" json:"creator_id"`
	// ResourceClass optionally restricts the role to one resource kind.
	ResourceClass ResourceKind `gorm:"type:varchar(20)" json:"resource_class,omitempty"`
	// Private roles may be deleted by their creator.
	Private bool `gorm:"not null;default:false" json:"private"`
	// Permissions carried by the role.
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// CapabilityRef returns the polymorphic reference of the role.
func (r *Role) CapabilityRef() CapabilityRef {
	return CapabilityRef{Kind: CapabilityRole, ID: r.ID}
}

// CapabilityName returns the role name.
func (r *Role) CapabilityName() string {
	return r.Name
}

// Scope returns the resource class the role is restricted to, empty for any.
func (r *Role) Scope() ResourceKind {
	return r.ResourceClass
}

// OwnedBy reports whether the actor created the role.
func (r *Role) OwnedBy(actorID uint64) bool {
	return actorID != 0 && r.CreatorID == actorID
}
