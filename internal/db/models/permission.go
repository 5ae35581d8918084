package models

import "time"

// Permission is a named action that can be granted on a resource directly or through a role.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the action name checked by callers (e.g. "ASSIGNAUTHORIZATIONS"). Not unique.
	Name string `gorm:"size:100;not null;index" json:"name"`
	// Description provides a human-readable explanation of what this permission grants.
	Description string `gorm:"size:255" json:"description"`
	// CreatorID is the user who created the permission.
	CreatorID uint64 `gorm:"not null;index" json:"creator_id"`
	// Public permissions are implicitly granted to every actor.
	Public bool `gorm:"not null;default:false;index" json:"public"`
	// ResourceClass optionally restricts the permission to one resource kind.
	ResourceClass ResourceKind `gorm:"type:varchar(20)" json:"resource_class,omitempty"`
	// CreatedAt is the timestamp when the permission was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the permission was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Permission model.
func (Permission) TableName() string {
	return "permissions"
}

// CapabilityRef returns the polymorphic reference of the permission.
func (p *Permission) CapabilityRef() CapabilityRef {
	return CapabilityRef{Kind: CapabilityPermission, ID: p.ID}
}

// CapabilityName returns the permission name.
func (p *Permission) CapabilityName() string {
	return p.Name
}

// Scope returns the resource class the permission is restricted to, empty for any.
func (p *Permission) Scope() ResourceKind {
	return p.ResourceClass
}

// OwnedBy reports whether the actor created the permission.
func (p *Permission) OwnedBy(actorID uint64) bool {
	return actorID != 0 && p.CreatorID == actorID
}
