package models

import "time"

// Authorization records one delegation: a granter gave a grantee a role or permission on a resource.
// The three references are polymorphic (type + id) and resolved by the auth package.
type Authorization struct {
	// ID is the unique identifier for the authorization.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// GranterID is the user who created the authorization.
	GranterID uint64 `gorm:"not null;index" json:"granter_id"`
	// AuthorizableType is the resource kind (company, project).
	AuthorizableType ResourceKind `gorm:"type:varchar(20);not null;index:idx_authorizable" json:"authorizable_type"`
	// AuthorizableID is the resource id.
	AuthorizableID uint64 `gorm:"not null;index:idx_authorizable" json:"authorizable_id"`
	// AuthorizedType is the grantee kind, always "user".
	AuthorizedType string `gorm:"type:varchar(20);not null;index:idx_authorized" json:"authorized_type"`
	// AuthorizedID is the grantee id.
	AuthorizedID uint64 `gorm:"not null;index:idx_authorized" json:"authorized_id"`
	// AuthorizationType is the capability kind (role, permission).
	AuthorizationType CapabilityKind `gorm:"type:varchar(20);not null;index:idx_authorization" json:"authorization_type"`
	// AuthorizationID is the capability id.
	AuthorizationID uint64 `gorm:"not null;index:idx_authorization" json:"authorization_id"`
	// CreatedAt is the timestamp when the authorization was created (managed by GORM).
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the database table name for the Authorization model.
func (Authorization) TableName() string {
	return "authorizations"
}

// Resource returns the authorizable reference.
func (a *Authorization) Resource() ResourceRef {
	return ResourceRef{Kind: a.AuthorizableType, ID: a.AuthorizableID}
}

// Capability returns the granted capability reference.
func (a *Authorization) Capability() CapabilityRef {
	return CapabilityRef{Kind: a.AuthorizationType, ID: a.AuthorizationID}
}
