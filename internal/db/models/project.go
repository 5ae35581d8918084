package models

import "time"

// Project is run by an owner, optionally under a company. It is an authorizable resource.
type Project struct {
	// ID is the unique identifier for the project.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the project.
	Name string `gorm:"size:255;not null" json:"name"`
	// OwnerID is the id of the user owning the project.
	OwnerID uint64 `gorm:"not null;index" json:"owner_id"`
	// Owner is the associated owning user.
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	// CompanyID is the optional company the project belongs to.
	CompanyID *uint64 `gorm:"index" json:"company_id,omitempty"`
	// Company is the associated company, nil for independent projects.
	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
	// CreatedAt is the timestamp when the project was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the project was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// ResourceRef returns the polymorphic reference of the project.
func (p *Project) ResourceRef() ResourceRef {
	return ResourceRef{Kind: ResourceProject, ID: p.ID}
}

// OwnedBy reports whether the actor owns the project.
func (p *Project) OwnedBy(actorID uint64) bool {
	return actorID != 0 && p.OwnerID == actorID
}

// IsOfficialFor reports whether the project's company vouches for the actor.
// Company.Officials must be preloaded.
func (p *Project) IsOfficialFor(actorID uint64) bool {
	if p.Company == nil {
		return false
	}

	return p.Company.IsOfficialFor(actorID)
}
