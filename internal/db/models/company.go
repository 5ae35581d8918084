package models

import "time"

// Company is an organization owning projects. It is an authorizable resource.
type Company struct {
	// ID is the unique identifier for the company.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the company.
	Name string `gorm:"size:255;not null" json:"name"`
	// OwnerID is the id of the user owning the company.
	OwnerID uint64 `gorm:"not null;index" json:"owner_id"`
	// Owner is the associated owning user.
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	// Officials are the users the company vouches for.
	Officials []User `gorm:"many2many:company_officials" json:"-"`
	// CreatedAt is the timestamp when the company was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the company was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Company model.
func (Company) TableName() string {
	return "companies"
}

// ResourceRef returns the polymorphic reference of the company.
func (c *Company) ResourceRef() ResourceRef {
	return ResourceRef{Kind: ResourceCompany, ID: c.ID}
}

// OwnedBy reports whether the actor owns the company.
func (c *Company) OwnedBy(actorID uint64) bool {
	return actorID != 0 && c.OwnerID == actorID
}

// IsOfficialFor reports whether the actor is listed as an official of the company.
// Officials must be preloaded.
func (c *Company) IsOfficialFor(actorID uint64) bool {
	for i := range c.Officials {
		if c.Officials[i].ID == actorID {
			return true
		}
	}

	return false
}
