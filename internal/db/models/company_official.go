package models

// CompanyOfficial is the join table listing the users a company vouches for.
type CompanyOfficial struct {
	// CompanyID is the ID of the company.
	CompanyID uint64 `gorm:"primaryKey;column:company_id"`
	// UserID is the ID of the official user.
	UserID uint64 `gorm:"primaryKey;column:user_id"`
}

// TableName specifies the database table name for the CompanyOfficial model.
func (CompanyOfficial) TableName() string {
	return "company_officials"
}
