// Package models contains database model definitions.
package models

// Setting is a runtime key/value setting stored in the database.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:191"`
	Value []byte
}

// All returns every model managed by AutoMigrate, join tables last.
func All() []any {
	return []any{
		&User{},
		&Company{},
		&Project{},
		&Permission{},
		&Role{},
		&RolePermission{},
		&CompanyOfficial{},
		&Authorization{},
		&Setting{},
	}
}
