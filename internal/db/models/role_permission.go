package models

// RolePermission is the join table between roles and permissions.
type RolePermission struct {
	// RoleID is the ID of the role in this mapping.
	RoleID uint64 `gorm:"primaryKey;column:role_id"`
	// PermissionID is the ID of the permission in this mapping.
	PermissionID uint64 `gorm:"primaryKey;column:permission_id"`
}

// TableName specifies the database table name for the RolePermission model.
func (RolePermission) TableName() string {
	return "role_permissions"
}
