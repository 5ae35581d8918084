// Package authorization persists authorization records (grants).
// It only inserts, removes and queries rows; cascades belong to the callers.
package authorization

import (
	"errors"

	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/db/models"
)

const (
	// DefaultPageSize is used when a Filter carries no page size.
	DefaultPageSize = 15

	newestFirst = "authorizations.created_at DESC, authorizations.id DESC"

	whereCapabilityNamed = "((authorizations.authorization_type = ? AND authorizations.authorization_id IN " +
		"(SELECT id FROM permissions WHERE name = ?)) OR " +
		"(authorizations.authorization_type = ? AND authorizations.authorization_id IN " +
		"(SELECT id FROM roles WHERE name = ?)))"

	whereRoleCarries = "authorizations.authorization_type = ? AND authorizations.authorization_id IN " +
		"(SELECT role_permissions.role_id FROM role_permissions " +
		"JOIN permissions ON permissions.id = role_permissions.permission_id WHERE permissions.name = ?)"
)

var (
	// ErrAuthorizationNotFound is returned when no authorization matches.
	ErrAuthorizationNotFound = errors.New("authorization not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrIncompleteAuthorization is returned when a record lacks a resource, grantee or capability.
	ErrIncompleteAuthorization = errors.New("authorization needs a resource, a grantee and a capability")
)

// Filter narrows authorization queries. Zero values do not filter.
type Filter struct {
	Resource       models.ResourceRef
	GranteeID      uint64
	Capability     models.CapabilityRef
	CapabilityKind models.CapabilityKind // restrict to roles or permissions without an id
	CapabilityName string                // name of the granted role or permission
	RoleCarries    string                // only role grants whose role carries a permission with this name
	Page           int                   // 1-based
	PageSize       int
}

// Page is one page of authorizations, newest first.
type Page struct {
	Items      []models.Authorization `json:"items"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// Create inserts a new authorization.
func Create(db *gorm.DB, a *models.Authorization) (*models.Authorization, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if a.AuthorizableType == "" || a.AuthorizableID == 0 || a.AuthorizedID == 0 ||
		a.AuthorizationType == "" || a.AuthorizationID == 0 {
		return nil, ErrIncompleteAuthorization
	}

	if a.AuthorizedType == "" {
		a.AuthorizedType = models.ActorKindUser
	}

	if err := db.Create(a).Error; err != nil {
		return nil, err
	}

	return a, nil
}

// GetByID retrieves an authorization by its id.
func GetByID(db *gorm.DB, id uint64) (*models.Authorization, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var a models.Authorization

	if err := db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorizationNotFound
		}

		return nil, err
	}

	return &a, nil
}

// Delete removes an authorization by id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Authorization{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAuthorizationNotFound
	}

	return nil
}

// DeleteByCapability removes every authorization granting the capability and returns the count.
func DeleteByCapability(db *gorm.DB, ref models.CapabilityRef) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("authorization_type = ? AND authorization_id = ?", ref.Kind, ref.ID).
		Delete(&models.Authorization{})

	return result.RowsAffected, result.Error
}

// Query returns one page of authorizations matching f, newest first.
func Query(db *gorm.DB, f Filter) (*Page, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	out := &Page{Page: page, PageSize: pageSize}

	if err := scope(db, f).Count(&out.Total).Error; err != nil {
		return nil, err
	}

	out.TotalPages = int((out.Total + int64(pageSize) - 1) / int64(pageSize))
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}

	// Past the last page; also keeps (page-1)*pageSize from overflowing.
	if page > out.TotalPages {
		out.Items = []models.Authorization{}

		return out, nil
	}

	err := scope(db, f).
		Order(newestFirst).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&out.Items).Error
	if err != nil {
		return nil, err
	}

	return out, nil
}

// First returns the first authorization in Query order.
func First(db *gorm.DB, f Filter) (*models.Authorization, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var a models.Authorization

	if err := scope(db, f).Order(newestFirst).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorizationNotFound
		}

		return nil, err
	}

	return &a, nil
}

func scope(db *gorm.DB, f Filter) *gorm.DB {
	tx := db.Model(&models.Authorization{})

	if f.Resource.Kind != "" {
		tx = tx.Where("authorizations.authorizable_type = ?", f.Resource.Kind)
	}

	if f.Resource.ID != 0 {
		tx = tx.Where("authorizations.authorizable_id = ?", f.Resource.ID)
	}

	if f.GranteeID != 0 {
		tx = tx.Where("authorizations.authorized_type = ? AND authorizations.authorized_id = ?",
			models.ActorKindUser, f.GranteeID)
	}

	if f.Capability.Kind != "" {
		tx = tx.Where("authorizations.authorization_type = ?", f.Capability.Kind)
	}

	if f.Capability.ID != 0 {
		tx = tx.Where("authorizations.authorization_id = ?", f.Capability.ID)
	}

	if f.CapabilityKind != "" {
		tx = tx.Where("authorizations.authorization_type = ?", f.CapabilityKind)
	}

	if f.CapabilityName != "" {
		tx = tx.Where(whereCapabilityNamed,
			models.CapabilityPermission, f.CapabilityName,
			models.CapabilityRole, f.CapabilityName)
	}

	if f.RoleCarries != "" {
		tx = tx.Where(whereRoleCarries, models.CapabilityRole, f.RoleCarries)
	}

	return tx
}
