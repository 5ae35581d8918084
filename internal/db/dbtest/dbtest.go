// Package dbtest provides a migrated in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/projecthub/projecthub/internal/db"
	"github.com/projecthub/projecthub/internal/db/models"
)

// New creates an in-memory SQLite database with the full schema.
// A single connection is kept so every query sees the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return gdb
}

// User inserts a user.
func User(t *testing.T, gdb *gorm.DB, username string, admin bool, types ...string) *models.User {
	t.Helper()

	u := &models.User{Username: username, Email: username + "@example.com", Admin: admin, Types: types}
	require.NoError(t, gdb.Create(u).Error)

	return u
}

// Company inserts a company owned by owner with the given officials.
func Company(t *testing.T, gdb *gorm.DB, name string, owner *models.User, officials ...models.User) *models.Company {
	t.Helper()

	c := &models.Company{Name: name, OwnerID: owner.ID, Officials: officials}
	require.NoError(t, gdb.Create(c).Error)

	return c
}

// Project inserts a project owned by owner, optionally below company.
func Project(t *testing.T, gdb *gorm.DB, name string, owner *models.User, company *models.Company) *models.Project {
	t.Helper()

	p := &models.Project{Name: name, OwnerID: owner.ID}
	if company != nil {
		p.CompanyID = &company.ID
	}

	require.NoError(t, gdb.Create(p).Error)

	return p
}

// Permission inserts a permission created by creator.
func Permission(t *testing.T, gdb *gorm.DB, name string, public bool, creator *models.User) *models.Permission {
	t.Helper()

	p := &models.Permission{Name: name, Public: public, CreatorID: creator.ID}
	require.NoError(t, gdb.Create(p).Error)

	return p
}

// Role inserts a role created by creator carrying perms.
func Role(t *testing.T, gdb *gorm.DB, name string, creator *models.User, private bool, perms ...models.Permission) *models.Role {
	t.Helper()

	r := &models.Role{Name: name, CreatorID: creator.ID, Private: private, Permissions: perms}
	require.NoError(t, gdb.Create(r).Error)

	return r
}
