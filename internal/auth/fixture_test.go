package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/db/controller/authorization"
	"github.com/projecthub/projecthub/internal/db/dbtest"
	"github.com/projecthub/projecthub/internal/db/models"
)

// fixture is a small world: an admin, a company owner with one company and two projects,
// an official of the company and two unrelated users.
type fixture struct {
	ctx context.Context
	db  *gorm.DB
	svc *Service

	admin    *models.User
	owner    *models.User
	official *models.User
	alice    *models.User
	bob      *models.User

	company        *models.Company
	companyProject *models.Project
	project        *models.Project

	assign     *models.Permission
	remove     *models.Permission
	view       *models.Permission
	viewPublic *models.Permission
	manager    *models.Role
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)

	f := &fixture{
		ctx: context.Background(),
		db:  db,
		svc: NewService(db, config.Authorization{PublicCacheSize: 16, PublicCacheTTL: time.Minute}),
	}

	f.admin = dbtest.User(t, db, "admin", true)
	f.owner = dbtest.User(t, db, "owner", false, models.UserTypeFacilitator)
	f.official = dbtest.User(t, db, "official", false)
	f.alice = dbtest.User(t, db, "alice", false)
	f.bob = dbtest.User(t, db, "bob", false, models.UserTypeDonor)

	f.company = dbtest.Company(t, db, "acme", f.owner, *f.official)
	f.companyProject = dbtest.Project(t, db, "school", f.owner, f.company)
	f.project = dbtest.Project(t, db, "well", f.owner, nil)

	f.assign = dbtest.Permission(t, db, PermAssignAuthorizations, false, f.admin)
	f.remove = dbtest.Permission(t, db, PermRemoveAuthorizations, false, f.admin)
	f.view = dbtest.Permission(t, db, PermViewAuthorizations, false, f.admin)
	f.viewPublic = dbtest.Permission(t, db, PermViewPublic, true, f.admin)
	f.manager = dbtest.Role(t, db, "manager", f.admin, false, *f.assign, *f.view)

	return f
}

// resource loads a resource with its relations the way the service does.
func (f *fixture) resource(t *testing.T, ref models.ResourceRef) Resource {
	t.Helper()

	r, err := f.svc.LoadResource(f.ctx, ref)
	require.NoError(t, err)

	return r
}

// grant stores an authorization without any permission check.
// A zero at lets gorm set the creation time.
func (f *fixture) grant(
	t *testing.T,
	grantee *models.User,
	resource models.ResourceRef,
	capability models.CapabilityRef,
	at time.Time,
) *models.Authorization {
	t.Helper()

	a, err := authorization.Create(f.db, &models.Authorization{
		CreatedAt:         at,
		GranterID:         f.admin.ID,
		AuthorizableType:  resource.Kind,
		AuthorizableID:    resource.ID,
		AuthorizedID:      grantee.ID,
		AuthorizationType: capability.Kind,
		AuthorizationID:   capability.ID,
	})
	require.NoError(t, err)

	return a
}

func (f *fixture) countAuthorizations(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Model(&models.Authorization{}).Count(&n).Error)

	return n
}
