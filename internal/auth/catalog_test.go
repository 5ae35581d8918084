package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/projecthub/internal/db/models"
)

func TestCreateRole(t *testing.T) {
	f := newFixture(t)

	role, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "  editor ", Description: "edits", Private: true})
	require.NoError(t, err)
	assert.Equal(t, "editor", role.Name)
	assert.Equal(t, f.alice.ID, role.CreatorID)
	assert.True(t, role.Private)

	_, err = f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: " "})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "x", ResourceClass: "donation"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = f.svc.CreateRole(f.ctx, nil, RoleInput{Name: "x"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateRole(t *testing.T) {
	f := newFixture(t)
	role, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "editor", Private: true})
	require.NoError(t, err)

	_, err = f.svc.UpdateRole(f.ctx, f.bob, role.ID, RoleInput{Name: "hijacked"})
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	updated, err := f.svc.UpdateRole(f.ctx, f.alice, role.ID, RoleInput{Name: "writer", ResourceClass: models.ResourceProject})
	require.NoError(t, err)
	assert.Equal(t, "writer", updated.Name)
	assert.Equal(t, models.ResourceProject, updated.ResourceClass)
	assert.False(t, updated.Private, "zero values are written")

	_, err = f.svc.UpdateRole(f.ctx, f.admin, role.ID, RoleInput{Name: "reviewer"})
	require.NoError(t, err)

	_, err = f.svc.UpdateRole(f.ctx, f.admin, 999, RoleInput{Name: "ghost"})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAttachDetachPermissions(t *testing.T) {
	f := newFixture(t)
	role, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "editor"})
	require.NoError(t, err)

	role, err = f.svc.AttachPermissions(f.ctx, f.alice, role.ID, []uint64{f.assign.ID, f.view.ID})
	require.NoError(t, err)
	assert.Len(t, role.Permissions, 2)

	role, err = f.svc.AttachPermissions(f.ctx, f.alice, role.ID, []uint64{f.assign.ID})
	require.NoError(t, err)
	assert.Len(t, role.Permissions, 2, "attaching twice is a no-op")

	_, err = f.svc.AttachPermissions(f.ctx, f.bob, role.ID, []uint64{f.remove.ID})
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	_, err = f.svc.AttachPermissions(f.ctx, f.alice, role.ID, []uint64{999})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, err = f.svc.AttachPermissions(f.ctx, f.alice, role.ID, nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	role, err = f.svc.DetachPermissions(f.ctx, f.alice, role.ID, []uint64{f.assign.ID, f.view.ID})
	require.NoError(t, err)
	assert.Empty(t, role.Permissions)

	var count int64
	require.NoError(t, f.db.Model(&models.Permission{}).Count(&count).Error)
	assert.Equal(t, int64(4), count, "detaching keeps the permissions")
}

func TestDeleteRoleCascades(t *testing.T) {
	f := newFixture(t)
	ref := f.project.ResourceRef()

	role, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "editor", Private: true})
	require.NoError(t, err)
	_, err = f.svc.AttachPermissions(f.ctx, f.alice, role.ID, []uint64{f.view.ID})
	require.NoError(t, err)

	f.grant(t, f.bob, ref, role.CapabilityRef(), time.Time{})
	f.grant(t, f.bob, f.company.ResourceRef(), role.CapabilityRef(), time.Time{})
	kept := f.grant(t, f.bob, ref, f.remove.CapabilityRef(), time.Time{})
	require.True(t, f.svc.Can(f.ctx, f.bob, f.resource(t, ref), PermViewAuthorizations))

	require.NoError(t, f.svc.DeleteRole(f.ctx, f.alice, role.ID))

	assert.False(t, f.svc.Can(f.ctx, f.bob, f.resource(t, ref), PermViewAuthorizations))
	assert.Equal(t, int64(1), f.countAuthorizations(t))

	var remaining models.Authorization
	require.NoError(t, f.db.First(&remaining).Error)
	assert.Equal(t, kept.ID, remaining.ID)

	var links int64
	require.NoError(t, f.db.Model(&models.RolePermission{}).Where("role_id = ?", role.ID).Count(&links).Error)
	assert.Zero(t, links)

	_, err = f.svc.GetRole(f.ctx, role.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteRolePolicy(t *testing.T) {
	f := newFixture(t)
	shared, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "shared"})
	require.NoError(t, err)

	err = f.svc.DeleteRole(f.ctx, f.alice, shared.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err), "creators may only delete private roles")

	err = f.svc.DeleteRole(f.ctx, f.bob, shared.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	require.NoError(t, f.svc.DeleteRole(f.ctx, f.admin, shared.ID))

	err = f.svc.DeleteRole(f.ctx, f.admin, shared.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreatePermission(t *testing.T) {
	f := newFixture(t)
	project := f.resource(t, f.project.ResourceRef())

	perm, err := f.svc.CreatePermission(f.ctx, f.alice, PermissionInput{Name: "DONATE"})
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, perm.CreatorID)
	assert.False(t, perm.Public)

	_, err = f.svc.CreatePermission(f.ctx, f.alice, PermissionInput{Name: "BROWSE", Public: true})
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	require.False(t, f.svc.Can(f.ctx, f.bob, project, "BROWSE"))

	_, err = f.svc.CreatePermission(f.ctx, f.admin, PermissionInput{Name: "BROWSE", Public: true})
	require.NoError(t, err)

	assert.True(t, f.svc.Can(f.ctx, f.bob, project, "BROWSE"), "cached public lookups are invalidated")
}

func TestDeletePermissionCascades(t *testing.T) {
	f := newFixture(t)
	ref := f.project.ResourceRef()
	f.grant(t, f.alice, ref, f.assign.CapabilityRef(), time.Time{})
	f.grant(t, f.bob, ref, f.manager.CapabilityRef(), time.Time{})

	err := f.svc.DeletePermission(f.ctx, f.alice, f.assign.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	require.NoError(t, f.svc.DeletePermission(f.ctx, f.admin, f.assign.ID))

	assert.Equal(t, int64(1), f.countAuthorizations(t), "only the direct grant is removed")

	role, err := f.svc.GetRole(f.ctx, f.manager.ID)
	require.NoError(t, err)
	require.Len(t, role.Permissions, 1)
	assert.Equal(t, f.view.ID, role.Permissions[0].ID)

	project := f.resource(t, ref)
	assert.False(t, f.svc.Can(f.ctx, f.alice, project, PermAssignAuthorizations))
	assert.False(t, f.svc.Can(f.ctx, f.bob, project, PermAssignAuthorizations))
	assert.True(t, f.svc.Can(f.ctx, f.bob, project, PermViewAuthorizations))
}

func TestDeleteOwnPermission(t *testing.T) {
	f := newFixture(t)
	perm, err := f.svc.CreatePermission(f.ctx, f.alice, PermissionInput{Name: "DONATE"})
	require.NoError(t, err)

	err = f.svc.DeletePermission(f.ctx, f.bob, perm.ID)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))

	require.NoError(t, f.svc.DeletePermission(f.ctx, f.alice, perm.ID))

	err = f.svc.DeletePermission(f.ctx, f.alice, perm.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListCatalog(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateRole(f.ctx, f.alice, RoleInput{Name: "auditor"})
	require.NoError(t, err)

	roles, err := f.svc.ListRoles(f.ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "auditor", roles[0].Name)
	assert.Equal(t, "manager", roles[1].Name)
	assert.Len(t, roles[1].Permissions, 2)

	perms, err := f.svc.ListPermissions(f.ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{
		PermAssignAuthorizations,
		PermRemoveAuthorizations,
		PermViewAuthorizations,
		PermViewPublic,
	}, names)
}

func TestEffectivePermissions(t *testing.T) {
	f := newFixture(t)
	ref := f.project.ResourceRef()
	f.grant(t, f.alice, ref, f.remove.CapabilityRef(), time.Time{})
	f.grant(t, f.alice, ref, f.manager.CapabilityRef(), time.Time{})
	f.grant(t, f.alice, f.company.ResourceRef(), f.remove.CapabilityRef(), time.Time{})

	names, err := f.svc.EffectivePermissions(f.ctx, f.alice.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, []string{
		PermAssignAuthorizations,
		PermRemoveAuthorizations,
		PermViewAuthorizations,
		PermViewPublic,
	}, names)

	names, err = f.svc.EffectivePermissions(f.ctx, f.bob.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, []string{PermViewPublic}, names)
}
