package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/projecthub/internal/db/dbtest"
	"github.com/projecthub/projecthub/internal/db/models"
)

func TestResolve(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("absent", func(t *testing.T) {
		f := newFixture(t)

		a, ok, err := f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), PermAssignAuthorizations)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, a)
	})

	t.Run("zero inputs", func(t *testing.T) {
		f := newFixture(t)
		f.grant(t, f.alice, f.project.ResourceRef(), f.assign.CapabilityRef(), time.Time{})

		_, ok, err := f.svc.Resolve(f.ctx, 0, f.project.ResourceRef(), PermAssignAuthorizations)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = f.svc.Resolve(f.ctx, f.alice.ID, models.ResourceRef{}, PermAssignAuthorizations)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("direct permission before role", func(t *testing.T) {
		f := newFixture(t)
		direct := f.grant(t, f.alice, f.project.ResourceRef(), f.assign.CapabilityRef(), base)
		f.grant(t, f.alice, f.project.ResourceRef(), f.manager.CapabilityRef(), base.Add(time.Hour))

		a, ok, err := f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), PermAssignAuthorizations)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, direct.ID, a.ID)
	})

	t.Run("role carrying permission", func(t *testing.T) {
		f := newFixture(t)
		viaRole := f.grant(t, f.alice, f.project.ResourceRef(), f.manager.CapabilityRef(), base)

		a, ok, err := f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), PermViewAuthorizations)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, viaRole.ID, a.ID)
	})

	t.Run("role by name before role carrying", func(t *testing.T) {
		f := newFixture(t)
		named := dbtest.Role(t, f.db, PermViewAuthorizations, f.admin, false)
		byName := f.grant(t, f.alice, f.project.ResourceRef(), named.CapabilityRef(), base)
		f.grant(t, f.alice, f.project.ResourceRef(), f.manager.CapabilityRef(), base.Add(time.Hour))

		a, ok, err := f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), PermViewAuthorizations)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, byName.ID, a.ID)
	})

	t.Run("newest wins among duplicate names", func(t *testing.T) {
		f := newFixture(t)
		other := dbtest.Permission(t, f.db, PermAssignAuthorizations, false, f.admin)
		f.grant(t, f.alice, f.project.ResourceRef(), f.assign.CapabilityRef(), base)
		newest := f.grant(t, f.alice, f.project.ResourceRef(), other.CapabilityRef(), base.Add(time.Minute))

		a, ok, err := f.svc.Resolve(f.ctx, f.alice.ID, f.project.ResourceRef(), PermAssignAuthorizations)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, newest.ID, a.ID)
		assert.Equal(t, other.ID, a.AuthorizationID)
	})
}
