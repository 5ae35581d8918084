package auth

import "github.com/projecthub/projecthub/internal/db/models"

// Catalog mutation rules. Like Evaluate, the admin flag and ownership (creator) authorize.

// CanCreateRole reports whether actor may create roles. Every actor may; the role is theirs.
func CanCreateRole(actor Actor) bool {
	return actor != nil
}

// CanMutateRole reports whether actor may rename the role or change its permissions.
func CanMutateRole(actor Actor, role *models.Role) bool {
	if actor == nil || role == nil {
		return false
	}

	return actor.IsAdmin() || role.OwnedBy(actor.ActorID())
}

// CanDeleteRole reports whether actor may delete the role.
// Creators may only delete their private roles.
func CanDeleteRole(actor Actor, role *models.Role) bool {
	if actor == nil || role == nil {
		return false
	}

	return actor.IsAdmin() || (role.Private && role.OwnedBy(actor.ActorID()))
}

// CanCreatePermission reports whether actor may create a permission; public ones need an admin.
func CanCreatePermission(actor Actor, public bool) bool {
	if actor == nil {
		return false
	}

	return actor.IsAdmin() || !public
}

// CanDeletePermission reports whether actor may delete the permission.
// Public permissions affect everybody and are reserved to admins.
func CanDeletePermission(actor Actor, perm *models.Permission) bool {
	if actor == nil || perm == nil {
		return false
	}

	return actor.IsAdmin() || (!perm.Public && perm.OwnedBy(actor.ActorID()))
}
