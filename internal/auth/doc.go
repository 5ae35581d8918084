// Package auth decides who may do what on companies and projects.
//
// An authorization record links a resource (company or project), a grantee (user) and a
// capability (role or permission). Roles bundle permissions; granting a role on a resource
// grants every permission it carries on that resource.
//
// # Evaluation
//
// Service.Evaluate checks, in order:
//   - the admin flag of the actor
//   - ownership of the resource
//   - the official relation (company officials, and a project's company officials)
//   - an authorization resolved for any requested action
//   - a public permission named like any requested action
//
// Anything else is denied. Database errors deny as well and are logged.
//
// # Resolution
//
// Service.Resolve finds the authorization behind a name: a direct permission grant first,
// then a role grant by role name, then a role grant whose role carries the permission.
// The newest matching record wins within a step.
//
// # Delegation and catalog
//
// Grant needs ASSIGNAUTHORIZATIONS on the resource, Revoke needs REMOVEAUTHORIZATIONS and
// ListGrants needs VIEWAUTHORIZATIONS unless the actor lists their own grants.
// Roles and permissions are mutated by their creator or an admin, see CanMutateRole,
// CanDeleteRole and CanDeletePermission. Deleting a role or permission removes every
// authorization granting it.
//
// Example usage:
//
//	svc := auth.NewService(db, cfg.Authorization)
//
//	project, err := svc.LoadResource(ctx, models.ResourceRef{Kind: models.ResourceProject, ID: 7})
//	if err != nil {
//	    return err
//	}
//
//	if err := svc.AssertCan(ctx, user, project, auth.PermAssignAuthorizations); err != nil {
//	    return err
//	}
package auth
