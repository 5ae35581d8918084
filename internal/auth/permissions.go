package auth

// Permission names checked by the delegation actions.
const (
	// PermAssignAuthorizations allows granting roles and permissions on a resource.
	PermAssignAuthorizations = "ASSIGNAUTHORIZATIONS"
	// PermRemoveAuthorizations allows revoking authorizations on a resource.
	PermRemoveAuthorizations = "REMOVEAUTHORIZATIONS"
	// PermViewAuthorizations allows listing the authorizations of a resource.
	PermViewAuthorizations = "VIEWAUTHORIZATIONS"
	// PermViewPublic is granted to everybody and guards public resource views.
	PermViewPublic = "VIEWPUBLIC"
)

// CatalogEntry describes a permission seeded into an empty catalog.
type CatalogEntry struct {
	Name        string
	Description string
	Public      bool
}

// DefaultCatalog lists the permissions every installation starts with.
var DefaultCatalog = []CatalogEntry{ //nolint:gochecknoglobals
	{Name: PermAssignAuthorizations, Description: "Grant roles and permissions on a resource"},
	{Name: PermRemoveAuthorizations, Description: "Revoke authorizations on a resource"},
	{Name: PermViewAuthorizations, Description: "List the authorizations of a resource"},
	{Name: PermViewPublic, Description: "View the public pages of a resource", Public: true},
}
