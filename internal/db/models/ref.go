package models

import "strconv"

// ResourceKind tags the concrete type behind an authorizable reference.
type ResourceKind string

const (
	// ResourceCompany references a row in the companies table.
	ResourceCompany ResourceKind = "company"
	// ResourceProject references a row in the projects table.
	ResourceProject ResourceKind = "project"
)

// CapabilityKind tags the concrete type behind a granted capability.
type CapabilityKind string

const (
	// CapabilityRole references a row in the roles table.
	CapabilityRole CapabilityKind = "role"
	// CapabilityPermission references a row in the permissions table.
	CapabilityPermission CapabilityKind = "permission"
)

// ActorKindUser is the only authorized type stored on authorization records.
const ActorKindUser = "user"

// ResourceRef identifies an authorizable resource by kind and id.
type ResourceRef struct {
	Kind ResourceKind `json:"type" validate:"required,oneof=company project"`
	ID   uint64       `json:"id" validate:"required"`
}

// String implements fmt.Stringer.
func (r ResourceRef) String() string {
	return string(r.Kind) + "#" + uitoa(r.ID)
}

// IsZero reports whether the reference is unset.
func (r ResourceRef) IsZero() bool {
	return r.Kind == "" && r.ID == 0
}

// CapabilityRef identifies a granted role or permission by kind and id.
type CapabilityRef struct {
	Kind CapabilityKind `json:"type" validate:"required,oneof=role permission"`
	ID   uint64         `json:"id" validate:"required"`
}

// String implements fmt.Stringer.
func (r CapabilityRef) String() string {
	return string(r.Kind) + "#" + uitoa(r.ID)
}

// IsZero reports whether the reference is unset.
func (r CapabilityRef) IsZero() bool {
	return r.Kind == "" && r.ID == 0
}

// ParseResourceKind validates a resource tag coming from an untyped source.
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch k := ResourceKind(s); k {
	case ResourceCompany, ResourceProject:
		return k, true
	default:
		return "", false
	}
}

// ParseCapabilityKind validates a capability tag coming from an untyped source.
func ParseCapabilityKind(s string) (CapabilityKind, bool) {
	switch k := CapabilityKind(s); k {
	case CapabilityRole, CapabilityPermission:
		return k, true
	default:
		return "", false
	}
}

func uitoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
