package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the JSON API.
	APIPath = RootPath + "api"

	// ErrNilRouterFatalLogMsg is used if the router or auth service pointer is nil.
	ErrNilRouterFatalLogMsg = "router or auth service is nil"
)
