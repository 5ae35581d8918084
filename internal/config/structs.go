package config

import (
	"time"

	"github.com/projecthub/projecthub/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode       bool // enable dev mode for development
	DB            DB
	Log           logger.Log
	Title         string
	Webserver     Webserver
	Authorization Authorization
	Seed          Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
	ActorHeader    string // request header carrying the authenticated user id
	CheckAliveURI  string // liveness endpoint, excluded from access log when Log.DisableCheckAlive
}

// Authorization tunes the authorization service.
type Authorization struct {
	PageSize        int           // fixed page size of authorization listings
	PublicCacheSize int           // entries of the public permission cache
	PublicCacheTTL  time.Duration // lifetime of cached public permission lookups, 0 disables expiry
}

// Seed holds the bootstrap admin account created on an empty users table.
type Seed struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string // generated and logged once when empty
}
