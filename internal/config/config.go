// Package config reads the service configuration from etc/main.toml.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a JSON document merged over the TOML configuration.
	EnvConfigJSON = "PROJECTHUB_CONFIG_JSON"

	// EnvPrefix is the prefix for single-key environment overrides (PROJECTHUB_WEBSERVER_PORT).
	EnvPrefix = "PROJECTHUB"

	// DefaultPageSize is used when Authorization.PageSize is not configured.
	DefaultPageSize = 15

	// MaxPageSize bounds Authorization.PageSize.
	MaxPageSize = 200

	defaultShutDownTime    = 5
	defaultActorHeader     = "X-Actor-ID"
	defaultCheckAliveURI   = "/checkalive"
	defaultPublicCacheSize = 256
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		v.SetConfigType("json")

		if err := v.MergeConfig(strings.NewReader(configAsJSON)); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge json config from env")
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(&c)
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service can not start without and fills defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "", EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnsupportedDBEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.Authorization.PageSize < 0 || c.Authorization.PageSize > MaxPageSize {
		return errors.Wrap(ErrPageSizeOutOfRange, invalidErrMessage)
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineMySQL
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.ActorHeader == "" {
		c.Webserver.ActorHeader = defaultActorHeader
	}

	if c.Webserver.CheckAliveURI == "" {
		c.Webserver.CheckAliveURI = defaultCheckAliveURI
	}

	if c.Authorization.PageSize == 0 {
		c.Authorization.PageSize = DefaultPageSize
	}

	if c.Authorization.PublicCacheSize == 0 {
		c.Authorization.PublicCacheSize = defaultPublicCacheSize
	}

	return nil
}
