package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDir(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(configDir(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, "X-Actor-ID", cfg.Webserver.ActorHeader)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, 15, cfg.Authorization.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Authorization.PublicCacheTTL)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unsupported engine",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				DB:        DB{GormEngine: "oracle"},
			},
			wantErr: ErrUnsupportedDBEngine,
		},
		{
			name: "page size too large",
			config: Config{
				Webserver:     Webserver{Port: 8080, URL: "http://localhost:8080"},
				Authorization: Authorization{PageSize: MaxPageSize + 1},
			},
			wantErr: ErrPageSizeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}

	require.NoError(t, validate(&cfg))

	assert.Equal(t, EngineMySQL, cfg.DB.GormEngine)
	assert.Equal(t, defaultShutDownTime, cfg.Webserver.ShutDownTime)
	assert.Equal(t, defaultActorHeader, cfg.Webserver.ActorHeader)
	assert.Equal(t, defaultCheckAliveURI, cfg.Webserver.CheckAliveURI)
	assert.Equal(t, DefaultPageSize, cfg.Authorization.PageSize)
	assert.Equal(t, defaultPublicCacheSize, cfg.Authorization.PublicCacheSize)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"Authorization":{"PageSize":50}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(configDir(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, 50, cfg.Authorization.PageSize)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL, "keys missing from the override are kept")
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Authorization: Authorization{PageSize: 20},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tomlStr)

	// Check if output contains expected values
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")
	assert.Contains(t, tomlStr, "PageSize = 20")
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Title": "Test"`)
}
