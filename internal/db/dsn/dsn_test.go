package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projecthub/projecthub/internal/config"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name     string
		db       config.DB
		expected string
	}{
		{
			name: "mysql",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "db",
				Port:       3306,
				User:       "u",
				Password:   "p",
				Name:       "hub",
				Extras:     "parseTime=True",
			},
			expected: "u:p@tcp(db:3306)/hub?parseTime=True",
		},
		{
			name: "postgres with extras",
			db: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "db",
				Port:       5432,
				User:       "u",
				Password:   "p",
				Name:       "hub",
				Extras:     "sslmode=disable",
			},
			expected: "host=db port=5432 user=u password=p dbname=hub sslmode=disable",
		},
		{
			name:     "sqlite file",
			db:       config.DB{GormEngine: config.EngineSQLite, Name: "hub.db"},
			expected: "hub.db",
		},
		{
			name:     "sqlite with pragma",
			db:       config.DB{GormEngine: config.EngineSQLite, Name: "hub.db", Extras: "_pragma=foreign_keys(1)"},
			expected: "hub.db?_pragma=foreign_keys(1)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Create(&config.Config{DB: tc.db}))
		})
	}
}
