package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"DATASET_PATH", "HTTP_HOST", "HTTP_PORT", "SLIDER_MAX", "STORE_DRIVER", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()
	assert.Equal(t, "spacex_launch_dash.csv", cfg.DatasetPath)
	assert.Equal(t, "127.0.0.1:8050", cfg.Addr())
	assert.Equal(t, 0.0, cfg.SliderMin)
	assert.Equal(t, 10000.0, cfg.SliderMax)
	assert.Equal(t, 1000.0, cfg.SliderStep)
	assert.Empty(t, cfg.StoreDriver)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SLIDER_STEP", "500")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/launches.db")

	cfg := fromEnv()
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 500.0, cfg.SliderStep)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/tmp/launches.db", cfg.DSN())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("SLIDER_MAX", "lots")

	cfg := fromEnv()
	assert.Equal(t, 8050, cfg.HTTPPort)
	assert.Equal(t, 10000.0, cfg.SliderMax)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		StoreDriver:      "postgres",
		PostgresHost:     "db",
		PostgresPort:     "5433",
		PostgresUser:     "u",
		PostgresPassword: "p",
		PostgresDB:       "launches",
		PostgresSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=launches sslmode=disable", cfg.DSN())
}
