package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "APP_PORT", "TZ", "LOG_LEVEL", "STORE_DRIVER", "SQLITE_DSN"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "UTC", cfg.TZ)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "file:catalog?mode=memory&cache=shared", cfg.SQLiteDSN)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", DriverSQLite)
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DebugReadsEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, envFile), []byte("APP_PORT=7070\nSTORE_DRIVER=sqlite\n"), 0o644))
	t.Chdir(nested)

	// Set-but-empty variables would shadow the file.
	require.NoError(t, os.Unsetenv("APP_PORT"))
	require.NoError(t, os.Unsetenv("STORE_DRIVER"))

	cfg := Load()

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
}

func TestLoad_DebugWithoutEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{StoreDriver: DriverMemory, Port: "8080"}},
		{name: "sqlite", cfg: Config{StoreDriver: DriverSQLite, SQLiteDSN: "file::memory:", Port: "8080"}},
		{name: "sqlite without dsn", cfg: Config{StoreDriver: DriverSQLite, Port: "8080"}, wantErr: true},
		{name: "unknown driver", cfg: Config{StoreDriver: "postgres", Port: "8080"}, wantErr: true},
		{name: "empty port", cfg: Config{StoreDriver: DriverMemory}, wantErr: true},
		{name: "named zone", cfg: Config{StoreDriver: DriverMemory, Port: "8080", TZ: "Europe/Berlin"}},
		{name: "unknown zone", cfg: Config{StoreDriver: DriverMemory, Port: "8080", TZ: "Mars/Olympus"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocation(t *testing.T) {
	loc, err := (&Config{TZ: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = (&Config{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = (&Config{TZ: "Asia/Tokyo"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	_, err = (&Config{TZ: "Mars/Olympus"}).Location()
	assert.ErrorContains(t, err, "Mars/Olympus")
}
