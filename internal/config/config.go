package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

const envFile = ".env.dev"

type Config struct {
	GinMode     string
	AppEnv      string
	Port        string
	TZ          string
	LogLevel    string
	StoreDriver string
	SQLiteDSN   string
}

// findEnvDir walks up from the working directory to the first directory
// holding .env.dev.
func findEnvDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, envFile)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory", envFile)
		}
		dir = parent
	}
}

// Load reads the configuration from the environment. In debug mode .env.dev
// is loaded first; variables already set win over the file.
func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		loadEnvFile()
	}

	return &Config{
		GinMode:     getenv("GIN_MODE", "debug"),
		AppEnv:      getenv("APP_ENV", "development"),
		Port:        getenv("APP_PORT", "8080"),
		TZ:          getenv("TZ", "UTC"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		StoreDriver: getenv("STORE_DRIVER", DriverMemory),
		SQLiteDSN:   getenv("SQLITE_DSN", "file:catalog?mode=memory&cache=shared"),
	}
}

func loadEnvFile() {
	root, err := findEnvDir()
	if err != nil {
		log.Warn().Err(err).Msg("skipping env file")
		return
	}

	envPath := filepath.Join(root, envFile)
	if err := godotenv.Load(envPath); err != nil {
		log.Warn().Err(err).Str("path", envPath).Msg("could not load env file")
		return
	}
	log.Info().Str("path", envPath).Msg("loaded env file")
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.SQLiteDSN == "" {
			return errors.New("SQLITE_DSN is required for the sqlite store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.StoreDriver, DriverMemory, DriverSQLite)
	}

	if c.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location is the zone the catalog's calendar days are taken in. An empty TZ
// means UTC.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", c.TZ, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
