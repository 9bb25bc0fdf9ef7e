// Package config loads duogoals settings from defaults, a .env file, the
// YAML config file and DUOGOALS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/keyring"
	"github.com/julianstephens/duogoals/internal/storage"
)

// Config is the resolved application configuration
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Backups BackupsConfig `koanf:"backups"`
	Debug   bool          `koanf:"debug"`
	LogDir  string        `koanf:"log_dir"`

	// ConfigDir is where the defaults for every path are rooted.
	ConfigDir string `koanf:"-"`
	// Warnings are non-fatal problems found while loading, logged once the
	// logger is up.
	Warnings []string `koanf:"-"`
}

// StorageConfig selects the slot backend
type StorageConfig struct {
	Backend  string `koanf:"backend"`
	Path     string `koanf:"path"`
	DSN      string `koanf:"dsn"`
	RedisURL string `koanf:"redis_url"`
}

// BackupsConfig controls snapshot rotation
type BackupsConfig struct {
	Max int    `koanf:"max"`
	Dir string `koanf:"dir"`
}

var validBackends = []string{
	constants.BackendFile,
	constants.BackendSQLite,
	constants.BackendPostgres,
	constants.BackendRedis,
}

// Validate rejects unknown backends, bad rotation settings and postgres
// connection strings with embedded passwords.
func (c *Config) Validate() error {
	known := false
	for _, b := range validBackends {
		if c.Storage.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown storage backend %q (expected one of %s)",
			c.Storage.Backend, strings.Join(validBackends, ", "))
	}

	if c.Backups.Max < 1 {
		return fmt.Errorf("backups.max must be at least 1, got %d", c.Backups.Max)
	}

	if c.Storage.DSN != "" {
		if _, err := storage.ValidateConnString(c.Storage.DSN); err != nil {
			return fmt.Errorf("storage.dsn: %w", err)
		}
	}

	if c.Storage.Backend == constants.BackendRedis && c.Storage.RedisURL == "" {
		return errors.New("storage.redis_url is required for the redis backend")
	}

	return nil
}

// StoragePath is the slot location for the file and sqlite backends.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == constants.BackendSQLite {
		return filepath.Join(c.ConfigDir, constants.AppName+".db")
	}
	return filepath.Join(c.ConfigDir, constants.DefaultDataFile)
}

// BackupDir is where snapshots are written.
func (c *Config) BackupDir() string {
	if c.Backups.Dir != "" {
		return c.Backups.Dir
	}
	return filepath.Join(c.ConfigDir, constants.BackupDirName)
}

// ResolveDSN returns the postgres connection string from config or the
// environment, falling back to the OS keyring.
func (c *Config) ResolveDSN() (string, error) {
	if c.Storage.DSN != "" {
		return c.Storage.DSN, nil
	}

	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no postgres connection string: set storage.dsn, %s, or run 'duogoals keyring set'", constants.EnvDBConnection)
		}
		return "", err
	}
	return connStr, nil
}

// StorageOptions builds the provider options for the configured backend.
func (c *Config) StorageOptions() (storage.Options, error) {
	opts := storage.Options{
		Backend:  c.Storage.Backend,
		RedisURL: c.Storage.RedisURL,
	}

	switch c.Storage.Backend {
	case constants.BackendPostgres:
		dsn, err := c.ResolveDSN()
		if err != nil {
			return storage.Options{}, err
		}
		opts.DSN = dsn
	case constants.BackendFile, constants.BackendSQLite:
		opts.Path = c.StoragePath()
	}
	return opts, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
