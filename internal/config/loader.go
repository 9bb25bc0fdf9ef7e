package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/julianstephens/duogoals/internal/constants"
)

const maxConfigFileSize = 1024 * 1024

// top-level keys whose names contain an underscore
var topLevelKeys = map[string]bool{
	"debug":   true,
	"log_dir": true,
}

// LoadOptions locates the optional inputs of Load
type LoadOptions struct {
	// ConfigFile overrides ~/.config/duogoals/config.yaml
	ConfigFile string
	// EnvFile is the dotenv file read before the environment; defaults to .env
	EnvFile string
}

// Load resolves the configuration. Precedence, highest first:
//  1. DUOGOALS_* environment variables (DUOGOALS_STORAGE_BACKEND -> storage.backend)
//  2. variables from the .env file, unless already set in the environment
//  3. the YAML config file
//  4. defaults
//
// Command-line flags are applied afterwards by the caller.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	configDir, err := expandHome(constants.DefaultConfigDir)
	if err != nil {
		return nil, err
	}

	configPath := opts.ConfigFile
	if configPath == "" {
		configPath = filepath.Join(configDir, constants.DefaultConfigFile)
	}
	if configPath, err = expandHome(configPath); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	warnings, err := loadFile(k, configPath)
	if err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(constants.EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigDir = configDir
	cfg.Warnings = warnings

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile merges the YAML file into k. The logger is not set up yet, so
// non-fatal problems come back as warnings for the caller to log.
func loadFile(k *koanf.Koanf, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	var warnings []string
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		warnings = append(warnings, fmt.Sprintf("config file %s is readable by other users (mode %v); run chmod 600", path, perm))
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return warnings, nil
}

// envKey maps DUOGOALS_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, constants.EnvPrefix))

	if key == "db_connection" {
		return "storage.dsn"
	}
	if topLevelKeys[key] {
		return key
	}

	parts := strings.SplitN(key, "_", 2)
	if len(parts) == 1 {
		return key
	}
	return parts[0] + "." + parts[1]
}

func applyDefaults(cfg *Config) error {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = constants.BackendFile
	}
	if cfg.Backups.Max == 0 {
		cfg.Backups.Max = constants.MaxBackups
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.ConfigDir, "logs")
	}

	var err error
	for _, p := range []*string{&cfg.Storage.Path, &cfg.LogDir, &cfg.Backups.Dir} {
		if *p, err = expandHome(*p); err != nil {
			return err
		}
	}
	return nil
}

// Overrides are command-line values that win over every other source.
type Overrides struct {
	Backend string
	Path    string
	Debug   bool
}

// Apply merges non-zero overrides into c.
func (c *Config) Apply(o Overrides) error {
	if o.Backend != "" {
		c.Storage.Backend = o.Backend
	}
	if o.Path != "" {
		path, err := expandHome(o.Path)
		if err != nil {
			return err
		}
		c.Storage.Path = path
	}
	if o.Debug {
		c.Debug = true
	}
	return nil
}
