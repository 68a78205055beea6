package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/studentresult/srms/internal/security"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no config path is provided.
const DefaultConfigPath = "config.yaml"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address, e.g. ":8080".
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // PostgreSQL or SQLite DSN.
}

// AuthConfig holds auth core settings.
type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt-cost"` // Bcrypt work factor.
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`       // logrus level name.
	File       string `yaml:"file"`        // Log file path; empty logs to stderr.
	MaxSizeMB  int    `yaml:"max-size"`    // Rotate after this many megabytes.
	MaxBackups int    `yaml:"max-backups"` // Rotated files to retain.
	MaxAgeDays int    `yaml:"max-age"`     // Days to retain rotated files.
}

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{DSN: "srms.db"},
		Auth:     AuthConfig{BcryptCost: security.DefaultBcryptCost},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// ResolveConfigPath returns the provided path or the default when empty.
func ResolveConfigPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return DefaultConfigPath
	}
	return trimmed
}

// Load reads the YAML config file at path, applying defaults and environment
// overrides. A missing file is not an error; defaults and environment values
// are used instead.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := ResolveConfigPath(path)
	data, errRead := os.ReadFile(resolved)
	switch {
	case errRead == nil:
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", resolved, errUnmarshal)
		}
	case os.IsNotExist(errRead):
		// Fall through to env overrides.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", resolved, errRead)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides replaces config values with SRMS_* environment variables
// when set.
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SRMS_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SRMS_DB_DSN")); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("SRMS_BCRYPT_COST")); v != "" {
		if cost, errParse := strconv.Atoi(v); errParse == nil {
			cfg.Auth.BcryptCost = cost
		}
	}
	if v := strings.TrimSpace(os.Getenv("SRMS_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("SRMS_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
}
