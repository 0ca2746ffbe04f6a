// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BurntSushi/toml"
)

// Known log levels accepted by the logging section.
const (
	LogLevelTrace = "trace"
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds the application's configuration.
// The json tags give validation errors the same key names as the TOML file.
type Config struct {
	Server       ServerConfig       `toml:"server,omitempty" json:"server"`
	Database     DatabaseConfig     `toml:"database,omitempty" json:"database"`
	Logging      LoggingConfig      `toml:"logging,omitempty" json:"logging"`
	Cache        CacheConfig        `toml:"cache,omitempty" json:"cache"`
	Housekeeping HousekeepingConfig `toml:"housekeeping,omitempty" json:"housekeeping"`
	JWT          JWTConfig          `toml:"jwt,omitempty" json:"jwt"`

	// Runtime values computed by ParseAndValidate.
	CacheTTL             time.Duration `toml:"-" json:"-"`
	HousekeepingInterval time.Duration `toml:"-" json:"-"`
	Retention            time.Duration `toml:"-" json:"-"`
	TokenTTL             time.Duration `toml:"-" json:"-"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host,omitempty" json:"host"`
	Port int    `toml:"port,omitempty" json:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path,omitempty" json:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level,omitempty" json:"level"`
	AuditEnabled bool   `toml:"audit_enabled,omitempty" json:"audit_enabled"`
}

// CacheConfig controls the read-through cache in front of the store.
type CacheConfig struct {
	TTL string `toml:"ttl,omitempty" json:"ttl"` // e.g. "5m"
}

// HousekeepingConfig controls expiry of stored payment infos.
type HousekeepingConfig struct {
	Interval  string `toml:"interval,omitempty" json:"interval"`   // how often expired records are purged
	Retention string `toml:"retention,omitempty" json:"retention"` // "0" keeps records forever
}

// JWTConfig holds settings for bearer tokens on the write API.
type JWTConfig struct {
	Secret   string `toml:"secret,omitempty" json:"secret"` // Persisted secret
	TokenTTL string `toml:"token_ttl,omitempty" json:"token_ttl"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// SaveJWTSecret stores secret in the file at path and leaves every other
// value of that file as it is. Overrides from env or flags are not written.
func SaveJWTSecret(path, secret string) error {
	fileCfg, err := LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file before saving: %w", err)
		}
		fileCfg = &Config{}
	}
	fileCfg.JWT.Secret = secret
	return SaveConfig(path, fileCfg)
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "payinfo.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "5m"
	}
	if c.Housekeeping.Interval == "" {
		c.Housekeeping.Interval = "1h"
	}
	if c.Housekeeping.Retention == "" {
		c.Housekeeping.Retention = "0"
	}
	if c.JWT.TokenTTL == "" {
		c.JWT.TokenTTL = "24h"
	}
}

// ParseAndValidate processes configuration strings into runtime values.
func (c *Config) ParseAndValidate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Server, validation.By(func(value interface{}) error {
			sc, _ := value.(ServerConfig)
			return validation.ValidateStruct(&sc,
				validation.Field(&sc.Port, validation.Required, validation.Min(1), validation.Max(65535)),
			)
		})),
		validation.Field(&c.Database, validation.By(func(value interface{}) error {
			dc, _ := value.(DatabaseConfig)
			return validation.ValidateStruct(&dc, validation.Field(&dc.Path, validation.Required))
		})),
		validation.Field(&c.Logging, validation.By(func(value interface{}) error {
			lc, _ := value.(LoggingConfig)
			return validation.ValidateStruct(&lc,
				validation.Field(&lc.Level,
					validation.Required,
					validation.In(LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
				),
			)
		})),
	)
	if err != nil {
		return err
	}

	if c.CacheTTL, err = parseDuration("cache.ttl", c.Cache.TTL); err != nil {
		return err
	}
	if c.HousekeepingInterval, err = parseDuration("housekeeping.interval", c.Housekeeping.Interval); err != nil {
		return err
	}
	if c.Retention, err = parseDuration("housekeeping.retention", c.Housekeeping.Retention); err != nil {
		return err
	}
	if c.TokenTTL, err = parseDuration("jwt.token_ttl", c.JWT.TokenTTL); err != nil {
		return err
	}
	return nil
}

// parseDuration accepts Go durations plus a bare "0" and rejects negatives.
func parseDuration(key, s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
