// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"payinfo/internal/config"
	"payinfo/internal/logging"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "PAYINFO"
	defaultConfigPath = "config.toml"
)

// flagBindings maps config keys to the flag that may override them.
// The env variable for a key is PAYINFO_ plus the key with dots replaced by
// underscores, e.g. PAYINFO_SERVER_PORT.
var flagBindings = map[string]string{
	"server.host":            "host",
	"server.port":            "port",
	"database.path":          "db-path",
	"logging.level":          "log-level",
	"logging.audit_enabled":  "audit-enabled",
	"cache.ttl":              "cache-ttl",
	"housekeeping.interval":  "housekeeping-interval",
	"housekeeping.retention": "retention",
	"jwt.secret":             "jwt-secret",
	"jwt.token_ttl":          "token-ttl",
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" && cfgFile == defaultConfigPath {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	if err := applyOverrides(cfg, cmd.Flags()); err != nil {
		return err
	}
	cfg.ApplyDefaults()

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

// newOverrides returns a viper instance that resolves env variables and the
// changed flags of fs. Values from the config file are not part of it.
func newOverrides(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagBindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return v, nil
}

// applyOverrides layers env variables and then flags over c.
func applyOverrides(c *config.Config, fs *pflag.FlagSet) error {
	v, err := newOverrides(fs)
	if err != nil {
		return err
	}

	overrideString(v, "server.host", &c.Server.Host)
	overrideString(v, "database.path", &c.Database.Path)
	overrideString(v, "logging.level", &c.Logging.Level)
	overrideString(v, "cache.ttl", &c.Cache.TTL)
	overrideString(v, "housekeeping.interval", &c.Housekeeping.Interval)
	overrideString(v, "housekeeping.retention", &c.Housekeeping.Retention)
	overrideString(v, "jwt.secret", &c.JWT.Secret)
	overrideString(v, "jwt.token_ttl", &c.JWT.TokenTTL)

	if v.IsSet("server.port") {
		c.Server.Port = v.GetInt("server.port")
	}
	if v.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = v.GetBool("logging.audit_enabled")
	}
	return nil
}

func overrideString(v *viper.Viper, key string, target *string) {
	if !v.IsSet(key) {
		return
	}
	if s := v.GetString(key); s != "" {
		*target = s
	}
}
