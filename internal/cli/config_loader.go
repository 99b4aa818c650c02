// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"apodapi/internal/config"
	"apodapi/internal/logging"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "config.toml"
	envPrefix         = "APOD"
)

// flagKeys maps config keys to the flags that may override them. Every key
// can also be set from the environment as APOD_<SECTION>_<KEY>.
var flagKeys = map[string]string{
	"server.host":           "host",
	"server.port":           "port",
	"logging.level":         "log-level",
	"logging.audit_enabled": "audit-enabled",
	"database.driver":       "db-driver",
	"database.dsn":          "dsn",
	"upstream.api_key":      "upstream-key",
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 0. Load .env before anything reads the environment
	dotenvLoaded, err := loadDotEnv(envFile)
	if err != nil {
		return err
	}

	// 1. Check environment variable for config path first
	if envPath := os.Getenv("APOD_CONFIG_PATH"); envPath != "" && cfgFile == defaultConfigPath {
		cfgFile = envPath
	}

	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/env/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, newOverrides(cmd))

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level, cfg.Logging.File)
	goose.SetLogger(logging.Log)

	if dotenvLoaded {
		logging.Log.Debugf("Loaded environment from %s", envFile)
	}
	return nil
}

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return true, nil
}

// newOverrides returns a viper instance reading APOD_* variables and the
// command's flags. Flags take precedence over the environment.
func newOverrides(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		bindFlag(v, key, cmd.Flags().Lookup(name))
	}
	return v
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if f == nil {
		return
	}
	if err := v.BindPFlag(key, f); err != nil {
		logging.Log.Warnf("Failed to bind flag --%s: %v", f.Name, err)
	}
}

// applyOverrides copies every key set in the environment or on the command
// line over the file values.
func applyOverrides(c *config.Config, v *viper.Viper) {
	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	num := func(key string, dst *int) {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}

	str("server.host", &c.Server.Host)
	num("server.port", &c.Server.Port)
	if v.IsSet("server.cors_origins") {
		c.Server.CORSOrigins = splitList(v.GetString("server.cors_origins"))
	}

	str("database.driver", &c.Database.Driver)
	str("database.dsn", &c.Database.DSN)

	str("logging.level", &c.Logging.Level)
	str("logging.file", &c.Logging.File)
	if v.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = v.GetBool("logging.audit_enabled")
	}

	str("upstream.base_url", &c.Upstream.BaseURL)
	str("upstream.api_key", &c.Upstream.APIKey)
	str("upstream.timeout", &c.Upstream.Timeout)

	str("auth.mode", &c.Auth.Mode)
	str("auth.api_key", &c.Auth.APIKey)
	str("auth.api_key_hash", &c.Auth.APIKeyHash)
	str("auth.jwt_secret", &c.Auth.JWTSecret)

	num("ratelimit.ingest_limit", &c.RateLimit.IngestLimit)
	str("ratelimit.ingest_window", &c.RateLimit.IngestWindow)
}

// splitList parses a comma separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
