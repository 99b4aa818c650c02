// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported API key verification modes.
const (
	AuthModeStatic = "static"
	AuthModeBcrypt = "bcrypt"
	AuthModeJWT    = "jwt"
)

// Config holds the application's configuration.
type Config struct {
	Server    ServerConfig    `toml:"server" mapstructure:"server"`
	Database  DatabaseConfig  `toml:"database" mapstructure:"database"`
	Logging   LoggingConfig   `toml:"logging" mapstructure:"logging"`
	Upstream  UpstreamConfig  `toml:"upstream" mapstructure:"upstream"`
	Auth      AuthConfig      `toml:"auth" mapstructure:"auth"`
	RateLimit RateLimitConfig `toml:"ratelimit" mapstructure:"ratelimit"`

	UpstreamTimeout time.Duration `toml:"-" mapstructure:"-"` // Runtime computed value
	IngestWindow    time.Duration `toml:"-" mapstructure:"-"` // Runtime computed value
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host        string   `toml:"host" mapstructure:"host"`
	Port        int      `toml:"port" mapstructure:"port"`
	CORSOrigins []string `toml:"cors_origins" mapstructure:"cors_origins"`
}

// DatabaseConfig selects the store. DSN is a file path for sqlite and a
// connection URL for postgres.
type DatabaseConfig struct {
	Driver string `toml:"driver" mapstructure:"driver"`
	DSN    string `toml:"dsn" mapstructure:"dsn"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level" mapstructure:"level"`
	File         string `toml:"file" mapstructure:"file"` // Empty logs to stdout only
	AuditEnabled bool   `toml:"audit_enabled" mapstructure:"audit_enabled"`
}

// UpstreamConfig points at the NASA APOD API.
type UpstreamConfig struct {
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
	APIKey  string `toml:"api_key" mapstructure:"api_key"`
	Timeout string `toml:"timeout" mapstructure:"timeout"` // e.g. "10s"
}

// AuthConfig configures verification of the x-api-key header on ingest.
type AuthConfig struct {
	Mode       string `toml:"mode" mapstructure:"mode"`
	APIKey     string `toml:"api_key" mapstructure:"api_key"`           // static
	APIKeyHash string `toml:"api_key_hash" mapstructure:"api_key_hash"` // bcrypt
	JWTSecret  string `toml:"jwt_secret" mapstructure:"jwt_secret"`     // jwt
}

// RateLimitConfig bounds POST /apod per caller.
type RateLimitConfig struct {
	IngestLimit  int    `toml:"ingest_limit" mapstructure:"ingest_limit"`
	IngestWindow string `toml:"ingest_window" mapstructure:"ingest_window"` // e.g. "60s"
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration back to a TOML file.
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

// ApplyDefaults fills every unset value.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8081
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.DSN == "" && c.Database.Driver == DriverSQLite {
		c.Database.DSN = "apod.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://api.nasa.gov"
	}
	if c.Upstream.APIKey == "" {
		c.Upstream.APIKey = "DEMO_KEY" // NASA's shared, heavily rate-limited key
	}
	if c.Upstream.Timeout == "" {
		c.Upstream.Timeout = "10s"
	}
	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeStatic
	}
	if c.RateLimit.IngestLimit == 0 {
		c.RateLimit.IngestLimit = 1
	}
	if c.RateLimit.IngestWindow == "" {
		c.RateLimit.IngestWindow = "60s"
	}
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses durations.
func (c *Config) ParseAndValidate() error {
	c.ApplyDefaults()

	c.Database.Driver = strings.ToLower(c.Database.Driver)
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("invalid database driver: %q (want %s or %s)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for driver %s", c.Database.Driver)
	}

	timeout, err := time.ParseDuration(c.Upstream.Timeout)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("invalid upstream.timeout: %q", c.Upstream.Timeout)
	}
	c.UpstreamTimeout = timeout

	window, err := time.ParseDuration(c.RateLimit.IngestWindow)
	if err != nil || window <= 0 {
		return fmt.Errorf("invalid ratelimit.ingest_window: %q", c.RateLimit.IngestWindow)
	}
	c.IngestWindow = window
	if c.RateLimit.IngestLimit < 1 {
		return fmt.Errorf("ratelimit.ingest_limit must be > 0")
	}

	c.Auth.Mode = strings.ToLower(c.Auth.Mode)
	switch c.Auth.Mode {
	case AuthModeStatic:
		// An empty key is allowed; every ingest request is then rejected.
	case AuthModeBcrypt:
		if c.Auth.APIKeyHash == "" {
			return fmt.Errorf("auth.api_key_hash is required for mode %s", AuthModeBcrypt)
		}
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required for mode %s", AuthModeJWT)
		}
	default:
		return fmt.Errorf("invalid auth.mode: %q", c.Auth.Mode)
	}

	return nil
}
