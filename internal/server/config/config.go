// Package config handles configuration for the relay server, layering
// defaults, an optional JSON file, a dotenv file, environment variables and
// command-line flags. Later sources win.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Environment variable names recognised by the server.
const (
	EnvCredentialsJSON = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	EnvCredentialsPath = "FIREBASE_SERVICE_ACCOUNT_KEY_PATH"
	EnvDatabaseURL     = "FIREBASE_DATABASE_URL"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
)

// Config holds runtime settings for the relay server.
//
// Fields:
//   - Port: TCP port the HTTP server listens on.
//   - CredentialsJSON: inline service-account JSON. Preferred over CredentialsPath.
//   - CredentialsPath: path to a service-account JSON file.
//   - DatabaseURL: Realtime Database URL; derived from the project id when empty.
//   - ShutdownTimeout: how long in-flight requests may run after a stop signal.
//   - LogLevel: debug, info, warn or error.
//   - EnvFile: dotenv file merged into the environment; a missing file is ignored.
type Config struct {
	Port            string
	CredentialsJSON string
	CredentialsPath string
	DatabaseURL     string
	ShutdownTimeout time.Duration
	LogLevel        string
	EnvFile         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "3000"
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.EnvFile = ".env"
}

// Addr returns the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("shutdown timeout must not be negative")
	}
	return nil
}

// LoadConfig builds a Config from args (normally os.Args[1:]) by applying
// defaults, then the JSON file named by -c/-config, then the dotenv file,
// then environment variables and finally command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return nil, fmt.Errorf("env file: %w", err)
	}
	parseEnv(cfg)
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
