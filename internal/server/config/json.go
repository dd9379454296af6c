package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lockerrelay/internal/flagx"
	"github.com/dmitrijs2005/lockerrelay/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Empty fields
// leave the current value untouched.
type JsonConfig struct {
	Port            string         `json:"port"`
	CredentialsJSON string         `json:"credentials_json"`
	CredentialsPath string         `json:"credentials_path"`
	DatabaseURL     string         `json:"database_url"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	LogLevel        string         `json:"log_level"`
	EnvFile         string         `json:"env_file"`
}

// parseJson overlays values from the file given via -c/-config. Without the
// flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path, err := flagx.ConfigFile(args)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setIfNotEmpty(&config.Port, c.Port)
	setIfNotEmpty(&config.CredentialsJSON, c.CredentialsJSON)
	setIfNotEmpty(&config.CredentialsPath, c.CredentialsPath)
	setIfNotEmpty(&config.DatabaseURL, c.DatabaseURL)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.EnvFile, c.EnvFile)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
