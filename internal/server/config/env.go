package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/subosito/gotenv"
)

// loadEnvFile merges a dotenv file into the process environment. Variables
// that are already set keep their values.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func parseEnv(config *Config) {
	setIfNotEmpty(&config.Port, os.Getenv(EnvPort))
	setIfNotEmpty(&config.CredentialsJSON, os.Getenv(EnvCredentialsJSON))
	setIfNotEmpty(&config.CredentialsPath, os.Getenv(EnvCredentialsPath))
	setIfNotEmpty(&config.DatabaseURL, os.Getenv(EnvDatabaseURL))
	setIfNotEmpty(&config.LogLevel, os.Getenv(EnvLogLevel))
}
