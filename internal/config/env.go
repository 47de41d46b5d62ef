package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded from the working directory when present
const DefaultEnvFile = ".env"

// LoadEnvFiles loads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set are left untouched and missing
// files are skipped.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// LogLevel returns the configured log level name
func LogLevel() string {
	return getEnvOrDefault(EnvLogLevel, DefaultLogLevel)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
