package testutils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file from the project root directory.
func LoadEnv() error {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	projectRoot := filepath.Join(dir, "..", "..")
	envPath := filepath.Join(projectRoot, ".env")

	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(envPath)
}

// GetEnvOrDefault gets an environment variable with a default value.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
