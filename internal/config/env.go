package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvToken is the environment variable holding the API token
const EnvToken = "LSKY_TOKEN"

// LoadEnv loads a .env file from the working directory if it exists
func LoadEnv(filenames ...string) {
	// Load .env file if it exists (don't error if missing)
	_ = godotenv.Load(filenames...)
}

// TokenFromEnv returns the token from the environment, or "" when unset
func TokenFromEnv() string {
	return getEnv(EnvToken, "")
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}
