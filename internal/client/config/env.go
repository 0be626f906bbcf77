package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
// A missing .env is not an error.
//
// Recognized variables:
//
//	SPICESLINK_API_URL         backend base URL
//	SPICESLINK_DB              sqlite session database path
//	SPICESLINK_CLOUDINARY_URL  cloudinary:// upload credentials
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SPICESLINK_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SPICESLINK_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SPICESLINK_CLOUDINARY_URL"); v != "" {
		cfg.CloudinaryURL = v
	}
}
