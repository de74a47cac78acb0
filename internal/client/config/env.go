package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envBaseURL     = "VIBELOOK_API_URL"
	envSessionFile = "VIBELOOK_SESSION_FILE"
	envMode        = "ENV"
)

// parseEnv overlays Config with environment variables. Outside production a
// .env file in the working directory is loaded first (missing file is fine);
// values already exported in the environment win over the .env file.
func parseEnv(cfg *Config) {
	if os.Getenv(envMode) != "production" {
		_ = godotenv.Load()
	}

	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(envSessionFile)); v != "" {
		cfg.SessionFile = v
	}
}
