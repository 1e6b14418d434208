package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over .env values (godotenv never overrides existing keys).
func parseEnv(cfg *Config) {
	godotenv.Load()

	if v := os.Getenv("REFLECTA_ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv("REFLECTA_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("REFLECTA_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("REFLECTA_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenValidityDuration = d
		}
	}
}
