package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Stripe configs
	StripeSecretKey string

	// Charge endpoint admin token
	AdminToken string

	// Server configs
	Port        string
	Environment string

	// Additional configs
	AllowedOrigins []string
	LogLevel       string
}

// Load initializes configuration from environment variables and .env file
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Required Stripe key
	config.StripeSecretKey = mustGetEnv("STRIPE_SECRET_KEY")

	// Optional admin token for the charge endpoint. Without it anyone
	// can hit /api/charge, so make some noise at startup.
	config.AdminToken = getEnv("ADMIN_TOKEN", "")
	if config.AdminToken == "" {
		log.Println("WARNING: ADMIN_TOKEN not set, /api/charge is open to any caller")
	}

	// Parse allowed browser origins. An empty list allows every origin.
	config.AllowedOrigins = ParseOrigins(getEnv("ALLOWED_ORIGINS", ""))

	return config
}

// ParseOrigins splits a comma-separated origin list, trimming whitespace
// and dropping empty entries.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// mustGetEnv gets an environment variable or exits if it's not set
func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable not set: %s", key)
	}
	return value
}
