package infrastructure

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// OpenRouter API settings
	OpenRouterAPIKey string `json:"-"` // Don't expose in JSON
	OpenRouterModel  string `json:"openrouter_model"`

	// Optional bearer token protecting the digest endpoints.
	// Empty disables the check.
	AuthToken string `json:"-"` // Don't expose in JSON
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Host:             getEnvOrDefault("HOST", "0.0.0.0"),
		OpenRouterAPIKey: getEnvOrDefault("OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnvOrDefault("OPENROUTER_MODEL", ""),
		AuthToken:        getEnvOrDefault("API_AUTH_TOKEN", ""),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.OpenRouterAPIKey == "" {
		return &ConfigError{Field: "OPENROUTER_API_KEY", Message: "OpenRouter API key is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
