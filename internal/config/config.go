// Package config provides configuration for the agent service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// forbiddenSecret is the placeholder secret value that must not reach production.
const forbiddenSecret = "change-me-in-production"

// Config holds the application configuration.
type Config struct {
	// Application settings
	AppName  string
	AppEnv   string
	AppDebug bool
	AppPort  int

	// Provider API keys (declared, never invoked by the sample agent)
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GoogleAPIKey    string

	// Windmill workflow engine
	WindmillURL       string
	WindmillToken     string
	WindmillWorkspace string

	// External stores (declared but unused by this scaffold)
	DatabaseURL string
	RedisURL    string

	// Logging
	LogLevel  string
	LogFormat string

	// Security
	SecretKey string
	JWTSecret string

	// CORS
	CORSOrigins []string

	// Agent defaults
	AgentModel         string
	AgentTemperature   float64
	AgentMaxIterations int
	AgentTimeoutSecs   int
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		AppName:  getEnv("APP_NAME", "ai-agent-app"),
		AppEnv:   getEnv("APP_ENV", "development"),
		AppDebug: getEnvBool("APP_DEBUG", true),
		AppPort:  getEnvInt("APP_PORT", 8000),

		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),

		WindmillURL:       getEnv("WINDMILL_URL", "http://localhost:8000"),
		WindmillToken:     getEnv("WINDMILL_TOKEN", ""),
		WindmillWorkspace: getEnv("WINDMILL_WORKSPACE", "default"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		SecretKey: getEnv("SECRET_KEY", forbiddenSecret),
		JWTSecret: getEnv("JWT_SECRET", forbiddenSecret),

		CORSOrigins: parseOrigins(getEnv("CORS_ORIGINS", "*")),

		AgentModel:         getEnv("AGENT_MODEL", "gpt-4"),
		AgentTemperature:   getEnvFloat("AGENT_TEMPERATURE", 0.7),
		AgentMaxIterations: getEnvInt("AGENT_MAX_ITERATIONS", 10),
		AgentTimeoutSecs:   getEnvInt("AGENT_TIMEOUT", 300),
	}
	return cfg
}

// Validate checks the configuration for conditions that must abort startup.
// The only fatal condition is a placeholder secret under APP_ENV=production.
func (c *Config) Validate() error {
	if c.AppEnv != "production" {
		return nil
	}
	if c.SecretKey == forbiddenSecret {
		return fmt.Errorf("SECRET_KEY must be changed from its default in production")
	}
	if c.JWTSecret == forbiddenSecret {
		return fmt.Errorf("JWT_SECRET must be changed from its default in production")
	}
	return nil
}

// parseOrigins splits a comma-separated origin list; "*" stays a wildcard.
func parseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
