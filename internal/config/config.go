package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything read from the environment at startup.
// Missing required values are a startup failure, not a call-time one.
type Config struct {
	Port        string
	CORSOrigins string
	JWTSecret   string

	// LLM provider
	LLMProvider      string // anthropic | mistral | local
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	LLMHealthTimeout int // seconds

	// Redis / rate limiting
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QuizRateLimit int // max generations per hour per user
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:5173"),
		JWTSecret:        getEnv("JWT_SECRET", "exam-ace-staging-signing-key-2026"),
		LLMProvider:      getEnv("LLM_PROVIDER", "local"),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
		LLMModel:         getEnv("LLM_MODEL", ""),
		LLMHealthTimeout: getEnvInt("LLM_HEALTH_TIMEOUT", 3),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		QuizRateLimit:    getEnvInt("QUIZ_RATE_LIMIT", 20),
	}

	// Cloud providers are credentialed; local endpoints are not.
	provider := strings.ToLower(cfg.LLMProvider)
	if (provider == "anthropic" || provider == "mistral") && cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required for provider %q", cfg.LLMProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
