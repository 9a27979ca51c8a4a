// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	TokenTTL    time.Duration
	LogLevel    string
	CORSOrigins []string

	// RedisURL switches the candidate cache from in-process memory to redis.
	RedisURL          string
	CandidateCacheTTL time.Duration

	// SuggestionProvider picks the model behind AI point-of-interest
	// suggestions ("gemini" or "openai"). Suggestions only run when the
	// provider's API key is set and the catalog has nothing for a destination.
	SuggestionProvider string
	OpenAIAPIKey       string
	OpenAIModel        string
	GeminiAPIKey       string
	GeminiModel        string

	RateLimitPerMinute int
}

// Load reads a .env file when one is present, then the process environment.
// Every missing required variable is named in the returned error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded, using process environment")
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "*")),
		RedisURL:     os.Getenv("REDIS_URL"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	var missing, invalid []string

	cfg.PostgresURL = os.Getenv("POSTGRES_URL")
	if cfg.PostgresURL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	cfg.SuggestionProvider = strings.ToLower(getEnv("SUGGESTION_PROVIDER", ProviderGemini))
	if cfg.SuggestionProvider != ProviderGemini && cfg.SuggestionProvider != ProviderOpenAI {
		invalid = append(invalid, "SUGGESTION_PROVIDER")
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "1h")); err != nil {
		invalid = append(invalid, "TOKEN_TTL")
	}
	if cfg.CandidateCacheTTL, err = time.ParseDuration(getEnv("CANDIDATE_CACHE_TTL", "30m")); err != nil {
		invalid = append(invalid, "CANDIDATE_CACHE_TTL")
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "30")); err != nil || cfg.RateLimitPerMinute < 1 {
		invalid = append(invalid, "RATE_LIMIT_PER_MINUTE")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
