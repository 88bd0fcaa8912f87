package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	BasePath      string
	APIVersion    string
	RedisURL      string
	ProfileAPIURL string
	SessionExpire int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		BasePath:      getEnv("BASE_PATH", "/api"),
		APIVersion:    getEnv("API_VERSION", "v1.0"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		ProfileAPIURL: getEnv("PROFILE_API_URL", ""),
		SessionExpire: getEnvInt("SESSION_EXPIRE", 3600),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
