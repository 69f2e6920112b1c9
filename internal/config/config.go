package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// APIConfig points at the external Travel Journal API that owns all
// business logic. The API key is a static header required on every call.
type APIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SessionConfig struct {
	Secret string
}

// StorageConfig controls how cached client state (token, profile, cart)
// is namespaced inside the session store.
type StorageConfig struct {
	Prefix string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		API: APIConfig{
			BaseURL: getEnv("TRAVEL_API_BASE_URL", "https://travel-journal-api-bootcamp.do.dibimbing.id/api/v1"),
			APIKey:  getEnv("TRAVEL_API_KEY", "24405e01-fbc1-45a5-9f5a-be13afcd757c"),
			Timeout: time.Duration(getEnvAsInt("TRAVEL_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Storage: StorageConfig{
			Prefix: getEnv("STORAGE_PREFIX", "TRAVELAPP"),
		},
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
