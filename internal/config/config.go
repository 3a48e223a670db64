package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	StorageDriver string // memory or database
	DatabaseURL   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration
	SeedDemoData  bool
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		DatabaseURL:   getEnv("DATABASE_URL", "./shop_marketing.db"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout: time.Duration(getEnvAsInt("OPENAI_TIMEOUT", 30)) * time.Second,
		SeedDemoData:  getEnvAsBool("SEED_DEMO_DATA", true),
	}
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
