package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env           string
	Port          string
	MongoURI      string
	DBName        string
	TokenSecret   string
	TokenTTLHours int
	AdminEmail    string
	ModelPath     string
}

func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		MongoURI:      mustGetEnv("MONGO_URI"),
		DBName:        getEnv("DB_NAME", "cropDB"),
		TokenSecret:   mustGetEnv("TOKEN_SECRET"),
		TokenTTLHours: getEnvAsInt("TOKEN_TTL_HOURS", 24),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		ModelPath:     getEnv("MODEL_PATH", "model/crop_model.json"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
