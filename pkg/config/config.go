package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultAPIBase is the storefront backend used when no API_BASE_URL is set.
const defaultAPIBase = "http://localhost/adminPannel/api"

type Config struct {
	ServerPort    string
	APIBaseURL    string
	UploadURL     string
	HTTPTimeout   time.Duration
	Environment   string
	SessionSecret string
	SessionExpiry int64
	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		APIBaseURL:    getEnv("API_BASE_URL", defaultAPIBase),
		UploadURL:     getEnv("UPLOAD_URL", defaultAPIBase+"/upload"),
		HTTPTimeout:   time.Duration(getEnvAsInt64("HTTP_TIMEOUT", 30)) * time.Second,
		Environment:   getEnv("ENVIRONMENT", "development"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
		SessionExpiry: getEnvAsInt64("SESSION_EXPIRY", 24*60*60), // 24 hours
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
