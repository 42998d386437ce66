package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"splitledger/internal/database"
	"splitledger/internal/logger"
)

// Config holds application configuration. It is built once at startup and
// passed explicitly to whatever needs it.
type Config struct {
	// Server
	Env            string
	Port           string
	AllowedOrigins []string

	// Database
	Database database.Config
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug("no .env file found, using process environment")
	}

	config := &Config{
		// Server
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		// Database
		Database: database.Config{
			Driver:   getEnv("DB_DRIVER", database.DriverSQLite),
			Path:     getEnv("DB_PATH", "splitwise.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "splitledger"),
			Password: getEnv("DB_PASSWORD", "splitledger"),
			DBName:   getEnv("DB_NAME", "splitledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
