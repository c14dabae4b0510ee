package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration. It is loaded once at startup
// and passed by injection; nothing reads the environment after that.
type Config struct {
	ServerPort     int
	DatabasePath   string
	JWTSecret      string
	Environment    string // "development" or "production"
	AllowedOrigins []string

	// Email relay (optional; relay endpoints answer 500 when unset).
	MailAPIKey string
	MailAPIURL string
	AdminEmail string
	FromEmail  string

	// Category prediction service (optional).
	PredictURL string

	// Days after which claimed items are swept. 0 disables the sweep.
	RetentionDays int
}

// Load loads configuration from environment variables.
// DATABASE_PATH and JWT_SECRET are required; missing either is a startup error.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		return nil, fmt.Errorf("DATABASE_PATH is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	retentionStr := getEnv("RETENTION_DAYS", "90")
	retention, err := strconv.Atoi(retentionStr)
	if err != nil || retention < 0 {
		return nil, fmt.Errorf("invalid RETENTION_DAYS %q", retentionStr)
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   dbPath,
		JWTSecret:      secret,
		Environment:    getEnv("APP_ENV", "development"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		MailAPIKey:     os.Getenv("MAIL_API_KEY"),
		MailAPIURL:     getEnv("MAIL_API_URL", "https://api.resend.com"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		FromEmail:      getEnv("FROM_EMAIL", "no-reply@findify.app"),
		PredictURL:     os.Getenv("PREDICT_URL"),
		RetentionDays:  retention,
	}, nil
}

// IsProduction reports whether the app runs with production cookie settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
