package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Contact ContactConfig
	Probe   ProbeConfig
	App     AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type ContentConfig struct {
	// BaseURL is the Django content API root, e.g. https://arka001.pythonanywhere.com/api
	BaseURL string
}

type ContactConfig struct {
	// RatePerMinute and Burst bound contact submissions per client IP.
	RatePerMinute int
	Burst         int
}

type ProbeConfig struct {
	// Spec is a cron expression (with seconds) for the upstream availability probe.
	Spec string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Content: ContentConfig{
			BaseURL: getEnv("CONTENT_API_URL", "https://arka001.pythonanywhere.com/api"),
		},
		Contact: ContactConfig{
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MINUTE", 5),
			Burst:         getEnvAsInt("CONTACT_BURST", 3),
		},
		Probe: ProbeConfig{
			Spec: getEnv("PROBE_SPEC", "0 */5 * * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Content.BaseURL == "" {
		return fmt.Errorf("CONTENT_API_URL is required")
	}

	if c.Contact.RatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
