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
	App      AppConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// JWTConfig holds verification settings for tokens issued by the auth service
type JWTConfig struct {
	Secret string
}

// UpstreamConfig holds the staff API connection settings
type UpstreamConfig struct {
	BaseURL        string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	Scopes         []string
	TimeoutSeconds int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Upstream staff API configuration
	timeout, err := strconv.Atoi(getEnv("STAFF_API_TIMEOUT_SECONDS", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAFF_API_TIMEOUT_SECONDS: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL:        getEnv("STAFF_API_BASE_URL", ""),
		TokenURL:       getEnv("STAFF_API_TOKEN_URL", ""),
		ClientID:       getEnv("STAFF_API_CLIENT_ID", ""),
		ClientSecret:   getEnv("STAFF_API_CLIENT_SECRET", ""),
		Scopes:         getEnvSlice("STAFF_API_SCOPES"),
		TimeoutSeconds: timeout,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("STAFF_API_BASE_URL is required")
	}
	if c.Upstream.TokenURL == "" {
		return fmt.Errorf("STAFF_API_TOKEN_URL is required")
	}
	if c.Upstream.ClientID == "" {
		return fmt.Errorf("STAFF_API_CLIENT_ID is required")
	}
	if c.Upstream.ClientSecret == "" {
		return fmt.Errorf("STAFF_API_CLIENT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
