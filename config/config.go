package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the current runtime environment.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ENV.
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds all configuration for the application.
type Config struct {
	// Server
	ServerHost string
	ServerPort string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Device session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Image analysis service
	AnalysisURL     string
	AnalysisAPIKey  string
	AnalysisTimeout time.Duration

	// Food photo storage
	S3Bucket  string
	AWSRegion string
}

// Load builds a Config from environment variables, applying development
// defaults where safe. In production the secrets must be set explicitly.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:      envOr("SERVER_HOST", "0.0.0.0"),
		ServerPort:      envOr("SERVER_PORT", "8080"),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBUser:          envOr("DB_USER", "calorieflow"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOr("DB_NAME", "calorieflow"),
		DBSSLMode:       envOr("DB_SSL_MODE", "disable"),
		RedisHost:       envOr("REDIS_HOST", "localhost"),
		RedisPort:       envOr("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        envDurationOr("TOKEN_TTL", 30*24*time.Hour),
		AnalysisURL:     os.Getenv("ANALYSIS_API_URL"),
		AnalysisAPIKey:  os.Getenv("ANALYSIS_API_KEY"),
		AnalysisTimeout: envDurationOr("ANALYSIS_TIMEOUT", 30*time.Second),
		S3Bucket:        envOr("S3_BUCKET_NAME", "calorie-flow-food-photos"),
		AWSRegion:       os.Getenv("AWS_REGION"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// validate enforces that secrets are present outside of development and test.
func (c *Config) validate() error {
	if GetEnvironment() != Production {
		if c.JWTSecret == "" {
			c.JWTSecret = "dev-only-secret"
		}
		return nil
	}

	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DBPassword == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if c.AnalysisURL == "" {
		missing = append(missing, "ANALYSIS_API_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required in production: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr returns the host:port address for Redis.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
