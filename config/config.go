// File: /config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "teamsync-dev-secret"

type Config struct {
	Port             string
	Environment      string
	DatabaseURL      string
	DatabaseLogLevel string
	SeedData         bool

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// HTTP
	AllowedOrigins []string
	RateLimitRPM   int
	RateLimitBurst int

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	FrontendURL  string

	// Payments
	PaymentGateway      string
	PaymentPublicKey    string
	WebhookSecret       string
	PaymentExpiry       time.Duration
	CardProcessingDelay time.Duration

	ProposalValidity time.Duration
	JobInterval      time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8000"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		DatabaseURL:      getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/teamsync?charset=utf8mb4&parseTime=True&loc=Local"),
		DatabaseLogLevel: getEnv("DATABASE_LOG_LEVEL", "warn"),
		SeedData:         getEnvBool("SEED_DATA", true),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:  getEnvDuration("JWT_EXPIRATION", 30*time.Minute),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		RateLimitRPM:   getEnvInt("RATE_LIMIT_RPM", 30),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		// Email settings. SMTP stays disabled until SMTP_HOST is set.
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@teamsync.pt"),
		FromName:     getEnv("FROM_NAME", "TeamSync"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:5173"),

		PaymentGateway:      getEnv("PAYMENT_GATEWAY", "mock"),
		PaymentPublicKey:    getEnv("PAYMENT_PUBLIC_KEY", "pk_test_mock"),
		WebhookSecret:       getEnv("PAYMENT_WEBHOOK_SECRET", ""),
		PaymentExpiry:       getEnvDuration("PAYMENT_EXPIRY", 30*time.Minute),
		CardProcessingDelay: getEnvDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second),

		ProposalValidity: getEnvDuration("PROPOSAL_VALIDITY", 7*24*time.Hour),
		JobInterval:      getEnvDuration("JOB_INTERVAL", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.TokenTTL <= 0 {
		return errors.New("JWT_EXPIRATION must be positive")
	}
	if c.RateLimitRPM <= 0 {
		return errors.New("RATE_LIMIT_RPM must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EmailEnabled reports whether outgoing mail should go through SMTP.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
