package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"order-management-service/database"
	aws_pkg "order-management-service/pkg/aws"
)

const dbSecretName = "orders/DB_CREDENTIALS"

// Config holds all configuration for the order management service.
type Config struct {
	Port               string
	AppEnv             string
	StaticDir          string
	CORSOrigins        []string
	RateLimitPerMinute int
	RunMigrations      bool
	EventsSNSTopicARN  string
	CloudWatchEnabled  bool
	LambdaMode         bool
	DB                 database.Config
}

func (c *Config) IsTest() bool { return c.AppEnv == "test" }

// secretMapGetter is the part of aws_pkg.SecretsClient LoadConfig needs.
type secretMapGetter interface {
	GetSecretMap(ctx context.Context, name string) (map[string]string, error)
}

// LoadConfig reads configuration from environment variables with optional
// Secrets Manager override of the database credentials.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		StaticDir:          getEnv("STATIC_DIR", "public"),
		CORSOrigins:        splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		EventsSNSTopicARN:  os.Getenv("EVENTS_SNS_TOPIC_ARN"),
		CloudWatchEnabled:  getEnvBool("CLOUDWATCH_ENABLED", false),
		LambdaMode:         os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
		DB: database.Config{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: os.Getenv("POSTGRES_TIMEZONE"),
		},
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			applyDBSecret(context.Background(), cfg, aws_pkg.NewSecretsClient(awsCfg))
		}
	}

	if err := cfg.DB.Validate(); err != nil {
		return nil, fmt.Errorf("database config incomplete: %w", err)
	}
	return cfg, nil
}

// applyDBSecret overrides the database settings present in the secret.
// A missing or unreadable secret leaves cfg untouched.
func applyDBSecret(ctx context.Context, cfg *Config, sm secretMapGetter) {
	m, err := sm.GetSecretMap(ctx, dbSecretName)
	if err != nil {
		return
	}
	override := func(dst *string, key string) {
		if v, ok := m[key]; ok && v != "" {
			*dst = v
		}
	}
	override(&cfg.DB.User, "POSTGRES_USER")
	override(&cfg.DB.Password, "POSTGRES_PASSWORD")
	override(&cfg.DB.Name, "POSTGRES_DB")
	override(&cfg.DB.Host, "POSTGRES_HOST")
	override(&cfg.DB.Port, "POSTGRES_PORT")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
