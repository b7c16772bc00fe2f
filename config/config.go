package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SQS      SQSConfig
	Auth     AuthConfig
	Images   ImagesConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	DSN      string
	MaxConns int
	MinConns int
}

// RedisConfig is optional; an empty Addr disables the listing cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SQSConfig is optional; an empty QueueURL disables inquiry notifications.
type SQSConfig struct {
	Region          string
	QueueURL        string
	AccessKeyID     string
	SecretAccessKey string
}

// AuthConfig is optional; without a credentials path the API falls back
// to header-based dev identity.
type AuthConfig struct {
	FirebaseCredentialsPath string
}

type ImagesConfig struct {
	BaseURL string
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
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		SQS: SQSConfig{
			Region:          getEnv("AWS_REGION", "eu-west-1"),
			QueueURL:        getEnv("SQS_QUEUE_URL", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Auth: AuthConfig{
			FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Images: ImagesConfig{
			BaseURL: getEnv("S3_IMAGE_URL", ""),
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

	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
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
