package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	AWSRegion   string
	S3Bucket    string
	LogLevel    string
}

// Load reads the configuration from the environment once at startup. Every
// consumer receives the resulting struct; nothing re-reads the environment
// at request time.
func Load() *Config {
	// Missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   getEnv("JWT_SECRET_KEY", "test_token"),
		AWSRegion:   getEnv("AWS_REGION", "ap-northeast-2"),
		S3Bucket:    getEnv("S3_BUCKET", "balm-bucket"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
