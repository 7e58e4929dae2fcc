// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application. It is constructed once
// at process start and passed to components by reference, never mutated.
type Config struct {
	ServerPort string
	GinMode    string

	MongoURI      string
	MongoDatabase string
	RedisURI      string

	JWTSecret        string
	JWTExpiry        time.Duration
	ResetTokenExpiry time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	FrontendURL        string

	AllowedImageExts []string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		JWTSecret:        getEnvRequired("JWT_SECRET"),
		JWTExpiry:        parseDuration(getEnv("JWT_EXPIRY", "24h")),
		ResetTokenExpiry: parseDuration(getEnv("RESET_TOKEN_EXPIRY", "1h")),

		S3Endpoint:  getEnvRequired("S3_ENDPOINT"),
		S3AccessKey: getEnvRequired("S3_ACCESS_KEY"),
		S3SecretKey: getEnvRequired("S3_SECRET_KEY"),
		S3Bucket:    getEnv("S3_BUCKET", "travely-images"),
		S3UseSSL:    parseBool(getEnv("S3_USE_SSL", "false")),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:8080/api/auth/google/callback"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000/"),

		AllowedImageExts: parseList(getEnv("ALLOWED_IMAGE_EXTS", "jpg,jpeg,png")),
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logrus.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		logrus.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseBool parses a boolean string, exits on error
func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		logrus.Fatalf("Invalid boolean format: %s", s)
	}
	return b
}

// parseList splits a comma-separated value into trimmed entries
func parseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
