package config

import (
	"os"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Admin   AdminConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// SessionConfig holds admin session configuration
type SessionConfig struct {
	// Secret signs admin tokens and derives the session encryption key.
	Secret string
	TTL    time.Duration
}

// AdminConfig holds the shared-secret admin credentials
type AdminConfig struct {
	User string
	Pass string
	// PassHash, when set, takes precedence over Pass and is compared with bcrypt.
	PassHash string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DBNAME", "ACM"),
			Collection: getEnv("MONGO_COLLECTION", "hackathon_workshop"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SECRET_KEY", "fallback_secret"),
			TTL:    getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		},
		Admin: AdminConfig{
			User:     getEnv("ADMIN_USER", "admin"),
			Pass:     getEnv("ADMIN_PASS", "acmvitap"),
			PassHash: getEnv("ADMIN_PASS_HASH", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
