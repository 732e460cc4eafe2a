package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the binaries read from the environment.
// Redis, RabbitMQ and Consul are optional collaborators: an empty
// address means the server runs without that facility.
type Config struct {
	Port        int
	SQLitePath  string
	RedisAddr   string
	CacheTTL    time.Duration
	RabbitMQURL string
	ConsulAddr  string
	ServiceName string
	ServiceID   string
}

func Load() Config {
	return Config{
		Port:        getEnvInt("PORT", 8080),
		SQLitePath:  getEnv("SQLITE_PATH", "db.sqlite"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		ConsulAddr:  getEnv("CONSUL_ADDR", ""),
		ServiceName: getEnv("SERVICE_NAME", "store-api"),
		ServiceID:   getEnv("SERVICE_ID", "store-api-1"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
