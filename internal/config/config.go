package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	ObsHTTPAddr  string
	DatabaseURL  string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	ServiceName  string
}

func Load() *Config {
	return &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		ObsHTTPAddr:  getEnv("OBS_HTTP_ADDR", ":9090"),
		DatabaseURL:  mustEnv("DATABASE_URL"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "pm.message.sent"),
		ServiceName:  getEnv("SERVICE_NAME", "forumpm"),
	}
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing required env: " + k)
	}
	return v
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
