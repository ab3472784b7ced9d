package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all environment variables for the service.
type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	StripeSecretKey string
	RedisURL        string        // empty disables the menu cache
	KafkaBrokers    []string      // empty disables checkout events
	KafkaTopic      string
	MenuCacheTTL    time.Duration
}

// LoadConfig loads environment variables into a Config struct and validates
// the required ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Env:             getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "bistroDb"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "payment.recorded"),
		MenuCacheTTL:    5 * time.Minute,
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
