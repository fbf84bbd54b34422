package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	StripeSecretKey string
	RedisURL        string
	Port            string
}

// LoadConfig reads the environment once at startup. Missing required
// keys fail fast; the server never starts half-configured.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         os.Getenv("MONGO_DB"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		Port:            os.Getenv("PORT"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "MorzeDB"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	return cfg, nil
}
