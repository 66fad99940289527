package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration. FromEnv keeps main lean.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string

	// StoreBackend selects the document store: memory, postgres or redis.
	StoreBackend string
	PostgresDSN  string
	RedisURL     string
	// StoreTimeout bounds each individual document store call.
	StoreTimeout time.Duration

	// KafkaBrokers enables the Kafka audit sink when non-empty.
	KafkaBrokers []string
	AuditTopic   string
}

func FromEnv() Server {
	cfg := Server{
		Addr:          envOr("INSURANCE_ADDR", ":8080"),
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:     envOr("JWT_ISSUER", "webkert-insurance"),
		StoreBackend:  envOr("STORE_BACKEND", "memory"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		RedisURL:      os.Getenv("REDIS_URL"),
		StoreTimeout:  durationOr("STORE_TIMEOUT", 5*time.Second),
		AuditTopic:    envOr("AUDIT_TOPIC", "insurance.audit"),
	}
	if cfg.JWTSigningKey == "" {
		// Development default - must be overridden in production.
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
