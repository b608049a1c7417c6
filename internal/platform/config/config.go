// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the full service configuration.
type Server struct {
	Addr string

	// ChainRPCURL is the Ethereum JSON-RPC endpoint for issuance reads and
	// chain-id lookups.
	ChainRPCURL string

	// DNSResolverURL is the DNS-over-HTTPS resolve endpoint used for
	// identity proof lookups.
	DNSResolverURL string

	// PostgresURL enables the durable audit store when set; empty falls
	// back to the in-memory store.
	PostgresURL string

	Redis RedisConfig
	Kafka KafkaConfig

	// JWTSigningKey signs operator tokens for the audit endpoint.
	JWTSigningKey string

	// RateLimitPerMinute bounds verification requests per client IP.
	// Zero disables rate limiting.
	RateLimitPerMinute int
}

// RedisConfig captures Redis connection settings for the rate limiter.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig captures the audit event sink settings. Empty brokers disable
// the sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:           envOr("ATTESTOR_ADDR", ":8080"),
		ChainRPCURL:    envOr("ATTESTOR_CHAIN_RPC_URL", "https://ethereum-rpc.publicnode.com"),
		DNSResolverURL: envOr("ATTESTOR_DNS_RESOLVER_URL", "https://dns.google/resolve"),
		PostgresURL:    os.Getenv("ATTESTOR_POSTGRES_URL"),
		JWTSigningKey:  os.Getenv("ATTESTOR_JWT_SIGNING_KEY"),
		Redis: RedisConfig{
			URL:          os.Getenv("ATTESTOR_REDIS_URL"),
			PoolSize:     envOrInt("ATTESTOR_REDIS_POOL_SIZE", 10),
			MinIdleConns: envOrInt("ATTESTOR_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: envOr("ATTESTOR_KAFKA_TOPIC", "attestor.audit"),
		},
		RateLimitPerMinute: envOrInt("ATTESTOR_RATE_LIMIT_PER_MINUTE", 60),
	}

	if brokers := os.Getenv("ATTESTOR_KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	if cfg.JWTSigningKey == "" {
		// Development default; must be overridden in production.
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
