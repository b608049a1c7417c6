package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"attestor/internal/audit"
	"attestor/internal/chain"
	"attestor/internal/dnstxt"
	"attestor/internal/identity"
	"attestor/internal/platform/config"
	"attestor/internal/platform/httpserver"
	"attestor/internal/platform/logger"
	platformredis "attestor/internal/platform/redis"
	"attestor/internal/ratelimit"
	httptransport "attestor/internal/transport/http"
	"attestor/internal/verify"
	verifyhandler "attestor/internal/verify/handler"
	"attestor/internal/verify/metrics"
	"attestor/internal/verify/tracer"
	"attestor/pkg/platform/middleware/auth"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(slog.LevelInfo)

	chainClient := chain.NewClient(chain.ClientConfig{RPCURL: cfg.ChainRPCURL})
	dnsResolver := dnstxt.NewResolver(dnstxt.ResolverConfig{BaseURL: cfg.DNSResolverURL})

	verifier := verify.New(
		identity.NewResolver(chainClient, dnsResolver),
		verify.WithMetrics(metrics.New()),
		verify.WithTracer(tracer.NewOTel()),
	)

	auditStore, closeStore, err := newAuditStore(cfg, log)
	if err != nil {
		log.Error("audit store init failed", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var publisherOpts []audit.PublisherOption
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := audit.NewKafkaSink(audit.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			log.Error("kafka sink init failed", "error", err)
			os.Exit(1)
		}
		defer sink.Close()
		publisherOpts = append(publisherOpts, audit.WithSink(sink))
	}
	auditor := audit.NewPublisher(auditStore, log, publisherOpts...)

	handler := verifyhandler.New(verifier, chain.NewChecker(), chainClient, auditor, log)

	routerCfg := httptransport.RouterConfig{
		Verify: handler,
		Auth:   auth.NewValidator(cfg.JWTSigningKey),
	}
	if limiter := newLimiter(cfg, log); limiter != nil {
		routerCfg.RateLimit = ratelimit.Middleware(limiter, log)
	}

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(routerCfg))

	log.Info("starting attestor", "addr", cfg.Addr, "chain_rpc", cfg.ChainRPCURL)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newAuditStore picks Postgres when configured and falls back to memory.
func newAuditStore(cfg config.Server, log *slog.Logger) (audit.Store, func(), error) {
	if cfg.PostgresURL == "" {
		log.Info("audit store: in-memory (no postgres configured)")
		return audit.NewMemoryStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return audit.NewPostgresStore(db), func() { db.Close() }, nil
}

// newLimiter builds the Redis rate limiter, or nil when Redis or the limit
// is not configured.
func newLimiter(cfg config.Server, log *slog.Logger) *ratelimit.Limiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	client, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed, rate limiting disabled", "error", err)
		return nil
	}
	if client == nil {
		return nil
	}
	return ratelimit.NewLimiter(client.Client, int64(cfg.RateLimitPerMinute), time.Minute)
}
