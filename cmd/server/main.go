package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BartokGyorgy07/webkert-insurance/internal/audit"
	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/index"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/reader"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/service"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/store"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/config"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/httpserver"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/logger"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/metrics"
	platformredis "github.com/BartokGyorgy07/webkert-insurance/internal/platform/redis"
	httptransport "github.com/BartokGyorgy07/webkert-insurance/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("store init failed", "backend", cfg.StoreBackend, "err", err)
		os.Exit(1)
	}
	defer cleanup()

	m := metrics.New()

	records := store.NewRecords(docs)
	owners := index.NewOwners(docs)
	aggregator := reader.NewAggregator(owners, reader.NewBatcher(docs, m), log)

	publisher, auditCleanup, err := buildAudit(ctx, cfg, log)
	if err != nil {
		log.Error("audit init failed", "err", err)
		os.Exit(1)
	}
	defer auditCleanup()

	provider := identity.ContextProvider{}
	engine := service.New(provider, records, owners, aggregator, log,
		service.WithAudit(publisher),
		service.WithMetrics(m),
		service.WithStoreTimeout(cfg.StoreTimeout),
	)

	jwtService := identity.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer)

	router := httptransport.NewRouter(
		httptransport.NewInsuranceHandler(engine, aggregator, provider, log),
		httptransport.NewProfileHandler(aggregator, provider),
		jwtService,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting insurance server", "addr", cfg.Addr, "backend", cfg.StoreBackend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}

// openStore selects the document store backend from configuration. The
// returned cleanup closes whatever connection the backend holds.
func openStore(ctx context.Context, cfg config.Server, log *slog.Logger) (docstore.Store, func(), error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := docstore.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		pg, err := docstore.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg, func() { db.Close() }, nil
	case "redis":
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return docstore.NewRedisStore(client.Client), func() { client.Close() }, nil
	default:
		log.Info("using in-memory document store")
		return docstore.NewMemoryStore(), func() {}, nil
	}
}

// buildAudit returns a Kafka-backed publisher when brokers are configured
// and an in-memory one otherwise. Kafka appends run on a worker so slow
// brokers never block mutations.
func buildAudit(ctx context.Context, cfg config.Server, log *slog.Logger) (*audit.Publisher, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		return audit.NewPublisher(audit.NewMemoryStore()), func() {}, nil
	}

	sink, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
	if err != nil {
		return nil, nil, err
	}

	inbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(sink, inbox, log)
	go func() { _ = worker.Run(ctx) }()

	return audit.NewPublisher(audit.ChannelSink{Inbox: inbox}), func() { sink.Close() }, nil
}
