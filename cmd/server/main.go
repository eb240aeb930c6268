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

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aceaudit/internal/compliance/handler"
	"aceaudit/internal/compliance/metrics"
	"aceaudit/internal/compliance/policy"
	"aceaudit/internal/compliance/service"
	"aceaudit/internal/compliance/store"
	documentstore "aceaudit/internal/compliance/store/document"
	eventstore "aceaudit/internal/compliance/store/event"
	providerstore "aceaudit/internal/compliance/store/provider"
	recordstore "aceaudit/internal/compliance/store/records"
	"aceaudit/internal/platform/config"
	"aceaudit/internal/platform/httpserver"
	"aceaudit/internal/platform/logger"
	"aceaudit/internal/platform/otel"
	"aceaudit/pkg/platform/audit"
	auditkafka "aceaudit/pkg/platform/audit/kafka"
)

// main wires configuration, stores, the compliance service and the HTTP
// surface. Business rules live in internal/compliance; main only assembles.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "aceaudit", cfg.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", "error", err)
		}
	}()

	stores, cleanup, err := buildStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	auditPublisher, err := buildAuditPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer auditPublisher.Close() //nolint:errcheck

	pol := policy.Policy{
		GraceWindowDays:              cfg.GraceWindowDays,
		PublishDuringGrace:           cfg.PublishDuringGrace,
		IssueCertificatesDuringGrace: cfg.IssueCertificatesDuringGrace,
		RetentionWarningDays:         cfg.RetentionWarningDays,
	}

	svc, err := service.New(stores.providers, stores.events, stores.records, stores.documents,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithAuditPublisher(auditPublisher),
		service.WithPolicy(pol),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	handler.New(svc, log).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting aceaudit server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

type storeSet struct {
	providers service.ProviderStore
	events    service.EventStore
	records   service.RecordStore
	documents service.DocumentStore
}

// buildStores selects PostgreSQL when a database URL is configured and falls
// back to seeded in-memory stores for development.
func buildStores(ctx context.Context, cfg config.Config, log *slog.Logger) (storeSet, func(), error) {
	if cfg.DatabaseURL == "" {
		providers := providerstore.NewInMemory()
		events := eventstore.NewInMemory()
		records := recordstore.NewInMemory()
		documents := documentstore.NewInMemory()
		providerID := store.SeedDemoProvider(providers, events, records, documents)
		log.Info("using in-memory stores with demo data", "provider_id", providerID)
		return storeSet{providers, events, records, documents}, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return storeSet{}, nil, err
	}
	if err := store.ApplySchema(ctx, pool); err != nil {
		pool.Close()
		return storeSet{}, nil, err
	}
	log.Info("using postgresql stores")
	return storeSet{
		providers: providerstore.NewPostgres(pool),
		events:    eventstore.NewPostgres(pool),
		records:   recordstore.NewPostgres(pool),
		documents: documentstore.NewPostgres(pool),
	}, pool.Close, nil
}

func buildAuditPublisher(cfg config.Config, log *slog.Logger) (audit.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("audit publisher disabled, no kafka brokers configured")
		return audit.NopPublisher{}, nil
	}
	publisher, err := auditkafka.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, err
	}
	log.Info("audit publisher connected", "topic", cfg.KafkaTopic)
	return publisher, nil
}
