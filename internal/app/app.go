// Package app holds the wiring shared by the binaries under cmd/.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sports_syncer/internal/config"
	"sports_syncer/internal/publisher"
	"sports_syncer/internal/service"
	"sports_syncer/internal/source/apisports"
	"sports_syncer/internal/storage/postgres"
)

func NewLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

// LoadConfig loads and validates the configuration. Nothing touches the
// network before it succeeds.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConnectBackend opens and pings the backend database.
func ConnectBackend(ctx context.Context, cfg config.BackendConfig) (*sqlx.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to backend: %w", err)
	}
	return db, nil
}

func NewSportsAPI(cfg config.SportsAPIConfig, logger *slog.Logger) *apisports.Client {
	return apisports.New(apisports.Config{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.Key,
		Host:           cfg.Host,
		Timeout:        cfg.Timeout,
		MaxAttempts:    cfg.Retry.MaxAttempts,
		InitialBackoff: cfg.Retry.InitialBackoff,
		MaxBackoff:     cfg.Retry.MaxBackoff,
	}, logger)
}

// NewPublisher connects to RabbitMQ, or returns nil when it is not configured.
func NewPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (*publisher.RabbitMQ, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	return publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		RoutingKey: cfg.RoutingKey,
		QueueName:  cfg.QueueName,
	}, logger)
}

// NewSyncService wires the sync service on top of db. pub may be nil.
func NewSyncService(db *sqlx.DB, api service.SportsAPI, pub *publisher.RabbitMQ, logger *slog.Logger, cfg config.SyncConfig) *service.SyncService {
	var p service.Publisher
	if pub != nil {
		p = pub
	}
	return service.NewSyncService(
		api,
		postgres.NewEntityStore(db),
		postgres.NewSyncLogStore(db),
		postgres.NewTransactionManager(db),
		p,
		logger,
		cfg,
	)
}
