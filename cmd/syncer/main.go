package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"sports_syncer/internal/app"
	"sports_syncer/internal/scheduler"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := app.NewLogger("info")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected failure", "panic", r)
			code = 1
		}
	}()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	logger = app.NewLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := app.ConnectBackend(ctx, cfg.Backend)
	if err != nil {
		logger.Error("failed to connect to backend", "error", err)
		return 1
	}
	defer db.Close()
	logger.Info("connected to backend", "env", cfg.Env)

	pub, err := app.NewPublisher(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return 1
	}
	if pub != nil {
		defer pub.Close()
	}

	api := app.NewSportsAPI(cfg.SportsAPI, logger)
	syncService := app.NewSyncService(db, api, pub, logger, cfg.Sync)

	logger.Info("starting sports syncer",
		"source", api.Name(),
		"interval", cfg.Sync.Interval,
		"tables", cfg.Sync.Tables,
		"publisher", pub != nil,
	)

	if cfg.Sync.Interval > 0 {
		sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
			return 1
		}
		return 0
	}

	runCtx := ctx
	if cfg.Sync.RunTimeout > 0 {
		var runCancel context.CancelFunc
		runCtx, runCancel = context.WithTimeout(ctx, cfg.Sync.RunTimeout)
		defer runCancel()
	}

	summary := syncService.SyncAll(runCtx)
	if err := summary.Print(os.Stdout); err != nil {
		logger.Error("failed to print summary", "error", err)
	}
	if !summary.Success {
		return 1
	}
	return 0
}
