package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"sports_syncer/internal/app"
	"sports_syncer/internal/provision"
	"sports_syncer/internal/storage/postgres"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	configPath := flag.String("config", "config.yaml", "path to config file")
	seed := flag.Bool("seed", false, "insert sample sync log rows")
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

	summary := provision.New(postgres.NewClient(db), logger).Run(ctx, *seed)

	if err := summary.Print(os.Stdout); err != nil {
		logger.Error("failed to print summary", "error", err)
	}
	if !summary.Success {
		return 1
	}
	return 0
}
