// Package checks builds the end-to-end health checks run by cmd/checks.
package checks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sports_syncer/internal/config"
	"sports_syncer/internal/domain"
	"sports_syncer/internal/report"
	"sports_syncer/internal/source/apisports"
	"sports_syncer/internal/storage/postgres"
)

const probeTableName = "__write_probe__"

// Backend is the part of the backend client the checks touch.
type Backend interface {
	Ping(ctx context.Context) error
	Select(ctx context.Context, table string, filter postgres.Filter, limit int) ([]postgres.Row, error)
	Insert(ctx context.Context, table string, rows []postgres.Row) (int64, error)
	Delete(ctx context.Context, table string, filter postgres.Filter) (int64, error)
}

type SportsAPI interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	Status(ctx context.Context) (*apisports.APIStatus, error)
}

type CountrySyncer interface {
	SyncCountries(ctx context.Context, limit int) (*domain.SyncStats, error)
}

type Checker struct {
	backend Backend
	api     SportsAPI
	syncer  CountrySyncer
	config  config.ChecksConfig
	logger  *slog.Logger
	now     func() time.Time
}

func New(backend Backend, api SportsAPI, syncer CountrySyncer, cfg config.ChecksConfig, logger *slog.Logger) *Checker {
	return &Checker{
		backend: backend,
		api:     api,
		syncer:  syncer,
		config:  cfg,
		logger:  logger.With("component", "checks"),
		now:     time.Now,
	}
}

// Steps returns the fixed check set in report order.
func (c *Checker) Steps() []report.Step {
	return []report.Step{
		{Name: "backend connection", Run: c.backendConnection},
		{Name: "sports api connection", Run: c.apiConnection},
		{Name: "backend write", Run: c.backendWrite},
		{Name: "transform countries", Run: c.transform},
		{Name: "rate limit", Run: c.rateLimit},
		report.SyncStep("small sync", c.smallSync),
	}
}

// Run executes every check concurrently.
func (c *Checker) Run(ctx context.Context) report.Summary {
	summary := report.RunAll(ctx, c.Steps())
	c.logger.Info("checks completed",
		"success", summary.Success,
		"passed", summary.Passed(),
		"total", len(summary.Results),
		"duration", summary.Duration,
	)
	return summary
}

func (c *Checker) backendConnection(ctx context.Context) (report.Outcome, error) {
	if err := c.backend.Ping(ctx); err != nil {
		return report.Outcome{}, fmt.Errorf("ping: %w", err)
	}
	rows, err := c.backend.Select(ctx, c.config.ProbeTable, nil, 1)
	if err != nil {
		return report.Outcome{}, fmt.Errorf("select from %s: %w", c.config.ProbeTable, err)
	}
	return report.Outcome{
		Message: fmt.Sprintf("connected, %s readable", c.config.ProbeTable),
		Data:    len(rows),
	}, nil
}

func (c *Checker) apiConnection(ctx context.Context) (report.Outcome, error) {
	status, err := c.api.Status(ctx)
	if err != nil {
		return report.Outcome{}, err
	}
	if !status.Subscription.Active {
		return report.Outcome{Failed: true, Message: "subscription inactive"}, nil
	}
	return report.Outcome{Message: fmt.Sprintf("connected, plan %s", status.Subscription.Plan)}, nil
}

// backendWrite inserts a probe sync log row and deletes it again.
func (c *Checker) backendWrite(ctx context.Context) (report.Outcome, error) {
	runID := uuid.NewString()
	now := c.now().UTC()

	row := postgres.Row{
		"run_id":     runID,
		"table_name": probeTableName,
		"sync_date":  now.Format(time.DateOnly),
		"status":     string(domain.SyncStatusSuccess),
	}
	if _, err := c.backend.Insert(ctx, c.config.ProbeTable, []postgres.Row{row}); err != nil {
		return report.Outcome{}, fmt.Errorf("insert probe row: %w", err)
	}

	deleted, err := c.backend.Delete(ctx, c.config.ProbeTable, postgres.Filter{"run_id": runID})
	if err != nil {
		return report.Outcome{}, fmt.Errorf("delete probe row: %w", err)
	}
	if deleted != 1 {
		return report.Outcome{Failed: true, Message: fmt.Sprintf("expected 1 probe row deleted, got %d", deleted)}, nil
	}
	return report.Outcome{Message: "inserted and deleted probe row"}, nil
}

// transform fetches countries and validates the mapped records.
func (c *Checker) transform(ctx context.Context) (report.Outcome, error) {
	countries, err := c.api.Countries(ctx)
	if err != nil {
		return report.Outcome{}, err
	}
	if len(countries) == 0 {
		return report.Outcome{}, errors.New("no countries returned")
	}

	seen := make(map[string]bool, len(countries))
	for i, country := range countries {
		if country.Name == "" {
			return report.Outcome{}, fmt.Errorf("country %d has no name", i)
		}
		if seen[country.Name] {
			return report.Outcome{}, fmt.Errorf("duplicate country %q", country.Name)
		}
		seen[country.Name] = true
	}

	return report.Outcome{
		Message: fmt.Sprintf("%d countries mapped", len(countries)),
		Data:    countries[0],
	}, nil
}

func (c *Checker) rateLimit(ctx context.Context) (report.Outcome, error) {
	status, err := c.api.Status(ctx)
	if err != nil {
		return report.Outcome{}, err
	}

	q := status.Requests
	msg := fmt.Sprintf("%d/%d requests left today", q.Remaining(), q.LimitDay)
	return report.Outcome{
		Failed:  q.Remaining() == 0,
		Message: msg,
		Data:    q,
	}, nil
}

func (c *Checker) smallSync(ctx context.Context) (domain.SyncRunSummary, error) {
	stats, err := c.syncer.SyncCountries(ctx, c.config.SmallSyncMax)
	if stats == nil {
		return domain.SyncRunSummary{}, err
	}
	return stats.Summary(), err
}
