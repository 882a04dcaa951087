// Package provision creates the backend schema and verifies it by reading
// the tables back. Every statement is idempotent, so provisioning can be
// re-run against an already provisioned backend.
package provision

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"sports_syncer/internal/domain"
	"sports_syncer/internal/report"
	"sports_syncer/internal/storage/postgres"
	"sports_syncer/migrations"
)

// SeedRunID marks the sample rows written by Seed.
const SeedRunID = "seed"

// Backend is the part of the backend client provisioning needs.
type Backend interface {
	Exec(ctx context.Context, statement string) error
	Select(ctx context.Context, table string, filter postgres.Filter, limit int) ([]postgres.Row, error)
	Insert(ctx context.Context, table string, rows []postgres.Row) (int64, error)
	Count(ctx context.Context, table string, filter postgres.Filter) (int64, error)
}

type Provisioner struct {
	backend Backend
	schema  fs.FS
	logger  *slog.Logger
	now     func() time.Time
}

func New(backend Backend, logger *slog.Logger) *Provisioner {
	return &Provisioner{
		backend: backend,
		schema:  migrations.FS,
		logger:  logger.With("component", "provision"),
		now:     time.Now,
	}
}

// Run executes the provisioning steps in order and stops at the first
// failure. Nothing already applied is rolled back.
func (p *Provisioner) Run(ctx context.Context, seed bool) report.Summary {
	steps := []report.Step{
		{Name: "ensure sync_logs table", Run: p.applyStep(migrations.SyncLogs)},
		{Name: "ensure entity tables", Run: p.applyStep(migrations.SportsEntities)},
		{Name: "verify tables", Run: p.verifyStep("sync_logs", "countries", "leagues", "teams")},
	}
	if seed {
		steps = append(steps, report.Step{Name: "seed sample rows", Run: p.seedStep})
	}

	summary := report.RunSequence(ctx, steps)
	for _, r := range summary.Results {
		if !r.Success {
			p.logger.Error("provisioning step failed", "step", r.Test, "error", r.Message)
		}
	}
	p.logger.Info("provisioning completed",
		"success", summary.Success,
		"steps", len(summary.Results),
		"duration", summary.Duration,
	)
	return summary
}

// Apply executes one embedded schema file.
func (p *Provisioner) Apply(ctx context.Context, name string) error {
	statement, err := fs.ReadFile(p.schema, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := p.backend.Exec(ctx, string(statement)); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	p.logger.Info("schema applied", "file", name)
	return nil
}

// Verify reads one row back from each table.
func (p *Provisioner) Verify(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.backend.Select(ctx, table, nil, 1); err != nil {
			return fmt.Errorf("read back %s: %w", table, err)
		}
	}
	return nil
}

// Seed writes sample sync log rows unless they are already present.
// It returns the number of rows written.
func (p *Provisioner) Seed(ctx context.Context) (int64, error) {
	existing, err := p.backend.Count(ctx, "sync_logs", postgres.Filter{"run_id": SeedRunID})
	if err != nil {
		return 0, fmt.Errorf("count seed rows: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	date := p.now().UTC().Format(time.DateOnly)
	rows := []postgres.Row{
		sampleRow(date, "countries", domain.SyncStatusSuccess, 49, 0, 1, 820, nil),
		sampleRow(date, "leagues", domain.SyncStatusPartial, 12, 3, 1, 1430, "league 2: permission denied"),
		sampleRow(date, "teams", domain.SyncStatusFailed, 0, 0, 5, 5010, "fetch teams for league 39: timeout"),
	}

	n, err := p.backend.Insert(ctx, "sync_logs", rows)
	if err != nil {
		return 0, fmt.Errorf("insert seed rows: %w", err)
	}
	return n, nil
}

func (p *Provisioner) applyStep(name string) report.Func {
	return func(ctx context.Context) (report.Outcome, error) {
		if err := p.Apply(ctx, name); err != nil {
			return report.Outcome{}, err
		}
		return report.Outcome{Message: "applied " + name}, nil
	}
}

func (p *Provisioner) verifyStep(tables ...string) report.Func {
	return func(ctx context.Context) (report.Outcome, error) {
		if err := p.Verify(ctx, tables...); err != nil {
			return report.Outcome{}, err
		}
		return report.Outcome{Message: fmt.Sprintf("%d tables readable", len(tables))}, nil
	}
}

func (p *Provisioner) seedStep(ctx context.Context) (report.Outcome, error) {
	n, err := p.Seed(ctx)
	if err != nil {
		return report.Outcome{}, err
	}
	if n == 0 {
		return report.Outcome{Message: "sample rows already present"}, nil
	}
	return report.Outcome{Message: fmt.Sprintf("seeded %d rows", n), Data: n}, nil
}

func sampleRow(date, table string, status domain.SyncStatus, added, updated, calls int, durationMS int64, errMsg any) postgres.Row {
	return postgres.Row{
		"run_id":           SeedRunID,
		"table_name":       table,
		"sync_date":        date,
		"records_added":    added,
		"records_updated":  updated,
		"api_calls_used":   calls,
		"sync_duration_ms": durationMS,
		"status":           string(status),
		"error_message":    errMsg,
	}
}
