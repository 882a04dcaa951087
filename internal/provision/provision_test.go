package provision

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports_syncer/internal/storage/postgres"
)

type fakeBackend struct {
	statements []string
	selected   []string
	inserted   []postgres.Row
	seedRows   int64

	execErr   error
	selectErr map[string]error
}

func (f *fakeBackend) Exec(ctx context.Context, statement string) error {
	if f.execErr != nil {
		return f.execErr
	}
	f.statements = append(f.statements, statement)
	return nil
}

func (f *fakeBackend) Select(ctx context.Context, table string, filter postgres.Filter, limit int) ([]postgres.Row, error) {
	f.selected = append(f.selected, table)
	return nil, f.selectErr[table]
}

func (f *fakeBackend) Insert(ctx context.Context, table string, rows []postgres.Row) (int64, error) {
	f.inserted = append(f.inserted, rows...)
	f.seedRows += int64(len(rows))
	return int64(len(rows)), nil
}

func (f *fakeBackend) Count(ctx context.Context, table string, filter postgres.Filter) (int64, error) {
	return f.seedRows, nil
}

func newProvisioner(backend Backend) *Provisioner {
	p := New(backend, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
	p.now = func() time.Time { return time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC) }
	return p
}

func TestRun_AppliesSchemaAndVerifies(t *testing.T) {
	backend := &fakeBackend{}

	summary := newProvisioner(backend).Run(context.Background(), false)

	require.True(t, summary.Success)
	require.Len(t, summary.Results, 3)
	require.Len(t, backend.statements, 2)
	assert.Contains(t, backend.statements[0], "CREATE TABLE IF NOT EXISTS sync_logs")
	assert.Contains(t, backend.statements[0], "CREATE INDEX IF NOT EXISTS")
	assert.Contains(t, backend.statements[1], "CREATE TABLE IF NOT EXISTS teams")
	assert.Equal(t, []string{"sync_logs", "countries", "leagues", "teams"}, backend.selected)
	assert.Empty(t, backend.inserted)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	backend := &fakeBackend{execErr: errors.New("permission denied for schema public")}

	summary := newProvisioner(backend).Run(context.Background(), true)

	assert.False(t, summary.Success)
	require.Len(t, summary.Results, 1)
	assert.Contains(t, summary.Results[0].Message, "permission denied")
	assert.Empty(t, backend.selected)
	assert.Empty(t, backend.inserted)
}

func TestRun_VerifyFailure(t *testing.T) {
	backend := &fakeBackend{selectErr: map[string]error{"leagues": errors.New(`relation "leagues" does not exist`)}}

	summary := newProvisioner(backend).Run(context.Background(), false)

	assert.False(t, summary.Success)
	require.Len(t, summary.Results, 3)
	assert.Contains(t, summary.Results[2].Message, "read back leagues")
}

func TestRun_SeedIsWrittenOnce(t *testing.T) {
	backend := &fakeBackend{}
	p := newProvisioner(backend)

	first := p.Run(context.Background(), true)
	second := p.Run(context.Background(), true)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, "seeded 3 rows", first.Results[3].Message)
	assert.Equal(t, "sample rows already present", second.Results[3].Message)
	require.Len(t, backend.inserted, 3)

	for _, row := range backend.inserted {
		assert.Equal(t, SeedRunID, row["run_id"])
		assert.Equal(t, "2024-08-17", row["sync_date"])
	}
	assert.Equal(t, "partial", backend.inserted[1]["status"])
}

func TestApply_UnknownFile(t *testing.T) {
	p := newProvisioner(&fakeBackend{})
	p.schema = fstest.MapFS{}

	err := p.Apply(context.Background(), "003_missing.up.sql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "003_missing.up.sql")
}
