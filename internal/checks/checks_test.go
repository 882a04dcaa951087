package checks

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports_syncer/internal/config"
	"sports_syncer/internal/domain"
	"sports_syncer/internal/source/apisports"
	"sports_syncer/internal/storage/postgres"
)

type fakeBackend struct {
	mu        sync.Mutex
	pingErr   error
	selectErr error
	insertErr error
	inserted  []postgres.Row
	deleted   []postgres.Filter
}

func (f *fakeBackend) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeBackend) Select(ctx context.Context, table string, filter postgres.Filter, limit int) ([]postgres.Row, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return []postgres.Row{{"id": int64(1)}}, nil
}

func (f *fakeBackend) Insert(ctx context.Context, table string, rows []postgres.Row) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, rows...)
	return int64(len(rows)), nil
}

func (f *fakeBackend) Delete(ctx context.Context, table string, filter postgres.Filter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filter)
	return 1, nil
}

type fakeAPI struct {
	countries    []domain.Country
	countriesErr error
	status       *apisports.APIStatus
	statusErr    error
}

func (f *fakeAPI) Countries(ctx context.Context) ([]domain.Country, error) {
	return f.countries, f.countriesErr
}

func (f *fakeAPI) Status(ctx context.Context) (*apisports.APIStatus, error) {
	return f.status, f.statusErr
}

type fakeSyncer struct {
	limit int
	stats *domain.SyncStats
	err   error
}

func (f *fakeSyncer) SyncCountries(ctx context.Context, limit int) (*domain.SyncStats, error) {
	f.limit = limit
	return f.stats, f.err
}

func activeStatus(current, limit int) *apisports.APIStatus {
	status := &apisports.APIStatus{Requests: apisports.Quota{Current: current, LimitDay: limit}}
	status.Subscription.Plan = "Free"
	status.Subscription.Active = true
	return status
}

func newChecker(backend *fakeBackend, api *fakeAPI, syncer *fakeSyncer) *Checker {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(backend, api, syncer, config.ChecksConfig{ProbeTable: "sync_logs", SmallSyncMax: 10}, logger)
}

func healthy() (*fakeBackend, *fakeAPI, *fakeSyncer) {
	return &fakeBackend{},
		&fakeAPI{
			countries: []domain.Country{{Name: "England"}, {Name: "Spain"}},
			status:    activeStatus(12, 100),
		},
		&fakeSyncer{stats: &domain.SyncStats{New: 8, Updated: 2}}
}

func resultByName(t *testing.T, results []domain.TestResult, name string) domain.TestResult {
	t.Helper()
	for _, r := range results {
		if r.Test == name {
			return r
		}
	}
	t.Fatalf("no result named %q", name)
	return domain.TestResult{}
}

func TestChecker_AllHealthy(t *testing.T) {
	backend, api, syncer := healthy()

	summary := newChecker(backend, api, syncer).Run(context.Background())

	require.Len(t, summary.Results, 6)
	for _, r := range summary.Results {
		assert.True(t, r.Success, "%s: %s", r.Test, r.Message)
		assert.NotNil(t, r.DurationMS)
	}
	assert.True(t, summary.Success)
	assert.Equal(t, "backend connection", summary.Results[0].Test)
	assert.Equal(t, "small sync", summary.Results[5].Test)

	assert.Equal(t, 10, syncer.limit)
	assert.Contains(t, resultByName(t, summary.Results, "rate limit").Message, "88/100")
	assert.Contains(t, resultByName(t, summary.Results, "transform countries").Message, "2 countries")
	assert.Contains(t, resultByName(t, summary.Results, "small sync").Message, "synced 10 records, 0 errors")
}

func TestChecker_WriteProbeRemovesItsRow(t *testing.T) {
	backend, api, syncer := healthy()

	summary := newChecker(backend, api, syncer).Run(context.Background())

	require.True(t, resultByName(t, summary.Results, "backend write").Success)
	require.Len(t, backend.inserted, 1)
	require.Len(t, backend.deleted, 1)
	assert.Equal(t, probeTableName, backend.inserted[0]["table_name"])
	assert.Equal(t, backend.inserted[0]["run_id"], backend.deleted[0]["run_id"])
}

func TestChecker_PermissionDenied(t *testing.T) {
	backend, api, syncer := healthy()
	backend.insertErr = errors.New("permission denied for table sync_logs")

	summary := newChecker(backend, api, syncer).Run(context.Background())

	write := resultByName(t, summary.Results, "backend write")
	assert.False(t, write.Success)
	assert.Contains(t, write.Message, "permission denied")
	assert.Empty(t, backend.deleted)
	assert.False(t, summary.Success)
	assert.Equal(t, 5, summary.Passed())
}

func TestChecker_APIDown(t *testing.T) {
	backend, api, syncer := healthy()
	api.statusErr = &apisports.APIError{Path: "/status", StatusCode: 403, Message: "forbidden"}
	api.countriesErr = apisports.ErrMissingAPIKey
	api.countries = nil

	summary := newChecker(backend, api, syncer).Run(context.Background())

	assert.False(t, resultByName(t, summary.Results, "sports api connection").Success)
	assert.Contains(t, resultByName(t, summary.Results, "rate limit").Message, "403")
	assert.Contains(t, resultByName(t, summary.Results, "transform countries").Message, "api key")
	assert.True(t, resultByName(t, summary.Results, "backend connection").Success)
	assert.False(t, summary.Success)
}

func TestChecker_QuotaExhausted(t *testing.T) {
	backend, api, syncer := healthy()
	api.status = activeStatus(100, 100)

	summary := newChecker(backend, api, syncer).Run(context.Background())

	rate := resultByName(t, summary.Results, "rate limit")
	assert.False(t, rate.Success)
	assert.Contains(t, rate.Message, "0/100")
}

func TestChecker_TransformRejectsBadMapping(t *testing.T) {
	tests := []struct {
		name      string
		countries []domain.Country
		want      string
	}{
		{"empty", nil, "no countries"},
		{"missing name", []domain.Country{{Name: "Spain"}, {}}, "has no name"},
		{"duplicate", []domain.Country{{Name: "Spain"}, {Name: "Spain"}}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, api, syncer := healthy()
			api.countries = tt.countries

			summary := newChecker(backend, api, syncer).Run(context.Background())

			result := resultByName(t, summary.Results, "transform countries")
			assert.False(t, result.Success)
			assert.Contains(t, result.Message, tt.want)
		})
	}
}

func TestChecker_SmallSyncFailure(t *testing.T) {
	backend, api, syncer := healthy()
	syncer.stats = nil
	syncer.err = errors.New("fetch countries: timeout")

	summary := newChecker(backend, api, syncer).Run(context.Background())

	result := resultByName(t, summary.Results, "small sync")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "timeout")
}

func TestChecker_BackendUnreachable(t *testing.T) {
	backend, api, syncer := healthy()
	backend.pingErr = errors.New("dial tcp: connection refused")

	summary := newChecker(backend, api, syncer).Run(context.Background())

	result := resultByName(t, summary.Results, "backend connection")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "connection refused")
}
