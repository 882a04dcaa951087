//go:build integration

package provision

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"sports_syncer/internal/storage/postgres"
)

type ProvisionIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *sqlx.DB
	client    *postgres.Client
	logger    *slog.Logger
}

func (s *ProvisionIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
	s.client = postgres.NewClient(db)
}

func (s *ProvisionIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestProvisionIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ProvisionIntegrationSuite))
}

func (s *ProvisionIntegrationSuite) TestRun_Idempotent() {
	p := New(s.client, s.logger)

	first := p.Run(s.ctx, true)
	s.Require().True(first.Success, "%+v", first.Results)

	before, err := s.client.Count(s.ctx, "sync_logs", nil)
	s.Require().NoError(err)
	s.Equal(int64(3), before)

	second := p.Run(s.ctx, true)
	s.Require().True(second.Success, "%+v", second.Results)

	after, err := s.client.Count(s.ctx, "sync_logs", nil)
	s.Require().NoError(err)
	s.Equal(before, after)

	var indexes int
	s.Require().NoError(s.db.GetContext(s.ctx, &indexes,
		`SELECT COUNT(*) FROM pg_indexes WHERE tablename = 'sync_logs' AND indexname LIKE 'idx_sync_logs_%'`))
	s.Equal(4, indexes)
}

func (s *ProvisionIntegrationSuite) TestSeed_RowsAreReadable() {
	p := New(s.client, s.logger)
	s.Require().True(p.Run(s.ctx, true).Success)

	rows, err := s.client.Select(s.ctx, "sync_logs", postgres.Filter{"table_name": "leagues", "run_id": SeedRunID}, 0)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("partial", rows[0]["status"])
	s.Equal("league 2: permission denied", rows[0]["error_message"])
}
