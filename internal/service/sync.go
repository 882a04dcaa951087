package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sports_syncer/internal/config"
	"sports_syncer/internal/domain"
	"sports_syncer/internal/report"
)

const (
	TableCountries = "countries"
	TableLeagues   = "leagues"
	TableTeams     = "teams"
)

type SyncService struct {
	api       SportsAPI
	entities  EntityStore
	logs      SyncLogStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

func NewSyncService(
	api SportsAPI,
	entities EntityStore,
	logs SyncLogStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		api:       api,
		entities:  entities,
		logs:      logs,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
		config:    cfg,
		now:       time.Now,
	}
}

// SyncAll syncs every configured table concurrently under one run id.
func (s *SyncService) SyncAll(ctx context.Context) report.Summary {
	runID := uuid.NewString()
	s.logger.Info("starting sync run",
		"run_id", runID,
		"source", s.api.Name(),
		"tables", s.config.Tables,
		"season", s.config.Season,
	)

	steps := make([]report.Step, 0, len(s.config.Tables))
	for _, table := range s.config.Tables {
		table := table
		steps = append(steps, report.SyncStep("sync "+table, func(ctx context.Context) (domain.SyncRunSummary, error) {
			stats, err := s.syncTable(ctx, runID, table, 0)
			if stats == nil {
				return domain.SyncRunSummary{}, err
			}
			return stats.Summary(), err
		}))
	}

	summary := report.RunAll(ctx, steps)

	s.logger.Info("sync run completed",
		"run_id", runID,
		"success", summary.Success,
		"passed", summary.Passed(),
		"total", len(summary.Results),
		"duration", summary.Duration,
	)
	return summary
}

// SyncTable syncs a single table and appends its sync log entry.
func (s *SyncService) SyncTable(ctx context.Context, table string) (*domain.SyncStats, error) {
	return s.syncTable(ctx, uuid.NewString(), table, 0)
}

// SyncCountries syncs at most limit countries; zero means all of them.
func (s *SyncService) SyncCountries(ctx context.Context, limit int) (*domain.SyncStats, error) {
	return s.syncTable(ctx, uuid.NewString(), TableCountries, limit)
}

func (s *SyncService) syncTable(ctx context.Context, runID, table string, limit int) (*domain.SyncStats, error) {
	var run func(context.Context, *domain.SyncStats, int) error
	switch table {
	case TableCountries:
		run = s.syncCountries
	case TableLeagues:
		run = s.syncLeagues
	case TableTeams:
		run = s.syncTeams
	default:
		return nil, fmt.Errorf("unknown table %q", table)
	}

	logger := s.logger.With("table", table, "run_id", runID)
	logger.Info("starting sync")

	startTime := time.Now()
	stats := &domain.SyncStats{Table: table}
	runErr := run(ctx, stats, limit)
	stats.Duration = time.Since(startTime)

	entry := s.newEntry(runID, stats, runErr)
	if _, err := s.logs.Append(ctx, entry); err != nil {
		logger.Error("failed to append sync log", "error", err)
		if runErr == nil {
			runErr = fmt.Errorf("append sync log: %w", err)
		}
	} else if s.publisher != nil {
		if err := s.publisher.Publish(ctx, entry); err != nil {
			logger.Warn("failed to publish sync log", "error", err)
		}
	}

	logger.Info("sync completed",
		"status", entry.Status,
		"fetched", stats.Fetched,
		"new", stats.New,
		"updated", stats.Updated,
		"errors", stats.Errors,
		"api_calls", stats.APICalls,
		"duration", stats.Duration,
	)

	return stats, runErr
}

func (s *SyncService) newEntry(runID string, stats *domain.SyncStats, runErr error) *domain.SyncLogEntry {
	now := s.now()
	entry := &domain.SyncLogEntry{
		RunID:          runID,
		TableName:      stats.Table,
		SyncDate:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		RecordsAdded:   stats.New,
		RecordsUpdated: stats.Updated,
		APICallsUsed:   stats.APICalls,
		SyncDurationMS: stats.Duration.Milliseconds(),
		Status:         stats.Summary().Status(),
	}

	switch {
	case runErr != nil:
		entry.Status = domain.SyncStatusFailed
		msg := runErr.Error()
		entry.ErrorMessage = &msg
	case stats.FirstError != "":
		msg := stats.FirstError
		entry.ErrorMessage = &msg
	}
	return entry
}

func (s *SyncService) syncCountries(ctx context.Context, stats *domain.SyncStats, limit int) error {
	stats.APICalls++
	countries, err := s.api.Countries(ctx)
	if err != nil {
		return fmt.Errorf("fetch countries: %w", err)
	}
	if limit > 0 && len(countries) > limit {
		countries = countries[:limit]
	}
	stats.Fetched = len(countries)

	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	existing, err := s.entities.ExistingCountries(ctx, names)
	if err != nil {
		return fmt.Errorf("load existing countries: %w", err)
	}

	for i := range countries {
		country := &countries[i]
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.entities.UpsertCountry(txCtx, country)
		})
		s.tally(stats, existing[country.Name], err, "country", country.Name)
	}
	return nil
}

func (s *SyncService) syncLeagues(ctx context.Context, stats *domain.SyncStats, limit int) error {
	stats.APICalls++
	leagues, err := s.api.Leagues(ctx, s.config.Season)
	if err != nil {
		return fmt.Errorf("fetch leagues: %w", err)
	}
	if limit > 0 && len(leagues) > limit {
		leagues = leagues[:limit]
	}
	stats.Fetched = len(leagues)

	ids := make([]int64, len(leagues))
	for i, l := range leagues {
		ids[i] = l.ID
	}
	existing, err := s.entities.ExistingLeagues(ctx, ids)
	if err != nil {
		return fmt.Errorf("load existing leagues: %w", err)
	}

	for i := range leagues {
		league := &leagues[i]
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if league.Country != nil {
				if err := s.entities.UpsertCountry(txCtx, league.Country); err != nil {
					return fmt.Errorf("upsert country: %w", err)
				}
			}
			if err := s.entities.UpsertLeague(txCtx, league); err != nil {
				return fmt.Errorf("upsert league: %w", err)
			}
			return nil
		})
		s.tally(stats, existing[league.ID], err, "league", league.ID)
	}
	return nil
}

// syncTeams fetches each configured league separately. A failed league fetch
// counts as one error; the run only fails when every fetch failed.
func (s *SyncService) syncTeams(ctx context.Context, stats *domain.SyncStats, limit int) error {
	var teams []domain.Team
	var lastErr error
	fetched := 0
	seen := make(map[int64]bool)

	for _, leagueID := range s.config.LeagueIDs {
		stats.APICalls++
		batch, err := s.api.Teams(ctx, int64(leagueID), s.config.Season)
		if err != nil {
			lastErr = fmt.Errorf("fetch teams for league %d: %w", leagueID, err)
			stats.Fail(lastErr)
			s.logger.Warn("failed to fetch teams", "league_id", leagueID, "error", err)
			continue
		}
		fetched++
		for _, t := range batch {
			if !seen[t.ID] {
				seen[t.ID] = true
				teams = append(teams, t)
			}
		}
	}

	if fetched == 0 && lastErr != nil {
		return lastErr
	}
	if limit > 0 && len(teams) > limit {
		teams = teams[:limit]
	}
	stats.Fetched = len(teams)

	ids := make([]int64, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	existing, err := s.entities.ExistingTeams(ctx, ids)
	if err != nil {
		return fmt.Errorf("load existing teams: %w", err)
	}

	for i := range teams {
		team := &teams[i]
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.entities.UpsertTeam(txCtx, team)
		})
		s.tally(stats, existing[team.ID], err, "team", team.ID)
	}
	return nil
}

func (s *SyncService) tally(stats *domain.SyncStats, existed bool, err error, kind string, key any) {
	switch {
	case err != nil:
		stats.Fail(fmt.Errorf("%s %v: %w", kind, key, err))
		s.logger.Warn("failed to save record", "kind", kind, "key", key, "error", err)
	case existed:
		stats.Updated++
	default:
		stats.New++
	}
}
