package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"sports_syncer/internal/domain"
)

type SportsAPI interface {
	Name() string
	Countries(ctx context.Context) ([]domain.Country, error)
	Leagues(ctx context.Context, season int) ([]domain.League, error)
	Teams(ctx context.Context, leagueID int64, season int) ([]domain.Team, error)
}

type EntityStore interface {
	ExistingCountries(ctx context.Context, names []string) (map[string]bool, error)
	UpsertCountry(ctx context.Context, c *domain.Country) error
	ExistingLeagues(ctx context.Context, ids []int64) (map[int64]bool, error)
	UpsertLeague(ctx context.Context, l *domain.League) error
	ExistingTeams(ctx context.Context, ids []int64) (map[int64]bool, error)
	UpsertTeam(ctx context.Context, t *domain.Team) error
}

type SyncLogStore interface {
	Append(ctx context.Context, entry *domain.SyncLogEntry) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, entry *domain.SyncLogEntry) error
	Close() error
}
