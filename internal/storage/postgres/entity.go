package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sports_syncer/internal/domain"
)

// EntityStore persists the sports entities mirrored from the API.
type EntityStore struct {
	db *sqlx.DB
}

func NewEntityStore(db *sqlx.DB) *EntityStore {
	return &EntityStore{db: db}
}

func (s *EntityStore) ExistingCountries(ctx context.Context, names []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(names) == 0 {
		return result, nil
	}

	var found []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &found,
		`SELECT name FROM countries WHERE name = ANY($1)`, pq.Array(names))
	if err != nil {
		return nil, err
	}
	for _, n := range found {
		result[n] = true
	}
	return result, nil
}

func (s *EntityStore) UpsertCountry(ctx context.Context, c *domain.Country) error {
	query := `
		INSERT INTO countries (name, code, flag, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO UPDATE SET
			code = EXCLUDED.code,
			flag = EXCLUDED.flag,
			updated_at = NOW()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, c.Name, c.Code, c.Flag)
	return err
}

func (s *EntityStore) ExistingLeagues(ctx context.Context, ids []int64) (map[int64]bool, error) {
	return s.existingIDs(ctx, `SELECT id FROM leagues WHERE id = ANY($1)`, ids)
}

func (s *EntityStore) UpsertLeague(ctx context.Context, l *domain.League) error {
	query := `
		INSERT INTO leagues (id, name, type, logo, country_name, season, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			logo = EXCLUDED.logo,
			country_name = EXCLUDED.country_name,
			season = GREATEST(leagues.season, EXCLUDED.season),
			updated_at = NOW()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		l.ID, l.Name, l.Type, l.Logo, l.CountryName, l.Season)
	return err
}

func (s *EntityStore) ExistingTeams(ctx context.Context, ids []int64) (map[int64]bool, error) {
	return s.existingIDs(ctx, `SELECT id FROM teams WHERE id = ANY($1)`, ids)
}

func (s *EntityStore) UpsertTeam(ctx context.Context, t *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, code, country, founded, logo, league_id, season, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			code = EXCLUDED.code,
			country = EXCLUDED.country,
			founded = EXCLUDED.founded,
			logo = EXCLUDED.logo,
			league_id = EXCLUDED.league_id,
			season = EXCLUDED.season,
			updated_at = NOW()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		t.ID, t.Name, t.Code, t.Country, t.Founded, t.Logo, t.LeagueID, t.Season)
	return err
}

func (s *EntityStore) existingIDs(ctx context.Context, query string, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(ids) == 0 {
		return result, nil
	}

	var found []int64
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &found, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	for _, id := range found {
		result[id] = true
	}
	return result, nil
}
