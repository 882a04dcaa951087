package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"sports_syncer/internal/domain"
)

// SyncLogStore appends to and reads from sync_logs. Rows are never updated.
type SyncLogStore struct {
	db *sqlx.DB
}

func NewSyncLogStore(db *sqlx.DB) *SyncLogStore {
	return &SyncLogStore{db: db}
}

func (s *SyncLogStore) Append(ctx context.Context, entry *domain.SyncLogEntry) (int64, error) {
	query := `
		INSERT INTO sync_logs (
			run_id, table_name, sync_date, records_added, records_updated,
			api_calls_used, sync_duration_ms, status, error_message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id, created_at`

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		entry.RunID,
		entry.TableName,
		entry.SyncDate,
		entry.RecordsAdded,
		entry.RecordsUpdated,
		entry.APICallsUsed,
		entry.SyncDurationMS,
		entry.Status,
		entry.ErrorMessage,
	)
	if err != nil {
		return 0, err
	}

	entry.ID = created.ID
	entry.CreatedAt = created.CreatedAt
	return created.ID, nil
}

// Recent returns the newest entries for a table, newest first. An empty
// table name returns entries for every table.
func (s *SyncLogStore) Recent(ctx context.Context, tableName string, limit int) ([]domain.SyncLogEntry, error) {
	query := `
		SELECT id, run_id, table_name, sync_date, records_added, records_updated,
			api_calls_used, sync_duration_ms, status, error_message, created_at
		FROM sync_logs
		WHERE ($1 = '' OR table_name = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	var entries []domain.SyncLogEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, tableName, limit)
	return entries, err
}
