package domain

import "time"

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncLogEntry is the append-only record of one sync run against one table.
type SyncLogEntry struct {
	ID             int64      `db:"id" json:"id,omitempty"`
	RunID          string     `db:"run_id" json:"run_id"`
	TableName      string     `db:"table_name" json:"table_name"`
	SyncDate       time.Time  `db:"sync_date" json:"sync_date"`
	RecordsAdded   int        `db:"records_added" json:"records_added"`
	RecordsUpdated int        `db:"records_updated" json:"records_updated"`
	APICallsUsed   int        `db:"api_calls_used" json:"api_calls_used"`
	SyncDurationMS int64      `db:"sync_duration_ms" json:"sync_duration_ms"`
	Status         SyncStatus `db:"status" json:"status"`
	ErrorMessage   *string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// SyncRunSummary tallies the records attempted by one sync operation.
type SyncRunSummary struct {
	Synced int `json:"synced"`
	Errors int `json:"errors"`
}

// Status derives the log status from the tally.
func (s SyncRunSummary) Status() SyncStatus {
	switch {
	case s.Errors == 0:
		return SyncStatusSuccess
	case s.Synced > 0:
		return SyncStatusPartial
	default:
		return SyncStatusFailed
	}
}

// SyncStats holds the detailed counters of a sync run.
type SyncStats struct {
	Table    string
	Fetched  int
	New      int
	Updated  int
	Errors   int
	APICalls int
	Duration time.Duration

	// FirstError is the text of the first per-record failure.
	FirstError string
}

// Fail counts one failed record and keeps the first error text.
func (s *SyncStats) Fail(err error) {
	s.Errors++
	if s.FirstError == "" && err != nil {
		s.FirstError = err.Error()
	}
}

// Summary collapses the stats into the synced/errors pair.
func (s *SyncStats) Summary() SyncRunSummary {
	return SyncRunSummary{Synced: s.New + s.Updated, Errors: s.Errors}
}
