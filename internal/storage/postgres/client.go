package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Row is a single table row keyed by column name.
type Row map[string]any

// Filter is a set of column equality conditions joined with AND.
type Filter map[string]any

var errNoRows = errors.New("no rows given")

// Client is the generic table boundary of the backend: filtered reads,
// inserts, upserts on a conflict key, filtered deletes and raw statements.
type Client struct {
	db *sqlx.DB
}

func NewClient(db *sqlx.DB) *Client {
	return &Client{db: db}
}

// Ping verifies the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Select(ctx context.Context, table string, filter Filter, limit int) ([]Row, error) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(pq.QuoteIdentifier(table))

	where, args := buildWhere(filter, 1)
	sb.WriteString(where)

	if limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", limit))
	}

	rows, err := GetExecutor(ctx, c.db).QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		m := make(map[string]any)
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		for k, v := range m {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			}
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (c *Client) Insert(ctx context.Context, table string, rows []Row) (int64, error) {
	query, args, err := buildInsert(table, rows)
	if err != nil {
		return 0, err
	}
	return c.exec(ctx, query, args...)
}

// Upsert inserts rows and overwrites the non-key columns of rows that
// collide on conflictKey.
func (c *Client) Upsert(ctx context.Context, table string, rows []Row, conflictKey ...string) (int64, error) {
	if len(conflictKey) == 0 {
		return 0, errors.New("upsert requires a conflict key")
	}

	query, args, err := buildInsert(table, rows)
	if err != nil {
		return 0, err
	}

	isKey := make(map[string]bool, len(conflictKey))
	quotedKey := make([]string, len(conflictKey))
	for i, k := range conflictKey {
		isKey[k] = true
		quotedKey[i] = pq.QuoteIdentifier(k)
	}

	var sets []string
	for _, col := range columnsOf(rows[0]) {
		if isKey[col] {
			continue
		}
		q := pq.QuoteIdentifier(col)
		sets = append(sets, q+" = EXCLUDED."+q)
	}

	query += " ON CONFLICT (" + strings.Join(quotedKey, ", ") + ")"
	if len(sets) == 0 {
		query += " DO NOTHING"
	} else {
		query += " DO UPDATE SET " + strings.Join(sets, ", ")
	}

	return c.exec(ctx, query, args...)
}

// Delete removes the rows matching filter. An empty filter is refused.
func (c *Client) Delete(ctx context.Context, table string, filter Filter) (int64, error) {
	if len(filter) == 0 {
		return 0, errors.New("delete requires a filter")
	}
	where, args := buildWhere(filter, 1)
	return c.exec(ctx, "DELETE FROM "+pq.QuoteIdentifier(table)+where, args...)
}

// Exec runs a raw statement. Only provisioning uses it.
func (c *Client) Exec(ctx context.Context, statement string) error {
	_, err := GetExecutor(ctx, c.db).ExecContext(ctx, statement)
	return err
}

// Count returns the number of rows matching filter.
func (c *Client) Count(ctx context.Context, table string, filter Filter) (int64, error) {
	where, args := buildWhere(filter, 1)

	var n int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, c.db), &n,
		"SELECT COUNT(*) FROM "+pq.QuoteIdentifier(table)+where, args...)
	return n, err
}

func (c *Client) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := GetExecutor(ctx, c.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func buildWhere(filter Filter, start int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	cols := make([]string, 0, len(filter))
	for col := range filter {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	conds := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		conds[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(col), start+i)
		args[i] = filter[col]
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildInsert(table string, rows []Row) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, errNoRows
	}

	cols := columnsOf(rows[0])
	if len(cols) == 0 {
		return "", nil, errors.New("row has no columns")
	}

	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = pq.QuoteIdentifier(col)
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(pq.QuoteIdentifier(table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(quoted, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(cols))
	for i, row := range rows {
		if len(row) != len(cols) {
			return "", nil, fmt.Errorf("row %d: expected %d columns, got %d", i, len(cols), len(row))
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, col := range cols {
			v, ok := row[col]
			if !ok {
				return "", nil, fmt.Errorf("row %d: missing column %q", i, col)
			}
			if j > 0 {
				sb.WriteString(", ")
			}
			args = append(args, v)
			sb.WriteString(fmt.Sprintf("$%d", len(args)))
		}
		sb.WriteString(")")
	}

	return sb.String(), args, nil
}

func columnsOf(row Row) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
