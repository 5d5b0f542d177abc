package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maxviazov/cricket-records-service/internal/engine"
)

// Rows is the cursor shape shared by pgx and database/sql.
// pgx.Rows satisfies it as is; *sql.Rows goes through SQLRows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier is the minimal statement runner the shared SQL below needs.
// Each backend adapts its own connection or transaction to it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// SQLRows adapts *sql.Rows to Rows.
type SQLRows struct{ *sql.Rows }

// Close releases the cursor. The error is reported again by Err.
func (r SQLRows) Close() { _ = r.Rows.Close() }

// Dialect carries the few places where the two SQL backends differ.
type Dialect struct {
	Name        string
	Placeholder engine.Placeholder
	// TempTable renders the DDL of a connection-local staging table.
	TempTable func(name string) string
}

var (
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: engine.Dollar,
		TempTable: func(name string) string {
			return "CREATE TEMP TABLE " + name + " (match_id BIGINT NOT NULL, team_id BIGINT NOT NULL) ON COMMIT DROP"
		},
	}
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: engine.Question,
		TempTable: func(name string) string {
			return "CREATE TEMP TABLE " + name + " (match_id INTEGER NOT NULL, team_id INTEGER NOT NULL)"
		},
	}
)

// StagingName returns a fresh identifier for one request's staging table.
// Names are never reused, so two requests sharing a session cannot collide.
func StagingName() string {
	return "qm_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// params renders n consecutive placeholders starting at from (1-based).
func params(ph engine.Placeholder, from, n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = ph(from + i)
	}
	return strings.Join(out, ", ")
}

// queryAll runs stmt and scans every row with scan.
func queryAll[T any](ctx context.Context, q Querier, stmt string, args []any, scan func(Rows) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
