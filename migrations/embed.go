// Package migrations ships the goose SQL that creates the records schema.
// The statements are portable between Postgres and SQLite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds every migration file, rooted at ".".
//
//go:embed *.sql
var FS embed.FS

// Up applies every pending migration and returns how many ran.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int, error) {
	p, err := goose.NewProvider(dialect, db, FS)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	res, err := p.Up(ctx)
	if err != nil {
		return len(res), fmt.Errorf("goose up: %w", err)
	}
	return len(res), nil
}

// Version reports the current schema version.
func Version(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int64, error) {
	p, err := goose.NewProvider(dialect, db, FS)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	return p.GetDBVersion(ctx)
}
