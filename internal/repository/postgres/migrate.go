package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/maxviazov/cricket-records-service/migrations"
)

// Migrate runs the goose migrations over a database/sql view of the pool.
// It returns the number applied and the resulting schema version.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, int64, error) {
	if err := ensurePool(pool); err != nil {
		return 0, 0, err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db, goose.DialectPostgres)
	if err != nil {
		return n, 0, err
	}
	v, err := migrations.Version(ctx, db, goose.DialectPostgres)
	return n, v, err
}
