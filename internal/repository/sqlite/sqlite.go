// Package sqlite is the offline snapshot store: the same records schema in a
// single file, read through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/migrations"
)

// Store wraps the sql.DB of one snapshot file.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (or creates) the snapshot at path and brings its schema up to date.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	n, err := migrations.Up(ctx, db, goose.DialectSQLite3)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log := logger.With().Str("module", "repository/sqlite").Logger()
	log.Info().Str("path", path).Int("migrations_applied", n).Msg("sqlite snapshot opened")
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies pending migrations. Open already did, so this only
// reports work when the file was changed underneath us.
func (s *Store) Migrate(ctx context.Context) (int, error) {
	return migrations.Up(ctx, s.db, goose.DialectSQLite3)
}

// Version reports the schema version of the snapshot.
func (s *Store) Version(ctx context.Context) (int64, error) {
	return migrations.Version(ctx, s.db, goose.DialectSQLite3)
}

// Ping implements repository.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load implements repository.MatchSource. Temp tables are per connection in
// SQLite, so the whole load runs on one checked-out conn.
func (s *Store) Load(ctx context.Context, f engine.QualificationFilter, needs engine.Needs) (*engine.Dataset, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout conn: %w", err)
	}
	defer conn.Close()

	staging := repository.StagingName()
	x := querier{conn}
	defer func() {
		if err := x.Exec(context.WithoutCancel(ctx), "DROP TABLE IF EXISTS "+staging); err != nil {
			s.log.Warn().Err(err).Str("staging", staging).Msg("drop staging table")
		}
	}()

	ds, err := repository.LoadDataset(ctx, x, repository.SQLite, staging, f, needs)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("staging", staging).Int("matches", len(ds.Matches)).Msg("dataset loaded")
	return ds, nil
}

// Seed implements repository.Loader in a single transaction.
func (s *Store) Seed(ctx context.Context, ds *engine.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := repository.Seed(ctx, querier{tx}, repository.SQLite, ds); err != nil {
		return err
	}
	return tx.Commit()
}

// Scorecards returns the scorecard reader of this snapshot.
func (s *Store) Scorecards() repository.ScorecardRepository {
	return repository.ScorecardQueries{Q: querier{s.db}, Dialect: repository.SQLite}
}

// Reference returns the reference listings of this snapshot.
func (s *Store) Reference() repository.ReferenceRepository {
	return repository.ReferenceQueries{Q: querier{s.db}, Dialect: repository.SQLite}
}

// runner is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type querier struct{ r runner }

func (x querier) Exec(ctx context.Context, query string, args ...any) error {
	_, err := x.r.ExecContext(ctx, query, args...)
	return repository.MapSQLError(err)
}

func (x querier) Query(ctx context.Context, query string, args ...any) (repository.Rows, error) {
	rows, err := x.r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapSQLError(err)
	}
	return repository.SQLRows{Rows: rows}, nil
}

var (
	_ repository.MatchSource = (*Store)(nil)
	_ repository.Loader      = (*Store)(nil)
	_ repository.Pinger      = (*Store)(nil)
	_ repository.Querier     = querier{}
)
