package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

type matchSource struct {
	pool *pgxpool.Pool
	tx   repository.TxManager
	log  zerolog.Logger
}

// NewMatchSource loads records datasets from Postgres. Every load runs in its
// own transaction so the staging table lives on a single connection.
func NewMatchSource(pool *pgxpool.Pool, logger zerolog.Logger) repository.MatchSource {
	return &matchSource{
		pool: pool,
		tx:   NewTxManager(pool),
		log:  logger.With().Str("module", "repository/postgres").Logger(),
	}
}

func (s *matchSource) Load(ctx context.Context, f engine.QualificationFilter, needs engine.Needs) (*engine.Dataset, error) {
	if err := ensurePool(s.pool); err != nil {
		return nil, err
	}
	staging := repository.StagingName()
	var ds *engine.Dataset
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		x := querier{pool: s.pool}
		// ON COMMIT DROP covers the happy path and rollback undoes the CREATE;
		// the explicit drop keeps a joined outer transaction clean too.
		defer func() {
			if err := x.Exec(context.WithoutCancel(ctx), "DROP TABLE IF EXISTS "+staging); err != nil {
				s.log.Debug().Err(err).Str("staging", staging).Msg("drop staging table")
			}
		}()
		var err error
		ds, err = repository.LoadDataset(ctx, x, repository.Postgres, staging, f, needs)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("staging", staging).
		Int("matches", len(ds.Matches)).
		Msg("dataset loaded")
	return ds, nil
}

// NewScorecardRepository reads single-match scorecards from Postgres.
func NewScorecardRepository(pool *pgxpool.Pool) repository.ScorecardRepository {
	return repository.ScorecardQueries{Q: querier{pool: pool}, Dialect: repository.Postgres}
}

// NewReferenceRepository serves reference listings from Postgres.
func NewReferenceRepository(pool *pgxpool.Pool) repository.ReferenceRepository {
	return repository.ReferenceQueries{Q: querier{pool: pool}, Dialect: repository.Postgres}
}

type loader struct {
	pool *pgxpool.Pool
	tx   repository.TxManager
}

// NewLoader writes dataset snapshots into Postgres in a single transaction.
func NewLoader(pool *pgxpool.Pool) repository.Loader {
	return &loader{pool: pool, tx: NewTxManager(pool)}
}

func (l *loader) Seed(ctx context.Context, ds *engine.Dataset) error {
	return l.tx.WithinTx(ctx, func(ctx context.Context) error {
		return repository.Seed(ctx, querier{pool: l.pool}, repository.Postgres, ds)
	})
}
