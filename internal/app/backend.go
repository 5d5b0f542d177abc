// Package app wires a configured storage backend to the services. Both the
// HTTP server and the CLI start from here.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/config"
	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/handler"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/repository/postgres"
	"github.com/maxviazov/cricket-records-service/internal/repository/sqlite"
	"github.com/maxviazov/cricket-records-service/internal/service"
)

// Backend is one opened store seen through the repository contracts.
type Backend struct {
	Name       string
	Source     repository.MatchSource
	Scorecards repository.ScorecardRepository
	Reference  repository.ReferenceRepository
	Pinger     repository.Pinger
	Loader     repository.Loader

	migrate func(ctx context.Context) (int, int64, error)
	close   func()
}

// Open connects to the backend named by cfg.App.Backend.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Backend, error) {
	switch cfg.App.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Name:       config.BackendPostgres,
			Source:     postgres.NewMatchSource(pool, logger),
			Scorecards: postgres.NewScorecardRepository(pool),
			Reference:  postgres.NewReferenceRepository(pool),
			Pinger:     postgres.NewPinger(pool),
			Loader:     postgres.NewLoader(pool),
			migrate: func(ctx context.Context) (int, int64, error) {
				return postgres.Migrate(ctx, pool)
			},
			close: pool.Close,
		}, nil
	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Name:       config.BackendSQLite,
			Source:     store,
			Scorecards: store.Scorecards(),
			Reference:  store.Reference(),
			Pinger:     store,
			Loader:     store,
			migrate: func(ctx context.Context) (int, int64, error) {
				n, err := store.Migrate(ctx)
				if err != nil {
					return n, 0, err
				}
				v, err := store.Version(ctx)
				return n, v, err
			},
			close: func() {
				if err := store.Close(); err != nil {
					logger.Warn().Err(err).Msg("close sqlite store")
				}
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.App.Backend)
	}
}

// Migrate brings the schema up to date and returns (applied, version).
func (b *Backend) Migrate(ctx context.Context) (int, int64, error) {
	return b.migrate(ctx)
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Services builds the use cases over the backend.
func (b *Backend) Services(cfg config.RecordsConfig, logger zerolog.Logger) handler.Services {
	return handler.Services{
		Records: service.NewRecordsService(b.Source, engine.New(logger), service.RecordsOptions{
			DefaultPageSize: cfg.DefaultPageSize,
			MaxPageSize:     cfg.MaxPageSize,
			QueryTimeout:    cfg.QueryTimeout,
		}, logger),
		Scorecard: service.NewScorecardService(b.Scorecards, logger),
		Reference: service.NewReferenceService(b.Reference),
	}
}
