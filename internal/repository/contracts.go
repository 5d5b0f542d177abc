package repository

import (
	"context"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MatchSource loads everything one records query needs into memory.
// Implementations stage the qualifying (match, team) pairs in storage that is
// private to the request and drop it before returning, on every path.
type MatchSource interface {
	Load(ctx context.Context, f engine.QualificationFilter, needs engine.Needs) (*engine.Dataset, error)
}

// ScorecardRepository reads the pieces of a single match's scorecard.
// GetMatch returns ErrNotFound for an unknown id; the list methods return an
// empty slice instead.
type ScorecardRepository interface {
	GetMatch(ctx context.Context, id int64) (model.Match, error)
	ListTeamInnings(ctx context.Context, matchID int64) ([]model.TeamInnings, error)
	ListBatting(ctx context.Context, matchID int64) ([]model.BattingEntry, error)
	ListBowling(ctx context.Context, matchID int64) ([]model.BowlingEntry, error)
	ListPartnerships(ctx context.Context, matchID int64) ([]model.PartnershipEntry, error)
	MatchNames(ctx context.Context, matchID int64) (model.Names, error)
}

// ReferenceRepository serves the id/name listings used to build filters.
// An empty match type lists entries across every format.
type ReferenceRepository interface {
	ListTeams(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error)
	ListGrounds(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error)
	ListCountries(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error)
	FindPlayers(ctx context.Context, prefix string, p Page) (PageResult[model.RefItem], error)
}

// Loader writes a dataset snapshot into storage.
type Loader interface {
	Seed(ctx context.Context, ds *engine.Dataset) error
}
