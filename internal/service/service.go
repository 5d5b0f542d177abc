// Package service holds use-case orchestration between repositories, the
// records engine and the transports. Kept intentionally lean: validation,
// timeouts, logging and domain error shaping.
package service

import (
	"context"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

// RecordsService answers records queries of every category.
type RecordsService interface {
	Query(ctx context.Context, c engine.Category, f engine.QualificationFilter) (engine.Paged, error)
}

// ScorecardService assembles single-match scorecards.
type ScorecardService interface {
	GetScorecard(ctx context.Context, matchID int64) (model.Scorecard, error)
}

// ReferenceService serves the lookups used to build filters.
type ReferenceService interface {
	ListTeams(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error)
	ListGrounds(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error)
	ListCountries(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error)
	FindPlayers(ctx context.Context, prefix string, page repository.Page) (repository.PageResult[model.RefItem], error)
}
