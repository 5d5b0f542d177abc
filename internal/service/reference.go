package service

import (
	"context"
	"strings"

	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

type referenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func checkMatchType(mt model.MatchType) error {
	if mt != "" && !mt.Valid() {
		return NewInvalidInputError([]FieldError{{Field: "match_type", Message: "unknown match type"}})
	}
	return nil
}

func (s *referenceService) ListTeams(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error) {
	if err := checkMatchType(mt); err != nil {
		return repository.PageResult[model.RefItem]{}, err
	}
	return s.repo.ListTeams(ctx, mt, normalizePage(page))
}

func (s *referenceService) ListGrounds(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error) {
	if err := checkMatchType(mt); err != nil {
		return repository.PageResult[model.RefItem]{}, err
	}
	return s.repo.ListGrounds(ctx, mt, normalizePage(page))
}

func (s *referenceService) ListCountries(ctx context.Context, mt model.MatchType, page repository.Page) (repository.PageResult[model.RefItem], error) {
	if err := checkMatchType(mt); err != nil {
		return repository.PageResult[model.RefItem]{}, err
	}
	return s.repo.ListCountries(ctx, mt, normalizePage(page))
}

func (s *referenceService) FindPlayers(ctx context.Context, prefix string, page repository.Page) (repository.PageResult[model.RefItem], error) {
	prefix = strings.TrimSpace(prefix)
	if len(prefix) < 2 {
		return repository.PageResult[model.RefItem]{}, NewInvalidInputError([]FieldError{{Field: "name", Message: "at least 2 characters"}})
	}
	return s.repo.FindPlayers(ctx, prefix, normalizePage(page))
}
