package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

// RecordsOptions bounds records queries.
type RecordsOptions struct {
	DefaultPageSize int
	MaxPageSize     int
	QueryTimeout    time.Duration
}

type recordsService struct {
	source   repository.MatchSource
	engine   *engine.Engine
	opts     RecordsOptions
	validate *validator.Validate
	log      zerolog.Logger
}

func NewRecordsService(source repository.MatchSource, eng *engine.Engine, opts RecordsOptions, logger zerolog.Logger) RecordsService {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = repository.DefaultPageLimit
	}
	l := logger.With().Str("module", "service").Str("component", "records").Logger()
	return &recordsService{source: source, engine: eng, opts: opts, validate: newValidator(), log: l}
}

// Query validates the request before touching storage: a bad filter or an
// unknown sort field never reaches the database.
func (s *recordsService) Query(ctx context.Context, c engine.Category, f engine.QualificationFilter) (engine.Paged, error) {
	needs, err := engine.NeedsOf(c)
	if err != nil {
		return nil, invalidField("category", err)
	}
	if f.Page.PageSize == 0 {
		f.Page.PageSize = s.opts.DefaultPageSize
	}
	if err := NewInvalidInputError(validateFilter(s.validate, f, s.opts.MaxPageSize)); err != nil {
		return nil, err
	}
	if err := engine.ValidateSort(c, f.Sort); err != nil {
		return nil, invalidField("sort", err)
	}

	if s.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.QueryTimeout)
		defer cancel()
	}

	started := time.Now()
	ds, err := s.source.Load(ctx, f, needs)
	if err != nil {
		s.log.Error().Err(err).Str("category", string(c)).Msg("dataset load failed")
		return nil, fmt.Errorf("load %s: %w", c, err)
	}
	loaded := time.Since(started)

	out, err := s.engine.Run(c, f, ds)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPagination) {
			return nil, invalidField("page", err)
		}
		return nil, err
	}
	s.log.Info().
		Str("category", string(c)).
		Str("match_type", string(f.MatchType)).
		Dur("load", loaded).
		Dur("total", time.Since(started)).
		Int("total_count", out.Total()).
		Int("rows", out.Len()).
		Msg("records query served")
	return out, nil
}
