package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

// step is one lookup of the scorecard chain.
type step struct {
	name string
	run  func(ctx context.Context, sc *model.Scorecard) error
}

// runSteps runs steps in order and stops at the first failure, which is
// returned wrapped with the step name. Nothing partial escapes.
func runSteps(ctx context.Context, sc *model.Scorecard, steps ...step) error {
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.run(ctx, sc); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}
	return nil
}

type scorecardService struct {
	repo repository.ScorecardRepository
	log  zerolog.Logger
}

func NewScorecardService(repo repository.ScorecardRepository, logger zerolog.Logger) ScorecardService {
	l := logger.With().Str("module", "service").Str("component", "scorecard").Logger()
	return &scorecardService{repo: repo, log: l}
}

func (s *scorecardService) GetScorecard(ctx context.Context, matchID int64) (model.Scorecard, error) {
	if matchID <= 0 {
		return model.Scorecard{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	var sc model.Scorecard
	err := runSteps(ctx, &sc,
		step{"match", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Match, err = s.repo.GetMatch(ctx, matchID)
			return err
		}},
		step{"innings", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Innings, err = s.repo.ListTeamInnings(ctx, matchID)
			return err
		}},
		step{"batting", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Batting, err = s.repo.ListBatting(ctx, matchID)
			return err
		}},
		step{"bowling", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Bowling, err = s.repo.ListBowling(ctx, matchID)
			return err
		}},
		step{"partnerships", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Partnerships, err = s.repo.ListPartnerships(ctx, matchID)
			return err
		}},
		step{"names", func(ctx context.Context, sc *model.Scorecard) (err error) {
			sc.Names, err = s.repo.MatchNames(ctx, matchID)
			return err
		}},
	)
	if err != nil {
		s.log.Debug().Err(err).Int64("match_id", matchID).Msg("scorecard assembly stopped")
		return model.Scorecard{}, err
	}
	return sc, nil
}
