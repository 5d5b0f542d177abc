package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/repository/contract"
	"github.com/maxviazov/cricket-records-service/internal/service"
)

// fakeScorecards serves the fixture and records which lookups ran.
type fakeScorecards struct {
	failAt string
	err    error
	calls  []string
}

func (f *fakeScorecards) hit(name string) error {
	f.calls = append(f.calls, name)
	if f.failAt == name {
		return f.err
	}
	return nil
}

func (f *fakeScorecards) GetMatch(_ context.Context, id int64) (model.Match, error) {
	if err := f.hit("match"); err != nil {
		return model.Match{}, err
	}
	for _, m := range contract.Fixture().Matches {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Match{}, repository.ErrNotFound
}

func (f *fakeScorecards) ListTeamInnings(_ context.Context, id int64) ([]model.TeamInnings, error) {
	if err := f.hit("innings"); err != nil {
		return nil, err
	}
	var out []model.TeamInnings
	for _, e := range contract.Fixture().TeamInnings {
		if e.MatchID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScorecards) ListBatting(_ context.Context, id int64) ([]model.BattingEntry, error) {
	if err := f.hit("batting"); err != nil {
		return nil, err
	}
	var out []model.BattingEntry
	for _, e := range contract.Fixture().Batting {
		if e.MatchID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScorecards) ListBowling(_ context.Context, _ int64) ([]model.BowlingEntry, error) {
	return []model.BowlingEntry{}, f.hit("bowling")
}

func (f *fakeScorecards) ListPartnerships(_ context.Context, _ int64) ([]model.PartnershipEntry, error) {
	return []model.PartnershipEntry{}, f.hit("partnerships")
}

func (f *fakeScorecards) MatchNames(_ context.Context, _ int64) (model.Names, error) {
	return contract.Fixture().Names, f.hit("names")
}

var _ repository.ScorecardRepository = (*fakeScorecards)(nil)

func TestScorecardService_Assembles(t *testing.T) {
	repo := &fakeScorecards{}
	sc, err := service.NewScorecardService(repo, zerolog.New(io.Discard)).GetScorecard(context.Background(), contract.LordsTest)
	require.NoError(t, err)

	assert.Equal(t, []string{"match", "innings", "batting", "bowling", "partnerships", "names"}, repo.calls)
	assert.Equal(t, contract.LordsTest, sc.Match.ID)
	assert.Len(t, sc.Innings, 2)
	assert.Len(t, sc.Batting, 3)
	assert.Equal(t, "Lord's", sc.Names.Ground(sc.Match.GroundID))
}

func TestScorecardService_NotFoundStopsChain(t *testing.T) {
	repo := &fakeScorecards{}
	_, err := service.NewScorecardService(repo, zerolog.New(io.Discard)).GetScorecard(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, []string{"match"}, repo.calls)
}

func TestScorecardService_FirstFailureWins(t *testing.T) {
	boom := errors.New("connection reset")
	for _, stop := range []string{"innings", "batting", "bowling", "partnerships", "names"} {
		t.Run(stop, func(t *testing.T) {
			repo := &fakeScorecards{failAt: stop, err: boom}
			sc, err := service.NewScorecardService(repo, zerolog.New(io.Discard)).GetScorecard(context.Background(), contract.LordsTest)
			require.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), stop)
			assert.Equal(t, stop, repo.calls[len(repo.calls)-1])
			assert.Zero(t, sc.Match.ID, "no partial scorecard")
		})
	}
}

func TestScorecardService_InvalidID(t *testing.T) {
	repo := &fakeScorecards{}
	_, err := service.NewScorecardService(repo, zerolog.New(io.Discard)).GetScorecard(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Empty(t, repo.calls)
}

func TestScorecardService_CanceledContext(t *testing.T) {
	repo := &fakeScorecards{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := service.NewScorecardService(repo, zerolog.New(io.Discard)).GetScorecard(ctx, contract.LordsTest)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.calls)
}
