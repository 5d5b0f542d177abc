package repository

import (
	"context"
	"fmt"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// ScorecardQueries implements ScorecardRepository over any Querier.
// Backends embed it and supply their own statement runner.
type ScorecardQueries struct {
	Q       Querier
	Dialect Dialect
}

// GetMatch loads a match and both perspectives. ErrNotFound if the id is unknown.
func (s ScorecardQueries) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	ph := s.Dialect.Placeholder
	ms, err := queryAll(ctx, s.Q, `SELECT `+matchColumns+` FROM matches m WHERE m.id = `+ph(1), []any{id}, scanMatch)
	if err != nil {
		return model.Match{}, err
	}
	if len(ms) == 0 {
		return model.Match{}, ErrNotFound
	}
	teams, err := queryAll(ctx, s.Q, `SELECT mt.match_id, mt.team_id, mt.opponent_id, mt.result, mt.home_away
		FROM match_teams mt WHERE mt.match_id = `+ph(1)+` ORDER BY mt.team_id`, []any{id}, scanMatchTeam)
	if err != nil {
		return model.Match{}, fmt.Errorf("match teams: %w", err)
	}
	return attachTeams(ms, teams)[0], nil
}

func (s ScorecardQueries) ListTeamInnings(ctx context.Context, matchID int64) ([]model.TeamInnings, error) {
	return queryAll(ctx, s.Q, `SELECT `+teamInningsColumns+` FROM team_innings d
		WHERE d.match_id = `+s.Dialect.Placeholder(1)+` ORDER BY d.innings, d.team_id`, []any{matchID}, scanTeamInnings)
}

func (s ScorecardQueries) ListBatting(ctx context.Context, matchID int64) ([]model.BattingEntry, error) {
	return queryAll(ctx, s.Q, `SELECT `+battingColumns+` FROM batting_details d
		WHERE d.match_id = `+s.Dialect.Placeholder(1)+` ORDER BY d.innings, d.team_id, d.position`, []any{matchID}, scanBatting)
}

func (s ScorecardQueries) ListBowling(ctx context.Context, matchID int64) ([]model.BowlingEntry, error) {
	return queryAll(ctx, s.Q, `SELECT `+bowlingColumns+` FROM bowling_details d
		WHERE d.match_id = `+s.Dialect.Placeholder(1)+` ORDER BY d.innings, d.team_id, d.player_id`, []any{matchID}, scanBowling)
}

func (s ScorecardQueries) ListPartnerships(ctx context.Context, matchID int64) ([]model.PartnershipEntry, error) {
	return queryAll(ctx, s.Q, `SELECT `+partnershipColumns+` FROM partnerships d
		WHERE d.match_id = `+s.Dialect.Placeholder(1)+` ORDER BY d.innings, d.wicket, d.seq`, []any{matchID}, scanPartnership)
}

// MatchNames resolves every name a scorecard of matchID can show.
func (s ScorecardQueries) MatchNames(ctx context.Context, matchID int64) (model.Names, error) {
	p := s.Dialect.Placeholder
	ids := `SELECT player_id FROM batting_details WHERE match_id = ` + p(1) +
		` UNION SELECT player_id FROM bowling_details WHERE match_id = ` + p(2) +
		` UNION SELECT player_id FROM partnerships WHERE match_id = ` + p(3)
	return loadNames(ctx, s.Q, ids, matchID, matchID, matchID)
}
