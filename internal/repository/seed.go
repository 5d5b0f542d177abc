package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/maxviazov/cricket-records-service/internal/engine"
)

// Statement is one parameterised write.
type Statement struct {
	SQL  string
	Args []any
}

// SeedStatements renders ds as inserts ordered so that referenced rows come
// first: countries, grounds, teams, players, matches, perspectives, details.
func SeedStatements(ds *engine.Dataset, ph engine.Placeholder) []Statement {
	var out []Statement
	add := func(table, cols string, n int, args ...any) {
		out = append(out, Statement{
			SQL:  "INSERT INTO " + table + " (" + cols + ") VALUES (" + params(ph, 1, n) + ")",
			Args: args,
		})
	}

	for _, id := range slices.Sorted(maps.Keys(ds.Names.Countries)) {
		add("countries", "id, name", 2, id, ds.Names.Countries[id])
	}
	for _, id := range slices.Sorted(maps.Keys(ds.Names.Grounds)) {
		g := ds.Names.Grounds[id]
		add("grounds", "id, country_id, name", 3, id, g.CountryID, g.Name)
	}
	for _, id := range slices.Sorted(maps.Keys(ds.Names.Teams)) {
		add("teams", "id, name", 2, id, ds.Names.Teams[id])
	}
	for _, id := range slices.Sorted(maps.Keys(ds.Names.Players)) {
		add("players", "id, name", 2, id, ds.Names.Players[id])
	}
	for _, m := range ds.Matches {
		add("matches", `id, match_type, match_sub_type, ground_id, host_country_id, start_date, season,
			series_number, series_date, balls_per_over, victory_type, winner_id, abandoned`, 13,
			m.ID, string(m.MatchType), string(m.MatchSubType), m.GroundID, m.HostCountryID,
			m.StartDate.Format(dateLayout), m.Season, m.SeriesNumber, m.SeriesDate, m.BallsPerOver,
			int(m.VictoryType), m.WinnerID, m.Abandoned)
	}
	for _, m := range ds.Matches {
		for _, t := range m.Teams {
			add("match_teams", "match_id, team_id, opponent_id, result, home_away", 5,
				m.ID, t.TeamID, t.OpponentID, int(t.Result), int(t.HomeAway))
		}
	}
	for _, e := range ds.Batting {
		add("batting_details", `match_id, innings, team_id, opponent_id, player_id, position, dismissal,
			runs, balls, fours, sixes, captain, wicket_keeper`, 13,
			e.MatchID, e.Innings, e.TeamID, e.OpponentID, e.PlayerID, e.Position, int(e.Dismissal),
			e.Runs, e.Balls, e.Fours, e.Sixes, e.Captain, e.WicketKeeper)
	}
	for _, e := range ds.Bowling {
		add("bowling_details", `match_id, innings, team_id, opponent_id, player_id, balls, maidens, runs,
			wickets, no_balls, wides, captain`, 12,
			e.MatchID, e.Innings, e.TeamID, e.OpponentID, e.PlayerID, e.Balls, e.Maidens, e.Runs,
			e.Wickets, e.NoBalls, e.Wides, e.Captain)
	}
	for _, e := range ds.Fielding {
		add("fielding_details", `match_id, innings, team_id, opponent_id, player_id, caught_fielder,
			caught_keeper, stumped`, 8,
			e.MatchID, e.Innings, e.TeamID, e.OpponentID, e.PlayerID, e.CaughtFielder, e.CaughtKeeper, e.Stumped)
	}
	for _, e := range ds.Partnerships {
		add("partnerships", `match_id, innings, team_id, opponent_id, wicket, seq, player_id, runs,
			unbroken, partial`, 10,
			e.MatchID, e.Innings, e.TeamID, e.OpponentID, e.Wicket, e.Seq, e.PlayerID, e.Runs,
			e.Unbroken, e.Partial)
	}
	for _, e := range ds.TeamInnings {
		add("team_innings", `match_id, innings, team_id, opponent_id, runs, wickets, balls, byes,
			leg_byes, wides, no_balls, penalties, all_out, declared`, 14,
			e.MatchID, e.Innings, e.TeamID, e.OpponentID, e.Runs, e.Wickets, e.Balls, e.Byes,
			e.LegByes, e.Wides, e.NoBalls, e.Penalties, e.AllOut, e.Declared)
	}
	return out
}

// Seed runs SeedStatements in order on q and stops at the first failure.
func Seed(ctx context.Context, q Querier, d Dialect, ds *engine.Dataset) error {
	for i, st := range SeedStatements(ds, d.Placeholder) {
		if err := q.Exec(ctx, st.SQL, st.Args...); err != nil {
			return fmt.Errorf("seed statement %d: %w", i, err)
		}
	}
	return nil
}
