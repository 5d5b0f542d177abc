package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

const dateLayout = "2006-01-02"

const matchColumns = `m.id, m.match_type, m.match_sub_type, m.ground_id, m.host_country_id,
	CAST(m.start_date AS TEXT), m.season, m.series_number, m.series_date, m.balls_per_over,
	m.victory_type, m.winner_id, m.abandoned`

const (
	battingColumns = `d.match_id, d.innings, d.team_id, d.opponent_id, d.player_id, d.position,
	d.dismissal, d.runs, d.balls, d.fours, d.sixes, d.captain, d.wicket_keeper`
	bowlingColumns = `d.match_id, d.innings, d.team_id, d.opponent_id, d.player_id, d.balls,
	d.maidens, d.runs, d.wickets, d.no_balls, d.wides, d.captain`
	fieldingColumns = `d.match_id, d.innings, d.team_id, d.opponent_id, d.player_id,
	d.caught_fielder, d.caught_keeper, d.stumped`
	partnershipColumns = `d.match_id, d.innings, d.team_id, d.opponent_id, d.wicket, d.seq,
	d.player_id, d.runs, d.unbroken, d.partial`
	teamInningsColumns = `d.match_id, d.innings, d.team_id, d.opponent_id, d.runs, d.wickets, d.balls,
	d.byes, d.leg_byes, d.wides, d.no_balls, d.penalties, d.all_out, d.declared`
)

// LoadDataset stages the qualifying (match, team) pairs of f in a temp table
// named staging and reads everything the engine needs for it. The caller owns
// the table: it must be created on the same session and dropped afterwards.
func LoadDataset(ctx context.Context, q Querier, d Dialect, staging string, f engine.QualificationFilter, needs engine.Needs) (*engine.Dataset, error) {
	if err := q.Exec(ctx, d.TempTable(staging)); err != nil {
		return nil, fmt.Errorf("create staging: %w", err)
	}
	where, args := engine.UniverseWhere(f, d.Placeholder)
	fill := `INSERT INTO ` + staging + ` (match_id, team_id)
		SELECT m.id, mt.team_id FROM matches m JOIN match_teams mt ON mt.match_id = m.id WHERE ` + where
	if err := q.Exec(ctx, fill, args...); err != nil {
		return nil, fmt.Errorf("stage universe: %w", err)
	}

	ds := &engine.Dataset{}
	inStaged := `(SELECT match_id FROM ` + staging + `)`
	onStaged := ` JOIN ` + staging + ` s ON s.match_id = d.match_id AND s.team_id = d.team_id`

	matches, err := queryAll(ctx, q, `SELECT `+matchColumns+` FROM matches m WHERE m.id IN `+inStaged+` ORDER BY m.id`, nil, scanMatch)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	teams, err := queryAll(ctx, q, `SELECT mt.match_id, mt.team_id, mt.opponent_id, mt.result, mt.home_away
		FROM match_teams mt WHERE mt.match_id IN `+inStaged+` ORDER BY mt.match_id, mt.team_id`, nil, scanMatchTeam)
	if err != nil {
		return nil, fmt.Errorf("load match teams: %w", err)
	}
	ds.Matches = attachTeams(matches, teams)

	if needs.Has(engine.NeedBatting) {
		ds.Batting, err = queryAll(ctx, q, `SELECT `+battingColumns+` FROM batting_details d`+onStaged+
			` ORDER BY d.match_id, d.innings, d.team_id, d.position`, nil, scanBatting)
		if err != nil {
			return nil, fmt.Errorf("load batting: %w", err)
		}
	}
	if needs.Has(engine.NeedBowling) {
		ds.Bowling, err = queryAll(ctx, q, `SELECT `+bowlingColumns+` FROM bowling_details d`+onStaged+
			` ORDER BY d.match_id, d.innings, d.team_id, d.player_id`, nil, scanBowling)
		if err != nil {
			return nil, fmt.Errorf("load bowling: %w", err)
		}
	}
	if needs.Has(engine.NeedFielding) {
		ds.Fielding, err = queryAll(ctx, q, `SELECT `+fieldingColumns+` FROM fielding_details d`+onStaged+
			` ORDER BY d.match_id, d.innings, d.team_id, d.player_id`, nil, scanFielding)
		if err != nil {
			return nil, fmt.Errorf("load fielding: %w", err)
		}
	}
	if needs.Has(engine.NeedPartnerships) {
		ds.Partnerships, err = queryAll(ctx, q, `SELECT `+partnershipColumns+` FROM partnerships d`+onStaged+
			` ORDER BY d.match_id, d.innings, d.wicket, d.seq`, nil, scanPartnership)
		if err != nil {
			return nil, fmt.Errorf("load partnerships: %w", err)
		}
	}
	if needs.Has(engine.NeedTeamInnings) {
		// both sides: targets need the defending side's total
		ds.TeamInnings, err = queryAll(ctx, q, `SELECT `+teamInningsColumns+` FROM team_innings d
			WHERE d.match_id IN `+inStaged+` ORDER BY d.match_id, d.innings, d.team_id`, nil, scanTeamInnings)
		if err != nil {
			return nil, fmt.Errorf("load team innings: %w", err)
		}
	}

	ds.Names, err = loadNames(ctx, q, players(staging, needs))
	if err != nil {
		return nil, fmt.Errorf("load names: %w", err)
	}
	return ds, nil
}

// players selects the ids of everyone appearing in the staged detail tables.
func players(staging string, needs engine.Needs) string {
	tables := []struct {
		need  engine.Needs
		table string
	}{
		{engine.NeedBatting, "batting_details"},
		{engine.NeedBowling, "bowling_details"},
		{engine.NeedFielding, "fielding_details"},
		{engine.NeedPartnerships, "partnerships"},
	}
	var parts []string
	for _, t := range tables {
		if needs.Has(t.need) {
			parts = append(parts, `SELECT d.player_id FROM `+t.table+` d JOIN `+staging+
				` s ON s.match_id = d.match_id AND s.team_id = d.team_id`)
		}
	}
	return strings.Join(parts, " UNION ")
}

// loadNames reads every team, ground and country plus the players selected
// by playerIDs, a subquery returning player ids. Empty means no players.
func loadNames(ctx context.Context, q Querier, playerIDs string, args ...any) (model.Names, error) {
	names := model.NewNames()
	teams, err := queryAll(ctx, q, `SELECT id, name FROM teams`, nil, scanRef)
	if err != nil {
		return names, err
	}
	for _, t := range teams {
		names.Teams[t.ID] = t.Name
	}
	countries, err := queryAll(ctx, q, `SELECT id, name FROM countries`, nil, scanRef)
	if err != nil {
		return names, err
	}
	for _, c := range countries {
		names.Countries[c.ID] = c.Name
	}
	grounds, err := queryAll(ctx, q, `SELECT id, country_id, name FROM grounds`, nil, scanGround)
	if err != nil {
		return names, err
	}
	for _, g := range grounds {
		names.Grounds[g.ID] = g
	}
	if playerIDs == "" {
		return names, nil
	}
	ps, err := queryAll(ctx, q, `SELECT p.id, p.name FROM players p WHERE p.id IN (`+playerIDs+`)`, args, scanRef)
	if err != nil {
		return names, err
	}
	for _, p := range ps {
		names.Players[p.ID] = p.Name
	}
	return names, nil
}

type matchTeam struct {
	matchID int64
	model.MatchTeam
}

// attachTeams hangs the perspectives onto their matches. Both slices are
// ordered by match id.
func attachTeams(matches []model.Match, teams []matchTeam) []model.Match {
	j := 0
	for i := range matches {
		for j < len(teams) && teams[j].matchID < matches[i].ID {
			j++
		}
		for j < len(teams) && teams[j].matchID == matches[i].ID {
			matches[i].Teams = append(matches[i].Teams, teams[j].MatchTeam)
			j++
		}
	}
	return matches
}

func scanMatch(r Rows) (model.Match, error) {
	var (
		m          model.Match
		mt, sub    string
		start      string
		victory    int
		abandoned  bool
		seriesDate string
	)
	if err := r.Scan(&m.ID, &mt, &sub, &m.GroundID, &m.HostCountryID, &start, &m.Season,
		&m.SeriesNumber, &seriesDate, &m.BallsPerOver, &victory, &m.WinnerID, &abandoned); err != nil {
		return m, err
	}
	day, err := time.Parse(dateLayout, start)
	if err != nil {
		return m, fmt.Errorf("match %d start date: %w", m.ID, err)
	}
	m.MatchType = model.MatchType(mt)
	m.MatchSubType = model.MatchType(sub)
	m.StartDate = day
	m.SeriesDate = seriesDate
	m.VictoryType = model.VictoryType(victory)
	m.Abandoned = abandoned
	return m, nil
}

func scanMatchTeam(r Rows) (matchTeam, error) {
	var (
		t              matchTeam
		result, venues int
	)
	if err := r.Scan(&t.matchID, &t.TeamID, &t.OpponentID, &result, &venues); err != nil {
		return t, err
	}
	t.Result = model.ResultCode(result)
	t.HomeAway = model.VenueCode(venues)
	return t, nil
}

func scanBatting(r Rows) (model.BattingEntry, error) {
	var (
		e   model.BattingEntry
		how int
	)
	err := r.Scan(&e.MatchID, &e.Innings, &e.TeamID, &e.OpponentID, &e.PlayerID, &e.Position,
		&how, &e.Runs, &e.Balls, &e.Fours, &e.Sixes, &e.Captain, &e.WicketKeeper)
	e.Dismissal = model.DismissalType(how)
	return e, err
}

func scanBowling(r Rows) (model.BowlingEntry, error) {
	var e model.BowlingEntry
	err := r.Scan(&e.MatchID, &e.Innings, &e.TeamID, &e.OpponentID, &e.PlayerID, &e.Balls,
		&e.Maidens, &e.Runs, &e.Wickets, &e.NoBalls, &e.Wides, &e.Captain)
	return e, err
}

func scanFielding(r Rows) (model.FieldingEntry, error) {
	var e model.FieldingEntry
	err := r.Scan(&e.MatchID, &e.Innings, &e.TeamID, &e.OpponentID, &e.PlayerID,
		&e.CaughtFielder, &e.CaughtKeeper, &e.Stumped)
	return e, err
}

func scanPartnership(r Rows) (model.PartnershipEntry, error) {
	var e model.PartnershipEntry
	err := r.Scan(&e.MatchID, &e.Innings, &e.TeamID, &e.OpponentID, &e.Wicket, &e.Seq,
		&e.PlayerID, &e.Runs, &e.Unbroken, &e.Partial)
	return e, err
}

func scanTeamInnings(r Rows) (model.TeamInnings, error) {
	var e model.TeamInnings
	err := r.Scan(&e.MatchID, &e.Innings, &e.TeamID, &e.OpponentID, &e.Runs, &e.Wickets, &e.Balls,
		&e.Byes, &e.LegByes, &e.Wides, &e.NoBalls, &e.Penalties, &e.AllOut, &e.Declared)
	return e, err
}

func scanRef(r Rows) (model.RefItem, error) {
	var it model.RefItem
	err := r.Scan(&it.ID, &it.Name)
	return it, err
}

func scanGround(r Rows) (model.Ground, error) {
	var g model.Ground
	err := r.Scan(&g.ID, &g.CountryID, &g.Name)
	return g, err
}
