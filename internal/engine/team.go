package engine

import "github.com/maxviazov/cricket-records-service/internal/model"

// side is one team's perspective of a match.
type side struct {
	model.MatchTeam
	matchID int64
}

func sideIdentity(s side) identity {
	return identity{matchID: s.matchID, teamID: s.TeamID, opponentID: s.OpponentID}
}

// sideRecords yields one record per qualifying (match, team) side. It feeds
// the match and result counts of the team aggregate.
func sideRecords(x *extractor, ds *Dataset) []Record[side] {
	sides := make([]side, 0, 2*len(ds.Matches))
	for _, m := range ds.Matches {
		for _, mt := range m.Teams {
			sides = append(sides, side{MatchTeam: mt, matchID: m.ID})
		}
	}
	return extract(x, sides, sideIdentity, false)
}

func teamInningsRecords(x *extractor, ds *Dataset) []Record[model.TeamInnings] {
	return extract(x, ds.TeamInnings, teamInningsIdentity, false)
}

// aggregateTeams builds one TeamRow per (team, match type, dimension).
func aggregateTeams(x *extractor, ds *Dataset) []model.TeamRow {
	type acc struct {
		row     model.TeamRow
		matches map[int64]struct{}
		lowest  int
	}
	var (
		keys []partitionKey
		accs = make(map[partitionKey]*acc)
	)
	get := func(k partitionKey) *acc {
		a, ok := accs[k]
		if !ok {
			a = &acc{
				row: model.TeamRow{
					Dimensioned: x.dimensioned(k.mt, k.dim),
					TeamID:      k.id,
					Name:        x.names.Team(k.id),
				},
				matches: make(map[int64]struct{}),
				lowest:  -1,
			}
			accs[k] = a
			keys = append(keys, k)
		}
		return a
	}

	for _, r := range sideRecords(x, ds) {
		a := get(partitionKey{id: r.TeamID, mt: r.Match.MatchType, dim: r.Dim})
		if _, seen := a.matches[r.Match.ID]; seen {
			continue
		}
		a.matches[r.Match.ID] = struct{}{}
		a.row.Matches++
		res := r.Entry.Result
		switch {
		case res&model.ResultWon != 0:
			a.row.Won++
		case res&model.ResultLost != 0:
			a.row.Lost++
		case res&model.ResultTied != 0:
			a.row.Tied++
		case res&model.ResultDrawn != 0:
			a.row.Drawn++
		case res&model.ResultNoResult != 0:
			a.row.NoResult++
		}
	}

	for _, r := range teamInningsRecords(x, ds) {
		e := r.Entry
		a := get(partitionKey{id: r.TeamID, mt: r.Match.MatchType, dim: r.Dim})
		a.row.Innings++
		a.row.Runs += e.Runs
		a.row.Balls += e.Balls
		a.row.WicketsLost += e.Wickets
		a.row.Extras += e.Extras()
		if e.Runs > a.row.HighestTotal {
			a.row.HighestTotal = e.Runs
		}
		if e.AllOut && (a.lowest < 0 || e.Runs < a.lowest) {
			a.lowest = e.Runs
		}
	}

	rows := make([]model.TeamRow, 0, len(keys))
	for _, k := range keys {
		a := accs[k]
		if a.lowest >= 0 {
			low := a.lowest
			a.row.LowestAllOut = &low
		}
		a.row.RunRate = RunRate(a.row.Runs, a.row.Balls)
		a.row.Average = TeamAverage(a.row.Runs, a.row.WicketsLost)
		a.row.ExtrasPercent = ExtrasPercent(a.row.Extras, a.row.Runs)
		rows = append(rows, a.row)
	}
	return threshold(x.f, rows, func(r model.TeamRow) int { return r.Runs })
}

// teamInningsRows lists every qualifying team innings.
func teamInningsRows(x *extractor, ds *Dataset) []model.TeamInningsRow {
	recs := teamInningsRecords(x, ds)
	rows := make([]model.TeamInningsRow, 0, len(recs))
	for _, r := range recs {
		e := r.Entry
		row := model.TeamInningsRow{
			Dimensioned: x.dimensioned(r.Match.MatchType, r.Dim),
			MatchID:     r.Match.ID,
			Innings:     e.Innings,
			TeamID:      r.TeamID,
			Team:        x.names.Team(r.TeamID),
			Opponent:    x.names.Team(r.OpponentID),
			Ground:      x.names.Ground(r.Match.GroundID),
			StartDate:   r.Match.StartDate,
			Runs:        e.Runs,
			Wickets:     e.Wickets,
			Balls:       e.Balls,
			Extras:      e.Extras(),
			AllOut:      e.AllOut,
			Declared:    e.Declared,
			RunRate:     RunRate(e.Runs, e.Balls),
		}
		if mt, ok := r.Match.Perspective(r.TeamID); ok {
			row.Result = mt.Result
		}
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.TeamInningsRow) int { return r.Runs })
}

var teamColumns = Columns[model.TeamRow]{
	fields: map[SortField]Comparator[model.TeamRow]{
		"matches":        asc(func(r model.TeamRow) int { return r.Matches }),
		"won":            asc(func(r model.TeamRow) int { return r.Won }),
		"lost":           asc(func(r model.TeamRow) int { return r.Lost }),
		"drawn":          asc(func(r model.TeamRow) int { return r.Drawn }),
		"tied":           asc(func(r model.TeamRow) int { return r.Tied }),
		"no_result":      asc(func(r model.TeamRow) int { return r.NoResult }),
		"innings":        asc(func(r model.TeamRow) int { return r.Innings }),
		"runs":           asc(func(r model.TeamRow) int { return r.Runs }),
		"balls":          asc(func(r model.TeamRow) int { return r.Balls }),
		"wickets_lost":   asc(func(r model.TeamRow) int { return r.WicketsLost }),
		"extras":         asc(func(r model.TeamRow) int { return r.Extras }),
		"highest_total":  asc(func(r model.TeamRow) int { return r.HighestTotal }),
		"lowest_all_out": asc(func(r model.TeamRow) int { return derefInt(r.LowestAllOut) }),
		"run_rate":       asc(func(r model.TeamRow) float64 { return r.RunRate }),
		"average":        asc(func(r model.TeamRow) float64 { return r.Average }),
		"extras_percent": asc(func(r model.TeamRow) float64 { return derefFloat(r.ExtrasPercent) }),
		"name":           asc(func(r model.TeamRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "won", Direction: Desc},
	name: func(r model.TeamRow) string { return r.Name },
	key: rowKey(
		func(r model.TeamRow) int64 { return r.TeamID },
		func(r model.TeamRow) model.DimensionValue { return r.Dimension },
	),
}

var teamInningsColumns = Columns[model.TeamInningsRow]{
	fields: map[SortField]Comparator[model.TeamInningsRow]{
		"runs":       asc(func(r model.TeamInningsRow) int { return r.Runs }),
		"wickets":    asc(func(r model.TeamInningsRow) int { return r.Wickets }),
		"balls":      asc(func(r model.TeamInningsRow) int { return r.Balls }),
		"extras":     asc(func(r model.TeamInningsRow) int { return r.Extras }),
		"run_rate":   asc(func(r model.TeamInningsRow) float64 { return r.RunRate }),
		"start_date": asc(func(r model.TeamInningsRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.TeamInningsRow) string { return r.Team }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.TeamInningsRow) string { return r.Team },
	key: performanceKey(
		func(r model.TeamInningsRow) int64 { return r.MatchID },
		func(r model.TeamInningsRow) int { return r.Innings },
		func(r model.TeamInningsRow) int64 { return r.TeamID },
	),
}
