package engine

import "github.com/maxviazov/cricket-records-service/internal/model"

func battingRecords(x *extractor, ds *Dataset) []Record[model.BattingEntry] {
	return extract(x, ds.Batting, battingIdentity, true)
}

func battingInnings(e model.BattingEntry) int { return e.Innings }

// aggregateBatting builds one BattingRow per (player, match type, dimension).
func aggregateBatting(x *extractor, ds *Dataset) []model.BattingRow {
	parts := partitionBy(battingRecords(x, ds), byPlayer[model.BattingEntry])
	rows := make([]model.BattingRow, 0, len(parts))
	for _, p := range parts {
		row := model.BattingRow{
			Dimensioned: x.dimensioned(p.key.mt, p.key.dim),
			PlayerID:    p.key.id,
			Name:        x.names.Player(p.key.id),
			Teams:       teamNames(x.names, p.teams()),
			Matches:     p.matches(),
		}
		var (
			balls, recorded, excluded int
			batted                    []Record[model.BattingEntry]
		)
		for _, r := range p.recs {
			e := r.Entry
			if !e.Dismissal.Batted() {
				continue
			}
			batted = append(batted, r)
			row.Innings++
			row.Runs += e.Runs
			row.Fours += e.Fours
			row.Sixes += e.Sixes
			if e.Dismissal.NotOut() {
				row.NotOuts++
			} else if e.Runs == 0 {
				row.Ducks++
			}
			switch {
			case e.Runs >= 100:
				row.Hundreds++
			case e.Runs >= 50:
				row.Fifties++
			}
			switch {
			case e.Balls != nil:
				recorded++
				balls += *e.Balls
			case e.Dismissal.ExcludedFromBalls():
				excluded++
			}
		}
		if best, ok := SelectBest(batted, bestBatting); ok {
			row.HighestScore = best.Entry.Runs
			row.HighestNotOut = best.Entry.Dismissal.NotOut()
		}
		row.CompletedInns = CompletedInnings(row.Innings, row.NotOuts)
		row.Balls = ballsFaced(row.Innings, recorded, excluded, balls)
		row.Average = BattingAverage(row.Runs, row.CompletedInns)
		if row.Balls != nil {
			row.StrikeRate = BattingStrikeRate(row.Runs, *row.Balls)
		}
		row.BattingIndex = BattingIndex(row.Average, row.StrikeRate)
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.BattingRow) int { return r.Runs })
}

// battingInningsRows lists every innings played, one row each.
func battingInningsRows(x *extractor, ds *Dataset) []model.BattingInningsRow {
	recs := battingRecords(x, ds)
	rows := make([]model.BattingInningsRow, 0, len(recs))
	for _, r := range recs {
		e := r.Entry
		if !e.Dismissal.Batted() {
			continue
		}
		row := model.BattingInningsRow{
			Dimensioned: x.dimensioned(r.Match.MatchType, r.Dim),
			MatchID:     r.Match.ID,
			Innings:     e.Innings,
			PlayerID:    r.PlayerID,
			Name:        x.names.Player(r.PlayerID),
			Team:        x.names.Team(r.TeamID),
			Opponent:    x.names.Team(r.OpponentID),
			Ground:      x.names.Ground(r.Match.GroundID),
			StartDate:   r.Match.StartDate,
			Runs:        e.Runs,
			NotOut:      e.Dismissal.NotOut(),
			Balls:       e.Balls,
			Fours:       e.Fours,
			Sixes:       e.Sixes,
			Dismissal:   e.Dismissal,
		}
		if e.Balls != nil {
			row.StrikeRate = BattingStrikeRate(e.Runs, *e.Balls)
		}
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.BattingInningsRow) int { return r.Runs })
}

// battingMatchRows sums each player's innings within a match. A missing
// second innings counts as zero; limited-overs matches take the first only.
func battingMatchRows(x *extractor, ds *Dataset) []model.BattingMatchRow {
	groups := byMatch(battingRecords(x, ds), battingInnings)
	rows := make([]model.BattingMatchRow, 0, len(groups))
	for _, g := range groups {
		first := g[0]
		row := model.BattingMatchRow{
			Dimensioned: x.dimensioned(first.Match.MatchType, first.Dim),
			MatchID:     first.Match.ID,
			PlayerID:    first.PlayerID,
			Name:        x.names.Player(first.PlayerID),
			Team:        x.names.Team(first.TeamID),
			Opponent:    x.names.Team(first.OpponentID),
			Ground:      x.names.Ground(first.Match.GroundID),
			StartDate:   first.Match.StartDate,
		}
		played, limit := 0, inningsPerSide(first.Match.MatchType)
		for _, r := range g {
			e := r.Entry
			if !e.Dismissal.Batted() {
				continue
			}
			if played == limit {
				break
			}
			played++
			switch played {
			case 1:
				row.Runs1, row.NotOut1 = e.Runs, e.Dismissal.NotOut()
			case 2:
				row.Runs2, row.NotOut2 = e.Runs, e.Dismissal.NotOut()
			}
		}
		if played == 0 {
			continue
		}
		row.Runs = row.Runs1 + row.Runs2
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.BattingMatchRow) int { return r.Runs })
}

var battingColumns = Columns[model.BattingRow]{
	fields: map[SortField]Comparator[model.BattingRow]{
		"matches":       asc(func(r model.BattingRow) int { return r.Matches }),
		"innings":       asc(func(r model.BattingRow) int { return r.Innings }),
		"not_outs":      asc(func(r model.BattingRow) int { return r.NotOuts }),
		"runs":          asc(func(r model.BattingRow) int { return r.Runs }),
		"balls":         asc(func(r model.BattingRow) int { return derefInt(r.Balls) }),
		"highest_score": asc(func(r model.BattingRow) float64 { return EncodeBest(r.HighestScore, r.HighestNotOut) }),
		"hundreds":      asc(func(r model.BattingRow) int { return r.Hundreds }),
		"fifties":       asc(func(r model.BattingRow) int { return r.Fifties }),
		"ducks":         asc(func(r model.BattingRow) int { return r.Ducks }),
		"fours":         asc(func(r model.BattingRow) int { return r.Fours }),
		"sixes":         asc(func(r model.BattingRow) int { return r.Sixes }),
		"average":       asc(func(r model.BattingRow) float64 { return r.Average }),
		"strike_rate":   asc(func(r model.BattingRow) float64 { return r.StrikeRate }),
		"batting_index": asc(func(r model.BattingRow) float64 { return r.BattingIndex }),
		"name":          asc(func(r model.BattingRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.BattingRow) string { return r.Name },
	key: rowKey(
		func(r model.BattingRow) int64 { return r.PlayerID },
		func(r model.BattingRow) model.DimensionValue { return r.Dimension },
	),
}

var battingInningsColumns = Columns[model.BattingInningsRow]{
	fields: map[SortField]Comparator[model.BattingInningsRow]{
		"runs":        asc(func(r model.BattingInningsRow) float64 { return EncodeBest(r.Runs, r.NotOut) }),
		"balls":       asc(func(r model.BattingInningsRow) int { return derefInt(r.Balls) }),
		"fours":       asc(func(r model.BattingInningsRow) int { return r.Fours }),
		"sixes":       asc(func(r model.BattingInningsRow) int { return r.Sixes }),
		"strike_rate": asc(func(r model.BattingInningsRow) float64 { return r.StrikeRate }),
		"start_date":  asc(func(r model.BattingInningsRow) int64 { return r.StartDate.Unix() }),
		"name":        asc(func(r model.BattingInningsRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.BattingInningsRow) string { return r.Name },
	key: performanceKey(
		func(r model.BattingInningsRow) int64 { return r.MatchID },
		func(r model.BattingInningsRow) int { return r.Innings },
		func(r model.BattingInningsRow) int64 { return r.PlayerID },
	),
}

var battingMatchColumns = Columns[model.BattingMatchRow]{
	fields: map[SortField]Comparator[model.BattingMatchRow]{
		"runs":       asc(func(r model.BattingMatchRow) int { return r.Runs }),
		"runs1":      asc(func(r model.BattingMatchRow) int { return r.Runs1 }),
		"runs2":      asc(func(r model.BattingMatchRow) int { return r.Runs2 }),
		"start_date": asc(func(r model.BattingMatchRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.BattingMatchRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.BattingMatchRow) string { return r.Name },
	key: performanceKey(
		func(r model.BattingMatchRow) int64 { return r.MatchID },
		func(model.BattingMatchRow) int { return 0 },
		func(r model.BattingMatchRow) int64 { return r.PlayerID },
	),
}

func derefInt(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
