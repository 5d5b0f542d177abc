package engine

import "github.com/maxviazov/cricket-records-service/internal/model"

func bowlingRecords(x *extractor, ds *Dataset) []Record[model.BowlingEntry] {
	return extract(x, ds.Bowling, bowlingIdentity, true)
}

func bowlingInnings(e model.BowlingEntry) int { return e.Innings }

// matchFigures sums a player's bowling in each match of recs.
func matchFigures(recs []Record[model.BowlingEntry]) []figures {
	groups := byMatch(recs, bowlingInnings)
	out := make([]figures, 0, len(groups))
	for _, g := range groups {
		f := figures{matchID: g[0].Match.ID}
		for _, r := range g {
			f.wickets += r.Entry.Wickets
			f.runs += r.Entry.Runs
		}
		out = append(out, f)
	}
	return out
}

// aggregateBowling builds one BowlingRow per (player, match type, dimension),
// including best innings and best match figures.
func aggregateBowling(x *extractor, ds *Dataset) []model.BowlingRow {
	parts := partitionBy(bowlingRecords(x, ds), byPlayer[model.BowlingEntry])
	rows := make([]model.BowlingRow, 0, len(parts))
	for _, p := range parts {
		row := model.BowlingRow{
			Dimensioned: x.dimensioned(p.key.mt, p.key.dim),
			PlayerID:    p.key.id,
			Name:        x.names.Player(p.key.id),
			Teams:       teamNames(x.names, p.teams()),
			Matches:     p.matches(),
			Innings:     len(p.recs),
		}
		for _, r := range p.recs {
			e := r.Entry
			row.Balls += e.Balls
			row.Maidens += e.Maidens
			row.Runs += e.Runs
			row.Wickets += e.Wickets
			if e.Wickets >= 5 {
				row.FiveFors++
			}
		}
		if best, ok := SelectBest(p.recs, bestBowling); ok {
			row.BestInnWickets, row.BestInnRuns = best.Entry.Wickets, best.Entry.Runs
		}
		perMatch := matchFigures(p.recs)
		for _, f := range perMatch {
			if f.wickets >= 10 {
				row.TenFors++
			}
		}
		if best, ok := SelectBest(perMatch, bestFigures); ok {
			row.BestMatchWkts, row.BestMatchRuns = best.wickets, best.runs
		}
		row.Average = BowlingAverage(row.Runs, row.Wickets)
		row.Economy = EconomyRate(row.Runs, row.Balls)
		row.StrikeRate = BowlingStrikeRate(row.Balls, row.Wickets)
		row.BowlingIndex = BowlingIndex(row.Runs, row.Balls, row.Wickets)
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.BowlingRow) int { return r.Wickets })
}

func bowlingInningsRows(x *extractor, ds *Dataset) []model.BowlingInningsRow {
	recs := bowlingRecords(x, ds)
	rows := make([]model.BowlingInningsRow, 0, len(recs))
	for _, r := range recs {
		e := r.Entry
		rows = append(rows, model.BowlingInningsRow{
			Dimensioned: x.dimensioned(r.Match.MatchType, r.Dim),
			MatchID:     r.Match.ID,
			Innings:     e.Innings,
			PlayerID:    r.PlayerID,
			Name:        x.names.Player(r.PlayerID),
			Team:        x.names.Team(r.TeamID),
			Opponent:    x.names.Team(r.OpponentID),
			Ground:      x.names.Ground(r.Match.GroundID),
			StartDate:   r.Match.StartDate,
			Balls:       e.Balls,
			Maidens:     e.Maidens,
			Runs:        e.Runs,
			Wickets:     e.Wickets,
			Economy:     EconomyRate(e.Runs, e.Balls),
		})
	}
	return threshold(x.f, rows, func(r model.BowlingInningsRow) int { return r.Wickets })
}

// bowlingMatchRows sums each player's bowling within a match. A missing
// second innings counts as zero; limited-overs matches take the first only.
func bowlingMatchRows(x *extractor, ds *Dataset) []model.BowlingMatchRow {
	groups := byMatch(bowlingRecords(x, ds), bowlingInnings)
	rows := make([]model.BowlingMatchRow, 0, len(groups))
	for _, g := range groups {
		first := g[0]
		row := model.BowlingMatchRow{
			Dimensioned: x.dimensioned(first.Match.MatchType, first.Dim),
			MatchID:     first.Match.ID,
			PlayerID:    first.PlayerID,
			Name:        x.names.Player(first.PlayerID),
			Team:        x.names.Team(first.TeamID),
			Opponent:    x.names.Team(first.OpponentID),
			Ground:      x.names.Ground(first.Match.GroundID),
			StartDate:   first.Match.StartDate,
		}
		if limit := inningsPerSide(first.Match.MatchType); len(g) > limit {
			g = g[:limit]
		}
		for i, r := range g {
			e := r.Entry
			switch i {
			case 0:
				row.Wickets1, row.Runs1 = e.Wickets, e.Runs
			case 1:
				row.Wickets2, row.Runs2 = e.Wickets, e.Runs
			}
			row.Balls += e.Balls
		}
		row.Wickets = row.Wickets1 + row.Wickets2
		row.Runs = row.Runs1 + row.Runs2
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.BowlingMatchRow) int { return r.Wickets })
}

// bowlingBestRows keeps each partition's single best bowling innings.
func bowlingBestRows(x *extractor, ds *Dataset) []model.BowlingBestRow {
	parts := partitionBy(bowlingRecords(x, ds), byPlayer[model.BowlingEntry])
	rows := make([]model.BowlingBestRow, 0, len(parts))
	for _, p := range parts {
		best, ok := SelectBest(p.recs, bestBowling)
		if !ok {
			continue
		}
		rows = append(rows, model.BowlingBestRow{
			Dimensioned: x.dimensioned(p.key.mt, p.key.dim),
			PlayerID:    p.key.id,
			Name:        x.names.Player(p.key.id),
			MatchID:     best.Match.ID,
			Innings:     best.Entry.Innings,
			Team:        x.names.Team(best.TeamID),
			Opponent:    x.names.Team(best.OpponentID),
			StartDate:   best.Match.StartDate,
			Wickets:     best.Entry.Wickets,
			Runs:        best.Entry.Runs,
			Balls:       best.Entry.Balls,
		})
	}
	return threshold(x.f, rows, func(r model.BowlingBestRow) int { return r.Wickets })
}

var bowlingColumns = Columns[model.BowlingRow]{
	fields: map[SortField]Comparator[model.BowlingRow]{
		"matches":       asc(func(r model.BowlingRow) int { return r.Matches }),
		"innings":       asc(func(r model.BowlingRow) int { return r.Innings }),
		"balls":         asc(func(r model.BowlingRow) int { return r.Balls }),
		"maidens":       asc(func(r model.BowlingRow) int { return r.Maidens }),
		"runs":          asc(func(r model.BowlingRow) int { return r.Runs }),
		"wickets":       asc(func(r model.BowlingRow) int { return r.Wickets }),
		"five_fors":     asc(func(r model.BowlingRow) int { return r.FiveFors }),
		"ten_fors":      asc(func(r model.BowlingRow) int { return r.TenFors }),
		"average":       asc(func(r model.BowlingRow) float64 { return r.Average }),
		"economy":       asc(func(r model.BowlingRow) float64 { return r.Economy }),
		"strike_rate":   asc(func(r model.BowlingRow) float64 { return r.StrikeRate }),
		"bowling_index": asc(func(r model.BowlingRow) float64 { return r.BowlingIndex }),
		"name":          asc(func(r model.BowlingRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "wickets", Direction: Desc},
	name: func(r model.BowlingRow) string { return r.Name },
	key: rowKey(
		func(r model.BowlingRow) int64 { return r.PlayerID },
		func(r model.BowlingRow) model.DimensionValue { return r.Dimension },
	),
}

var bowlingInningsColumns = Columns[model.BowlingInningsRow]{
	fields: map[SortField]Comparator[model.BowlingInningsRow]{
		"wickets":    asc(func(r model.BowlingInningsRow) int { return r.Wickets }),
		"runs":       asc(func(r model.BowlingInningsRow) int { return r.Runs }),
		"balls":      asc(func(r model.BowlingInningsRow) int { return r.Balls }),
		"maidens":    asc(func(r model.BowlingInningsRow) int { return r.Maidens }),
		"economy":    asc(func(r model.BowlingInningsRow) float64 { return r.Economy }),
		"start_date": asc(func(r model.BowlingInningsRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.BowlingInningsRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "wickets", Direction: Desc},
	name: func(r model.BowlingInningsRow) string { return r.Name },
	key: performanceKey(
		func(r model.BowlingInningsRow) int64 { return r.MatchID },
		func(r model.BowlingInningsRow) int { return r.Innings },
		func(r model.BowlingInningsRow) int64 { return r.PlayerID },
	),
}

var bowlingMatchColumns = Columns[model.BowlingMatchRow]{
	fields: map[SortField]Comparator[model.BowlingMatchRow]{
		"wickets":    asc(func(r model.BowlingMatchRow) int { return r.Wickets }),
		"runs":       asc(func(r model.BowlingMatchRow) int { return r.Runs }),
		"balls":      asc(func(r model.BowlingMatchRow) int { return r.Balls }),
		"start_date": asc(func(r model.BowlingMatchRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.BowlingMatchRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "wickets", Direction: Desc},
	name: func(r model.BowlingMatchRow) string { return r.Name },
	key: performanceKey(
		func(r model.BowlingMatchRow) int64 { return r.MatchID },
		func(model.BowlingMatchRow) int { return 0 },
		func(r model.BowlingMatchRow) int64 { return r.PlayerID },
	),
}

var bowlingBestColumns = Columns[model.BowlingBestRow]{
	fields: map[SortField]Comparator[model.BowlingBestRow]{
		// Best figures: more wickets first, then fewer runs.
		"figures": desc(func(r model.BowlingBestRow) int { return r.Wickets }).
			then(asc(func(r model.BowlingBestRow) int { return r.Runs })).
			then(asc(func(r model.BowlingBestRow) int64 { return r.MatchID })),
		"wickets":    asc(func(r model.BowlingBestRow) int { return r.Wickets }),
		"runs":       asc(func(r model.BowlingBestRow) int { return r.Runs }),
		"balls":      asc(func(r model.BowlingBestRow) int { return r.Balls }),
		"start_date": asc(func(r model.BowlingBestRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.BowlingBestRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "figures", Direction: Asc},
	name: func(r model.BowlingBestRow) string { return r.Name },
	key: rowKey(
		func(r model.BowlingBestRow) int64 { return r.PlayerID },
		func(r model.BowlingBestRow) model.DimensionValue { return r.Dimension },
	),
}
