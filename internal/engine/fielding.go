package engine

import "github.com/maxviazov/cricket-records-service/internal/model"

func fieldingRecords(x *extractor, ds *Dataset) []Record[model.FieldingEntry] {
	return extract(x, ds.Fielding, fieldingIdentity, true)
}

// aggregateFielding builds one FieldingRow per (player, match type, dimension).
func aggregateFielding(x *extractor, ds *Dataset) []model.FieldingRow {
	parts := partitionBy(fieldingRecords(x, ds), byPlayer[model.FieldingEntry])
	rows := make([]model.FieldingRow, 0, len(parts))
	for _, p := range parts {
		row := model.FieldingRow{
			Dimensioned: x.dimensioned(p.key.mt, p.key.dim),
			PlayerID:    p.key.id,
			Name:        x.names.Player(p.key.id),
			Teams:       teamNames(x.names, p.teams()),
			Matches:     p.matches(),
			Innings:     len(p.recs),
		}
		for _, r := range p.recs {
			row.CaughtFielder += r.Entry.CaughtFielder
			row.CaughtKeeper += r.Entry.CaughtKeeper
			row.Stumped += r.Entry.Stumped
		}
		row.Dismissals = Dismissals(row.CaughtFielder, row.CaughtKeeper, row.Stumped)
		row.KeeperDismissals = KeeperDismissals(row.CaughtKeeper, row.Stumped)
		if best, ok := SelectBest(p.recs, bestFielding); ok {
			e := best.Entry
			row.BestInnDismissals = Dismissals(e.CaughtFielder, e.CaughtKeeper, e.Stumped)
			row.BestInnCaughtKeep = e.CaughtKeeper
			row.BestInnStumped = e.Stumped
		}
		rows = append(rows, row)
	}
	return threshold(x.f, rows, func(r model.FieldingRow) int { return r.Dismissals })
}

// fieldingBestRows keeps each partition's single best fielding innings.
func fieldingBestRows(x *extractor, ds *Dataset) []model.FieldingBestRow {
	parts := partitionBy(fieldingRecords(x, ds), byPlayer[model.FieldingEntry])
	rows := make([]model.FieldingBestRow, 0, len(parts))
	for _, p := range parts {
		best, ok := SelectBest(p.recs, bestFielding)
		if !ok {
			continue
		}
		e := best.Entry
		rows = append(rows, model.FieldingBestRow{
			Dimensioned:      x.dimensioned(p.key.mt, p.key.dim),
			PlayerID:         p.key.id,
			Name:             x.names.Player(p.key.id),
			MatchID:          best.Match.ID,
			Innings:          e.Innings,
			Team:             x.names.Team(best.TeamID),
			Opponent:         x.names.Team(best.OpponentID),
			StartDate:        best.Match.StartDate,
			CaughtFielder:    e.CaughtFielder,
			CaughtKeeper:     e.CaughtKeeper,
			Stumped:          e.Stumped,
			Dismissals:       Dismissals(e.CaughtFielder, e.CaughtKeeper, e.Stumped),
			KeeperDismissals: KeeperDismissals(e.CaughtKeeper, e.Stumped),
		})
	}
	return threshold(x.f, rows, func(r model.FieldingBestRow) int { return r.Dismissals })
}

var fieldingColumns = Columns[model.FieldingRow]{
	fields: map[SortField]Comparator[model.FieldingRow]{
		"matches":                  asc(func(r model.FieldingRow) int { return r.Matches }),
		"innings":                  asc(func(r model.FieldingRow) int { return r.Innings }),
		"caught_fielder":           asc(func(r model.FieldingRow) int { return r.CaughtFielder }),
		"caught_keeper":            asc(func(r model.FieldingRow) int { return r.CaughtKeeper }),
		"stumped":                  asc(func(r model.FieldingRow) int { return r.Stumped }),
		"dismissals":               asc(func(r model.FieldingRow) int { return r.Dismissals }),
		"wicket_keeper_dismissals": asc(func(r model.FieldingRow) int { return r.KeeperDismissals }),
		"name":                     asc(func(r model.FieldingRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "dismissals", Direction: Desc},
	name: func(r model.FieldingRow) string { return r.Name },
	key: rowKey(
		func(r model.FieldingRow) int64 { return r.PlayerID },
		func(r model.FieldingRow) model.DimensionValue { return r.Dimension },
	),
}

var fieldingBestColumns = Columns[model.FieldingBestRow]{
	fields: map[SortField]Comparator[model.FieldingBestRow]{
		"dismissals":               asc(func(r model.FieldingBestRow) int { return r.Dismissals }),
		"caught_fielder":           asc(func(r model.FieldingBestRow) int { return r.CaughtFielder }),
		"caught_keeper":            asc(func(r model.FieldingBestRow) int { return r.CaughtKeeper }),
		"stumped":                  asc(func(r model.FieldingBestRow) int { return r.Stumped }),
		"wicket_keeper_dismissals": asc(func(r model.FieldingBestRow) int { return r.KeeperDismissals }),
		"start_date":               asc(func(r model.FieldingBestRow) int64 { return r.StartDate.Unix() }),
		"name":                     asc(func(r model.FieldingBestRow) string { return r.Name }),
	},
	def:  SortSpec{Field: "dismissals", Direction: Desc},
	name: func(r model.FieldingBestRow) string { return r.Name },
	key: rowKey(
		func(r model.FieldingBestRow) int64 { return r.PlayerID },
		func(r model.FieldingBestRow) model.DimensionValue { return r.Dimension },
	),
}
