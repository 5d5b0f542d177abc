package engine

import (
	"slices"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// chase identifies which kind of decided run chase a target category reports.
type chase int

const (
	chaseDefended chase = iota
	chaseSucceeded
)

// targetRows reports one row per decided, non-abandoned match whose result
// matches the chase kind. A chased target is won by wickets by the side
// batting last; a defended target is won by runs by the side batting first.
// The target is the defending side's total, less the chasing side's earlier
// innings, plus one.
func targetRows(x *extractor, ds *Dataset, kind chase) []model.TargetRow {
	innings := make(map[int64][]model.TeamInnings)
	for _, ti := range ds.TeamInnings {
		innings[ti.MatchID] = append(innings[ti.MatchID], ti)
	}

	var rows []model.TargetRow
	for _, id := range x.universe.IDs() {
		m := x.matches[id]
		if m.Abandoned || m.WinnerID == 0 {
			continue
		}
		winner, ok := m.Perspective(m.WinnerID)
		if !ok || winner.Result&model.ResultNoResult != 0 {
			continue
		}
		if !x.universe.Qualifies(m.ID, m.WinnerID) {
			continue
		}
		var chaser, defender int64
		switch {
		case kind == chaseSucceeded && m.VictoryType == model.VictoryWickets:
			chaser, defender = winner.TeamID, winner.OpponentID
		case kind == chaseDefended && m.VictoryType == model.VictoryRuns:
			chaser, defender = winner.OpponentID, winner.TeamID
		default:
			continue
		}

		list := slices.Clone(innings[m.ID])
		slices.SortFunc(list, func(a, b model.TeamInnings) int { return a.Innings - b.Innings })
		last := -1
		for i, ti := range list {
			if ti.TeamID == chaser {
				last = i
			}
		}
		if last < 0 {
			continue
		}
		final := list[last]
		target := 1
		for i, ti := range list {
			switch {
			case ti.TeamID == defender:
				target += ti.Runs
			case ti.TeamID == chaser && i < last:
				target -= ti.Runs
			}
		}

		loser := chaser
		if kind == chaseSucceeded {
			loser = defender
		}
		rows = append(rows, model.TargetRow{
			MatchType:   m.MatchType,
			MatchID:     m.ID,
			WinnerID:    m.WinnerID,
			Winner:      x.names.Team(m.WinnerID),
			LoserID:     loser,
			Loser:       x.names.Team(loser),
			Ground:      x.names.Ground(m.GroundID),
			StartDate:   m.StartDate,
			Target:      target,
			ChaseRuns:   final.Runs,
			ChaseWkts:   final.Wickets,
			ChaseBalls:  final.Balls,
			VictoryType: m.VictoryType,
		})
	}
	return threshold(x.f, rows, func(r model.TargetRow) int { return r.Target })
}

func targetColumns(def SortDirection) Columns[model.TargetRow] {
	return Columns[model.TargetRow]{
		fields: map[SortField]Comparator[model.TargetRow]{
			"target":      asc(func(r model.TargetRow) int { return r.Target }),
			"chase_runs":  asc(func(r model.TargetRow) int { return r.ChaseRuns }),
			"chase_balls": asc(func(r model.TargetRow) int { return r.ChaseBalls }),
			"start_date":  asc(func(r model.TargetRow) int64 { return r.StartDate.Unix() }),
			"name":        asc(func(r model.TargetRow) string { return r.Winner }),
		},
		def:  SortSpec{Field: "target", Direction: def},
		name: func(r model.TargetRow) string { return r.Winner },
		key:  asc(func(r model.TargetRow) int64 { return r.MatchID }),
	}
}

var (
	targetsDefendedColumns = targetColumns(Asc)
	targetsChasedColumns   = targetColumns(Desc)
)
