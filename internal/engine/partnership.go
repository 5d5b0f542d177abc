package engine

import (
	"cmp"
	"slices"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// partnershipSlot is the (match, innings, wicket, team) a partnership
// occupies. All rows of one slot belong to the same partnership.
type partnershipSlot struct {
	match   int64
	innings int
	wicket  int
	team    int64
}

// pairPartnerships resolves each slot into one PartnershipRow. Rows within a
// slot are ordered by batting sequence; the first is player1 and the next in
// order is player2, absent when the slot has a single row. More than two rows
// (a retirement mid-stand) flags the partnership as multiple.
func pairPartnerships(x *extractor, ds *Dataset) []model.PartnershipRow {
	recs := extract(x, ds.Partnerships, partnershipIdentity, true)
	idx := make(map[partnershipSlot]int)
	var slots [][]Record[model.PartnershipEntry]
	for _, r := range recs {
		if x.f.Wicket != 0 && r.Entry.Wicket != x.f.Wicket {
			continue
		}
		k := partnershipSlot{r.Match.ID, r.Entry.Innings, r.Entry.Wicket, r.TeamID}
		i, ok := idx[k]
		if !ok {
			i = len(slots)
			idx[k] = i
			slots = append(slots, nil)
		}
		slots[i] = append(slots[i], r)
	}

	rows := make([]model.PartnershipRow, 0, len(slots))
	for _, s := range slots {
		slices.SortStableFunc(s, func(a, b Record[model.PartnershipEntry]) int {
			if c := cmp.Compare(a.Entry.Seq, b.Entry.Seq); c != 0 {
				return c
			}
			return cmp.Compare(a.PlayerID, b.PlayerID)
		})
		lead := s[0]
		row := model.PartnershipRow{
			Dimensioned: x.dimensioned(lead.Match.MatchType, lead.Dim),
			MatchID:     lead.Match.ID,
			Innings:     lead.Entry.Innings,
			Wicket:      lead.Entry.Wicket,
			TeamID:      lead.TeamID,
			Team:        x.names.Team(lead.TeamID),
			Opponent:    x.names.Team(lead.OpponentID),
			Ground:      x.names.Ground(lead.Match.GroundID),
			StartDate:   lead.Match.StartDate,
			Player1ID:   lead.PlayerID,
			Player1:     x.names.Player(lead.PlayerID),
			Runs:        lead.Entry.Runs,
			Multiple:    len(s) > 2,
		}
		if len(s) > 1 {
			next := s[1]
			id := next.PlayerID
			row.Player2ID = &id
			row.Player2 = x.names.Player(id)
		}
		for _, r := range s {
			row.Unbroken = row.Unbroken || r.Entry.Unbroken
			row.Partial = row.Partial || r.Entry.Partial
		}
		rows = append(rows, row)
	}
	return rows
}

func partnershipRows(x *extractor, ds *Dataset) []model.PartnershipRow {
	return threshold(x.f, pairPartnerships(x, ds), func(r model.PartnershipRow) int { return r.Runs })
}

type pairKey struct {
	low, high int64
	mt        model.MatchType
	dim       model.DimensionValue
}

// partnershipPairRows aggregates partnerships per player pair, match type and
// dimension. A pair is unordered: (a, b) and (b, a) land in the same row.
// Partnerships without a resolved second partner are skipped.
func partnershipPairRows(x *extractor, ds *Dataset) []model.PartnershipPairRow {
	type acc struct {
		row           model.PartnershipPairRow
		teams         map[int64]struct{}
		completedRuns int
		highest       float64
	}
	var (
		keys []pairKey
		accs = make(map[pairKey]*acc)
	)
	for _, p := range pairPartnerships(x, ds) {
		if p.Player2ID == nil {
			continue
		}
		low, high := p.Player1ID, *p.Player2ID
		if high < low {
			low, high = high, low
		}
		k := pairKey{low, high, p.MatchType, p.Dimension}
		a, ok := accs[k]
		if !ok {
			a = &acc{
				row: model.PartnershipPairRow{
					Dimensioned: p.Dimensioned,
					Player1ID:   low,
					Player1:     x.names.Player(low),
					Player2ID:   high,
					Player2:     x.names.Player(high),
				},
				teams:   make(map[int64]struct{}, 1),
				highest: -1,
			}
			accs[k] = a
			keys = append(keys, k)
		}
		a.teams[p.TeamID] = struct{}{}
		a.row.Innings++
		a.row.Runs += p.Runs
		if p.Unbroken {
			a.row.Unbroken++
		} else {
			a.completedRuns += p.Runs
		}
		switch {
		case p.Runs >= 100:
			a.row.Hundreds++
		case p.Runs >= 50:
			a.row.Fifties++
		}
		if v := EncodeBest(p.Runs, p.Unbroken); v > a.highest {
			a.highest = v
		}
	}

	rows := make([]model.PartnershipPairRow, 0, len(keys))
	for _, k := range keys {
		a := accs[k]
		a.row.Completed = a.row.Innings - a.row.Unbroken
		a.row.Average = PartnershipAverage(a.completedRuns, a.row.Completed)
		a.row.Highest, a.row.HighestUnbroken = DecodeBest(a.highest)
		a.row.Teams = teamNames(x.names, a.teams)
		rows = append(rows, a.row)
	}
	return threshold(x.f, rows, func(r model.PartnershipPairRow) int { return r.Runs })
}

var partnershipColumns = Columns[model.PartnershipRow]{
	fields: map[SortField]Comparator[model.PartnershipRow]{
		"runs":       asc(func(r model.PartnershipRow) float64 { return EncodeBest(r.Runs, r.Unbroken) }),
		"wicket":     asc(func(r model.PartnershipRow) int { return r.Wicket }),
		"start_date": asc(func(r model.PartnershipRow) int64 { return r.StartDate.Unix() }),
		"name":       asc(func(r model.PartnershipRow) string { return r.Player1 }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.PartnershipRow) string { return r.Player1 },
	key: performanceKey(
		func(r model.PartnershipRow) int64 { return r.MatchID },
		func(r model.PartnershipRow) int { return r.Innings*100 + r.Wicket },
		func(r model.PartnershipRow) int64 { return r.Player1ID },
	),
}

var partnershipPairColumns = Columns[model.PartnershipPairRow]{
	fields: map[SortField]Comparator[model.PartnershipPairRow]{
		"runs":      asc(func(r model.PartnershipPairRow) int { return r.Runs }),
		"innings":   asc(func(r model.PartnershipPairRow) int { return r.Innings }),
		"unbroken":  asc(func(r model.PartnershipPairRow) int { return r.Unbroken }),
		"hundreds":  asc(func(r model.PartnershipPairRow) int { return r.Hundreds }),
		"fifties":   asc(func(r model.PartnershipPairRow) int { return r.Fifties }),
		"highest":   asc(func(r model.PartnershipPairRow) float64 { return EncodeBest(r.Highest, r.HighestUnbroken) }),
		"average":   asc(func(r model.PartnershipPairRow) float64 { return derefFloat(r.Average) }),
		"completed": asc(func(r model.PartnershipPairRow) int { return r.Completed }),
		"name":      asc(func(r model.PartnershipPairRow) string { return r.Player1 }),
	},
	def:  SortSpec{Field: "runs", Direction: Desc},
	name: func(r model.PartnershipPairRow) string { return r.Player1 + "/" + r.Player2 },
	key: asc(func(r model.PartnershipPairRow) int64 { return r.Player1ID }).
		then(asc(func(r model.PartnershipPairRow) int64 { return r.Player2ID })).
		then(func(a, b model.PartnershipPairRow) int { return compareDimensions(a.Dimension, b.Dimension) }),
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}
