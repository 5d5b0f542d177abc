package engine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// Dataset is everything a backend loaded for one request: the candidate
// matches with both team perspectives, the raw detail tables the category
// needs, and name lookups. It is built per request and discarded afterwards.
type Dataset struct {
	Matches      []model.Match            `json:"matches"`
	Batting      []model.BattingEntry     `json:"batting"`
	Bowling      []model.BowlingEntry     `json:"bowling"`
	Fielding     []model.FieldingEntry    `json:"fielding"`
	Partnerships []model.PartnershipEntry `json:"partnerships"`
	TeamInnings  []model.TeamInnings      `json:"team_innings"`
	Names        model.Names              `json:"names"`
}

// Needs is a bitmask of the raw tables a category reads.
type Needs uint8

const (
	NeedBatting Needs = 1 << iota
	NeedBowling
	NeedFielding
	NeedPartnerships
	NeedTeamInnings
)

// Has reports whether n includes every bit of o.
func (n Needs) Has(o Needs) bool { return n&o == o }

// Record is a PerformanceRecord: one raw entry from a qualifying match,
// tagged with the dimension value active for the request.
type Record[T any] struct {
	Entry      T
	Match      *model.Match
	PlayerID   int64
	TeamID     int64
	OpponentID int64
	Dim        model.DimensionValue
}

type identity struct {
	matchID    int64
	playerID   int64
	teamID     int64
	opponentID int64
}

// extractor is the DetailExtractor for one request.
type extractor struct {
	f        QualificationFilter
	universe MatchSet
	matches  map[int64]*model.Match
	dim      dimension
	names    model.Names
}

func newExtractor(f QualificationFilter, ds *Dataset) (*extractor, error) {
	dim, err := lookupDimension(f.Dimension)
	if err != nil {
		return nil, err
	}
	matches := make(map[int64]*model.Match, len(ds.Matches))
	for i := range ds.Matches {
		matches[ds.Matches[i].ID] = &ds.Matches[i]
	}
	return &extractor{
		f:        f,
		universe: ResolveUniverse(f, ds.Matches),
		matches:  matches,
		dim:      dim,
		names:    ds.Names,
	}, nil
}

// dimensionName resolves the display name of a dimension value.
func (x *extractor) dimensionName(v model.DimensionValue) string {
	return x.dim.name(v, x.names)
}

// dimensioned builds the shared row header for a partition.
func (x *extractor) dimensioned(mt model.MatchType, v model.DimensionValue) model.Dimensioned {
	return model.Dimensioned{MatchType: mt, Dimension: v, DimensionName: x.dimensionName(v)}
}

// extract keeps entries whose (match, team) qualified, drops the team-total
// pseudo-player for player categories, applies the optional team
// restriction and tags each survivor with its dimension value.
func extract[T any](x *extractor, entries []T, id func(T) identity, players bool) []Record[T] {
	out := make([]Record[T], 0, len(entries))
	for _, e := range entries {
		k := id(e)
		if players && k.playerID == model.TeamTotalPlayerID {
			continue
		}
		if !x.universe.Qualifies(k.matchID, k.teamID) {
			continue
		}
		if x.f.TeamID != 0 && k.teamID != x.f.TeamID {
			continue
		}
		m, ok := x.matches[k.matchID]
		if !ok {
			continue
		}
		out = append(out, Record[T]{
			Entry:      e,
			Match:      m,
			PlayerID:   k.playerID,
			TeamID:     k.teamID,
			OpponentID: k.opponentID,
			Dim:        x.dim.value(m, k.opponentID),
		})
	}
	return out
}

func battingIdentity(e model.BattingEntry) identity {
	return identity{e.MatchID, e.PlayerID, e.TeamID, e.OpponentID}
}

func bowlingIdentity(e model.BowlingEntry) identity {
	return identity{e.MatchID, e.PlayerID, e.TeamID, e.OpponentID}
}

func fieldingIdentity(e model.FieldingEntry) identity {
	return identity{e.MatchID, e.PlayerID, e.TeamID, e.OpponentID}
}

func partnershipIdentity(e model.PartnershipEntry) identity {
	return identity{e.MatchID, e.PlayerID, e.TeamID, e.OpponentID}
}

func teamInningsIdentity(e model.TeamInnings) identity {
	return identity{matchID: e.MatchID, teamID: e.TeamID, opponentID: e.OpponentID}
}

// byMatch groups records per (player, match), each group ordered by innings,
// groups ordered by player then match. Multi-innings categories sum a group
// into one match aggregate, treating a missing second innings as zero.
func byMatch[T any](recs []Record[T], innings func(T) int) [][]Record[T] {
	type key struct{ player, match int64 }
	idx := make(map[key]int)
	var groups [][]Record[T]
	for _, r := range recs {
		k := key{r.PlayerID, r.Match.ID}
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	for _, g := range groups {
		slices.SortStableFunc(g, func(a, b Record[T]) int { return cmp.Compare(innings(a.Entry), innings(b.Entry)) })
	}
	slices.SortStableFunc(groups, func(a, b []Record[T]) int {
		if c := cmp.Compare(a[0].PlayerID, b[0].PlayerID); c != 0 {
			return c
		}
		return cmp.Compare(a[0].Match.ID, b[0].Match.ID)
	})
	return groups
}

// inningsPerSide is how many innings of a player a match aggregate takes.
// Limited-overs sides bat once; anything later (a super over) is not part
// of the match figures.
func inningsPerSide(mt model.MatchType) int {
	if mt.MultiInnings() {
		return 2
	}
	return 1
}

// teamNames joins the distinct team names of a partition, sorted.
func teamNames(names model.Names, ids map[int64]struct{}) string {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, names.Team(id))
	}
	slices.Sort(list)
	return strings.Join(list, "/")
}
