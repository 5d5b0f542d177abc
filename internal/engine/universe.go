package engine

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// MatchSet is the qualifying match universe. Result, venue and team
// conditions belong to a side of a match, so the set remembers which team
// perspectives qualified as well as the match ids.
type MatchSet struct {
	teams map[int64]map[int64]struct{}
	ids   []int64
}

// Contains reports whether any perspective of the match qualified.
func (s MatchSet) Contains(matchID int64) bool {
	_, ok := s.teams[matchID]
	return ok
}

// Qualifies reports whether the match qualified from teamID's side.
func (s MatchSet) Qualifies(matchID, teamID int64) bool {
	ts, ok := s.teams[matchID]
	if !ok {
		return false
	}
	_, ok = ts[teamID]
	return ok
}

// Len is the number of qualifying matches.
func (s MatchSet) Len() int { return len(s.ids) }

// IDs returns the qualifying match ids in ascending order.
func (s MatchSet) IDs() []int64 { return append([]int64(nil), s.ids...) }

// ResolveUniverse applies the filter's match and team conditions to every
// match, ANDing them together. Each optional condition degrades to true when
// its filter field holds the zero/empty sentinel.
func ResolveUniverse(f QualificationFilter, matches []model.Match) MatchSet {
	set := MatchSet{teams: make(map[int64]map[int64]struct{})}
	for i := range matches {
		m := &matches[i]
		if !matchQualifies(f, m) {
			continue
		}
		for _, mt := range m.Teams {
			if !teamQualifies(f, mt) {
				continue
			}
			ts, ok := set.teams[m.ID]
			if !ok {
				ts = make(map[int64]struct{}, 2)
				set.teams[m.ID] = ts
				set.ids = append(set.ids, m.ID)
			}
			ts[mt.TeamID] = struct{}{}
		}
	}
	slices.Sort(set.ids)
	return set
}

func matchQualifies(f QualificationFilter, m *model.Match) bool {
	if m.MatchType != f.MatchType {
		return false
	}
	if f.MatchSubType != "" && m.MatchSubType != f.MatchSubType {
		return false
	}
	if f.GroundID != 0 && m.GroundID != f.GroundID {
		return false
	}
	if f.HostCountryID != 0 && m.HostCountryID != f.HostCountryID {
		return false
	}
	if f.seasonActive() {
		return m.Season == f.Season
	}
	day := m.StartDate.Format(dateLayout)
	if !f.Dates.From.IsZero() && day < f.Dates.From.Format(dateLayout) {
		return false
	}
	if !f.Dates.To.IsZero() && day > f.Dates.To.Format(dateLayout) {
		return false
	}
	return true
}

func teamQualifies(f QualificationFilter, mt model.MatchTeam) bool {
	if f.TeamID != 0 && mt.TeamID != f.TeamID {
		return false
	}
	if f.OpponentID != 0 && mt.OpponentID != f.OpponentID {
		return false
	}
	if f.ResultMask != 0 && mt.Result&f.ResultMask == 0 {
		return false
	}
	if f.VenueMask != 0 && mt.HomeAway&f.VenueMask == 0 {
		return false
	}
	return true
}

const dateLayout = "2006-01-02"

// Placeholder renders the n-th (1-based) bind parameter of a SQL dialect.
type Placeholder func(n int) string

// Dollar renders Postgres style $n parameters.
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders positional ? parameters.
func Question(int) string { return "?" }

// UniverseWhere renders the SQL equivalent of ResolveUniverse over
// `matches m JOIN match_teams mt ON mt.match_id = m.id`. Parameters are
// numbered from 1 in the order they appear; dates are bound as YYYY-MM-DD.
func UniverseWhere(f QualificationFilter, ph Placeholder) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, strings.Replace(format, "?", ph(len(args)), 1))
	}

	add("m.match_type = ?", string(f.MatchType))
	if f.MatchSubType != "" {
		add("m.match_sub_type = ?", string(f.MatchSubType))
	}
	if f.TeamID != 0 {
		add("mt.team_id = ?", f.TeamID)
	}
	if f.OpponentID != 0 {
		add("mt.opponent_id = ?", f.OpponentID)
	}
	if f.GroundID != 0 {
		add("m.ground_id = ?", f.GroundID)
	}
	if f.HostCountryID != 0 {
		add("m.host_country_id = ?", f.HostCountryID)
	}
	if f.seasonActive() {
		add("m.season = ?", f.Season)
	} else {
		if !f.Dates.From.IsZero() {
			add("CAST(m.start_date AS TEXT) >= ?", f.Dates.From.Format(dateLayout))
		}
		if !f.Dates.To.IsZero() {
			add("CAST(m.start_date AS TEXT) <= ?", f.Dates.To.Format(dateLayout))
		}
	}
	if f.ResultMask != 0 {
		add("(mt.result & ?) <> 0", int(f.ResultMask))
	}
	if f.VenueMask != 0 {
		add("(mt.home_away & ?) <> 0", int(f.VenueMask))
	}
	return strings.Join(conds, " AND "), args
}
