package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

func TestUniverseWhere_Wildcards(t *testing.T) {
	where, args := UniverseWhere(QualificationFilter{MatchType: model.MatchTypeTest}, Dollar)
	assert.Equal(t, "m.match_type = $1", where)
	assert.Equal(t, []any{"t"}, args)
}

func TestUniverseWhere_AllConditions(t *testing.T) {
	f := QualificationFilter{
		MatchType:     model.MatchTypeODI,
		MatchSubType:  model.MatchTypeWomenODI,
		TeamID:        10,
		OpponentID:    20,
		GroundID:      100,
		HostCountryID: 1,
		Dates: DateRange{
			From: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		ResultMask: model.ResultWon | model.ResultTied,
		VenueMask:  model.VenueHome,
	}
	where, args := UniverseWhere(f, Question)
	assert.Equal(t, "m.match_type = ? AND m.match_sub_type = ? AND mt.team_id = ? AND mt.opponent_id = ? AND "+
		"m.ground_id = ? AND m.host_country_id = ? AND CAST(m.start_date AS TEXT) >= ? AND "+
		"CAST(m.start_date AS TEXT) <= ? AND (mt.result & ?) <> 0 AND (mt.home_away & ?) <> 0", where)
	assert.Equal(t, []any{"o", "wo", int64(10), int64(20), int64(100), int64(1), "2005-01-01", "2005-12-31", 9, 1}, args)
}

func TestUniverseWhere_SeasonBeatsDates(t *testing.T) {
	f := QualificationFilter{
		MatchType: model.MatchTypeTest,
		Season:    "2005/06",
		Dates:     DateRange{From: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	where, args := UniverseWhere(f, Dollar)
	assert.Equal(t, "m.match_type = $1 AND m.season = $2", where)
	assert.Equal(t, []any{"t", "2005/06"}, args)

	f.Season = AllSeasons
	where, _ = UniverseWhere(f, Dollar)
	assert.Equal(t, "m.match_type = $1 AND CAST(m.start_date AS TEXT) >= $2", where)
}

func TestResolveUniverse_PerspectiveMasks(t *testing.T) {
	matches := []model.Match{{
		ID:        7,
		MatchType: model.MatchTypeTest,
		Teams: []model.MatchTeam{
			{TeamID: 1, OpponentID: 2, Result: model.ResultWon, HomeAway: model.VenueHome},
			{TeamID: 2, OpponentID: 1, Result: model.ResultLost, HomeAway: model.VenueAway},
		},
	}}

	set := ResolveUniverse(QualificationFilter{MatchType: model.MatchTypeTest, ResultMask: model.ResultLost}, matches)
	assert.True(t, set.Contains(7))
	assert.True(t, set.Qualifies(7, 2))
	assert.False(t, set.Qualifies(7, 1))

	set = ResolveUniverse(QualificationFilter{MatchType: model.MatchTypeTest}, matches)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Qualifies(7, 1))
	assert.True(t, set.Qualifies(7, 2))

	set = ResolveUniverse(QualificationFilter{MatchType: model.MatchTypeODI}, matches)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.IDs())
}
