package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

func TestQueryFlags_Filter(t *testing.T) {
	q := queryFlags{
		matchType: "t", team: 10, opponent: 20, season: "2005",
		from: "2005-01-01", to: "2005-12-31",
		result: []string{"won", "drawn"}, venue: []string{"home"},
		min: 3, wicket: 2, dimension: "ground",
		offset: 50, pageSize: 25, sort: "runs", dir: "ASC",
	}
	f, err := q.filter()
	require.NoError(t, err)

	assert.Equal(t, model.MatchTypeTest, f.MatchType)
	assert.EqualValues(t, 10, f.TeamID)
	assert.EqualValues(t, 20, f.OpponentID)
	assert.Equal(t, 2005, f.Dates.From.Year())
	assert.Equal(t, model.ResultWon|model.ResultDrawn, f.ResultMask)
	assert.Equal(t, model.VenueHome, f.VenueMask)
	assert.Equal(t, 3, f.MinimumThreshold)
	assert.Equal(t, 2, f.Wicket)
	assert.Equal(t, model.DimensionGround, f.Dimension)
	assert.Equal(t, engine.Pagination{Offset: 50, PageSize: 25}, f.Page)
	assert.Equal(t, engine.Asc, f.Sort.Direction)
}

func TestQueryFlags_FilterErrors(t *testing.T) {
	cases := map[string]queryFlags{
		"from":   {from: "21/07/2005"},
		"to":     {to: "tomorrow"},
		"result": {result: []string{"victory"}},
		"venue":  {venue: []string{"moon"}},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := q.filter()
			assert.ErrorContains(t, err, name)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"query", "scorecard", "ref", "migrate", "load", "categories"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
