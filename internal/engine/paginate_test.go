package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

type scoreRow struct {
	id    int64
	name  string
	score int
}

var scoreColumns = Columns[scoreRow]{
	fields: map[SortField]Comparator[scoreRow]{
		"score": asc(func(r scoreRow) int { return r.score }),
		"name":  asc(func(r scoreRow) string { return r.name }),
	},
	def:  SortSpec{Field: "score", Direction: Desc},
	name: func(r scoreRow) string { return r.name },
	key:  asc(func(r scoreRow) int64 { return r.id }),
}

func scoreRows(n int) []scoreRow {
	rows := make([]scoreRow, n)
	for i := range rows {
		rows[i] = scoreRow{id: int64(i + 1), name: fmt.Sprintf("player %02d", i+1), score: i % 7}
	}
	return rows
}

func TestPaginate_PartialLastPage(t *testing.T) {
	res, err := Paginate(scoreRows(25), SortSpec{}, Pagination{Offset: 20, PageSize: 10}, scoreColumns)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 5)
	assert.Equal(t, 25, res.TotalCount)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	for _, offset := range []int{25, 26, 1000} {
		res, err := Paginate(scoreRows(25), SortSpec{}, Pagination{Offset: offset, PageSize: 10}, scoreColumns)
		require.NoError(t, err)
		assert.NotNil(t, res.Rows)
		assert.Empty(t, res.Rows)
		assert.Equal(t, 25, res.TotalCount)
	}
}

func TestPaginate_PageBounds(t *testing.T) {
	rows := scoreRows(37)
	for offset := 0; offset < 45; offset += 4 {
		for _, size := range []int{1, 3, 10, 50} {
			res, err := Paginate(rows, SortSpec{}, Pagination{Offset: offset, PageSize: size}, scoreColumns)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Rows), size)
			assert.GreaterOrEqual(t, res.TotalCount, len(res.Rows))
			assert.Equal(t, 37, res.TotalCount)
		}
	}
}

func TestPaginate_RejectsUnknownField(t *testing.T) {
	_, err := Paginate(scoreRows(3), SortSpec{Field: "height"}, Pagination{PageSize: 10}, scoreColumns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSortField))
}

func TestPaginate_RejectsBadWindow(t *testing.T) {
	_, err := Paginate(scoreRows(3), SortSpec{}, Pagination{PageSize: 0}, scoreColumns)
	assert.ErrorIs(t, err, ErrInvalidPagination)
	_, err = Paginate(scoreRows(3), SortSpec{}, Pagination{Offset: -1, PageSize: 5}, scoreColumns)
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestPaginate_TiesBrokenByName(t *testing.T) {
	rows := []scoreRow{
		{id: 3, name: "Cook", score: 10},
		{id: 1, name: "Amla", score: 10},
		{id: 2, name: "Bell", score: 12},
	}
	res, err := Paginate(rows, SortSpec{Field: "score", Direction: Desc}, Pagination{PageSize: 10}, scoreColumns)
	require.NoError(t, err)
	names := []string{res.Rows[0].name, res.Rows[1].name, res.Rows[2].name}
	assert.Equal(t, []string{"Bell", "Amla", "Cook"}, names)

	res, err = Paginate(rows, SortSpec{Field: "score", Direction: Asc}, Pagination{PageSize: 10}, scoreColumns)
	require.NoError(t, err)
	names = []string{res.Rows[0].name, res.Rows[1].name, res.Rows[2].name}
	assert.Equal(t, []string{"Amla", "Cook", "Bell"}, names)
}

func TestPaginate_DoesNotMutateInput(t *testing.T) {
	rows := scoreRows(5)
	orig := append([]scoreRow(nil), rows...)
	_, err := Paginate(rows, SortSpec{}, Pagination{PageSize: 2}, scoreColumns)
	require.NoError(t, err)
	assert.Equal(t, orig, rows)
}

func TestPaginate_Deterministic(t *testing.T) {
	rows := scoreRows(40)
	a, err := Paginate(rows, SortSpec{}, Pagination{Offset: 10, PageSize: 10}, scoreColumns)
	require.NoError(t, err)
	b, err := Paginate(rows, SortSpec{}, Pagination{Offset: 10, PageSize: 10}, scoreColumns)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestColumns_Fields(t *testing.T) {
	assert.Equal(t, []SortField{"name", "score"}, scoreColumns.Fields())
	assert.True(t, scoreColumns.Allows(""))
	assert.False(t, scoreColumns.Allows("height"))
}

func TestSelectBest_FieldingTieBreak(t *testing.T) {
	m1 := &model.Match{ID: 1}
	m2 := &model.Match{ID: 2}
	recs := []Record[model.FieldingEntry]{
		{Match: m1, Entry: model.FieldingEntry{MatchID: 1, Innings: 1, CaughtFielder: 2, CaughtKeeper: 3}},
		{Match: m2, Entry: model.FieldingEntry{MatchID: 2, Innings: 2, CaughtFielder: 1, CaughtKeeper: 4}},
	}
	best, ok := SelectBest(recs, bestFielding)
	require.True(t, ok)
	assert.Equal(t, 4, best.Entry.CaughtKeeper)

	// Order of input must not matter.
	best, ok = SelectBest([]Record[model.FieldingEntry]{recs[1], recs[0]}, bestFielding)
	require.True(t, ok)
	assert.Equal(t, 4, best.Entry.CaughtKeeper)
}

func TestSelectBest_FullTieUsesMatch(t *testing.T) {
	recs := []Record[model.FieldingEntry]{
		{Match: &model.Match{ID: 9}, Entry: model.FieldingEntry{CaughtKeeper: 2}},
		{Match: &model.Match{ID: 4}, Entry: model.FieldingEntry{CaughtKeeper: 2}},
	}
	best, ok := SelectBest(recs, bestFielding)
	require.True(t, ok)
	assert.Equal(t, int64(4), best.Match.ID)
}

func TestSelectBest_Bowling(t *testing.T) {
	recs := []Record[model.BowlingEntry]{
		{Match: &model.Match{ID: 1}, Entry: model.BowlingEntry{Wickets: 5, Runs: 60}},
		{Match: &model.Match{ID: 2}, Entry: model.BowlingEntry{Wickets: 5, Runs: 42}},
		{Match: &model.Match{ID: 3}, Entry: model.BowlingEntry{Wickets: 4, Runs: 10}},
	}
	best, ok := SelectBest(recs, bestBowling)
	require.True(t, ok)
	assert.Equal(t, int64(2), best.Match.ID)
}

func TestSelectBest_Empty(t *testing.T) {
	_, ok := SelectBest([]figures(nil), bestFigures)
	assert.False(t, ok)
}

func TestPaginate_HugePageSize(t *testing.T) {
	for _, offset := range []int{0, 1, 4} {
		res, err := Paginate(scoreRows(5), SortSpec{}, Pagination{Offset: offset, PageSize: math.MaxInt}, scoreColumns)
		require.NoError(t, err)
		assert.Len(t, res.Rows, 5-offset)
		assert.Equal(t, 5, res.TotalCount)
	}
}
