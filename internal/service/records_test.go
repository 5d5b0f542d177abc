package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/repository/contract"
	"github.com/maxviazov/cricket-records-service/internal/service"
)

type fakeSource struct {
	ds          *engine.Dataset
	err         error
	calls       int
	lastFilter  engine.QualificationFilter
	lastNeeds   engine.Needs
	hadDeadline bool
}

func (f *fakeSource) Load(ctx context.Context, filter engine.QualificationFilter, needs engine.Needs) (*engine.Dataset, error) {
	f.calls++
	f.lastFilter = filter
	f.lastNeeds = needs
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return f.ds, nil
}

var _ repository.MatchSource = (*fakeSource)(nil)

func newRecords(src *fakeSource) service.RecordsService {
	logger := zerolog.New(io.Discard)
	return service.NewRecordsService(src, engine.New(logger), service.RecordsOptions{
		DefaultPageSize: 25,
		MaxPageSize:     100,
		QueryTimeout:    time.Second,
	}, logger)
}

func testFilter() engine.QualificationFilter {
	return engine.QualificationFilter{MatchType: model.MatchTypeTest}
}

func fieldNames(err error) []string {
	var out []string
	for _, fe := range service.FieldErrors(err) {
		out = append(out, fe.Field)
	}
	return out
}

func TestRecordsService_Query_Batting(t *testing.T) {
	src := &fakeSource{ds: contract.Fixture()}
	out, err := newRecords(src).Query(context.Background(), engine.CategoryBatting, testFilter())
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.True(t, src.hadDeadline)
	assert.Equal(t, engine.NeedBatting, src.lastNeeds)
	assert.Equal(t, 25, src.lastFilter.Page.PageSize)

	res, ok := out.(engine.PagedResult[model.BattingRow])
	require.True(t, ok, "unexpected result type %T", out)
	require.Equal(t, 3, res.TotalCount)
	assert.Equal(t, contract.Cook, res.Rows[0].PlayerID)
	assert.Equal(t, 160, res.Rows[0].Runs)
}

func TestRecordsService_Query_InvalidSortNeverLoads(t *testing.T) {
	src := &fakeSource{ds: contract.Fixture()}
	f := testFilter()
	f.Sort = engine.SortSpec{Field: "wickets"}

	_, err := newRecords(src).Query(context.Background(), engine.CategoryBatting, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
	assert.True(t, errors.Is(err, engine.ErrInvalidSortField))
	assert.Equal(t, []string{"sort"}, fieldNames(err))
	assert.Zero(t, src.calls)
}

func TestRecordsService_Query_UnknownCategory(t *testing.T) {
	src := &fakeSource{}
	_, err := newRecords(src).Query(context.Background(), "umpiring", testFilter())
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.ErrorIs(t, err, engine.ErrUnknownCategory)
	assert.Equal(t, []string{"category"}, fieldNames(err))
	assert.Zero(t, src.calls)
}

func TestRecordsService_Query_FilterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *engine.QualificationFilter)
		field  string
	}{
		{"missing match type", func(f *engine.QualificationFilter) { f.MatchType = "" }, "match_type"},
		{"unknown match type", func(f *engine.QualificationFilter) { f.MatchType = "x" }, "match_type"},
		{"unknown sub type", func(f *engine.QualificationFilter) { f.MatchSubType = "zz" }, "match_sub_type"},
		{"negative team", func(f *engine.QualificationFilter) { f.TeamID = -1 }, "team_id"},
		{"negative offset", func(f *engine.QualificationFilter) { f.Page.Offset = -5 }, "offset"},
		{"page too large", func(f *engine.QualificationFilter) { f.Page.PageSize = 101 }, "page_size"},
		{"bad direction", func(f *engine.QualificationFilter) { f.Sort.Direction = "up" }, "direction"},
		{"bad dimension", func(f *engine.QualificationFilter) { f.Dimension = "venue" }, "dimension"},
		{"wicket out of range", func(f *engine.QualificationFilter) { f.Wicket = 11 }, "wicket"},
		{"unknown result bits", func(f *engine.QualificationFilter) { f.ResultMask = 64 }, "result_mask"},
		{"reversed dates", func(f *engine.QualificationFilter) {
			f.Dates = engine.DateRange{
				From: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC),
			}
		}, "dates"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{ds: contract.Fixture()}
			f := testFilter()
			tc.mutate(&f)
			_, err := newRecords(src).Query(context.Background(), engine.CategoryBatting, f)
			require.ErrorIs(t, err, service.ErrInvalidInput)
			assert.Contains(t, fieldNames(err), tc.field)
			assert.Zero(t, src.calls)
		})
	}
}

func TestRecordsService_Query_SourceErrorSurfaces(t *testing.T) {
	src := &fakeSource{err: repository.ErrSchemaMissing}
	out, err := newRecords(src).Query(context.Background(), engine.CategoryTeam, testFilter())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repository.ErrSchemaMissing)
	assert.NotErrorIs(t, err, service.ErrInvalidInput)
}

func TestRecordsService_Query_PastTheEnd(t *testing.T) {
	src := &fakeSource{ds: contract.Fixture()}
	f := testFilter()
	f.Page = engine.Pagination{Offset: 100, PageSize: 10}
	out, err := newRecords(src).Query(context.Background(), engine.CategoryBowling, f)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total())
	assert.Equal(t, 0, out.Len())
}
