package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/handler"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/service"
	"github.com/maxviazov/cricket-records-service/pkg/response"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

// stubRecords remembers the last call so tests can check query mapping.
type stubRecords struct {
	gotCat    engine.Category
	gotFilter engine.QualificationFilter
	res       engine.Paged
	err       error
}

func (s *stubRecords) Query(_ context.Context, c engine.Category, f engine.QualificationFilter) (engine.Paged, error) {
	s.gotCat, s.gotFilter = c, f
	return s.res, s.err
}

type stubScorecard struct {
	sc  model.Scorecard
	err error
}

func (s *stubScorecard) GetScorecard(_ context.Context, _ int64) (model.Scorecard, error) {
	return s.sc, s.err
}

type stubReference struct {
	gotType   model.MatchType
	gotPage   repository.Page
	gotPrefix string
	res       repository.PageResult[model.RefItem]
	err       error
}

func (s *stubReference) list(mt model.MatchType, p repository.Page) (repository.PageResult[model.RefItem], error) {
	s.gotType, s.gotPage = mt, p
	return s.res, s.err
}

func (s *stubReference) ListTeams(_ context.Context, mt model.MatchType, p repository.Page) (repository.PageResult[model.RefItem], error) {
	return s.list(mt, p)
}
func (s *stubReference) ListGrounds(_ context.Context, mt model.MatchType, p repository.Page) (repository.PageResult[model.RefItem], error) {
	return s.list(mt, p)
}
func (s *stubReference) ListCountries(_ context.Context, mt model.MatchType, p repository.Page) (repository.PageResult[model.RefItem], error) {
	return s.list(mt, p)
}
func (s *stubReference) FindPlayers(_ context.Context, prefix string, p repository.Page) (repository.PageResult[model.RefItem], error) {
	s.gotPrefix, s.gotPage = prefix, p
	return s.res, s.err
}

func newRouter(p handler.Pinger, svcs handler.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, p, svcs)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	var p response.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name string
		err  error
		path string
		want int
	}{
		{"ready", nil, handler.APIV1Prefix + "/health/ready", http.StatusOK},
		{"unavailable", errors.New("db down"), handler.APIV1Prefix + "/health/ready", http.StatusServiceUnavailable},
		{"live ignores store", errors.New("db down"), handler.APIV1Prefix + "/health/live", http.StatusOK},
		{"root ready", nil, "/ready", http.StatusOK},
		{"root live", nil, "/live", http.StatusOK},
		{"unknown route", nil, "/no-such", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newRouter(stubPinger{err: tc.err}, handler.Services{}), http.MethodGet, tc.path)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestHealth_ServicesUnmountedWhenNil(t *testing.T) {
	w := do(newRouter(stubPinger{}, handler.Services{}), http.MethodGet, handler.APIV1Prefix+"/records")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecords_Categories(t *testing.T) {
	r := newRouter(stubPinger{}, handler.Services{Records: &stubRecords{}})
	w := do(r, http.MethodGet, handler.APIV1Prefix+"/records")
	require.Equal(t, http.StatusOK, w.Code)

	var got []struct {
		Category   string   `json:"category"`
		SortFields []string `json:"sort_fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(engine.Categories()))
	for _, c := range got {
		assert.NotEmpty(t, c.SortFields, c.Category)
	}
}

func TestRecords_QueryMapsParams(t *testing.T) {
	stub := &stubRecords{res: engine.PagedResult[model.RefItem]{Rows: []model.RefItem{{ID: 1, Name: "x"}}, TotalCount: 7}}
	r := newRouter(stubPinger{}, handler.Services{Records: stub})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/records/batting"+
		"?match_type=t&team=10&opponent=20&ground=100&host_country=1&season=2005"+
		"&from=2005-01-01&to=2005-12-31&result=won,drawn&venue=3&min=2&wicket=4"+
		"&dimension=year&offset=25&page_size=25&sort=runs&dir=DESC")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f := stub.gotFilter
	assert.Equal(t, engine.Category("batting"), stub.gotCat)
	assert.Equal(t, model.MatchType("t"), f.MatchType)
	assert.EqualValues(t, 10, f.TeamID)
	assert.EqualValues(t, 20, f.OpponentID)
	assert.EqualValues(t, 100, f.GroundID)
	assert.EqualValues(t, 1, f.HostCountryID)
	assert.Equal(t, "2005", f.Season)
	assert.Equal(t, 2005, f.Dates.From.Year())
	assert.Equal(t, 31, f.Dates.To.Day())
	assert.Equal(t, model.ResultWon|model.ResultDrawn, f.ResultMask)
	assert.Equal(t, model.VenueHome|model.VenueAway, f.VenueMask)
	assert.Equal(t, 2, f.MinimumThreshold)
	assert.Equal(t, 4, f.Wicket)
	assert.Equal(t, model.DimensionKind("year"), f.Dimension)
	assert.Equal(t, engine.Pagination{Offset: 25, PageSize: 25}, f.Page)
	assert.Equal(t, engine.SortField("runs"), f.Sort.Field)
	assert.Equal(t, engine.SortDirection("desc"), f.Sort.Direction)

	var body struct {
		Rows       []model.RefItem `json:"rows"`
		TotalCount int             `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 7, body.TotalCount)
	assert.Len(t, body.Rows, 1)
}

func TestRecords_BadParamsCollected(t *testing.T) {
	stub := &stubRecords{}
	r := newRouter(stubPinger{}, handler.Services{Records: stub})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/records/batting?team=abc&from=01/02/2005&result=won,lucky")
	require.Equal(t, http.StatusBadRequest, w.Code)

	p := decodeError(t, w)
	assert.Equal(t, "invalid_input", p.Error)
	fields := make([]string, 0, len(p.FieldErrors))
	for _, fe := range p.FieldErrors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"team", "from", "result"}, fields)
	assert.Empty(t, stub.gotCat, "service must not be called")
}

func TestRecords_ServiceErrorsMapped(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown category", engine.ErrUnknownCategory, http.StatusBadRequest},
		{"invalid input", service.NewInvalidInputError([]service.FieldError{{Field: "sort", Message: "bad"}}), http.StatusBadRequest},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"schema", repository.ErrSchemaMissing, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(stubPinger{}, handler.Services{Records: &stubRecords{err: tc.err}})
			w := do(r, http.MethodGet, handler.APIV1Prefix+"/records/nope")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestScorecard(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		stub := &stubScorecard{sc: model.Scorecard{Match: model.Match{ID: 3}}}
		w := do(newRouter(stubPinger{}, handler.Services{Scorecard: stub}), http.MethodGet, handler.APIV1Prefix+"/matches/3/scorecard")
		require.Equal(t, http.StatusOK, w.Code)
		var sc model.Scorecard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))
		assert.EqualValues(t, 3, sc.Match.ID)
	})
	t.Run("bad id", func(t *testing.T) {
		w := do(newRouter(stubPinger{}, handler.Services{Scorecard: &stubScorecard{}}), http.MethodGet, handler.APIV1Prefix+"/matches/x/scorecard")
		require.Equal(t, http.StatusBadRequest, w.Code)
		p := decodeError(t, w)
		require.Len(t, p.FieldErrors, 1)
		assert.Equal(t, "match_id", p.FieldErrors[0].Field)
	})
	t.Run("not found", func(t *testing.T) {
		stub := &stubScorecard{err: repository.ErrNotFound}
		w := do(newRouter(stubPinger{}, handler.Services{Scorecard: stub}), http.MethodGet, handler.APIV1Prefix+"/matches/99/scorecard")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReference(t *testing.T) {
	stub := &stubReference{res: repository.PageResult[model.RefItem]{Items: []model.RefItem{{ID: 10, Name: "England"}}, Total: 1}}
	r := newRouter(stubPinger{}, handler.Services{Reference: stub})

	for _, path := range []string{"/reference/teams", "/reference/grounds", "/reference/countries"} {
		t.Run(path, func(t *testing.T) {
			w := do(r, http.MethodGet, handler.APIV1Prefix+path+"?match_type=o&limit=5&offset=10")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, model.MatchTypeODI, stub.gotType)
			assert.Equal(t, repository.Page{Limit: 5, Offset: 10}, stub.gotPage)
		})
	}

	t.Run("players", func(t *testing.T) {
		w := do(r, http.MethodGet, handler.APIV1Prefix+"/reference/players?name=Coo")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Coo", stub.gotPrefix)
	})

	t.Run("bad limit", func(t *testing.T) {
		w := do(r, http.MethodGet, handler.APIV1Prefix+"/reference/teams?limit=ten")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "limit", decodeError(t, w).FieldErrors[0].Field)
	})
}
