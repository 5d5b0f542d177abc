package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/service"
)

// params reads query parameters and remembers every malformed one, so a
// request with several bad values gets all of them back at once.
type params struct {
	c    *gin.Context
	errs []service.FieldError
}

func (p *params) fail(field, msg string) {
	p.errs = append(p.errs, service.FieldError{Field: field, Message: msg})
}

func (p *params) num(name string) int {
	raw := p.c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, "must be an integer")
	}
	return v
}

func (p *params) id(name string) int64 {
	raw := p.c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(name, "must be an integer id")
	}
	return v
}

func (p *params) date(name string) time.Time {
	raw := p.c.Query(name)
	if raw == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		p.fail(name, "must be YYYY-MM-DD")
	}
	return d
}

// mask ORs a comma separated list of names; a plain integer is taken as is.
func mask[T ~int](p *params, name string, bits map[string]T) T {
	raw := p.c.Query(name)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return T(n)
	}
	out, err := model.ParseMask(strings.Split(raw, ","), bits)
	if err != nil {
		p.fail(name, err.Error())
	}
	return out
}

func (p *params) err() error { return service.NewInvalidInputError(p.errs) }

// filterFromQuery maps query parameters 1:1 onto a QualificationFilter.
func filterFromQuery(c *gin.Context) (engine.QualificationFilter, error) {
	p := &params{c: c}
	f := engine.QualificationFilter{
		MatchType:        model.MatchType(c.Query("match_type")),
		MatchSubType:     model.MatchType(c.Query("match_sub_type")),
		TeamID:           p.id("team"),
		OpponentID:       p.id("opponent"),
		GroundID:         p.id("ground"),
		HostCountryID:    p.id("host_country"),
		Season:           c.Query("season"),
		Dates:            engine.DateRange{From: p.date("from"), To: p.date("to")},
		ResultMask:       mask(p, "result", model.ResultNames),
		VenueMask:        mask(p, "venue", model.VenueNames),
		MinimumThreshold: p.num("min"),
		Wicket:           p.num("wicket"),
		Dimension:        model.DimensionKind(c.Query("dimension")),
		Page:             engine.Pagination{Offset: p.num("offset"), PageSize: p.num("page_size")},
		Sort: engine.SortSpec{
			Field:     engine.SortField(c.Query("sort")),
			Direction: engine.SortDirection(strings.ToLower(c.Query("dir"))),
		},
	}
	return f, p.err()
}

func pageFromQuery(c *gin.Context) (repository.Page, error) {
	p := &params{c: c}
	page := repository.Page{Limit: p.num("limit"), Offset: p.num("offset")}
	return page, p.err()
}
