// Package engine implements the dimensional aggregation and pagination engine
// behind every records query: it resolves the qualifying match universe,
// extracts per-performance detail records tagged with a dimension value,
// aggregates them per player or team, selects best single performances and
// returns a sorted, paginated, total-counted result.
//
// The engine is pure: it works over a Dataset already loaded by a storage
// backend and holds no state between calls.
package engine

import (
	"errors"
	"time"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// AllSeasons is the season label meaning "no season restriction".
const AllSeasons = "0"

var (
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownDimension  = errors.New("unknown dimension")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// SortDirection is asc or desc; empty means the category default.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortField names a sortable column of a category. Each category publishes
// its own allow-list; anything else is rejected.
type SortField string

// SortSpec is the caller's requested ordering.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// Pagination is an offset/page-size window over the sorted rows.
type Pagination struct {
	Offset   int `json:"offset" validate:"gte=0"`
	PageSize int `json:"page_size" validate:"gte=1"`
}

// DateRange bounds match start dates inclusively. A zero bound is open.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// IsZero reports whether neither bound is set.
func (d DateRange) IsZero() bool { return d.From.IsZero() && d.To.IsZero() }

// QualificationFilter is the normalized search criteria of one request.
// Zero ids, empty strings and zero masks are wildcards.
type QualificationFilter struct {
	MatchType        model.MatchType     `json:"match_type" validate:"required"`
	MatchSubType     model.MatchType     `json:"match_sub_type"`
	TeamID           int64               `json:"team_id" validate:"gte=0"`
	OpponentID       int64               `json:"opponent_id" validate:"gte=0"`
	GroundID         int64               `json:"ground_id" validate:"gte=0"`
	HostCountryID    int64               `json:"host_country_id" validate:"gte=0"`
	Season           string              `json:"season"`
	Dates            DateRange           `json:"dates"`
	ResultMask       model.ResultCode    `json:"result_mask" validate:"gte=0"`
	VenueMask        model.VenueCode     `json:"venue_mask" validate:"gte=0"`
	MinimumThreshold int                 `json:"minimum_threshold" validate:"gte=0"`
	Wicket           int                 `json:"wicket" validate:"gte=0,lte=10"`
	Dimension        model.DimensionKind `json:"dimension"`
	Page             Pagination          `json:"page"`
	Sort             SortSpec            `json:"sort"`
}

// seasonActive reports whether the season label restricts the universe.
func (f QualificationFilter) seasonActive() bool {
	return f.Season != "" && f.Season != AllSeasons
}

// meetsThreshold applies the minimum qualification rule; zero disables it.
func (f QualificationFilter) meetsThreshold(v int) bool {
	return f.MinimumThreshold <= 0 || v >= f.MinimumThreshold
}
