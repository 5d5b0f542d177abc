package engine

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// Category names one records report.
type Category string

const (
	CategoryBatting          Category = "batting"
	CategoryBattingInnings   Category = "batting-innings"
	CategoryBattingMatch     Category = "batting-match"
	CategoryBowling          Category = "bowling"
	CategoryBowlingInnings   Category = "bowling-innings"
	CategoryBowlingMatch     Category = "bowling-match"
	CategoryBowlingBest      Category = "bowling-best"
	CategoryFielding         Category = "fielding"
	CategoryFieldingBest     Category = "fielding-best"
	CategoryPartnerships     Category = "partnerships"
	CategoryPartnershipPairs Category = "partnership-pairs"
	CategoryTeam             Category = "team"
	CategoryTeamInnings      Category = "team-innings"
	CategoryTargetsDefended  Category = "targets-defended"
	CategoryTargetsChased    Category = "targets-chased"
)

// descriptor is the thin per-category part of the engine: the raw tables the
// category reads, its sortable columns and the row builder.
type descriptor struct {
	needs  Needs
	allows func(SortField) bool
	fields func() []SortField
	run    func(x *extractor, ds *Dataset) (Paged, error)
}

func describe[T any](needs Needs, cols Columns[T], build func(*extractor, *Dataset) []T) descriptor {
	return descriptor{
		needs:  needs,
		allows: cols.Allows,
		fields: cols.Fields,
		run: func(x *extractor, ds *Dataset) (Paged, error) {
			return Paginate(build(x, ds), x.f.Sort, x.f.Page, cols)
		},
	}
}

var categories = map[Category]descriptor{
	CategoryBatting:        describe(NeedBatting, battingColumns, aggregateBatting),
	CategoryBattingInnings: describe(NeedBatting, battingInningsColumns, battingInningsRows),
	CategoryBattingMatch:   describe(NeedBatting, battingMatchColumns, battingMatchRows),
	CategoryBowling:        describe(NeedBowling, bowlingColumns, aggregateBowling),
	CategoryBowlingInnings: describe(NeedBowling, bowlingInningsColumns, bowlingInningsRows),
	CategoryBowlingMatch:   describe(NeedBowling, bowlingMatchColumns, bowlingMatchRows),
	CategoryBowlingBest:    describe(NeedBowling, bowlingBestColumns, bowlingBestRows),
	CategoryFielding:       describe(NeedFielding, fieldingColumns, aggregateFielding),
	CategoryFieldingBest:   describe(NeedFielding, fieldingBestColumns, fieldingBestRows),
	CategoryPartnerships:   describe(NeedPartnerships, partnershipColumns, partnershipRows),
	CategoryPartnershipPairs: describe(NeedPartnerships, partnershipPairColumns,
		partnershipPairRows),
	CategoryTeam:        describe(NeedTeamInnings, teamColumns, aggregateTeams),
	CategoryTeamInnings: describe(NeedTeamInnings, teamInningsColumns, teamInningsRows),
	CategoryTargetsDefended: describe(NeedTeamInnings, targetsDefendedColumns,
		func(x *extractor, ds *Dataset) []model.TargetRow { return targetRows(x, ds, chaseDefended) }),
	CategoryTargetsChased: describe(NeedTeamInnings, targetsChasedColumns,
		func(x *extractor, ds *Dataset) []model.TargetRow { return targetRows(x, ds, chaseSucceeded) }),
}

func lookupCategory(c Category) (descriptor, error) {
	d, ok := categories[c]
	if !ok {
		return descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return d, nil
}

// Categories lists every supported category in alphabetical order.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for c := range categories {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// NeedsOf reports which raw tables a category reads.
func NeedsOf(c Category) (Needs, error) {
	d, err := lookupCategory(c)
	if err != nil {
		return 0, err
	}
	return d.needs, nil
}

// SortFields lists a category's sortable fields.
func SortFields(c Category) ([]SortField, error) {
	d, err := lookupCategory(c)
	if err != nil {
		return nil, err
	}
	return d.fields(), nil
}

// ValidateSort rejects a sort field outside the category's allow-list. It is
// meant to run before any data is loaded.
func ValidateSort(c Category, s SortSpec) error {
	d, err := lookupCategory(c)
	if err != nil {
		return err
	}
	if !d.allows(s.Field) {
		return fmt.Errorf("%w: %q", ErrInvalidSortField, s.Field)
	}
	return nil
}

// Engine runs categories over loaded datasets. It keeps no state between
// runs; the logger is its only dependency.
type Engine struct {
	log zerolog.Logger
}

// New builds an Engine logging through log.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("module", "engine").Logger()}
}

// Run resolves the universe, extracts and aggregates the category's records
// and returns the requested page.
func (e *Engine) Run(c Category, f QualificationFilter, ds *Dataset) (Paged, error) {
	d, err := lookupCategory(c)
	if err != nil {
		return nil, err
	}
	if err := ValidateSort(c, f.Sort); err != nil {
		return nil, err
	}
	x, err := newExtractor(f, ds)
	if err != nil {
		return nil, err
	}
	out, err := d.run(x, ds)
	if err != nil {
		return nil, err
	}
	e.log.Debug().
		Str("category", string(c)).
		Str("dimension", string(x.dim.kind)).
		Int("universe", x.universe.Len()).
		Int("total", out.Total()).
		Int("rows", out.Len()).
		Msg("records query evaluated")
	return out, nil
}
