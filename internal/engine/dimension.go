package engine

import (
	"fmt"
	"strconv"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// dimension describes one DimensionKey variant: how to read the key off a
// match (and, for the opponent axis, off the record) and how to resolve its
// display name.
type dimension struct {
	kind  model.DimensionKind
	value func(m *model.Match, opponentID int64) model.DimensionValue
	name  func(v model.DimensionValue, names model.Names) string
}

var dimensions = map[model.DimensionKind]dimension{
	model.DimensionCareer: {
		kind:  model.DimensionCareer,
		value: func(*model.Match, int64) model.DimensionValue { return model.Career() },
		name:  func(model.DimensionValue, model.Names) string { return "" },
	},
	model.DimensionGround: {
		kind:  model.DimensionGround,
		value: func(m *model.Match, _ int64) model.DimensionValue { return model.GroundDim(m.GroundID) },
		name:  func(v model.DimensionValue, n model.Names) string { return n.Ground(v.ID) },
	},
	model.DimensionHostCountry: {
		kind:  model.DimensionHostCountry,
		value: func(m *model.Match, _ int64) model.DimensionValue { return model.HostCountryDim(m.HostCountryID) },
		name:  func(v model.DimensionValue, n model.Names) string { return n.Country(v.ID) },
	},
	model.DimensionSeason: {
		kind:  model.DimensionSeason,
		value: func(m *model.Match, _ int64) model.DimensionValue { return model.SeasonDim(m.Season) },
		name:  func(v model.DimensionValue, _ model.Names) string { return v.Label },
	},
	model.DimensionYear: {
		kind:  model.DimensionYear,
		value: func(m *model.Match, _ int64) model.DimensionValue { return model.YearDim(m.StartDate.Year()) },
		name:  func(v model.DimensionValue, _ model.Names) string { return strconv.Itoa(v.Year) },
	},
	model.DimensionSeries: {
		kind: model.DimensionSeries,
		value: func(m *model.Match, _ int64) model.DimensionValue {
			return model.SeriesDim(m.SeriesNumber, m.SeriesDate)
		},
		name: func(v model.DimensionValue, _ model.Names) string {
			return fmt.Sprintf("%s (%d)", v.Label, v.Number)
		},
	},
	model.DimensionOpponent: {
		kind:  model.DimensionOpponent,
		value: func(_ *model.Match, opponentID int64) model.DimensionValue { return model.OpponentDim(opponentID) },
		name:  func(v model.DimensionValue, n model.Names) string { return n.Team(v.ID) },
	},
}

// lookupDimension resolves a kind; empty means career.
func lookupDimension(kind model.DimensionKind) (dimension, error) {
	if kind == "" {
		kind = model.DimensionCareer
	}
	d, ok := dimensions[kind]
	if !ok {
		return dimension{}, fmt.Errorf("%w: %q", ErrUnknownDimension, kind)
	}
	return d, nil
}

// ValidDimension reports whether kind names a supported dimension.
func ValidDimension(kind model.DimensionKind) bool {
	_, err := lookupDimension(kind)
	return err == nil
}
