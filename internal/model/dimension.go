package model

// DimensionKind names the axis a records query is sliced by.
type DimensionKind string

const (
	DimensionCareer      DimensionKind = "career"
	DimensionGround      DimensionKind = "ground"
	DimensionHostCountry DimensionKind = "host"
	DimensionSeason      DimensionKind = "season"
	DimensionYear        DimensionKind = "year"
	DimensionSeries      DimensionKind = "series"
	DimensionOpponent    DimensionKind = "opponent"
)

// DimensionValue is the resolved dimension key for one record. It is comparable
// so it can be used directly as part of a map key; only the fields relevant to
// Kind are populated.
type DimensionValue struct {
	Kind   DimensionKind `json:"kind"`
	ID     int64         `json:"id,omitempty"`
	Year   int           `json:"year,omitempty"`
	Label  string        `json:"label,omitempty"`
	Number int           `json:"number,omitempty"`
}

// Career is the dimension value used when no dimension is active.
func Career() DimensionValue { return DimensionValue{Kind: DimensionCareer} }

// GroundDim keys by ground id.
func GroundDim(id int64) DimensionValue { return DimensionValue{Kind: DimensionGround, ID: id} }

// HostCountryDim keys by the country a match was played in.
func HostCountryDim(id int64) DimensionValue {
	return DimensionValue{Kind: DimensionHostCountry, ID: id}
}

// SeasonDim keys by season label, e.g. "2005/06".
func SeasonDim(label string) DimensionValue {
	return DimensionValue{Kind: DimensionSeason, Label: label}
}

// YearDim keys by the calendar year a match started in.
func YearDim(year int) DimensionValue { return DimensionValue{Kind: DimensionYear, Year: year} }

// SeriesDim keys by series number and series date.
func SeriesDim(number int, date string) DimensionValue {
	return DimensionValue{Kind: DimensionSeries, Number: number, Label: date}
}

// OpponentDim keys by opposing team id.
func OpponentDim(id int64) DimensionValue {
	return DimensionValue{Kind: DimensionOpponent, ID: id}
}
