package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

// maxReferenceLimit caps reference listings; they feed drop-downs.
const maxReferenceLimit = 500

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so field errors match the request parameters
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func normalizePage(p repository.Page) repository.Page {
	p = p.Sanitize()
	if p.Limit > maxReferenceLimit {
		p.Limit = maxReferenceLimit
	}
	return p
}

// validateFilter checks a records filter and returns every problem found.
func validateFilter(v *validator.Validate, f engine.QualificationFilter, maxPageSize int) []FieldError {
	var ferrs []FieldError
	if err := v.Struct(f); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return []FieldError{{Field: "filter", Message: err.Error()}}
		}
		for _, fe := range ves {
			ferrs = append(ferrs, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
	}
	if f.MatchType != "" && !f.MatchType.Valid() {
		ferrs = append(ferrs, FieldError{Field: "match_type", Message: "unknown match type"})
	}
	if f.MatchSubType != "" && !f.MatchSubType.Valid() {
		ferrs = append(ferrs, FieldError{Field: "match_sub_type", Message: "unknown match type"})
	}
	if !engine.ValidDimension(f.Dimension) {
		ferrs = append(ferrs, FieldError{Field: "dimension", Message: "unknown dimension"})
	}
	if f.ResultMask > allResults {
		ferrs = append(ferrs, FieldError{Field: "result_mask", Message: "unknown result bits"})
	}
	if f.VenueMask > allVenues {
		ferrs = append(ferrs, FieldError{Field: "venue_mask", Message: "unknown venue bits"})
	}
	d := f.Dates
	if !d.From.IsZero() && !d.To.IsZero() && d.From.After(d.To) {
		ferrs = append(ferrs, FieldError{Field: "dates", Message: "from must not be after to"})
	}
	if maxPageSize > 0 && f.Page.PageSize > maxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be <= max page size"})
	}
	return ferrs
}

const (
	allResults = model.ResultWon | model.ResultLost | model.ResultDrawn | model.ResultTied | model.ResultNoResult
	allVenues  = model.VenueHome | model.VenueAway | model.VenueNeutral
)

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " rule"
	}
}
