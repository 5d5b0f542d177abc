package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Paged is the type-erased view of a PagedResult, used by callers that do
// not care about the row shape.
type Paged interface {
	Total() int
	Len() int
}

// PagedResult is one page of rows plus the size of the unsliced result.
type PagedResult[T any] struct {
	Rows       []T `json:"rows"`
	TotalCount int `json:"total_count"`
}

// Total is the row count before pagination.
func (p PagedResult[T]) Total() int { return p.TotalCount }

// Len is the number of rows on this page.
func (p PagedResult[T]) Len() int { return len(p.Rows) }

// Columns is a category's sortable column set: an explicit field → comparator
// mapping, the default ordering, and the fixed tie-breaks applied after the
// requested field (name, then a unique row key).
type Columns[T any] struct {
	fields map[SortField]Comparator[T]
	def    SortSpec
	name   func(T) string
	key    Comparator[T]
}

// Fields lists the sortable field names in alphabetical order.
func (c Columns[T]) Fields() []SortField {
	out := make([]SortField, 0, len(c.fields))
	for f := range c.fields {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Allows reports whether field is sortable; the empty field selects the default.
func (c Columns[T]) Allows(field SortField) bool {
	if field == "" {
		return true
	}
	_, ok := c.fields[field]
	return ok
}

// order resolves the requested sort into a total comparator.
func (c Columns[T]) order(s SortSpec) (Comparator[T], error) {
	field, dir := s.Field, s.Direction
	if field == "" {
		field = c.def.Field
	}
	if dir == "" {
		dir = c.def.Direction
	}
	by, ok := c.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, s.Field)
	}
	if dir == Desc {
		fwd := by
		by = func(a, b T) int { return fwd(b, a) }
	}
	name := c.name
	return by.then(func(a, b T) int {
		return strings.Compare(name(a), name(b))
	}).then(c.key), nil
}

// Paginate sorts rows by the requested field, breaks ties by name and row
// key, and returns the [offset, offset+pageSize) window together with the
// total row count. Paging past the end yields no rows and the same total.
func Paginate[T any](rows []T, s SortSpec, p Pagination, cols Columns[T]) (PagedResult[T], error) {
	if p.Offset < 0 || p.PageSize < 1 {
		return PagedResult[T]{}, fmt.Errorf("%w: offset %d, page size %d", ErrInvalidPagination, p.Offset, p.PageSize)
	}
	order, err := cols.order(s)
	if err != nil {
		return PagedResult[T]{}, err
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, order)

	total := len(sorted)
	if p.Offset >= total {
		return PagedResult[T]{Rows: []T{}, TotalCount: total}, nil
	}
	end := p.Offset + min(p.PageSize, total-p.Offset)
	return PagedResult[T]{Rows: sorted[p.Offset:end], TotalCount: total}, nil
}
