package engine

import (
	"cmp"
	"slices"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// partitionKey identifies one aggregation partition: a player or team, a
// match type and a dimension value.
type partitionKey struct {
	id  int64
	mt  model.MatchType
	dim model.DimensionValue
}

// partition is the ordered group of records sharing a key.
type partition[T any] struct {
	key  partitionKey
	recs []Record[T]
}

// matches counts the distinct matches in the partition.
func (p partition[T]) matches() int {
	seen := make(map[int64]struct{}, len(p.recs))
	for _, r := range p.recs {
		seen[r.Match.ID] = struct{}{}
	}
	return len(seen)
}

// teams collects the distinct teams the partition's records were made for.
func (p partition[T]) teams() map[int64]struct{} {
	out := make(map[int64]struct{}, 1)
	for _, r := range p.recs {
		out[r.TeamID] = struct{}{}
	}
	return out
}

// partitionBy groups records by (id, match type, dimension value) and
// returns the partitions in key order so downstream output is reproducible.
func partitionBy[T any](recs []Record[T], id func(Record[T]) int64) []partition[T] {
	idx := make(map[partitionKey]int)
	var parts []partition[T]
	for _, r := range recs {
		k := partitionKey{id: id(r), mt: r.Match.MatchType, dim: r.Dim}
		i, ok := idx[k]
		if !ok {
			i = len(parts)
			idx[k] = i
			parts = append(parts, partition[T]{key: k})
		}
		parts[i].recs = append(parts[i].recs, r)
	}
	slices.SortFunc(parts, func(a, b partition[T]) int { return comparePartitionKeys(a.key, b.key) })
	return parts
}

func byPlayer[T any](r Record[T]) int64 { return r.PlayerID }

func byTeam[T any](r Record[T]) int64 { return r.TeamID }

func comparePartitionKeys(a, b partitionKey) int {
	if c := cmp.Compare(a.id, b.id); c != 0 {
		return c
	}
	if c := cmp.Compare(a.mt, b.mt); c != 0 {
		return c
	}
	return compareDimensions(a.dim, b.dim)
}

func compareDimensions(a, b model.DimensionValue) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return cmp.Compare(a.Number, b.Number)
}

// rowKey is the unique ordering key shared by aggregated rows: the owning
// player or team, then the dimension value.
func rowKey[T any](id func(T) int64, dim func(T) model.DimensionValue) Comparator[T] {
	return func(a, b T) int {
		if c := cmp.Compare(id(a), id(b)); c != 0 {
			return c
		}
		return compareDimensions(dim(a), dim(b))
	}
}

// performanceKey orders single-performance rows by match, innings and owner.
func performanceKey[T any](match func(T) int64, innings func(T) int, owner func(T) int64) Comparator[T] {
	return asc(match).then(asc(innings)).then(asc(owner))
}

// threshold drops rows whose qualifying value is below the filter minimum.
func threshold[T any](f QualificationFilter, rows []T, value func(T) int) []T {
	if f.MinimumThreshold <= 0 {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if f.meetsThreshold(value(r)) {
			out = append(out, r)
		}
	}
	return out
}
