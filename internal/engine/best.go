package engine

import (
	"cmp"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// Comparator orders a before b when it returns a negative value.
type Comparator[T any] func(a, b T) int

// then chains a tie-break onto c.
func (c Comparator[T]) then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

func desc[T any, V cmp.Ordered](v func(T) V) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(v(b), v(a)) }
}

func asc[T any, V cmp.Ordered](v func(T) V) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(v(a), v(b)) }
}

// SelectBest returns the rank-1 item under order. The comparator must end in a
// unique key (match id, innings) so the choice is reproducible.
func SelectBest[T any](items []T, order Comparator[T]) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if order(it, best) < 0 {
			best = it
		}
	}
	return best, true
}

func recMatchID[T any](r Record[T]) int64 { return r.Match.ID }

// bestFielding ranks by dismissals, then keeper catches, then stumpings,
// then match and innings.
var bestFielding = desc(func(r Record[model.FieldingEntry]) int {
	e := r.Entry
	return Dismissals(e.CaughtFielder, e.CaughtKeeper, e.Stumped)
}).then(desc(func(r Record[model.FieldingEntry]) int {
	return r.Entry.CaughtKeeper
})).then(desc(func(r Record[model.FieldingEntry]) int {
	return r.Entry.Stumped
})).then(asc(recMatchID[model.FieldingEntry])).then(asc(func(r Record[model.FieldingEntry]) int {
	return r.Entry.Innings
}))

// bestBowling ranks by wickets, then fewest runs, then match and innings.
var bestBowling = desc(func(r Record[model.BowlingEntry]) int {
	return r.Entry.Wickets
}).then(asc(func(r Record[model.BowlingEntry]) int {
	return r.Entry.Runs
})).then(asc(recMatchID[model.BowlingEntry])).then(asc(func(r Record[model.BowlingEntry]) int {
	return r.Entry.Innings
}))

// bestBatting ranks by runs with a not-out ranking above an equal dismissed score.
var bestBatting = Comparator[Record[model.BattingEntry]](func(a, b Record[model.BattingEntry]) int {
	return cmp.Compare(
		EncodeBest(b.Entry.Runs, b.Entry.Dismissal.NotOut()),
		EncodeBest(a.Entry.Runs, a.Entry.Dismissal.NotOut()),
	)
}).then(asc(recMatchID[model.BattingEntry])).then(asc(func(r Record[model.BattingEntry]) int {
	return r.Entry.Innings
}))

// figures is a wickets/runs pair used for best match bowling.
type figures struct {
	matchID int64
	wickets int
	runs    int
}

var bestFigures = desc(func(f figures) int { return f.wickets }).
	then(asc(func(f figures) int { return f.runs })).
	then(asc(func(f figures) int64 { return f.matchID }))
