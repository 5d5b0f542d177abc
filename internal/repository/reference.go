package repository

import (
	"context"
	"strings"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

// ReferenceQueries implements ReferenceRepository over any Querier.
type ReferenceQueries struct {
	Q       Querier
	Dialect Dialect
}

func (r ReferenceQueries) ListTeams(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error) {
	return r.list(ctx, "teams", `EXISTS (SELECT 1 FROM match_teams x JOIN matches m ON m.id = x.match_id
		WHERE x.team_id = t.id AND m.match_type = `, mt, p)
}

func (r ReferenceQueries) ListGrounds(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error) {
	return r.list(ctx, "grounds", `EXISTS (SELECT 1 FROM matches m WHERE m.ground_id = t.id AND m.match_type = `, mt, p)
}

func (r ReferenceQueries) ListCountries(ctx context.Context, mt model.MatchType, p Page) (PageResult[model.RefItem], error) {
	return r.list(ctx, "countries", `EXISTS (SELECT 1 FROM matches m WHERE m.host_country_id = t.id AND m.match_type = `, mt, p)
}

// FindPlayers matches names case-insensitively by prefix.
func (r ReferenceQueries) FindPlayers(ctx context.Context, prefix string, p Page) (PageResult[model.RefItem], error) {
	p = p.Sanitize()
	ph := r.Dialect.Placeholder
	stmt := `SELECT t.id, t.name, COUNT(*) OVER() FROM players t
		WHERE LOWER(t.name) LIKE ` + ph(1) + ` ESCAPE '\'
		ORDER BY t.name, t.id LIMIT ` + ph(2) + ` OFFSET ` + ph(3)
	return r.page(ctx, stmt, []any{likePrefix(prefix), p.Limit, p.Offset})
}

// list pages through table ordered by name. exists is an unterminated
// predicate on t.id that is completed with the match type parameter.
func (r ReferenceQueries) list(ctx context.Context, table, exists string, mt model.MatchType, p Page) (PageResult[model.RefItem], error) {
	p = p.Sanitize()
	ph := r.Dialect.Placeholder
	var (
		where string
		args  []any
	)
	if mt != "" {
		args = append(args, string(mt))
		where = ` WHERE ` + exists + ph(len(args)) + `)`
	}
	args = append(args, p.Limit, p.Offset)
	stmt := `SELECT t.id, t.name, COUNT(*) OVER() FROM ` + table + ` t` + where +
		` ORDER BY t.name, t.id LIMIT ` + ph(len(args)-1) + ` OFFSET ` + ph(len(args))
	return r.page(ctx, stmt, args)
}

func (r ReferenceQueries) page(ctx context.Context, stmt string, args []any) (PageResult[model.RefItem], error) {
	var total int
	items, err := queryAll(ctx, r.Q, stmt, args, func(rows Rows) (model.RefItem, error) {
		var it model.RefItem
		err := rows.Scan(&it.ID, &it.Name, &total)
		return it, err
	})
	if err != nil {
		return PageResult[model.RefItem]{}, err
	}
	return PageResult[model.RefItem]{Items: items, Total: total}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(s string) string {
	return likeEscaper.Replace(strings.ToLower(s)) + "%"
}
