package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/report"
)

// queryFlags mirrors the HTTP query parameters of /records/:category.
type queryFlags struct {
	matchType, subType  string
	team, opponent      int64
	ground, hostCountry int64
	season              string
	from, to            string
	result, venue       []string
	min, wicket         int
	dimension           string
	offset, pageSize    int
	sort, dir           string
}

var qf queryFlags

var queryCmd = &cobra.Command{
	Use:   "query <category>",
	Short: "Run a records query",
	Long: `Run a records query of one category and print one page of rows.

Examples:
  cricstats query batting --match-type t --sort runs
  cricstats query bowling-best --team 10 --dimension opponent
  cricstats query partnerships --match-type o --wicket 1 --page-size 10`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&qf.matchType, "match-type", "", "match type code, e.g. t, o, itt")
	f.StringVar(&qf.subType, "sub-type", "", "match sub type code")
	f.Int64Var(&qf.team, "team", 0, "team id")
	f.Int64Var(&qf.opponent, "opponent", 0, "opponent team id")
	f.Int64Var(&qf.ground, "ground", 0, "ground id")
	f.Int64Var(&qf.hostCountry, "host", 0, "host country id")
	f.StringVar(&qf.season, "season", "", "season label, e.g. 2005/06")
	f.StringVar(&qf.from, "from", "", "first start date, YYYY-MM-DD")
	f.StringVar(&qf.to, "to", "", "last start date, YYYY-MM-DD")
	f.StringSliceVar(&qf.result, "result", nil, "results from the team's view: won,lost,drawn,tied,no_result")
	f.StringSliceVar(&qf.venue, "venue", nil, "venues from the team's view: home,away,neutral")
	f.IntVar(&qf.min, "min", 0, "category qualification threshold")
	f.IntVar(&qf.wicket, "wicket", 0, "partnership wicket, 0 for all")
	f.StringVar(&qf.dimension, "dimension", "", "career, ground, host, season, year, series or opponent")
	f.IntVar(&qf.offset, "offset", 0, "rows to skip")
	f.IntVar(&qf.pageSize, "page-size", 0, "rows per page, 0 for the configured default")
	f.StringVar(&qf.sort, "sort", "", "sort field of the category")
	f.StringVar(&qf.dir, "dir", "", "asc or desc")
}

func parseDate(flag, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD", flag)
	}
	return d, nil
}

func (q queryFlags) filter() (engine.QualificationFilter, error) {
	from, err := parseDate("from", q.from)
	if err != nil {
		return engine.QualificationFilter{}, err
	}
	to, err := parseDate("to", q.to)
	if err != nil {
		return engine.QualificationFilter{}, err
	}
	result, err := model.ParseMask(q.result, model.ResultNames)
	if err != nil {
		return engine.QualificationFilter{}, fmt.Errorf("--result: %w", err)
	}
	venue, err := model.ParseMask(q.venue, model.VenueNames)
	if err != nil {
		return engine.QualificationFilter{}, fmt.Errorf("--venue: %w", err)
	}
	return engine.QualificationFilter{
		MatchType:        model.MatchType(q.matchType),
		MatchSubType:     model.MatchType(q.subType),
		TeamID:           q.team,
		OpponentID:       q.opponent,
		GroundID:         q.ground,
		HostCountryID:    q.hostCountry,
		Season:           q.season,
		Dates:            engine.DateRange{From: from, To: to},
		ResultMask:       result,
		VenueMask:        venue,
		MinimumThreshold: q.min,
		Wicket:           q.wicket,
		Dimension:        model.DimensionKind(q.dimension),
		Page:             engine.Pagination{Offset: q.offset, PageSize: q.pageSize},
		Sort: engine.SortSpec{
			Field:     engine.SortField(q.sort),
			Direction: engine.SortDirection(strings.ToLower(q.dir)),
		},
	}, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	f, err := qf.filter()
	if err != nil {
		return err
	}
	svcs := backend.Services(cfg.Records, log)
	res, err := svcs.Records.Query(cmd.Context(), engine.Category(args[0]), f)
	if err != nil {
		return explain(err)
	}
	if asJSON {
		return printJSON(res)
	}
	return report.Records(os.Stdout, res, f.Page.Offset)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
