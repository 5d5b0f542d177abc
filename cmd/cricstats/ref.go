package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/report"
	"github.com/maxviazov/cricket-records-service/internal/repository"
	"github.com/maxviazov/cricket-records-service/internal/service"
)

var (
	refMatchType string
	refPage      repository.Page
)

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Reference lookups: teams, grounds, countries, players",
}

type refList func(ctx context.Context, svc service.ReferenceService, args []string) (repository.PageResult[model.RefItem], error)

func refSub(use, short string, args cobra.PositionalArgs, list refList) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, a []string) error {
			res, err := list(cmd.Context(), backend.Services(cfg.Records, log).Reference, a)
			if err != nil {
				return explain(err)
			}
			if asJSON {
				return printJSON(res)
			}
			report.RefItems(os.Stdout, res.Items, refPage.Offset, res.Total)
			return nil
		},
	}
}

func init() {
	refCmd.PersistentFlags().StringVar(&refMatchType, "match-type", "", "only entries that played this match type")
	refCmd.PersistentFlags().IntVar(&refPage.Limit, "limit", 0, "rows per page")
	refCmd.PersistentFlags().IntVar(&refPage.Offset, "offset", 0, "rows to skip")

	refCmd.AddCommand(
		refSub("teams", "List teams", cobra.NoArgs, func(ctx context.Context, svc service.ReferenceService, _ []string) (repository.PageResult[model.RefItem], error) {
			return svc.ListTeams(ctx, model.MatchType(refMatchType), refPage)
		}),
		refSub("grounds", "List grounds", cobra.NoArgs, func(ctx context.Context, svc service.ReferenceService, _ []string) (repository.PageResult[model.RefItem], error) {
			return svc.ListGrounds(ctx, model.MatchType(refMatchType), refPage)
		}),
		refSub("countries", "List host countries", cobra.NoArgs, func(ctx context.Context, svc service.ReferenceService, _ []string) (repository.PageResult[model.RefItem], error) {
			return svc.ListCountries(ctx, model.MatchType(refMatchType), refPage)
		}),
		refSub("players <name-prefix>", "Find players by name prefix", cobra.ExactArgs(1), func(ctx context.Context, svc service.ReferenceService, a []string) (repository.PageResult[model.RefItem], error) {
			return svc.FindPlayers(ctx, a[0], refPage)
		}),
	)
}
