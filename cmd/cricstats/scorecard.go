package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/report"
)

var scorecardCmd = &cobra.Command{
	Use:   "scorecard <match-id>",
	Short: "Print a match scorecard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("match id must be an integer: %q", args[0])
		}
		sc, err := backend.Services(cfg.Records, log).Scorecard.GetScorecard(cmd.Context(), id)
		if err != nil {
			return explain(err)
		}
		if asJSON {
			return printJSON(sc)
		}
		report.Scorecard(os.Stdout, sc)
		return nil
	},
}
