package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/engine"
)

var loadCmd = &cobra.Command{
	Use:   "load <dataset.json>",
	Short: "Seed the store from a JSON dataset",
	Long: `Insert a JSON dataset into the store in one transaction. The file has the
shape of a records dataset: names, matches, batting, bowling, fielding,
partnerships and team_innings. Rows that already exist fail the whole load.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var ds engine.Dataset
		if err := json.NewDecoder(f).Decode(&ds); err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		if err := backend.Loader.Seed(cmd.Context(), &ds); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Printf("loaded %d matches into %s\n", len(ds.Matches), backend.Name)
		return nil
	},
}
