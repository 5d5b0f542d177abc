package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/engine"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List record categories and their sort fields",
	Args:  cobra.NoArgs,
	// no store needed
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(*cobra.Command, []string) error {
		for _, c := range engine.Categories() {
			fields, err := engine.SortFields(c)
			if err != nil {
				return err
			}
			names := make([]string, len(fields))
			for i, f := range fields {
				names[i] = string(f)
			}
			fmt.Fprintf(os.Stdout, "%-28s %s\n", c, strings.Join(names, ", "))
		}
		return nil
	},
}
