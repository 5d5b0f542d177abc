package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		n, v, err := backend.Migrate(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d migration(s) applied, schema version %d\n", backend.Name, n, v)
		return nil
	},
}
