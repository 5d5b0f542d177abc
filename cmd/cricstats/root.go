package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/cricket-records-service/internal/app"
	"github.com/maxviazov/cricket-records-service/internal/config"
	"github.com/maxviazov/cricket-records-service/internal/logger"
)

var (
	configPath  string
	backendName string
	sqlitePath  string
	asJSON      bool

	cfg     *config.Config
	log     zerolog.Logger
	backend *app.Backend
)

var rootCmd = &cobra.Command{
	Use:           "cricstats",
	Short:         "Cricket records from the command line",
	Long:          "Query batting, bowling, fielding, partnership and team records, scorecards and reference data.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if backend != nil {
			backend.Close()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "override the backend: postgres or sqlite")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "override the SQLite snapshot path")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")

	rootCmd.AddCommand(queryCmd, scorecardCmd, refCmd, migrateCmd, loadCmd, categoriesCmd)
}

// setup loads config and opens the backend. Flag overrides go through the
// environment so config validation sees the final values.
func setup(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if backendName != "" {
		os.Setenv("APP_APP_BACKEND", backendName)
	}
	if sqlitePath != "" {
		os.Setenv("APP_SQLITE_PATH", sqlitePath)
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	// keep stdout for results
	cfg.Logger.OutputTarget = "stderr"
	if log, err = logger.New(&cfg.Logger); err != nil {
		return err
	}
	backend, err = app.Open(ctx, cfg, log)
	return err
}
