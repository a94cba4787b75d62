package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracker_api/internal/config"
	"tracker_api/internal/database"
	"tracker_api/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.MigrateUp, database.MigrateDown, database.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := database.Open(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("db connect failed: %w", err)
			}
			defer db.Close()

			return database.Migrate(cmd.Context(), db, direction, logger)
		},
	}
}
