package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/project-admin/internal/projects/repository"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the project tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEnv()
			if err != nil {
				return err
			}
			pool, db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer db.Close()

			if err := repository.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			slog.Info("schema migrated")
			return nil
		},
	}
}
