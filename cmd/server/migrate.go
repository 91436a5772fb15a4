package main

import (
	"github.com/spf13/cobra"
	"github.com/vedran77/foo/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Migrate(cmd.Context(), a.cfg.PG); err != nil {
				return err
			}
			a.logger.Info("migrations applied")
			return nil
		},
	}
}
