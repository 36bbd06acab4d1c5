package main

import (
	"fmt"

	"github.com/YeZawHlaing/eduverse/internal/config"
	"github.com/YeZawHlaing/eduverse/internal/database"
	"github.com/YeZawHlaing/eduverse/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var to int32

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Long:  "Migrate the database to --to, or to the latest version when --to is 0. A lower version rolls back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.NewLogger(cfg.Observability)
			return database.Migrate(cmd.Context(), &log, cfg, to)
		},
	}
	cmd.Flags().Int32Var(&to, "to", 0, "target migration version, 0 for latest")

	return cmd
}
