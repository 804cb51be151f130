package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/storefront/database"
	"github.com/dtroode/storefront/internal/config"
	"github.com/dtroode/storefront/internal/repository/postgres"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.Open(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := database.Migrate(cmd.Context(), conn.DB); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
