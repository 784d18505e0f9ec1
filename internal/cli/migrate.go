package cli

import (
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository"
	"github.com/spf13/cobra"
)

func migrateCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := repository.Open(cfg())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", store.Driver)
			return nil
		},
	}
}
