package cli

import (
	"fmt"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/cmlabs-hris/collections-backend-go/internal/repository"
	"github.com/cmlabs-hris/collections-backend-go/internal/service/seed"
	"github.com/spf13/cobra"
)

func seedCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and install the default companies and collections into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			store, err := repository.Open(c)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			seeder := seed.NewSeedService(store.Transactor, store.Collections, store.Memberships, store.Companies)
			seeded, err := seeder.SeedDefaults(cmd.Context(), c.Collections.LikedCollectionName)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "store already has collections, nothing seeded")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "default collections seeded")
			return nil
		},
	}
}
