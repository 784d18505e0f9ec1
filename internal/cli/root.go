// Package cli implements the admin command line.
package cli

import (
	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/spf13/cobra"
)

// ConfigLoader produces the configuration shared by every subcommand.
type ConfigLoader func() (*config.Config, error)

// NewRootCommand builds the admin command tree.
func NewRootCommand(load ConfigLoader) *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administrative tasks for the company collections backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	current := func() *config.Config { return cfg }
	root.AddCommand(migrateCmd(current), seedCmd(current), tokenCmd(current))
	return root
}

// Execute runs the admin CLI against the process environment.
func Execute() error {
	return NewRootCommand(config.Load).Execute()
}
