// Package cli implements the storefront command line.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary. Values are set by ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand(build BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront web shop",
		Long: `Storefront serves a small web shop: accounts, a product catalog,
a session cart and purchase records.

Configuration is read from environment variables.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCommand(build))
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewUserCommand())
	cmd.AddCommand(NewProductCommand())
	cmd.AddCommand(NewVersionCommand(build))

	return cmd
}
