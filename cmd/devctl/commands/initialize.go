package commands

import (
	"github.com/spf13/cobra"

	"github.com/addonhub/devctl/cmd/devctl/handlers"
)

// Initialize returns the command that bootstraps a brand-new environment.
//
// The sequence:
//  1. Install python and node package sets
//  2. Reset and migrate the database, load fixtures, create the admin account
//  3. Vendor and compile static assets
//  4. Populate sample data and rebuild the search index
//
// Every step is fatal: the first failing command halts the sequence.
func Initialize() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Bootstrap a brand-new environment to a servable state",
		Long: `Bootstrap a freshly provisioned environment.

Installs dependencies, destroys and rebuilds the database, compiles the
static assets, and populates the catalog with sample data. Intended for
new environments; it is destructive to existing data.

Examples:
  # Bootstrap using devctl.yaml in the current directory
  devctl initialize

  # Bootstrap with a specific configuration
  devctl initialize -c staging.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Initialize(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// Update returns the command that refreshes an existing environment:
// dependencies, pending migrations, assets, and a final permission sync.
func Update() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh an existing environment after pulling new code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Update(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
