// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the devctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devctl",
		Short: "Bootstrap and maintain an AddonHub marketplace environment",
	}

	// Top-level orchestrations
	cmd.AddCommand(Initialize())
	cmd.AddCommand(Update())

	// Individual steps
	cmd.AddCommand(InitializeDB())
	cmd.AddCommand(PopulateData())
	cmd.AddCommand(UpdateDeps())
	cmd.AddCommand(UpdateDB())
	cmd.AddCommand(UpdateAssets())
	cmd.AddCommand(Reindex())

	// Test suites
	cmd.AddCommand(SetupUITests())
	cmd.AddCommand(RunUITests())
	cmd.AddCommand(PerfTests())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// configFlag binds the shared --config flag.
func configFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", "devctl.yaml", "Path to configuration file")
}
