package commands

import (
	"github.com/spf13/cobra"

	"github.com/addonhub/devctl/cmd/devctl/handlers"
)

// SetupUITests returns the command that prepares the browser test suite.
func SetupUITests() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "setup-ui-tests",
		Short: "Install UI-test dependencies and load their fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.SetupUITests(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// RunUITests returns the command that runs the browser test suite.
func RunUITests() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run-ui-tests",
		Short: "Run the browser test suite against the local environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.RunUITests(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// PerfTests returns the command that runs the load-test suite.
func PerfTests() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "perf-tests",
		Short: "Run the load-test suite against the local environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PerfTests(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
