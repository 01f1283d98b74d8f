package commands

import (
	"github.com/spf13/cobra"

	"github.com/addonhub/devctl/cmd/devctl/handlers"
)

// InitializeDB returns the command that destroys and rebuilds the database.
func InitializeDB() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "initialize_db",
		Short: "Reset the schema, migrate, load fixtures, and create the admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.InitializeDB(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// PopulateData returns the command that regenerates the sample catalog.
func PopulateData() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "populate_data",
		Short: "Generate sample add-ons and rebuild the search index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PopulateData(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// UpdateDeps returns the command that reinstalls dependencies and
// re-vendors static assets.
func UpdateDeps() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "update_deps",
		Short: "Reinstall python and node packages and re-vendor static assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.UpdateDeps(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// UpdateDB returns the command that applies pending migrations.
func UpdateDB() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "update_db",
		Short: "Apply pending migrations in both phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.UpdateDB(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// UpdateAssets returns the command that recompresses and recollects
// static assets.
func UpdateAssets() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "update_assets",
		Short: "Compress and collect static assets for serving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.UpdateAssets(cmd.Context(), configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

// Reindex returns the command that rebuilds the search index. Trailing
// arguments are passed through verbatim, so `devctl reindex --wipe` is
// the destructive variant. Flag parsing is disabled; the default
// configuration file is used.
func Reindex() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reindex [args]",
		Short: "Rebuild the search index from current database contents",
		Long: `Rebuild the search index from current database contents.

Arguments after the command name are passed through to the index rebuild.
Without --wipe the rebuild is non-destructive: running it twice with no
intervening data change leaves the index unchanged.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Reindex(cmd.Context(), "devctl.yaml", args)
		},
	}

	return cmd
}
