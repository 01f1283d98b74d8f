// Package main is the entry point for the devctl CLI.
//
// devctl bootstraps and maintains a local AddonHub marketplace
// environment: it installs the server and frontend dependency sets,
// resets and migrates the database, vendors and compiles static assets,
// populates sample catalog data, and rebuilds the search index.
//
// Commands: initialize, update, initialize_db, populate_data,
// update_deps, update_db, update_assets, reindex.
//
// For detailed usage information, run:
//
//	devctl --help
package main

import (
	"fmt"
	"os"

	"github.com/addonhub/devctl/cmd/devctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
