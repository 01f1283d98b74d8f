package handlers

import (
	"context"

	"github.com/addonhub/devctl/internal/bootstrap/steps"
)

// InitializeDB destroys and rebuilds the database: schema reset, both
// migration phases, fixtures, reference data, admin account, permission
// sync. Assumes dependencies are installed.
func InitializeDB(ctx context.Context, configPath string) error {
	return runSteps(ctx, configPath, "initialize_db", []string{steps.TaskInitDB})
}

// PopulateData regenerates the synthetic catalog and rebuilds the search
// index. Assumes an initialized database.
func PopulateData(ctx context.Context, configPath string) error {
	return runSteps(ctx, configPath, "populate_data", []string{steps.TaskPopulateData})
}

// UpdateDeps reinstalls the python and node package sets and re-vendors
// static assets out of the refreshed dependency cache.
func UpdateDeps(ctx context.Context, configPath string) error {
	return runSteps(ctx, configPath, "update_deps", []string{steps.TaskInstallDeps, steps.TaskVendorAssets})
}

// UpdateDB applies pending migrations in both phases, non-destructively.
func UpdateDB(ctx context.Context, configPath string) error {
	return runSteps(ctx, configPath, "update_db", []string{steps.TaskUpdateDB})
}

// UpdateAssets recompresses and recollects the static assets. Assumes
// vendored assets are present.
func UpdateAssets(ctx context.Context, configPath string) error {
	return runSteps(ctx, configPath, "update_assets", []string{steps.TaskCompileAssets})
}
