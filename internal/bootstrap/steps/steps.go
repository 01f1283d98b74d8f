// Package steps defines the concrete tasks of the bootstrap workflow.
//
// Each task wraps a fixed sequence of external commands: pip and npm for
// dependencies, the framework's manage command for everything touching the
// database, the search index, and the asset pipeline. All of them are
// fail-fast; the first non-zero exit aborts the whole run.
package steps

import "github.com/addonhub/devctl/internal/bootstrap"

// Task names, also the CLI-facing step identifiers.
const (
	TaskInstallDeps     = "install_deps"
	TaskVendorAssets    = "vendor_assets"
	TaskInitDB          = "init_db"
	TaskUpdateDB        = "update_db"
	TaskSyncPermissions = "sync_permissions"
	TaskPopulateData    = "populate_data"
	TaskCompileAssets   = "compile_assets"
)

// Register adds every bootstrap task to the pipeline.
func Register(p *bootstrap.Pipeline) error {
	return p.Register(
		InstallDeps(),
		VendorAssets(),
		InitDB(),
		UpdateDB(),
		SyncPermissions(),
		PopulateData(),
		CompileAssets(),
	)
}

// InitializeTargets are the targets for bootstrapping a brand-new
// environment: dependencies, database from scratch, compiled assets,
// then sample data.
func InitializeTargets() []string {
	return []string{TaskInitDB, TaskCompileAssets, TaskPopulateData}
}

// UpdateTargets are the targets for refreshing an existing environment:
// dependencies, pending migrations, compiled assets, then a final
// permission sync.
func UpdateTargets() []string {
	return []string{TaskUpdateDB, TaskCompileAssets, TaskSyncPermissions}
}
