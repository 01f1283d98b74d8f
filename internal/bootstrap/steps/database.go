package steps

import (
	"fmt"

	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/shell"
)

// InitDB returns the database-initialization task. It destroys and
// recreates the schema, applies migrations in both phases, loads the base
// fixture set, imports reference version data, provisions the admin
// account, and synchronizes the permission table.
//
// Ordering inside the step is significant: fixtures assume an empty,
// migrated schema, and the permission sync assumes fixtures are loaded.
func InitDB() bootstrap.Task {
	return bootstrap.NewTask(TaskInitDB, []string{TaskInstallDeps}, runInitDB)
}

func runInitDB(ctx *bootstrap.Context) error {
	cfg := ctx.Config

	sequence := [][]string{
		cfg.ManageArgs("reset_db", "--noinput"),
		cfg.ManageArgs("migrate", "--noinput"),
		cfg.ManageArgs("migrate_legacy"),
		cfg.ManageArgs("loaddata", "initial"),
		cfg.ManageArgs("import_prod_versions"),
	}
	for _, args := range sequence {
		if err := ctx.RunCommand(shell.Command{Name: cfg.Python(), Args: args}); err != nil {
			return err
		}
	}

	admin := shell.Command{
		Name: cfg.Python(),
		Args: cfg.ManageArgs("createsuperuser", "--noinput", "--email", cfg.AdminEmail),
		Env: []string{
			fmt.Sprintf("AUTH_CLIENT_ID=%s", cfg.AuthClientID),
			fmt.Sprintf("AUTH_CLIENT_SECRET=%s", cfg.AuthClientSecret),
		},
	}
	if err := ctx.RunCommand(admin); err != nil {
		return err
	}

	return runSyncPermissions(ctx)
}

// UpdateDB returns the migration task for existing environments: pending
// native migrations followed by the legacy phase, nothing destructive.
func UpdateDB() bootstrap.Task {
	return bootstrap.NewTask(TaskUpdateDB, []string{TaskInstallDeps}, runUpdateDB)
}

func runUpdateDB(ctx *bootstrap.Context) error {
	cfg := ctx.Config
	for _, args := range [][]string{
		cfg.ManageArgs("migrate", "--noinput"),
		cfg.ManageArgs("migrate_legacy"),
	} {
		if err := ctx.RunCommand(shell.Command{Name: cfg.Python(), Args: args}); err != nil {
			return err
		}
	}
	return nil
}

// SyncPermissions returns the standalone permission-sync task, run as the
// final step of an environment update.
func SyncPermissions() bootstrap.Task {
	return bootstrap.NewTask(TaskSyncPermissions, nil, runSyncPermissions)
}

func runSyncPermissions(ctx *bootstrap.Context) error {
	cfg := ctx.Config
	return ctx.RunCommand(shell.Command{
		Name: cfg.Python(),
		Args: cfg.ManageArgs("sync_permissions"),
	})
}
