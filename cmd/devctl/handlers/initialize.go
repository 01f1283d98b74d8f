package handlers

import (
	"context"

	"github.com/addonhub/devctl/internal/bootstrap/steps"
)

// Initialize bootstraps a brand-new environment: dependency installation,
// database initialization, asset compilation, then sample-data population,
// in that order.
func Initialize(ctx context.Context, configPath string) error {
	return runTargets(ctx, configPath, "initialize", steps.InitializeTargets())
}

// Update refreshes an existing environment: dependency installation,
// pending migrations, asset compilation, and a final permission sync.
func Update(ctx context.Context, configPath string) error {
	return runTargets(ctx, configPath, "update", steps.UpdateTargets())
}
