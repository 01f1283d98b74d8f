package steps

import (
	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/vendoring"
)

// VendorAssets returns the static-asset vendoring task. It copies the
// stylesheet, script, and UI-widget lists out of the dependency cache into
// the served static directories.
func VendorAssets() bootstrap.Task {
	return bootstrap.NewTask(TaskVendorAssets, []string{TaskInstallDeps}, runVendorAssets)
}

func runVendorAssets(ctx *bootstrap.Context) error {
	cfg := ctx.Config
	return vendoring.Vendor(cfg.NodeModulesDir, vendoring.DefaultManifest(), vendoring.Destinations{
		Stylesheets: cfg.CSSDir,
		Scripts:     cfg.JSDir,
		Widgets:     cfg.WidgetsDir,
	})
}
