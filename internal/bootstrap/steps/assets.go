package steps

import (
	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/shell"
)

// CompileAssets returns the asset-compilation task: compression followed
// by static collection. It only needs the vendored assets to be present.
func CompileAssets() bootstrap.Task {
	return bootstrap.NewTask(TaskCompileAssets, []string{TaskVendorAssets}, runCompileAssets)
}

func runCompileAssets(ctx *bootstrap.Context) error {
	cfg := ctx.Config
	for _, args := range [][]string{
		cfg.ManageArgs("compress_assets"),
		cfg.ManageArgs("collectstatic", "--noinput"),
	} {
		if err := ctx.RunCommand(shell.Command{Name: cfg.Python(), Args: args}); err != nil {
			return err
		}
	}
	return nil
}
