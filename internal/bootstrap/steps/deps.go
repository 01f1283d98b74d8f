package steps

import (
	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/shell"
)

// InstallDeps returns the dependency-installation task. It installs the
// python package set from each requirements manifest, then the node
// package set, populating the local dependency cache.
func InstallDeps() bootstrap.Task {
	return bootstrap.NewTask(TaskInstallDeps, nil, runInstallDeps)
}

func runInstallDeps(ctx *bootstrap.Context) error {
	cfg := ctx.Config

	for _, manifest := range cfg.Requirements {
		cmd := shell.Command{
			Name: cfg.Python(),
			Args: []string{"-m", "pip", "install", "--exists-action=w", "-r", manifest},
		}
		if err := ctx.RunCommand(cmd); err != nil {
			return err
		}
	}

	args := []string{"install"}
	if cfg.NpmPrefix != "" {
		args = append(args, "--prefix", cfg.NpmPrefix)
	}
	return ctx.RunCommand(shell.Command{Name: "npm", Args: args})
}
