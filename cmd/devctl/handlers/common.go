// Package handlers implements the devctl command logic.
//
// Commands in the commands package parse flags and delegate here. Each
// handler builds a run context from the effective configuration, resolves
// the requested bootstrap targets, and executes them fail-fast.
package handlers

import (
	"context"
	"fmt"

	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/bootstrap/steps"
	"github.com/addonhub/devctl/internal/config"
	"github.com/addonhub/devctl/internal/shell"
	"github.com/addonhub/devctl/internal/ui"
)

// Injection points for tests.
var (
	loadConfig = config.Load
	newRunner  = func() shell.Runner { return shell.NewExecRunner() }
	printOut   = func(s string) { fmt.Print(s) }
)

// newPipeline builds the full task registry.
func newPipeline() (*bootstrap.Pipeline, error) {
	p := bootstrap.NewPipeline()
	if err := steps.Register(p); err != nil {
		return nil, fmt.Errorf("failed to register tasks: %w", err)
	}
	return p, nil
}

// runTargets resolves targets through the dependency graph and executes
// the resulting sequence.
func runTargets(ctx context.Context, configPath, label string, targets []string) error {
	return run(ctx, configPath, label, func(p *bootstrap.Pipeline, bCtx *bootstrap.Context) error {
		return p.Run(bCtx, targets...)
	})
}

// runSteps executes exactly the named steps in the given order, without
// dependency expansion. This mirrors invoking an individual target by
// hand: the operator owns the preconditions.
func runSteps(ctx context.Context, configPath, label string, names []string) error {
	return run(ctx, configPath, label, func(p *bootstrap.Pipeline, bCtx *bootstrap.Context) error {
		return p.RunOnly(bCtx, names...)
	})
}

func run(ctx context.Context, configPath, label string, exec func(*bootstrap.Pipeline, *bootstrap.Context) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}

	bCtx := bootstrap.NewContext(ctx, cfg, newRunner(), nil)
	runErr := exec(p, bCtx)
	printOut(ui.Summary(label, bCtx.State, runErr))
	return runErr
}
