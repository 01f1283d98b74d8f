package handlers

import (
	"context"

	"github.com/addonhub/devctl/internal/shell"
)

// SetupUITests installs the UI-test package set and loads the fixture
// data the browser tests expect.
func SetupUITests(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	runner := newRunner()

	cmds := []shell.Command{
		{Name: cfg.Python(), Args: []string{"-m", "pip", "install", "--exists-action=w", "-r", "requirements/uitests.txt"}},
		{Name: cfg.Python(), Args: cfg.ManageArgs("loaddata", "ui_tests")},
	}
	for _, cmd := range cmds {
		if err := runner.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// RunUITests runs the browser test suite against the local environment.
func RunUITests(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	return newRunner().Run(ctx, shell.Command{
		Name: cfg.Python(),
		Args: []string{"-m", "pytest", "--driver", "Firefox", "tests/ui"},
	})
}

// PerfTests runs the load-test suite against the local environment.
func PerfTests(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	return newRunner().Run(ctx, shell.Command{
		Name: cfg.Python(),
		Args: []string{"-m", "locust", "-f", "tests/performance/locustfile.py", "--headless"},
	})
}
