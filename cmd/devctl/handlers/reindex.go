package handlers

import (
	"context"

	"github.com/addonhub/devctl/internal/shell"
)

// Reindex rebuilds the search index from current database contents.
// Extra arguments are passed through to the index rebuild; without
// --wipe the rebuild is non-destructive and repeatable.
func Reindex(ctx context.Context, configPath string, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	return newRunner().Run(ctx, shell.Command{
		Name: cfg.Python(),
		Args: cfg.ManageArgs("reindex", args...),
	})
}
