package steps

import (
	"strconv"

	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/shell"
)

// PopulateData returns the sample-data task. It wipes and rebuilds the
// search index, generates the synthetic catalog for both platform targets
// plus themes, regenerates the curated homepage collections, reindexes
// non-destructively, and recomputes the per-category denormalized counts.
func PopulateData() bootstrap.Task {
	return bootstrap.NewTask(TaskPopulateData, []string{TaskInitDB}, runPopulateData)
}

func runPopulateData(ctx *bootstrap.Context) error {
	cfg := ctx.Config
	count := strconv.Itoa(cfg.NumAddons)

	sequence := [][]string{
		ReindexArgs(cfg.ManageScript, true),
		cfg.ManageArgs("generate_addons", count, "--app", "desktop"),
		cfg.ManageArgs("generate_addons", count, "--app", "mobile"),
		cfg.ManageArgs("generate_themes", count),
		cfg.ManageArgs("generate_default_collections"),
		ReindexArgs(cfg.ManageScript, false),
		cfg.ManageArgs("cron", "category_totals"),
	}
	for _, args := range sequence {
		if err := ctx.RunCommand(shell.Command{Name: cfg.Python(), Args: args}); err != nil {
			return err
		}
	}
	return nil
}

// ReindexArgs builds the manage arguments for a search-index rebuild.
// With wipe the index is destroyed first; without it the rebuild is
// non-destructive and can be repeated without changing the index state.
func ReindexArgs(manageScript string, wipe bool, extra ...string) []string {
	args := []string{manageScript, "reindex"}
	if wipe {
		args = append(args, "--wipe")
	}
	args = append(args, "--force", "--noinput")
	return append(args, extra...)
}
