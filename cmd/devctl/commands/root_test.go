package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRoot(t *testing.T) {
	root := Root()
	assert.Equal(t, "devctl", root.Use)

	for _, name := range []string{
		"initialize",
		"update",
		"initialize_db",
		"populate_data",
		"update_deps",
		"update_db",
		"update_assets",
		"reindex",
		"setup-ui-tests",
		"run-ui-tests",
		"perf-tests",
		"version",
		"completion",
	} {
		findCommand(t, root, name)
	}
}

func TestConfigFlag(t *testing.T) {
	for _, name := range []string{"initialize", "update", "initialize_db", "update_db"} {
		t.Run(name, func(t *testing.T) {
			cmd := findCommand(t, Root(), name)
			flag := cmd.Flags().Lookup("config")
			require.NotNil(t, flag)
			assert.Equal(t, "devctl.yaml", flag.DefValue)
			assert.Equal(t, "c", flag.Shorthand)
		})
	}
}

func TestReindexPassesFlagsThrough(t *testing.T) {
	cmd := findCommand(t, Root(), "reindex")
	assert.True(t, cmd.DisableFlagParsing)
}
