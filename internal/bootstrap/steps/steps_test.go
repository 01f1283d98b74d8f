package steps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonhub/devctl/internal/bootstrap"
	"github.com/addonhub/devctl/internal/config"
	"github.com/addonhub/devctl/internal/shell"
	"github.com/addonhub/devctl/internal/vendoring"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.AuthClientID = "test-client-id"
	cfg.AuthClientSecret = "test-client-secret"
	return cfg
}

func newRun(t *testing.T, cfg *config.Config) (*bootstrap.Pipeline, *bootstrap.Context, *shell.Recorder) {
	t.Helper()
	p := bootstrap.NewPipeline()
	require.NoError(t, Register(p))

	rec := &shell.Recorder{}
	ctx := bootstrap.NewContext(context.Background(), cfg, rec, bootstrap.NewConsoleObserver())
	return p, ctx, rec
}

func resolveNames(t *testing.T, p *bootstrap.Pipeline, targets []string) []string {
	t.Helper()
	order, err := p.Resolve(targets...)
	require.NoError(t, err)

	names := make([]string, len(order))
	for i, task := range order {
		names[i] = task.Name()
	}
	return names
}

func TestInitializeOrdering(t *testing.T) {
	p, _, _ := newRun(t, testConfig())

	names := resolveNames(t, p, InitializeTargets())
	assert.Equal(t, []string{
		TaskInstallDeps,
		TaskInitDB,
		TaskVendorAssets,
		TaskCompileAssets,
		TaskPopulateData,
	}, names)
}

func TestUpdateOrdering(t *testing.T) {
	p, _, _ := newRun(t, testConfig())

	names := resolveNames(t, p, UpdateTargets())
	assert.Equal(t, []string{
		TaskInstallDeps,
		TaskUpdateDB,
		TaskVendorAssets,
		TaskCompileAssets,
		TaskSyncPermissions,
	}, names)
}

func TestInstallDeps(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p, ctx, rec := newRun(t, testConfig())
		require.NoError(t, p.RunOnly(ctx, TaskInstallDeps))

		cmds := rec.Strings()
		require.Len(t, cmds, 3)
		assert.Equal(t, "python3 -m pip install --exists-action=w -r requirements/prod.txt", cmds[0])
		assert.Equal(t, "python3 -m pip install --exists-action=w -r requirements/dev.txt", cmds[1])
		assert.Equal(t, "npm install", cmds[2])
	})

	t.Run("npm prefix", func(t *testing.T) {
		cfg := testConfig()
		cfg.NpmPrefix = "/opt/frontend"
		p, ctx, rec := newRun(t, cfg)
		require.NoError(t, p.RunOnly(ctx, TaskInstallDeps))

		cmds := rec.Strings()
		assert.Equal(t, "npm install --prefix /opt/frontend", cmds[len(cmds)-1])
	})

	t.Run("python version selector", func(t *testing.T) {
		cfg := testConfig()
		cfg.PythonVersion = "3.11"
		p, ctx, rec := newRun(t, cfg)
		require.NoError(t, p.RunOnly(ctx, TaskInstallDeps))

		assert.True(t, strings.HasPrefix(rec.Strings()[0], "python3.11 "))
	})
}

func TestInitDB(t *testing.T) {
	t.Run("command sequence", func(t *testing.T) {
		p, ctx, rec := newRun(t, testConfig())
		require.NoError(t, p.RunOnly(ctx, TaskInitDB))

		assert.Equal(t, []string{
			"python3 manage.py reset_db --noinput",
			"python3 manage.py migrate --noinput",
			"python3 manage.py migrate_legacy",
			"python3 manage.py loaddata initial",
			"python3 manage.py import_prod_versions",
			"python3 manage.py createsuperuser --noinput --email admin@localhost",
			"python3 manage.py sync_permissions",
		}, rec.Strings())
	})

	t.Run("admin account gets auth credentials", func(t *testing.T) {
		p, ctx, rec := newRun(t, testConfig())
		require.NoError(t, p.RunOnly(ctx, TaskInitDB))

		var admin *shell.Command
		for i := range rec.Commands {
			if strings.Contains(rec.Commands[i].String(), "createsuperuser") {
				admin = &rec.Commands[i]
			}
		}
		require.NotNil(t, admin)
		assert.Contains(t, admin.Env, "AUTH_CLIENT_ID=test-client-id")
		assert.Contains(t, admin.Env, "AUTH_CLIENT_SECRET=test-client-secret")
	})

	t.Run("fail-fast inside the step", func(t *testing.T) {
		p, ctx, rec := newRun(t, testConfig())
		rec.FailOn = "migrate --noinput"
		rec.FailErr = errors.New("migration exploded")

		err := p.RunOnly(ctx, TaskInitDB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration exploded")

		// Nothing after the failing command ran.
		last := rec.Strings()[len(rec.Strings())-1]
		assert.Contains(t, last, "migrate --noinput")
	})
}

func TestUpdateDB(t *testing.T) {
	p, ctx, rec := newRun(t, testConfig())
	require.NoError(t, p.RunOnly(ctx, TaskUpdateDB))

	assert.Equal(t, []string{
		"python3 manage.py migrate --noinput",
		"python3 manage.py migrate_legacy",
	}, rec.Strings())
}

func TestSyncPermissions(t *testing.T) {
	p, ctx, rec := newRun(t, testConfig())
	require.NoError(t, p.RunOnly(ctx, TaskSyncPermissions))

	assert.Equal(t, []string{"python3 manage.py sync_permissions"}, rec.Strings())
}

func TestPopulateData(t *testing.T) {
	t.Run("command sequence", func(t *testing.T) {
		cfg := testConfig()
		cfg.NumAddons = 25
		p, ctx, rec := newRun(t, cfg)
		require.NoError(t, p.RunOnly(ctx, TaskPopulateData))

		assert.Equal(t, []string{
			"python3 manage.py reindex --wipe --force --noinput",
			"python3 manage.py generate_addons 25 --app desktop",
			"python3 manage.py generate_addons 25 --app mobile",
			"python3 manage.py generate_themes 25",
			"python3 manage.py generate_default_collections",
			"python3 manage.py reindex --force --noinput",
			"python3 manage.py cron category_totals",
		}, rec.Strings())
	})

	t.Run("only the first reindex wipes", func(t *testing.T) {
		p, ctx, rec := newRun(t, testConfig())
		require.NoError(t, p.RunOnly(ctx, TaskPopulateData))

		var wipes int
		for _, cmd := range rec.Strings() {
			if strings.Contains(cmd, "--wipe") {
				wipes++
			}
		}
		assert.Equal(t, 1, wipes)
		assert.Contains(t, rec.Strings()[0], "--wipe")
	})
}

func TestCompileAssets(t *testing.T) {
	p, ctx, rec := newRun(t, testConfig())
	require.NoError(t, p.RunOnly(ctx, TaskCompileAssets))

	assert.Equal(t, []string{
		"python3 manage.py compress_assets",
		"python3 manage.py collectstatic --noinput",
	}, rec.Strings())
}

func TestReindexArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"manage.py", "reindex", "--wipe", "--force", "--noinput"},
		ReindexArgs("manage.py", true))
	assert.Equal(t,
		[]string{"manage.py", "reindex", "--force", "--noinput"},
		ReindexArgs("manage.py", false))
	assert.Equal(t,
		[]string{"manage.py", "reindex", "--force", "--noinput", "--settings=local"},
		ReindexArgs("manage.py", false, "--settings=local"))
}

func TestVendorAssets(t *testing.T) {
	writeManifestFiles := func(t *testing.T, cacheDir string, files []string) {
		t.Helper()
		for _, rel := range files {
			path := filepath.Join(cacheDir, filepath.FromSlash(rel))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte("// "+rel), 0o644))
		}
	}

	t.Run("copies every list into its directory", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig()
		cfg.NodeModulesDir = filepath.Join(dir, "node_modules")
		cfg.CSSDir = filepath.Join(dir, "css")
		cfg.JSDir = filepath.Join(dir, "js")
		cfg.WidgetsDir = filepath.Join(dir, "js", "ui")

		m := vendoring.DefaultManifest()
		writeManifestFiles(t, cfg.NodeModulesDir, append(append(m.Stylesheets, m.Scripts...), m.Widgets...))

		p, ctx, _ := newRun(t, cfg)
		require.NoError(t, p.RunOnly(ctx, TaskVendorAssets))

		assert.FileExists(t, filepath.Join(cfg.CSSDir, "normalize.css"))
		assert.FileExists(t, filepath.Join(cfg.JSDir, "jquery.js"))
		assert.FileExists(t, filepath.Join(cfg.WidgetsDir, "sortable.js"))
	})

	t.Run("missing source file is fatal", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig()
		cfg.NodeModulesDir = filepath.Join(dir, "node_modules")
		cfg.CSSDir = filepath.Join(dir, "css")
		cfg.JSDir = filepath.Join(dir, "js")
		cfg.WidgetsDir = filepath.Join(dir, "js", "ui")

		p, ctx, _ := newRun(t, cfg)
		err := p.RunOnly(ctx, TaskVendorAssets)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to vendor")
	})
}
