// Package vendoring copies third-party front-end library files from the
// npm dependency cache into the served static-asset tree.
package vendoring

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Manifest names the files to vendor, as paths relative to the dependency
// cache, and the directories they land in. Filenames are preserved.
//
// The lists are maintained by hand against package.json. Nothing checks
// they stay in sync; a stale entry surfaces as a missing-source error at
// copy time.
type Manifest struct {
	Stylesheets []string
	Scripts     []string
	Widgets     []string
}

// DefaultManifest returns the vendoring lists for the marketplace frontend.
func DefaultManifest() Manifest {
	return Manifest{
		Stylesheets: []string{
			"normalize.css/normalize.css",
			"@claviska/jquery-minicolors/jquery.minicolors.css",
			"jquery-ui/themes/base/theme.css",
		},
		Scripts: []string{
			"jquery/dist/jquery.js",
			"jquery.browser/dist/jquery.browser.js",
			"underscore/underscore.js",
			"timeago/jquery.timeago.js",
			"@claviska/jquery-minicolors/jquery.minicolors.js",
			"jszip/dist/jszip.js",
		},
		Widgets: []string{
			"jquery-ui/ui/data.js",
			"jquery-ui/ui/scroll-parent.js",
			"jquery-ui/ui/widget.js",
			"jquery-ui/ui/widgets/mouse.js",
			"jquery-ui/ui/widgets/sortable.js",
			"jquery-ui/ui/widgets/datepicker.js",
		},
	}
}

// Destinations maps each manifest list to its target directory.
type Destinations struct {
	Stylesheets string
	Scripts     string
	Widgets     string
}

// Vendor copies every manifest entry from cacheDir into its destination
// directory. A missing source file is a fatal error; the manifest must be
// kept in sync with the installed packages.
func Vendor(cacheDir string, m Manifest, dst Destinations) error {
	groups := []struct {
		files []string
		dir   string
	}{
		{m.Stylesheets, dst.Stylesheets},
		{m.Scripts, dst.Scripts},
		{m.Widgets, dst.Widgets},
	}

	for _, g := range groups {
		if err := os.MkdirAll(g.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", g.dir, err)
		}
		for _, rel := range g.files {
			src := filepath.Join(cacheDir, filepath.FromSlash(rel))
			dstPath := filepath.Join(g.dir, filepath.Base(rel))
			if err := copyFile(src, dstPath); err != nil {
				return fmt.Errorf("failed to vendor %s: %w", rel, err)
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
