// Package config defines the devctl configuration model.
//
// The bootstrap workflow used to be driven by ad-hoc environment variable
// reads scattered through a Makefile; here the configuration is an explicit
// struct constructed once at startup and passed to the orchestrator.
package config

import "fmt"

// Config holds everything the bootstrap workflow needs to know about the
// target environment.
type Config struct {
	// PythonVersion selects the language-runtime major version used to run
	// the framework's manage command (e.g. "3" for python3).
	PythonVersion string `yaml:"python_version" envconfig:"PYTHON_VERSION"`

	// ManageScript is the path to the framework's management entry point.
	ManageScript string `yaml:"manage_script" envconfig:"MANAGE_SCRIPT"`

	// Requirements lists the pip requirement manifests installed by the
	// dependency step, in order.
	Requirements []string `yaml:"requirements" envconfig:"REQUIREMENTS"`

	// NpmPrefix is the optional package-manager destination prefix passed
	// to npm install. Empty means npm's default.
	NpmPrefix string `yaml:"npm_prefix" envconfig:"NPM_PREFIX"`

	// NodeModulesDir is the local dependency cache populated by npm and
	// read by the vendoring step.
	NodeModulesDir string `yaml:"node_modules_dir" envconfig:"NODE_MODULES_DIR"`

	// NumAddons controls the synthetic catalog size generated per platform
	// target by the sample-data step.
	NumAddons int `yaml:"num_addons" envconfig:"NUM_ADDONS"`

	// AuthClientID and AuthClientSecret identify this environment to the
	// external authentication service. When either is empty a random pair
	// is generated for the invocation.
	AuthClientID     string `yaml:"auth_client_id" envconfig:"AUTH_CLIENT_ID"`
	AuthClientSecret string `yaml:"auth_client_secret" envconfig:"AUTH_CLIENT_SECRET"`

	// AdminEmail is the address of the administrative account provisioned
	// during database initialization.
	AdminEmail string `yaml:"admin_email" envconfig:"ADMIN_EMAIL"`

	// Static asset destinations for the vendoring step.
	CSSDir     string `yaml:"css_dir" envconfig:"CSS_DIR"`
	JSDir      string `yaml:"js_dir" envconfig:"JS_DIR"`
	WidgetsDir string `yaml:"widgets_dir" envconfig:"WIDGETS_DIR"`
}

// Python returns the interpreter binary name for the configured major version.
func (c *Config) Python() string {
	return "python" + c.PythonVersion
}

// ManageArgs builds the argument list for a manage subcommand.
func (c *Config) ManageArgs(sub string, extra ...string) []string {
	return append([]string{c.ManageScript, sub}, extra...)
}

// Validate checks the configuration for fatal inconsistencies.
func (c *Config) Validate() error {
	if c.ManageScript == "" {
		return fmt.Errorf("manage_script must not be empty")
	}
	if len(c.Requirements) == 0 {
		return fmt.Errorf("at least one requirements manifest is required")
	}
	if c.NumAddons < 0 {
		return fmt.Errorf("num_addons must not be negative, got %d", c.NumAddons)
	}
	if c.NodeModulesDir == "" {
		return fmt.Errorf("node_modules_dir must not be empty")
	}
	for name, dir := range map[string]string{
		"css_dir":     c.CSSDir,
		"js_dir":      c.JSDir,
		"widgets_dir": c.WidgetsDir,
	} {
		if dir == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}
