package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/addonhub/devctl/internal/creds"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. DEVCTL_NUM_ADDONS or DEVCTL_PYTHON_VERSION.
const EnvPrefix = "devctl"

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		PythonVersion:  "3",
		ManageScript:   "manage.py",
		Requirements:   []string{"requirements/prod.txt", "requirements/dev.txt"},
		NodeModulesDir: "node_modules",
		NumAddons:      10,
		AdminEmail:     "admin@localhost",
		CSSDir:         "static/css/lib",
		JSDir:          "static/js/lib",
		WidgetsDir:     "static/js/lib/ui",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty or the file does not exist), then
// environment variable overrides. Missing authentication credentials are
// generated randomly for this invocation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if cfg.AuthClientID == "" || cfg.AuthClientSecret == "" {
		cc, err := creds.GenerateClientCredentials()
		if err != nil {
			return nil, fmt.Errorf("failed to generate auth credentials: %w", err)
		}
		cfg.AuthClientID = cc.ID
		cfg.AuthClientSecret = cc.Secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
