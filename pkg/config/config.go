package config

import (
	"path/filepath"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Config is the merged persist-make configuration
type Config struct {
	Roots   Roots    `koanf:"roots"`
	Paths   []string `koanf:"paths"`
	Logging Logging  `koanf:"logging"`
}

// Roots names the two trees paths are joined onto
type Roots struct {
	Source string `koanf:"source"`
	Target string `koanf:"target"`
}

// Logging holds logger settings
type Logging struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

// Validate checks the settings every command depends on. Empty roots are
// allowed here; commands that need them check for presence themselves.
// Manifest entries are left to ValidateManifest so that a bad entry only
// affects the commands that read the manifest.
func (c *Config) Validate() error {
	roots := []struct{ key, value string }{
		{"roots.source", c.Roots.Source},
		{"roots.target", c.Roots.Target},
	}
	for _, root := range roots {
		if root.value != "" && !filepath.IsAbs(root.value) {
			return errors.Newf(errors.ErrConfigValid, "%s must be an absolute path, got %q", root.key, root.value).
				WithDetail("key", root.key)
		}
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity).
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// ValidateManifest checks every entry of Paths
func (c *Config) ValidateManifest() error {
	for i, p := range c.Paths {
		if _, err := paths.Components(p); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "paths[%d] is invalid", i).
				WithDetails(map[string]interface{}{
					"key":             "paths",
					errors.DetailPath: p,
				})
		}
	}
	return nil
}

// Dump renders the decoded configuration as TOML, so values read from the
// environment appear with their real types.
func (c *Config) Dump() ([]byte, error) {
	k := koanf.New(".")
	values := map[string]interface{}{
		"roots.source":      c.Roots.Source,
		"roots.target":      c.Roots.Target,
		"paths":             append([]string{}, c.Paths...),
		"logging.verbosity": c.Logging.Verbosity,
		"logging.file":      c.Logging.File,
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to collect configuration")
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
