package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir and clears
// configuration environment variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	for _, name := range []string{
		"PERSIST_MAKE_ROOTS_SOURCE", "PERSIST_MAKE_ROOTS_TARGET",
		"PERSIST_MAKE_PATHS", "PERSIST_MAKE_LOGGING_VERBOSITY", "PERSIST_MAKE_LOGGING_FILE",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Roots.Source)
	assert.Empty(t, cfg.Roots.Target)
	assert.Empty(t, cfg.Paths)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
	assert.True(t, cfg.Logging.File)
}

func TestLoadUserConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, paths.ConfigFileName), `
paths = ["/var/lib/nixos", "/etc/machine-id"]

[roots]
source = "/"
target = "/persist"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Roots.Source)
	assert.Equal(t, "/persist", cfg.Roots.Target)
	assert.Equal(t, []string{"/var/lib/nixos", "/etc/machine-id"}, cfg.Paths)
}

func TestLoadLayering(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, paths.ConfigFileName), `
paths = ["/from/user"]

[roots]
source = "/user/src"
target = "/user/dst"

[logging]
verbosity = 1
`)
	explicit := writeFile(t, filepath.Join(t.TempDir(), "manifest.toml"), `
paths = ["/from/explicit"]

[roots]
target = "/explicit/dst"
`)
	t.Setenv("PERSIST_MAKE_LOGGING_VERBOSITY", "2")

	cfg, err := Load(LoadOptions{
		ConfigFile: explicit,
		Overrides:  map[string]interface{}{"roots.source": "/flag/src"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/src", cfg.Roots.Source, "override wins")
	assert.Equal(t, "/explicit/dst", cfg.Roots.Target, "explicit file beats user config")
	assert.Equal(t, []string{"/from/explicit"}, cfg.Paths, "lists are replaced, not merged")
	assert.Equal(t, 2, cfg.Logging.Verbosity, "env beats files")
}

func TestLoadYAML(t *testing.T) {
	isolate(t)
	manifest := writeFile(t, filepath.Join(t.TempDir(), "manifest.yaml"), `
roots:
  source: /src
  target: /dst
paths:
  - /a/b/c.txt
logging:
  file: false
`)

	cfg, err := Load(LoadOptions{ConfigFile: manifest})
	require.NoError(t, err)

	assert.Equal(t, Roots{Source: "/src", Target: "/dst"}, cfg.Roots)
	assert.Equal(t, []string{"/a/b/c.txt"}, cfg.Paths)
	assert.False(t, cfg.Logging.File)
}

func TestLoadEnvPaths(t *testing.T) {
	isolate(t)
	t.Setenv("PERSIST_MAKE_PATHS", "/a,/b/c")
	t.Setenv("PERSIST_MAKE_ROOTS_SOURCE", "/env/src")
	t.Setenv(paths.EnvStateDir, "/ignored/state")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b/c"}, cfg.Paths)
	assert.Equal(t, "/env/src", cfg.Roots.Source)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		ext      string
		missing  bool
		wantCode errors.ErrorCode
	}{
		{name: "missing explicit file", missing: true, ext: ".toml", wantCode: errors.ErrConfigLoad},
		{name: "malformed toml", content: "paths = [", ext: ".toml", wantCode: errors.ErrConfigParse},
		{name: "relative root", content: "[roots]\nsource = \"src\"\n", ext: ".toml", wantCode: errors.ErrConfigValid},
		{name: "negative verbosity", content: "[logging]\nverbosity = -1\n", ext: ".toml", wantCode: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config"+tt.ext)
			if !tt.missing {
				writeFile(t, path, tt.content)
			}

			_, err := Load(LoadOptions{ConfigFile: path})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestLoadKeepsBadManifestEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ext     string
	}{
		{"path without separator", "paths = [\"/ok\", \"etc/ssh\"]\n", ".toml"},
		{"path with parent reference", "paths:\n  - /a/../b\n", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, filepath.Join(t.TempDir(), "config"+tt.ext), tt.content)

			cfg, err := Load(LoadOptions{ConfigFile: path})
			require.NoError(t, err, "manifest entries are checked only when the manifest is used")

			err = cfg.ValidateManifest()
			require.Error(t, err)
			assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(err))
			assert.Equal(t, "paths", errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestDump(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{"roots.target": "/persist"}})
	require.NoError(t, err)

	out, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(out), "/persist")
	assert.Contains(t, string(out), "verbosity")
}

func TestDumpUsesDecodedTypes(t *testing.T) {
	isolate(t)
	t.Setenv("PERSIST_MAKE_PATHS", "/a/b,/a/b/c.txt")
	t.Setenv("PERSIST_MAKE_LOGGING_FILE", "false")
	t.Setenv("PERSIST_MAKE_LOGGING_VERBOSITY", "2")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.Dump()
	require.NoError(t, err)

	// The rendered TOML must load back to the same values
	dumped := writeFile(t, filepath.Join(t.TempDir(), "dumped.toml"), string(out))
	isolate(t)
	reloaded, err := Load(LoadOptions{ConfigFile: dumped})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a/b", "/a/b/c.txt"}, reloaded.Paths)
	assert.False(t, reloaded.Logging.File)
	assert.Equal(t, 2, reloaded.Logging.Verbosity)
	assert.NotContains(t, string(out), `"false"`)
	assert.NotContains(t, string(out), `"/a/b,/a/b/c.txt"`)
}

func TestDefaults(t *testing.T) {
	assert.Contains(t, string(Defaults()), "[roots]")
}
