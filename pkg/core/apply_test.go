package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/persist-make/pkg/config"
	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/filesystem"
	"github.com/arthur-debert/persist-make/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyManifest(t *testing.T) {
	src, dst := newTrees(t)
	buildScenario(t, src)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "var", "lib"), 0755))

	testutil.Isolate(t)
	manifest := filepath.Join(t.TempDir(), "persist.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
paths = ["/a/b/c.txt", "/var/lib"]

[roots]
source = "`+src+`"
target = "`+dst+`"
`), 0644))

	cfg, err := config.Load(config.LoadOptions{ConfigFile: manifest})
	require.NoError(t, err)

	result, err := Apply(cfg, filesystem.NewOS())
	require.NoError(t, err)
	assert.Equal(t, 5, result.Steps())
	assertPrefixesMirrored(t, src, dst, "/a/b/c.txt")
	assertPrefixesMirrored(t, src, dst, "/var/lib")
}

func TestApplyRequiresRootsAndPaths(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"missing source", &config.Config{Roots: config.Roots{Target: "/dst"}, Paths: []string{"/a"}}},
		{"missing target", &config.Config{Roots: config.Roots{Source: "/src"}, Paths: []string{"/a"}}},
		{"no paths", &config.Config{Roots: config.Roots{Source: "/src", Target: "/dst"}}},
		{"relative manifest entry", &config.Config{Roots: config.Roots{Source: "/src", Target: "/dst"}, Paths: []string{"/a", "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.cfg, filesystem.NewOS())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}
