package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTree(t *testing.T) {
	root := t.TempDir()

	WriteTree(t, root, FileTree{
		"ro": Dir(0500, FileTree{
			"secret": File(0400, "x"),
		}),
		"plain.txt": File(0644, "hello"),
	})

	info, err := os.Lstat(filepath.Join(root, "ro"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0500), info.Mode().Perm())

	info, err = os.Lstat(filepath.Join(root, "ro", "secret"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0400), info.Mode().Perm())

	data, err := os.ReadFile(filepath.Join(root, "plain.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestIsolate(t *testing.T) {
	t.Setenv("PERSIST_MAKE_ROOTS_TARGET", "/from/caller")

	dir := Isolate(t)

	assert.DirExists(t, dir)
	_, set := os.LookupEnv("PERSIST_MAKE_ROOTS_TARGET")
	assert.False(t, set)
	assert.Equal(t, "false", os.Getenv("PERSIST_MAKE_LOGGING_FILE"))
}
