package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Node is one entry of a FileTree
type Node struct {
	Mode     os.FileMode
	Content  string
	Dir      bool
	Children FileTree
}

// FileTree maps entry names to nodes
type FileTree map[string]Node

// Dir returns a directory node
func Dir(mode os.FileMode, children FileTree) Node {
	return Node{Mode: mode, Dir: true, Children: children}
}

// File returns a regular file node
func File(mode os.FileMode, content string) Node {
	return Node{Mode: mode, Content: content}
}

// WriteTree creates tree below root. A node's mode is applied once its
// children exist, so directories without write permission can be described.
func WriteTree(t *testing.T, root string, tree FileTree) {
	t.Helper()

	for name, node := range tree {
		path := filepath.Join(root, name)

		if node.Dir {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			WriteTree(t, path, node.Children)
			// Cleanups run last-in first-out, so this precedes TempDir removal
			t.Cleanup(func() { _ = os.Chmod(path, 0755) })
		} else if err := os.WriteFile(path, []byte(node.Content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", path, err)
		}

		if err := os.Chmod(path, node.Mode); err != nil {
			t.Fatalf("Failed to chmod %s: %v", path, err)
		}
	}
}
