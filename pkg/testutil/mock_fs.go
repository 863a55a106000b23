package testutil

import (
	"io/fs"

	"github.com/arthur-debert/persist-make/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock implementing types.FS
type MockFS struct {
	mock.Mock
}

var _ types.FS = (*MockFS)(nil)

// NewMockFS creates a new mock filesystem.
func NewMockFS() *MockFS {
	return &MockFS{}
}

// Lstat implements types.FS
func (m *MockFS) Lstat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

// MkdirAll implements types.FS
func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

// Touch implements types.FS
func (m *MockFS) Touch(name string, perm fs.FileMode) error {
	return m.Called(name, perm).Error(0)
}

// Chown implements types.FS
func (m *MockFS) Chown(name string, uid, gid int) error {
	return m.Called(name, uid, gid).Error(0)
}

// Chmod implements types.FS
func (m *MockFS) Chmod(name string, mode fs.FileMode) error {
	return m.Called(name, mode).Error(0)
}

// NotExist returns the error a filesystem reports for a missing entry.
func NotExist(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

// Denied returns the error a filesystem reports for a refused operation.
func Denied(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrPermission}
}
