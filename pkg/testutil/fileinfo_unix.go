//go:build unix

package testutil

import (
	"io/fs"
	"path"
	"syscall"
	"time"
)

// FileInfo is a fixed fs.FileInfo for feeding mocks
type FileInfo struct {
	name string
	mode fs.FileMode
	sys  *syscall.Stat_t
}

// NewFileInfo returns file info for name with the given mode and numeric
// ownership.
func NewFileInfo(name string, mode fs.FileMode, uid, gid int) *FileInfo {
	return &FileInfo{
		name: path.Base(name),
		mode: mode,
		sys:  &syscall.Stat_t{Uid: uint32(uid), Gid: uint32(gid)},
	}
}

// NewOwnerlessFileInfo returns file info that exposes no ownership, as an
// in-memory filesystem would.
func NewOwnerlessFileInfo(name string, mode fs.FileMode) *FileInfo {
	return &FileInfo{name: path.Base(name), mode: mode}
}

func (f *FileInfo) Name() string       { return f.name }
func (f *FileInfo) Size() int64        { return 0 }
func (f *FileInfo) Mode() fs.FileMode  { return f.mode }
func (f *FileInfo) ModTime() time.Time { return time.Time{} }
func (f *FileInfo) IsDir() bool        { return f.mode.IsDir() }

func (f *FileInfo) Sys() any {
	if f.sys == nil {
		return nil
	}
	return f.sys
}
