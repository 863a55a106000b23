package types

import (
	"io/fs"
)

// FS defines the filesystem operations needed to inspect a source tree and
// materialize entries on a target tree.
type FS interface {
	// Lstat returns file info without following a final symlink.
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Touch creates an empty regular file if none exists. An existing file
	// is left untouched (never truncated).
	Touch(name string, perm fs.FileMode) error

	// Metadata operations
	Chown(name string, uid, gid int) error
	Chmod(name string, mode fs.FileMode) error
}
