//go:build !unix

package filesystem

import "io/fs"

// Owner always reports ownership as unavailable on non-unix platforms.
func Owner(info fs.FileInfo) (uid, gid int, ok bool) {
	return 0, 0, false
}
