//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"
)

// Owner returns the numeric owner and group recorded in info. ok is false
// when the backing filesystem does not expose unix ownership.
func Owner(info fs.FileInfo) (uid, gid int, ok bool) {
	if info == nil {
		return 0, 0, false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat == nil {
		return 0, 0, false
	}
	return int(stat.Uid), int(stat.Gid), true
}
