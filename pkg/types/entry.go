package types

import (
	"fmt"
	"io/fs"
)

// EntryKind is the type of a filesystem entry as far as materialization is
// concerned.
type EntryKind int

const (
	KindOther EntryKind = iota
	KindDirectory
	KindFile
)

// String implements fmt.Stringer
func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// KindOf classifies a file mode. Symlinks, devices, sockets and pipes are
// all KindOther.
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// PermissionMask selects the bits that are mirrored from source to target:
// rwx for owner/group/other plus setuid, setgid and sticky.
const PermissionMask = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// Metadata is a snapshot of the attributes of a source entry.
type Metadata struct {
	Kind EntryKind
	UID  int
	GID  int
	Mode fs.FileMode
}

// String implements fmt.Stringer
func (m Metadata) String() string {
	return fmt.Sprintf("%s %d:%d %04o", m.Kind, m.UID, m.GID, UnixPerm(m.Mode))
}

// UnixPerm converts the mirrored bits of a FileMode into the traditional
// numeric form (e.g. 04755) used in logs and messages.
func UnixPerm(mode fs.FileMode) uint32 {
	perm := uint32(mode.Perm())
	if mode&fs.ModeSetuid != 0 {
		perm |= 0o4000
	}
	if mode&fs.ModeSetgid != 0 {
		perm |= 0o2000
	}
	if mode&fs.ModeSticky != 0 {
		perm |= 0o1000
	}
	return perm
}

// Pair holds the absolute source and target paths for one prefix of the
// relative path being materialized.
type Pair struct {
	// Depth is the 1-based number of components in the prefix.
	Depth  int
	Source string
	Target string
}
