package materialize

import (
	stderrors "errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/filesystem"
	"github.com/arthur-debert/persist-make/pkg/types"
)

// Inspect reads the metadata of the entry at path without following a final
// symlink. Entries that are neither directories nor regular files are
// rejected with ErrUnsupportedKind.
func Inspect(fsys types.FS, path string) (types.Metadata, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return types.Metadata{}, stepError(err, errors.ErrSourceNotFound, "lstat", path,
				"source %s does not exist", path)
		}
		return types.Metadata{}, stepError(err, errors.ErrMetadataRead, "lstat", path,
			"cannot read metadata of source %s", path)
	}

	kind := types.KindOf(info.Mode())
	if kind == types.KindOther {
		return types.Metadata{}, errors.Newf(errors.ErrUnsupportedKind,
			"source %s is a %s, only directories and regular files are supported", path, describeMode(info.Mode())).
			WithDetail(errors.DetailPath, path).
			WithDetail(errors.DetailOp, "lstat")
	}

	uid, gid, ok := filesystem.Owner(info)
	if !ok {
		return types.Metadata{}, errors.Newf(errors.ErrMetadataRead, "ownership of source %s is not available", path).
			WithDetail(errors.DetailPath, path).
			WithDetail(errors.DetailOp, "lstat")
	}

	return types.Metadata{
		Kind: kind,
		UID:  uid,
		GID:  gid,
		Mode: info.Mode() & types.PermissionMask,
	}, nil
}

// isNotExist also treats ENOTDIR as missing: a regular file where a parent
// directory should be means the entry cannot exist.
func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}

func describeMode(mode fs.FileMode) string {
	switch {
	case mode&fs.ModeSymlink != 0:
		return "symbolic link"
	case mode&fs.ModeCharDevice != 0:
		return "character device"
	case mode&fs.ModeDevice != 0:
		return "device"
	case mode&fs.ModeNamedPipe != 0:
		return "named pipe"
	case mode&fs.ModeSocket != 0:
		return "socket"
	default:
		return "special file"
	}
}

func stepError(err error, code errors.ErrorCode, op, path, format string, args ...interface{}) *errors.PersistError {
	return errors.Wrapf(err, code, format, args...).
		WithDetail(errors.DetailPath, path).
		WithDetail(errors.DetailOp, op)
}
