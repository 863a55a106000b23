package materialize

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/logging"
	"github.com/arthur-debert/persist-make/pkg/types"
	"github.com/rs/zerolog"
)

// Modes used for freshly created entries before their real mode is applied.
const (
	newDirMode  fs.FileMode = 0755
	newFileMode fs.FileMode = 0600
)

// Step describes what happened to one target entry.
type Step struct {
	Pair     types.Pair
	Metadata types.Metadata
	// Created is false when an entry of the right kind already existed.
	Created bool
}

// Materializer mirrors source entries onto a target tree.
type Materializer struct {
	source types.FS
	target types.FS
	logger zerolog.Logger
}

// New creates a Materializer that reads metadata from source and mutates
// target. Both may be the same filesystem.
func New(source, target types.FS) *Materializer {
	return &Materializer{
		source: source,
		target: target,
		logger: logging.GetLogger("materialize"),
	}
}

// Materialize makes pair.Target exist with the kind, ownership and
// permission bits of pair.Source.
func (m *Materializer) Materialize(pair types.Pair) (Step, error) {
	step := Step{Pair: pair}

	meta, err := Inspect(m.source, pair.Source)
	if err != nil {
		return step, err
	}
	step.Metadata = meta

	m.logger.Trace().
		Str("source", pair.Source).
		Stringer("metadata", meta).
		Msg("Inspected source")

	created, err := m.ensure(pair.Target, meta.Kind)
	if err != nil {
		return step, err
	}
	step.Created = created

	if err := m.target.Chown(pair.Target, meta.UID, meta.GID); err != nil {
		return step, stepError(err, errors.ErrOwnership, "chown", pair.Target,
			"cannot change owner of %s to %d:%d", pair.Target, meta.UID, meta.GID).
			WithDetails(map[string]interface{}{"uid": meta.UID, "gid": meta.GID})
	}

	if err := m.target.Chmod(pair.Target, meta.Mode); err != nil {
		return step, stepError(err, errors.ErrPermissionSync, "chmod", pair.Target,
			"cannot set permissions of %s to %04o", pair.Target, types.UnixPerm(meta.Mode)).
			WithDetail("mode", types.UnixPerm(meta.Mode))
	}

	m.logger.Debug().
		Int("depth", pair.Depth).
		Str("source", pair.Source).
		Str("target", pair.Target).
		Stringer("kind", meta.Kind).
		Int("uid", meta.UID).
		Int("gid", meta.GID).
		Str("mode", formatMode(meta.Mode)).
		Bool("created", created).
		Msg("Materialized entry")

	return step, nil
}

// ensure creates the target entry if missing. An existing entry of the same
// kind is confirmed; one of another kind is never replaced.
func (m *Materializer) ensure(target string, kind types.EntryKind) (bool, error) {
	existing, err := m.target.Lstat(target)
	switch {
	case err == nil:
		if existingKind := types.KindOf(existing.Mode()); existingKind != kind {
			return false, errors.Newf(errors.ErrTypeMismatch,
				"target %s exists as a %s but the source is a %s", target, describeKind(existing.Mode()), kind).
				WithDetail(errors.DetailPath, target).
				WithDetail(errors.DetailOp, "lstat")
		}
		return false, nil
	case !isNotExist(err):
		return false, stepError(err, errors.ErrCreate, "lstat", target, "cannot inspect target %s", target)
	}

	switch kind {
	case types.KindDirectory:
		if err := m.target.MkdirAll(target, newDirMode); err != nil {
			return false, stepError(err, errors.ErrCreate, "mkdir", target, "cannot create directory %s", target)
		}
	case types.KindFile:
		if err := m.target.Touch(target, newFileMode); err != nil {
			return false, stepError(err, errors.ErrCreate, "create", target, "cannot create file %s", target)
		}
	default:
		return false, errors.Newf(errors.ErrInternal, "cannot create entry of kind %s", kind).
			WithDetail(errors.DetailPath, target)
	}
	return true, nil
}

func describeKind(mode fs.FileMode) string {
	if kind := types.KindOf(mode); kind != types.KindOther {
		return kind.String()
	}
	return describeMode(mode)
}

func formatMode(mode fs.FileMode) string {
	return fmt.Sprintf("%04o", types.UnixPerm(mode))
}
