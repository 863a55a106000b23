// Package materialize makes a single target entry match a source entry.
//
// For one source/target pair the Materializer:
//
//  1. inspects the source without following symlinks (kind, uid, gid, mode);
//  2. creates the target as a directory or an empty regular file, or confirms
//     an existing entry of the same kind;
//  3. sets the target's owner and group to the source's;
//  4. sets the target's permission bits to the source's.
//
// Ownership is always applied before permissions: chown may clear setuid and
// setgid, so the mode written last is the one that sticks.
//
// Only directories and regular files are supported. A pre-existing target of
// a different kind is reported as TYPE_MISMATCH and left alone.
package materialize
