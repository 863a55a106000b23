// Package types defines the core types and interfaces used throughout
// persist-make. This includes the FS interface the materializer mutates
// through, as well as data structures like Pair, EntryKind and Metadata.
package types
