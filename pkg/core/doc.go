// Package core implements the materialization pipeline for persist-make.
//
// Make takes a source root, a target root and one or more root-anchored
// paths. For each path it walks the components shallowest first and hands
// every source/target pair to the materializer, so that after a successful
// run every prefix of the path exists on the target with the source's kind,
// owner, group and permission bits.
//
// # Failure Semantics
//
// All paths are validated before the filesystem is touched. After that,
// processing is strictly sequential and stops at the first failing step.
// Nothing is rolled back: entries materialized before the failure stay on
// the target. Re-running after fixing the cause is safe, since existing
// entries of the right kind are confirmed rather than recreated.
//
// Two runs against overlapping target subtrees must not happen concurrently;
// nothing here serializes them.
package core
