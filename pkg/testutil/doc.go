// Package testutil provides helpers shared by persist-make's package tests:
// a testify mock of types.FS, file info values carrying unix ownership,
// a declarative file tree builder and environment isolation.
package testutil
