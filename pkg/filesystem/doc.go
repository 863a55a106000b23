// Package filesystem provides filesystem implementations for persist-make.
//
// This package contains the afero-backed implementation of the types.FS
// interface, used over the OS filesystem in production and over an
// in-memory filesystem in tests, plus helpers for reading numeric ownership
// out of file info.
package filesystem
