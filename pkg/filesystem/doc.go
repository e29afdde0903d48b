// Package filesystem provides filesystem implementations for dots.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI, and an afero adapter used by
// tests (in-memory or OS-backed).
package filesystem
