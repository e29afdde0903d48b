// Package types defines the core types and interfaces shared across dots.
// This includes the filesystem abstraction (FS), the per-invocation
// RepositoryContext and the Entry produced by a reconciliation pass.
package types
