// Package testutil provides utilities for testing dots components.
//
// Key components:
//   - TestEnvironment: a repository plus target directory, either in memory
//     or under a real temp directory, with HOME and XDG variables isolated
//   - File helpers: CreateFile, CreateSymlink, AssertSymlink and friends
//     for tests that need a real filesystem
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; symlink behavior that afero's MemMapFs does not
//     model (dangling links, Readlink) needs EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
