// Package backend detects which version-control system manages a dotfiles
// repository and runs that system's synchronization commands.
//
// Detection scans a fixed, ordered list of marker directories (.git, then
// .hg) directly under the repository root; the first one present wins.
//
// The set of backends is closed: Git and Hg. Both implement Backend:
//
//	SyncOut  publish local changes (stage, commit, push)
//	SyncIn   fetch remote changes (pull)
//	Status   show the working copy status
//
// Every step is an external process run through a Runner with the
// repository root as working directory and the caller's stdout/stderr.
// The first step that fails stops the sequence; steps that already ran are
// not undone.
package backend
