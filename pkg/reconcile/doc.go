// Package reconcile compares the files at the top level of a dotfiles
// repository with a target directory.
//
// Each direct child of the repository root, except the backend marker
// directories and the .dots file, becomes an Entry whose status is decided
// by a single Lstat of the matching path in the target directory:
//
//	nothing there          Missing
//	a symlink, even broken Linked
//	anything else          Conflict
//
// Linked does not mean the link points back into the repository. A pass is
// read-only and its result is never cached; every command reconciles anew.
package reconcile
