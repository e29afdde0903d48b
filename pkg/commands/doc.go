// Package commands is the entry point shared by the CLI and tests.
//
// Dispatch validates the command name against the fixed command set before
// touching the filesystem, resolves the repository context once, and then
// hands off to the command's handler. Only commands that talk to version
// control look for a backend, so link, unlink, list and status work in a
// plain directory.
package commands
