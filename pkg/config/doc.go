// Package config loads the two kinds of configuration dots reads.
//
// Repository configuration lives in a .dots file at the repository root. It
// is a JSON object with a single recognized key, target, naming the
// directory symlinks are created in:
//
//	{"target": "~/"}
//
// A missing .dots file is not an error; the target then defaults to the
// user's home directory.
//
// Tool settings control how backend commands are invoked. They are layered
// with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/dots/config.toml, when present
//  3. DOTS_* environment variables (DOTS_GIT_REMOTE -> git.remote)
package config
