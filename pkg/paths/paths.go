package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
)

// Environment variable names
const (
	// EnvDotsConfigDir overrides the XDG config directory for dots
	EnvDotsConfigDir = "DOTS_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed file and directory names. These are part of the on-disk contract
// with existing repositories and are not configurable.
const (
	// ConfigFileName is the per-repository configuration file
	ConfigFileName = ".dots"

	// DotsDirName is the directory name used under XDG base directories
	DotsDirName = "dots"

	// SettingsFileName is the name of the tool settings file
	SettingsFileName = "config.toml"
)

// Paths provides centralized path management for dots
type Paths interface {
	RepositoryRoot() string
	ConfigPath() string
	SettingsPath() string
	ResolveTarget(target string) (string, error)
}

type paths struct {
	// root is the absolute repository path
	root string

	// home is the invoking user's home directory
	home string

	// settingsDir is the XDG config directory for dots
	settingsDir string
}

// New creates a Paths instance for the given repository path. The path is
// tilde-expanded and made absolute; whether it exists is checked by callers.
func New(repoPath string) (Paths, error) {
	if repoPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "empty repository path")
	}

	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	root, err := NormalizePath(repoPath)
	if err != nil {
		return nil, err
	}

	p := &paths{
		root: root,
		home: home,
	}

	// xdg caches the environment at init; pick up changes made since.
	xdg.Reload()
	if dir := os.Getenv(EnvDotsConfigDir); dir != "" {
		p.settingsDir = expandHome(dir)
	} else {
		p.settingsDir = filepath.Join(xdg.ConfigHome, DotsDirName)
	}

	logger := logging.GetLogger("paths")
	logger.Trace().
		Str("root", p.root).
		Str("home", p.home).
		Str("settingsDir", p.settingsDir).
		Msg("Paths resolved")

	return p, nil
}

// GetHomeDirectory returns the invoking user's home directory
func GetHomeDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
		if home == "" {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
		}
	}
	return filepath.Clean(home), nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user forms are left alone
	return path
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

// NormalizePath expands home, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// RepositoryRoot returns the absolute repository path
func (p *paths) RepositoryRoot() string {
	return p.root
}

// ConfigPath returns the path of the repository's .dots file
func (p *paths) ConfigPath() string {
	return filepath.Join(p.root, ConfigFileName)
}

// SettingsPath returns the path of the tool settings file
func (p *paths) SettingsPath() string {
	return filepath.Join(p.settingsDir, SettingsFileName)
}

// ResolveTarget turns a configured target into an absolute directory.
// An empty target means the home directory; a relative target is taken
// relative to the repository root.
func (p *paths) ResolveTarget(target string) (string, error) {
	if target == "" {
		return p.home, nil
	}
	expanded := expandHome(target)
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(p.root, expanded)
	}
	return filepath.Clean(expanded), nil
}
