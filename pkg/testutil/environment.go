// pkg/testutil/environment.go
// DEPENDENCIES: afero
// PURPOSE: Build a repository and target directory for a test

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dots/pkg/filesystem"
	"github.com/arthur-debert/dots/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero MemMapFs, no real filesystem
	EnvIsolated                  // Real filesystem in a temp directory
)

// TestEnvironment is a repository and a target directory wired to one FS
type TestEnvironment struct {
	RepoRoot  string
	TargetDir string
	HomeDir   string

	FS   types.FS
	Type EnvType

	// Mem is the backing afero filesystem for EnvMemoryOnly
	Mem afero.Fs

	t *testing.T
}

// NewTestEnvironment creates the repository and target directories and
// points HOME and the XDG variables inside the environment. The target
// directory defaults to the home directory.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Mem = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.Mem)
		env.RepoRoot = "/virtual/dotfiles"
		env.HomeDir = "/virtual/home"
	case EnvIsolated:
		tempDir := t.TempDir()
		env.FS = filesystem.NewOS()
		env.RepoRoot = filepath.Join(tempDir, "dotfiles")
		env.HomeDir = filepath.Join(tempDir, "home")
	}
	env.TargetDir = env.HomeDir

	for _, dir := range []string{env.RepoRoot, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	stateDir := filepath.Join(t.TempDir(), "state")
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", stateDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(stateDir, "config"))

	return env
}

// Context returns the repository context for this environment
func (env *TestEnvironment) Context() types.RepositoryContext {
	return types.RepositoryContext{
		Root:       env.RepoRoot,
		TargetDir:  env.TargetDir,
		ConfigPath: filepath.Join(env.RepoRoot, ".dots"),
	}
}

// WithTargetDir moves the target directory, creating it
func (env *TestEnvironment) WithTargetDir(dir string) *TestEnvironment {
	env.t.Helper()
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", dir, err)
	}
	env.TargetDir = dir
	return env
}

// RepoFile writes a file directly under the repository root
func (env *TestEnvironment) RepoFile(name, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.RepoRoot, name), content)
}

// RepoDir creates a directory directly under the repository root
func (env *TestEnvironment) RepoDir(name string) string {
	env.t.Helper()
	path := filepath.Join(env.RepoRoot, name)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", path, err)
	}
	return path
}

// TargetFile writes a regular file into the target directory
func (env *TestEnvironment) TargetFile(name, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.TargetDir, name), content)
}

// TargetLink creates a symlink named name in the target directory. MemMapFs
// has no symlinks, so this needs EnvIsolated.
func (env *TestEnvironment) TargetLink(name, dest string) string {
	env.t.Helper()
	path := filepath.Join(env.TargetDir, name)
	if err := env.FS.Symlink(dest, path); err != nil {
		env.t.Fatalf("Failed to create symlink %s -> %s: %v", path, dest, err)
	}
	return path
}

// Exists reports whether anything, including a dangling symlink, is at path
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Lstat(path)
	return err == nil
}

func (env *TestEnvironment) writeFile(path, content string) string {
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	switch env.Type {
	case EnvMemoryOnly:
		if err := afero.WriteFile(env.Mem, path, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write %s: %v", path, err)
		}
	default:
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return path
}
