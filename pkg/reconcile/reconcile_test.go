// pkg/reconcile/reconcile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil environments (memory and temp dir)
// PURPOSE: Classification of repository entries against a target directory

package reconcile_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/reconcile"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/arthur-debert/dots/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(entries []types.Entry) map[string]types.Entry {
	m := make(map[string]types.Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

func names(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

func TestReconcile_FreshRepository(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RepoDir(".git")
	env.RepoFile(".vimrc", "set nu")
	env.RepoFile(".bashrc", "alias ll='ls -l'")

	entries, err := reconcile.Reconcile(env.FS, env.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{".bashrc", ".vimrc"}, names(entries))
	for _, e := range entries {
		assert.Equal(t, types.StatusMissing, e.Status, e.Name)
		assert.Equal(t, filepath.Join(env.RepoRoot, e.Name), e.SourcePath)
		assert.Equal(t, filepath.Join(env.TargetDir, e.Name), e.TargetPath)
		assert.Empty(t, e.LinkDest)
	}
}

func TestReconcile_SkipsMarkersAndConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RepoDir(".git")
	env.RepoDir(".hg")
	env.RepoFile(".dots", `{"target": "~"}`)
	env.RepoFile(".zshrc", "")

	entries, err := reconcile.Reconcile(env.FS, env.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{".zshrc"}, names(entries))
}

func TestReconcile_ConflictWithRegularFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RepoFile(".vimrc", "repo")
	env.TargetFile(".vimrc", "user's own")

	entries, err := reconcile.Reconcile(env.FS, env.Context())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.StatusConflict, entries[0].Status)
}

func TestReconcile_DirectoryEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RepoDir(".config")
	require.NoError(t, env.FS.MkdirAll(filepath.Join(env.TargetDir, ".config"), 0755))
	env.RepoDir(".vim")

	got := byName(mustReconcile(t, env))
	assert.Equal(t, types.StatusConflict, got[".config"].Status)
	assert.Equal(t, types.StatusMissing, got[".vim"].Status)
}

func TestReconcile_Symlinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "")
	env.RepoFile(".bashrc", "")
	env.RepoFile(".gitconfig", "")

	env.TargetLink(".vimrc", vimrc)
	env.TargetLink(".bashrc", "/nowhere/at/all")
	env.TargetLink(".gitconfig", "/some/other/gitconfig")

	got := byName(mustReconcile(t, env))

	assert.Equal(t, types.StatusLinked, got[".vimrc"].Status)
	assert.Equal(t, vimrc, got[".vimrc"].LinkDest)
	assert.True(t, got[".vimrc"].PointsToSource())

	// dangling links still count as linked
	assert.Equal(t, types.StatusLinked, got[".bashrc"].Status)
	assert.Equal(t, "/nowhere/at/all", got[".bashrc"].LinkDest)

	// linked elsewhere is still linked
	assert.Equal(t, types.StatusLinked, got[".gitconfig"].Status)
	assert.False(t, got[".gitconfig"].PointsToSource())
}

func TestReconcile_CustomTargetDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithTargetDir("/virtual/alt")
	env.RepoFile(".vimrc", "")

	entries := mustReconcile(t, env)
	require.Len(t, entries, 1)
	assert.Equal(t, "/virtual/alt/.vimrc", entries[0].TargetPath)
}

func TestReconcile_MissingRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	rc := env.Context()
	rc.Root = "/virtual/nope"

	_, err := reconcile.Reconcile(env.FS, rc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestReconcile_IsReadOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")
	env.TargetFile(".bashrc", "mine")
	env.RepoFile(".bashrc", "")

	first := mustReconcile(t, env)
	second := mustReconcile(t, env)
	assert.ElementsMatch(t, first, second)
	assert.False(t, env.Exists(filepath.Join(env.TargetDir, ".vimrc")))
	testutil.AssertFileContent(t, filepath.Join(env.TargetDir, ".bashrc"), "mine")
}

func TestClassify_UnreadableParent(t *testing.T) {
	testutil.SkipIfRoot(t)

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	locked := testutil.CreateDir(t, env.HomeDir, "locked")
	testutil.Chmod(t, locked, 0000)

	assert.Equal(t, types.StatusConflict, reconcile.Classify(env.FS, filepath.Join(locked, ".vimrc")))
}

func TestSkipped(t *testing.T) {
	assert.True(t, reconcile.Skipped(".git"))
	assert.True(t, reconcile.Skipped(".hg"))
	assert.True(t, reconcile.Skipped(".dots"))
	assert.False(t, reconcile.Skipped(".gitconfig"))
	assert.False(t, reconcile.Skipped(".hgrc"))
}

func mustReconcile(t *testing.T, env *testutil.TestEnvironment) []types.Entry {
	t.Helper()
	entries, err := reconcile.Reconcile(env.FS, env.Context())
	require.NoError(t, err)
	return entries
}
