// pkg/linker/linker_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem under t.TempDir
// PURPOSE: Link/unlink transitions and their per-entry error handling

package linker_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/linker"
	"github.com/arthur-debert/dots/pkg/reconcile"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/arthur-debert/dots/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconciled(t *testing.T, env *testutil.TestEnvironment) []types.Entry {
	t.Helper()
	entries, err := reconcile.Reconcile(env.FS, env.Context())
	require.NoError(t, err)
	return entries
}

func statusOf(t *testing.T, env *testutil.TestEnvironment, name string) types.Status {
	t.Helper()
	for _, e := range reconciled(t, env) {
		if e.Name == name {
			return e.Status
		}
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestLink_MissingEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoDir(".git")
	vimrc := env.RepoFile(".vimrc", "")
	bashrc := env.RepoFile(".bashrc", "")

	result := linker.Link(env.FS, reconciled(t, env), linker.Options{})

	assert.False(t, result.Failed())
	assert.Empty(t, result.Errors())
	assert.Len(t, result.Items, 2)
	testutil.AssertSymlink(t, filepath.Join(env.TargetDir, ".vimrc"), vimrc)
	testutil.AssertSymlink(t, filepath.Join(env.TargetDir, ".bashrc"), bashrc)
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".git"))

	for _, e := range reconciled(t, env) {
		assert.Equal(t, types.StatusLinked, e.Status, e.Name)
	}
}

func TestLink_LeavesConflictAlone(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "repo")
	env.RepoFile(".bashrc", "repo")
	env.TargetFile(".bashrc", "user's own")

	result := linker.Link(env.FS, reconciled(t, env), linker.Options{})

	require.Len(t, result.Items, 1)
	assert.Equal(t, ".vimrc", result.Items[0].Name)
	testutil.AssertSymlink(t, filepath.Join(env.TargetDir, ".vimrc"), vimrc)
	testutil.AssertFileContent(t, filepath.Join(env.TargetDir, ".bashrc"), "user's own")
	assert.Equal(t, types.StatusConflict, statusOf(t, env, ".bashrc"))
}

func TestLink_Idempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")

	first := linker.Link(env.FS, reconciled(t, env), linker.Options{})
	require.Len(t, first.Items, 1)

	second := linker.Link(env.FS, reconciled(t, env), linker.Options{})
	assert.Empty(t, second.Items)
	assert.False(t, second.Failed())
}

func TestLink_RaceWithExistingFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")
	gitconfig := env.RepoFile(".gitconfig", "")
	entries := reconciled(t, env)

	// appears between classification and linking
	env.TargetFile(".vimrc", "surprise")

	result := linker.Link(env.FS, entries, linker.Options{})

	assert.True(t, result.Failed())
	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.True(t, errors.IsErrorCode(errs[0], errors.ErrSymlinkCreate))
	assert.Equal(t, filepath.Join(env.TargetDir, ".vimrc"), errors.GetErrorDetails(errs[0])["target"])

	testutil.AssertFileContent(t, filepath.Join(env.TargetDir, ".vimrc"), "surprise")
	testutil.AssertSymlink(t, filepath.Join(env.TargetDir, ".gitconfig"), gitconfig)
	assert.Len(t, result.Succeeded(), 1)
}

func TestLink_MissingTargetDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")
	rc := env.Context()
	rc.TargetDir = filepath.Join(env.HomeDir, "does", "not", "exist")

	entries, err := reconcile.Reconcile(env.FS, rc)
	require.NoError(t, err)
	require.Equal(t, types.StatusMissing, entries[0].Status)

	result := linker.Link(env.FS, entries, linker.Options{})
	require.Len(t, result.Errors(), 1)
	assert.True(t, errors.IsErrorCode(result.Errors()[0], errors.ErrSymlinkCreate))
	testutil.AssertNoFile(t, rc.TargetDir)
}

func TestLink_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")

	result := linker.Link(env.FS, reconciled(t, env), linker.Options{DryRun: true})

	assert.True(t, result.DryRun)
	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].Success)
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".vimrc"))
}

func TestUnlink_LinkedEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "")
	env.RepoFile(".bashrc", "")
	env.RepoFile(".zshrc", "")
	env.TargetLink(".vimrc", vimrc)
	env.TargetLink(".bashrc", "/dangling/bashrc")
	env.TargetFile(".zshrc", "mine")

	result := linker.Unlink(env.FS, reconciled(t, env), linker.Options{})

	assert.False(t, result.Failed())
	assert.Len(t, result.Items, 2)
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".vimrc"))
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".bashrc"))
	testutil.AssertFileContent(t, filepath.Join(env.TargetDir, ".zshrc"), "mine")
	assert.FileExists(t, vimrc)
}

func TestUnlink_RemovesForeignLinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".gitconfig", "")
	other := testutil.CreateFile(t, env.HomeDir, "elsewhere/gitconfig", "")
	env.TargetLink(".gitconfig", other)

	result := linker.Unlink(env.FS, reconciled(t, env), linker.Options{})

	assert.Len(t, result.Items, 1)
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".gitconfig"))
	assert.FileExists(t, other)
}

func TestUnlink_TargetReplacedSinceClassification(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "")
	bashrc := env.RepoFile(".bashrc", "")
	env.TargetLink(".vimrc", vimrc)
	env.TargetLink(".bashrc", bashrc)
	entries := reconciled(t, env)

	// swap the symlink for a real file behind our back
	require.NoError(t, env.FS.Remove(filepath.Join(env.TargetDir, ".vimrc")))
	env.TargetFile(".vimrc", "real file")

	result := linker.Unlink(env.FS, entries, linker.Options{})

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.True(t, errors.IsErrorCode(errs[0], errors.ErrUnlink))
	testutil.AssertFileContent(t, filepath.Join(env.TargetDir, ".vimrc"), "real file")
	testutil.AssertNoFile(t, filepath.Join(env.TargetDir, ".bashrc"))
}

func TestUnlink_TargetVanished(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "")
	link := env.TargetLink(".vimrc", vimrc)
	entries := reconciled(t, env)
	require.NoError(t, env.FS.Remove(link))

	result := linker.Unlink(env.FS, entries, linker.Options{})
	require.Len(t, result.Errors(), 1)
	assert.True(t, errors.IsErrorCode(result.Errors()[0], errors.ErrUnlink))
}

func TestUnlink_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	vimrc := env.RepoFile(".vimrc", "")
	env.TargetLink(".vimrc", vimrc)

	result := linker.Unlink(env.FS, reconciled(t, env), linker.Options{DryRun: true})

	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].Success)
	testutil.AssertSymlink(t, filepath.Join(env.TargetDir, ".vimrc"), vimrc)
}

func TestLinkUnlinkRoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.RepoFile(".vimrc", "")
	env.RepoFile(".bashrc", "")
	env.RepoFile(".profile", "")
	env.TargetFile(".profile", "mine")

	before := reconciled(t, env)

	require.False(t, linker.Link(env.FS, before, linker.Options{}).Failed())
	require.False(t, linker.Unlink(env.FS, reconciled(t, env), linker.Options{}).Failed())

	assert.ElementsMatch(t, before, reconciled(t, env))
}

func TestUnlink_UntouchedWithoutLinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RepoFile(".vimrc", "")
	env.RepoFile(".bashrc", "")
	env.TargetFile(".bashrc", "mine")

	result := linker.Unlink(env.FS, reconciled(t, env), linker.Options{})
	assert.Empty(t, result.Items)
	assert.True(t, env.Exists(filepath.Join(env.TargetDir, ".bashrc")))
}
