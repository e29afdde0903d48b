package backend

import (
	"context"

	"github.com/arthur-debert/dots/pkg/config"
)

type gitBackend struct {
	root     string
	settings *config.Settings
	runner   Runner
}

func (g *gitBackend) Kind() Kind { return KindGit }

func (g *gitBackend) step(name string, args ...string) Step {
	return Step{Name: name, Binary: g.settings.Git.Binary, Args: args, Dir: g.root}
}

// SyncOut stages tracked modifications, commits them and pushes to the
// configured remote branch.
func (g *gitBackend) SyncOut(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, g.runner, KindGit, OpSyncOut, []Step{
		g.step("stage", "add", "-u"),
		g.step("commit", "commit", "-m", g.settings.Commit.Message),
		g.step("push", "push", g.settings.Git.Remote, g.settings.Git.Branch),
	})
}

func (g *gitBackend) SyncIn(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, g.runner, KindGit, OpSyncIn, []Step{
		g.step("pull", "pull"),
	})
}

func (g *gitBackend) Status(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, g.runner, KindGit, OpStatus, []Step{
		g.step("status", "status"),
	})
}
