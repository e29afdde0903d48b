package backend

import (
	"context"

	"github.com/arthur-debert/dots/pkg/config"
)

type hgBackend struct {
	root     string
	settings *config.Settings
	runner   Runner
}

func (h *hgBackend) Kind() Kind { return KindHg }

func (h *hgBackend) step(name string, args ...string) Step {
	return Step{Name: name, Binary: h.settings.Hg.Binary, Args: args, Dir: h.root}
}

// SyncOut adds untracked files, commits and pushes to the default path.
func (h *hgBackend) SyncOut(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, h.runner, KindHg, OpSyncOut, []Step{
		h.step("add", "add"),
		h.step("commit", "commit", "-m", h.settings.Commit.Message),
		h.step("push", "push"),
	})
}

// SyncIn pulls and updates the working copy.
func (h *hgBackend) SyncIn(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, h.runner, KindHg, OpSyncIn, []Step{
		h.step("pull", "pull", "-u"),
	})
}

func (h *hgBackend) Status(ctx context.Context) (*SyncResult, error) {
	return runSteps(ctx, h.runner, KindHg, OpStatus, []Step{
		h.step("status", "status"),
	})
}
