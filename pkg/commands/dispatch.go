package commands

import (
	"context"

	"github.com/arthur-debert/dots/pkg/backend"
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/filesystem"
	"github.com/arthur-debert/dots/pkg/linker"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/reconcile"
	"github.com/arthur-debert/dots/pkg/types"
)

// Options contains everything a command may need. Each handler uses only
// the fields it cares about.
type Options struct {
	// RepositoryPath is the dotfiles repository, as given by the user
	RepositoryPath string

	// DryRun reports link/unlink actions without performing them
	DryRun bool

	// VCSStatus makes status also run the backend's own status command
	VCSStatus bool

	// FS defaults to the OS filesystem
	FS types.FS

	// Runner defaults to running real processes
	Runner backend.Runner

	// Settings defaults to config.LoadSettings with the XDG settings path.
	// They are only loaded and checked for commands that need a backend.
	Settings *config.Settings

	// Validated, when set, is called once the command name and the
	// repository have been checked and before anything runs
	Validated func(rc types.RepositoryContext)
}

// Result is what a command produced, for rendering
type Result struct {
	Command Command                 `json:"command"`
	Context types.RepositoryContext `json:"context"`

	// Entries is the classification, for list and status
	Entries []types.Entry `json:"entries,omitempty"`

	// Link is set by link and unlink
	Link *linker.Result `json:"link,omitempty"`

	// Sync is set by push, pull and status with VCSStatus
	Sync *backend.SyncResult `json:"sync,omitempty"`
}

// Failed reports whether any per-entry operation failed
func (r *Result) Failed() bool {
	return r != nil && r.Link != nil && r.Link.Failed()
}

// invocation is the resolved state a handler runs against
type invocation struct {
	opts    Options
	fs      types.FS
	rc      types.RepositoryContext
	backend backend.Backend
}

type handlerFunc func(ctx context.Context, inv *invocation) (*Result, error)

var handlers = map[Command]handlerFunc{
	CommandPush:   runPush,
	CommandPull:   runPull,
	CommandStatus: runStatus,
	CommandList:   runList,
	CommandLink:   runLink,
	CommandUnlink: runUnlink,
}

// Dispatch runs the named command. Validation and configuration errors are
// returned before anything is changed. Per-entry link/unlink failures do
// not produce an error; check Result.Failed.
func Dispatch(ctx context.Context, name string, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.dispatch")
	logger.Debug().
		Str("command", name).
		Str("repository", opts.RepositoryPath).
		Bool("dryRun", opts.DryRun).
		Bool("vcsStatus", opts.VCSStatus).
		Msg("Dispatching command")

	cmd, err := ParseCommand(name)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	rc, p, err := BuildContext(fsys, opts.RepositoryPath)
	if err != nil {
		return nil, err
	}

	if opts.Validated != nil {
		opts.Validated(rc)
	}

	inv := &invocation{opts: opts, fs: fsys, rc: rc}

	if cmd.RequiresBackend(opts) {
		settings := opts.Settings
		if settings == nil {
			if settings, err = config.LoadSettings(p.SettingsPath(), nil); err != nil {
				return nil, err
			}
		}
		kind := backend.Detect(fsys, rc.Root)
		if inv.backend, err = backend.New(kind, rc.Root, settings, opts.Runner); err != nil {
			return nil, err
		}
	}

	done := logging.LogOperationStart(logger, string(cmd))
	defer done()

	result, err := handlers[cmd](ctx, inv)
	if err != nil {
		logger.Error().Err(err).Str("command", string(cmd)).Msg("Command execution failed")
	}
	return result, err
}

func (inv *invocation) result(cmd Command) *Result {
	return &Result{Command: cmd, Context: inv.rc}
}

func runList(ctx context.Context, inv *invocation) (*Result, error) {
	entries, err := reconcile.Reconcile(inv.fs, inv.rc)
	if err != nil {
		return nil, err
	}
	result := inv.result(CommandList)
	result.Entries = entries
	return result, nil
}

func runStatus(ctx context.Context, inv *invocation) (*Result, error) {
	result, err := runList(ctx, inv)
	if err != nil {
		return nil, err
	}
	result.Command = CommandStatus

	if inv.opts.VCSStatus {
		result.Sync, err = inv.backend.Status(ctx)
	}
	return result, err
}

func runLink(ctx context.Context, inv *invocation) (*Result, error) {
	entries, err := reconcile.Reconcile(inv.fs, inv.rc)
	if err != nil {
		return nil, err
	}
	result := inv.result(CommandLink)
	result.Link = linker.Link(inv.fs, entries, linker.Options{DryRun: inv.opts.DryRun})
	return result, nil
}

func runUnlink(ctx context.Context, inv *invocation) (*Result, error) {
	entries, err := reconcile.Reconcile(inv.fs, inv.rc)
	if err != nil {
		return nil, err
	}
	result := inv.result(CommandUnlink)
	result.Link = linker.Unlink(inv.fs, entries, linker.Options{DryRun: inv.opts.DryRun})
	return result, nil
}

func runPush(ctx context.Context, inv *invocation) (*Result, error) {
	result := inv.result(CommandPush)
	sync, err := inv.backend.SyncOut(ctx)
	result.Sync = sync
	return result, err
}

func runPull(ctx context.Context, inv *invocation) (*Result, error) {
	result := inv.result(CommandPull)
	sync, err := inv.backend.SyncIn(ctx)
	result.Sync = sync
	return result, err
}
