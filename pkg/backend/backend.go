package backend

import (
	"context"
	"errors"
	"os/exec"

	"github.com/arthur-debert/dots/pkg/config"
	dotserrors "github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
)

// Operation names used in results and logs
const (
	OpSyncOut = "sync-out"
	OpSyncIn  = "sync-in"
	OpStatus  = "status"
)

// Backend is the capability set shared by every version-control backend
type Backend interface {
	Kind() Kind
	SyncOut(ctx context.Context) (*SyncResult, error)
	SyncIn(ctx context.Context) (*SyncResult, error)
	Status(ctx context.Context) (*SyncResult, error)
}

// StepResult records the outcome of one step that was attempted
type StepResult struct {
	Step    Step   `json:"step"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SyncResult records which steps of an operation ran
type SyncResult struct {
	Backend   Kind         `json:"backend"`
	Operation string       `json:"operation"`
	Steps     []StepResult `json:"steps"`
}

// Completed returns how many steps finished successfully
func (r *SyncResult) Completed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Success {
			n++
		}
	}
	return n
}

// New returns the backend for kind, rooted at root. KindUnknown is an error,
// as are settings the chosen backend cannot run with.
func New(kind Kind, root string, settings *config.Settings, runner Runner) (Backend, error) {
	if settings == nil {
		defaults, err := config.DefaultSettings()
		if err != nil {
			return nil, err
		}
		settings = defaults
	}
	if runner == nil {
		runner = NewExecRunner()
	}

	switch kind {
	case KindGit:
		if err := settings.ValidateGit(); err != nil {
			return nil, err
		}
		return &gitBackend{root: root, settings: settings, runner: runner}, nil
	case KindHg:
		if err := settings.ValidateHg(); err != nil {
			return nil, err
		}
		return &hgBackend{root: root, settings: settings, runner: runner}, nil
	default:
		return nil, dotserrors.Newf(dotserrors.ErrUnknownBackend,
			"no version control found in %s (looked for %v)", root, MarkerNames()).
			WithDetail("root", root)
	}
}

// runSteps runs steps in order and stops at the first failure. The
// returned result lists every attempted step, including the failed one.
func runSteps(ctx context.Context, runner Runner, kind Kind, operation string, steps []Step) (*SyncResult, error) {
	logger := logging.GetLogger("backend").With().
		Str("backend", string(kind)).
		Str("operation", operation).
		Logger()
	done := logging.LogOperationStart(logger, operation)
	defer done()

	result := &SyncResult{Backend: kind, Operation: operation}

	for i, step := range steps {
		logger.Info().
			Str("step", step.Name).
			Str("command", step.CommandLine()).
			Msg("Running backend step")

		if err := runner.Run(ctx, step); err != nil {
			result.Steps = append(result.Steps, StepResult{Step: step, Error: err.Error()})

			logger.Error().
				Err(err).
				Str("step", step.Name).
				Int("skipped", len(steps)-i-1).
				Msg("Backend step failed")

			wrapped := dotserrors.Wrapf(err, dotserrors.ErrBackendProcess,
				"%s step %q (%s) failed", kind, step.Name, step.CommandLine()).
				WithDetail("step", step.Name).
				WithDetail("command", step.CommandLine())

			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				wrapped.WithDetail("exitCode", exitErr.ExitCode())
			}
			return result, wrapped
		}

		result.Steps = append(result.Steps, StepResult{Step: step, Success: true})
	}

	return result, nil
}
