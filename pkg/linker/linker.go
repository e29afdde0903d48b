package linker

import (
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// Action names recorded on each Item
const (
	ActionLink   = "link"
	ActionUnlink = "unlink"
)

// Options controls a link or unlink pass
type Options struct {
	// DryRun reports what would happen without touching the filesystem
	DryRun bool
}

// Item is the outcome for one entry that the pass acted on
type Item struct {
	Name string `json:"name"`

	// Path is the symlink location in the target directory
	Path string `json:"path"`

	// Source is the repository file the symlink points, or pointed, to
	Source string `json:"source"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	err error
}

// Result contains the outcome of a link or unlink pass
type Result struct {
	Action string `json:"action"`
	Items  []Item `json:"items"`
	DryRun bool   `json:"dryRun"`
}

// Errors returns the per-entry errors in the order they occurred
func (r *Result) Errors() []error {
	var errs []error
	for _, item := range r.Items {
		if item.err != nil {
			errs = append(errs, item.err)
		}
	}
	return errs
}

// Failed reports whether any entry failed
func (r *Result) Failed() bool {
	for _, item := range r.Items {
		if !item.Success {
			return true
		}
	}
	return false
}

// Succeeded returns the items that were handled without error
func (r *Result) Succeeded() []Item {
	var ok []Item
	for _, item := range r.Items {
		if item.Success {
			ok = append(ok, item)
		}
	}
	return ok
}

func (r *Result) record(logger zerolog.Logger, item Item, err error) {
	if err != nil {
		item.err = err
		item.Error = err.Error()
		logger.Error().Err(err).Str("path", item.Path).Msg("Entry failed")
	} else {
		item.Success = true
		logger.Info().Str("path", item.Path).Str("source", item.Source).Bool("dryRun", r.DryRun).Msg("Entry done")
	}
	r.Items = append(r.Items, item)
}

// Link creates a symlink TargetPath -> SourcePath for every Missing entry.
// The parent directory must already exist; it is not created.
func Link(fsys types.FS, entries []types.Entry, opts Options) *Result {
	logger := logging.GetLogger("linker.link")
	result := &Result{Action: ActionLink, DryRun: opts.DryRun}

	for _, entry := range entries {
		if entry.Status != types.StatusMissing {
			logger.Trace().Str("name", entry.Name).Str("status", string(entry.Status)).Msg("Not missing, skipping")
			continue
		}

		item := Item{Name: entry.Name, Path: entry.TargetPath, Source: entry.SourcePath}
		if opts.DryRun {
			result.record(logger, item, nil)
			continue
		}

		var err error
		if symErr := fsys.Symlink(entry.SourcePath, entry.TargetPath); symErr != nil {
			err = errors.Wrapf(symErr, errors.ErrSymlinkCreate, "cannot link %s", entry.TargetPath).
				WithDetail("target", entry.TargetPath).
				WithDetail("source", entry.SourcePath)
		}
		result.record(logger, item, err)
	}

	logger.Debug().Int("processed", len(result.Items)).Bool("failed", result.Failed()).Msg("Link pass complete")
	return result
}

// Unlink removes the symlink of every Linked entry, whatever it points to.
// The target is checked again right before removal and anything that is no
// longer a symlink is reported instead of removed.
func Unlink(fsys types.FS, entries []types.Entry, opts Options) *Result {
	logger := logging.GetLogger("linker.unlink")
	result := &Result{Action: ActionUnlink, DryRun: opts.DryRun}

	for _, entry := range entries {
		if entry.Status != types.StatusLinked {
			logger.Trace().Str("name", entry.Name).Str("status", string(entry.Status)).Msg("Not linked, skipping")
			continue
		}

		item := Item{Name: entry.Name, Path: entry.TargetPath, Source: entry.SourcePath}
		result.record(logger, item, unlinkOne(fsys, entry, opts.DryRun))
	}

	logger.Debug().Int("processed", len(result.Items)).Bool("failed", result.Failed()).Msg("Unlink pass complete")
	return result
}

func unlinkOne(fsys types.FS, entry types.Entry, dryRun bool) error {
	info, err := fsys.Lstat(entry.TargetPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrUnlink, "cannot inspect %s", entry.TargetPath).
			WithDetail("target", entry.TargetPath)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return errors.Newf(errors.ErrUnlink, "%s is no longer a symlink, leaving it in place", entry.TargetPath).
			WithDetail("target", entry.TargetPath)
	}
	if dryRun {
		return nil
	}
	if err := fsys.Remove(entry.TargetPath); err != nil {
		return errors.Wrapf(err, errors.ErrUnlink, "cannot remove %s", entry.TargetPath).
			WithDetail("target", entry.TargetPath)
	}
	return nil
}
