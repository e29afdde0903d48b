package reconcile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dots/pkg/backend"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/paths"
	"github.com/arthur-debert/dots/pkg/types"
)

// Skipped reports whether a repository child is excluded from reconciliation
func Skipped(name string) bool {
	return name == paths.ConfigFileName || backend.IsMarker(name)
}

// Reconcile classifies every eligible direct child of rc.Root against
// rc.TargetDir. Entries come back in the order the filesystem lists them.
func Reconcile(fsys types.FS, rc types.RepositoryContext) ([]types.Entry, error) {
	logger := logging.GetLogger("reconcile").With().
		Str("root", rc.Root).
		Str("target", rc.TargetDir).
		Logger()

	children, err := fsys.ReadDir(rc.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list repository %s", rc.Root).
			WithDetail("root", rc.Root)
	}

	entries := make([]types.Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if Skipped(name) {
			logger.Trace().Str("name", name).Msg("Skipping reserved name")
			continue
		}

		target := filepath.Join(rc.TargetDir, name)
		entry := types.Entry{
			Name:       name,
			SourcePath: filepath.Join(rc.Root, name),
			TargetPath: target,
			Status:     Classify(fsys, target),
		}
		if entry.Status == types.StatusLinked {
			if dest, err := fsys.Readlink(target); err == nil {
				entry.LinkDest = dest
			}
		}

		logger.Debug().
			Str("name", name).
			Str("status", string(entry.Status)).
			Msg("Classified entry")
		entries = append(entries, entry)
	}

	logger.Info().Int("entries", len(entries)).Msg("Reconciliation complete")
	return entries, nil
}

// Classify returns the status of a single target path. Lstat errors other
// than not-exist are treated as Conflict so nothing acts on the path.
func Classify(fsys types.FS, target string) types.Status {
	info, err := fsys.Lstat(target)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		return types.StatusLinked
	case err == nil:
		return types.StatusConflict
	case os.IsNotExist(err):
		return types.StatusMissing
	default:
		logger := logging.GetLogger("reconcile")
		logger.Warn().
			Err(err).
			Str("target", target).
			Msg("Cannot inspect target, treating as conflict")
		return types.StatusConflict
	}
}
