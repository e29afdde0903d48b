package commands

import (
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/paths"
	"github.com/arthur-debert/dots/pkg/types"
)

// BuildContext resolves the repository root, checks that it is an existing
// directory, and reads the target directory from its .dots file.
func BuildContext(fsys types.FS, repoPath string) (types.RepositoryContext, paths.Paths, error) {
	logger := logging.GetLogger("commands.context")

	p, err := paths.New(repoPath)
	if err != nil {
		return types.RepositoryContext{}, nil, errors.Wrapf(err, errors.ErrRepositoryNotFound,
			"invalid repository path %q", repoPath)
	}

	root := p.RepositoryRoot()
	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		e := errors.Newf(errors.ErrRepositoryNotFound, "%s is not an existing directory", root).
			WithDetail("path", root)
		e.Wrapped = err
		return types.RepositoryContext{}, nil, e
	}

	repoCfg, err := config.LoadRepositoryConfig(fsys, p.ConfigPath())
	if err != nil {
		return types.RepositoryContext{}, nil, err
	}

	target, err := p.ResolveTarget(repoCfg.Target)
	if err != nil {
		return types.RepositoryContext{}, nil, err
	}

	rc := types.RepositoryContext{
		Root:             root,
		TargetDir:        target,
		ConfigPath:       p.ConfigPath(),
		TargetFromConfig: repoCfg.Found,
	}

	logger.Debug().
		Str("root", rc.Root).
		Str("target", rc.TargetDir).
		Bool("targetFromConfig", rc.TargetFromConfig).
		Msg("Repository context resolved")

	return rc, p, nil
}
