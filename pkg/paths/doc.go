// Package paths provides centralized path handling for dots.
//
// It resolves the three locations every invocation needs:
//
//   - the repository root (absolute, from the command line argument)
//   - the repository configuration file (.dots at the repository root)
//   - the target directory (the user's home unless .dots says otherwise)
//
// and the tool's own XDG locations (settings file, log file).
//
// # Environment Variables
//
//   - DOTS_CONFIG_DIR: Override the settings directory (default: $XDG_CONFIG_HOME/dots)
//   - HOME: Default target directory and ~ expansion
//
// # Usage
//
//	p, err := paths.New("~/dotfiles")
//	if err != nil {
//	    return err
//	}
//	root := p.RepositoryRoot()     // /home/user/dotfiles
//	cfg := p.ConfigPath()          // /home/user/dotfiles/.dots
//	target, _ := p.ResolveTarget("") // /home/user
package paths
