package commands

import (
	"sort"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
)

// Command is one of the fixed commands dots understands
type Command string

const (
	CommandPush   Command = "push"
	CommandPull   Command = "pull"
	CommandStatus Command = "status"
	CommandList   Command = "list"
	CommandLink   Command = "link"
	CommandUnlink Command = "unlink"
)

// Summaries are one-line descriptions used by help output
var Summaries = map[Command]string{
	CommandPush:   "Commit tracked changes and push them upstream",
	CommandPull:   "Pull upstream changes into the repository",
	CommandStatus: "Show the link status of every entry",
	CommandList:   "Same as status",
	CommandLink:   "Create symlinks for missing entries",
	CommandUnlink: "Remove symlinks for linked entries",
}

// All returns every command name, sorted
func All() []Command {
	all := make([]Command, 0, len(Summaries))
	for c := range Summaries {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// ParseCommand validates name. It does no I/O.
func ParseCommand(name string) (Command, error) {
	c := Command(name)
	if _, ok := Summaries[c]; ok {
		return c, nil
	}

	names := make([]string, 0, len(Summaries))
	for _, c := range All() {
		names = append(names, string(c))
	}
	return "", errors.Newf(errors.ErrInvalidCommand, "%q is not a valid command (expected one of %s)",
		name, strings.Join(names, ", ")).
		WithDetail("command", name)
}

// RequiresBackend reports whether running c with opts needs a known backend
func (c Command) RequiresBackend(opts Options) bool {
	switch c {
	case CommandPush, CommandPull:
		return true
	case CommandStatus:
		return opts.VCSStatus
	default:
		return false
	}
}

func (c Command) String() string {
	return string(c)
}
