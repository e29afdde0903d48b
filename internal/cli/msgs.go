package cli

import (
	_ "embed"
	"strings"
)

const (
	MsgRootUse   = "dots <command> <repository> [options...]"
	MsgRootShort = "DO your doTfileS: link and sync a dotfiles repository"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDebug   = "Print the parsed invocation and log at debug level"
	MsgFlagDryRun  = "Show what link or unlink would do without changing anything"
	MsgFlagVCS     = "With status, also run the version control status command"
	MsgFlagFormat  = "Output format: auto, term, text or json"

	// Debug echo, one line per part of the invocation
	MsgDebugCommand = "command: %s\n"
	MsgDebugRepo    = "repo: %s\n"
	MsgDebugOptions = "options: %v\n"

	// Error messages
	MsgErrArgs          = "expected <command> <repository>, got %d argument(s)"
	MsgErrEntriesFailed = "%d of %d entries failed to %s"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
