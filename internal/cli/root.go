package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dots/internal/version"
	"github.com/arthur-debert/dots/pkg/backend"
	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/linker"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/paths"
	"github.com/arthur-debert/dots/pkg/types"
	"github.com/arthur-debert/dots/pkg/ui"
)

// Deps are the collaborators the root command hands to the dispatcher.
// Zero values mean the real filesystem and real processes.
type Deps struct {
	FS     types.FS
	Runner backend.Runner
}

type flags struct {
	verbosity int
	debug     bool
	dryRun    bool
	vcs       bool
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(Deps{})
}

func newRootCmd(deps Deps) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrArgs, len(args))
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := f.verbosity
			if f.debug && verbosity < 2 {
				verbosity = 2
			}
			logging.SetupLogger(verbosity)
			log.Debug().Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, f, args)
		},
		ValidArgsFunction: completeArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&f.debug, "debug", false, MsgFlagDebug)
	rootCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&f.vcs, "vcs", false, MsgFlagVCS)
	rootCmd.Flags().StringVar(&f.format, "format", "", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func run(cmd *cobra.Command, deps Deps, f *flags, args []string) error {
	name, repo, options := args[0], args[1], args[2:]

	// an unknown command fails before anything else happens
	if _, err := commands.ParseCommand(name); err != nil {
		return err
	}

	if len(options) > 0 {
		log.Warn().Strs("options", options).Msg("Extra options are ignored")
	}

	settings, format, err := outputSettings(repo, f.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var echo func(types.RepositoryContext)
	if f.debug {
		echo = func(types.RepositoryContext) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgDebugCommand, name)
			fmt.Fprintf(out, MsgDebugRepo, repo)
			if len(options) > 0 {
				fmt.Fprintf(out, MsgDebugOptions, options)
			}
		}
	}

	result, err := commands.Dispatch(cmd.Context(), name, commands.Options{
		RepositoryPath: repo,
		DryRun:         f.dryRun,
		VCSStatus:      f.vcs,
		FS:             deps.FS,
		Runner:         deps.Runner,
		Settings:       settings,
		Validated:      echo,
	})
	if result != nil {
		if rerr := renderer.RenderResult(result); rerr != nil {
			log.Error().Err(rerr).Msg("Failed to render result")
		}
	}
	if err != nil {
		return err
	}

	if result.Failed() {
		return entriesFailed(result.Link)
	}
	return nil
}

// outputSettings reads the tool settings to pick the output format, with
// --format winning over the settings file and environment. Settings that
// cannot be read leave the format to the flag (or auto) and are returned
// as nil; commands that need them load them again and report the error.
func outputSettings(repo, format string) (*config.Settings, ui.Format, error) {
	var overrides map[string]interface{}
	if format != "" {
		overrides = map[string]interface{}{"output.format": format}
	}

	// The settings location does not depend on the repository, but paths
	// needs one; an unusable repo path is reported later by the dispatcher.
	settingsPath := ""
	if p, err := paths.New(repo); err == nil {
		settingsPath = p.SettingsPath()
	}

	settings, err := config.LoadSettings(settingsPath, overrides)
	if err != nil {
		log.Warn().Err(err).Msg("Cannot read settings, output format falls back to defaults")
		f, perr := ui.ParseFormat(format)
		return nil, f, perr
	}

	f, err := ui.ParseFormat(settings.Output.Format)
	return settings, f, err
}

func entriesFailed(res *linker.Result) error {
	code := errors.ErrSymlinkCreate
	if res.Action == linker.ActionUnlink {
		code = errors.ErrUnlink
	}
	failed := len(res.Items) - len(res.Succeeded())
	return errors.Newf(code, MsgErrEntriesFailed, failed, len(res.Items), res.Action)
}

// completeArgs completes the command name, then a directory
func completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		var names []string
		for _, c := range commands.All() {
			names = append(names, fmt.Sprintf("%s\t%s", c, commands.Summaries[c]))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case 1:
		return nil, cobra.ShellCompDirectiveFilterDirs
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
