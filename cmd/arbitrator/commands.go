package arbitrator

import (
	"fmt"

	"github.com/arthur-debert/arbitrator/internal/version"
	"github.com/arthur-debert/arbitrator/pkg/commands"
	"github.com/arthur-debert/arbitrator/pkg/config"
	"github.com/arthur-debert/arbitrator/pkg/document"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootFlags holds every flag value of one command tree.
type rootFlags struct {
	verbosity int
	ruleFiles []string
	pairs     []string
	noLogFile bool
	input     string
	output    string
	mode      string

	// cfg is resolved in PersistentPreRunE.
	cfg *config.Config
}

// overrides turns the flags the user actually set into config keys, so
// unset flags do not mask config files or the environment.
func (f *rootFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("rules") {
		o["rewrite.rules"] = f.ruleFiles
	}
	if flags.Changed("mode") {
		o["rewrite.mode"] = f.mode
	}
	if flags.Changed("input") {
		o["rewrite.input"] = f.input
	}
	if flags.Changed("output") {
		o["rewrite.output"] = f.output
	}
	if f.noLogFile {
		o["log.file"] = false
	}
	return o
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	f := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "arbitrator",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Console-only until the config says whether to keep a log file
			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: f.verbosity,
				Console:   cmd.ErrOrStderr(),
			})

			cfg, err := config.Load(config.LoadOptions{Overrides: f.overrides(cmd)})
			if err != nil {
				return err
			}
			f.cfg = cfg

			if cfg.Log.File {
				logging.SetupLoggerWithOptions(logging.Options{
					Verbosity: f.verbosity,
					File:      true,
					Console:   cmd.ErrOrStderr(),
				})
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.RewriteDocument(commands.RewriteOptions{
				RuleFiles: f.cfg.Rewrite.Rules,
				Pairs:     f.pairs,
				Mode:      f.cfg.Mode(),
				Input:     f.cfg.Rewrite.Input,
				Output:    f.cfg.Rewrite.Output,
				IO: document.IO{
					Stdin:  cmd.InOrStdin(),
					Stdout: cmd.OutOrStdout(),
				},
			})
			if err != nil {
				return err
			}

			log.Info().Msgf(MsgRewriteStats,
				result.Stats.Units, result.Stats.Matched, result.Stats.Emitted)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringArrayVarP(&f.ruleFiles, "rules", "r", nil, MsgFlagRules)
	rootCmd.PersistentFlags().StringArrayVarP(&f.pairs, "pair", "p", nil, MsgFlagPair)
	rootCmd.PersistentFlags().BoolVar(&f.noLogFile, "no-log-file", false, MsgFlagNoLogFile)

	// Rewrite flags
	rootCmd.Flags().StringVarP(&f.input, "input", "i", "", MsgFlagInput)
	rootCmd.Flags().StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().StringVarP(&f.mode, "mode", "m", "line", MsgFlagMode)

	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"line", "token"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagFilename("rules", "json", "yaml", "yml", "toml")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	installTopics(rootCmd)

	rootCmd.AddCommand(newRulesCmd(f))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newRulesCmd(f *rootFlags) *cobra.Command {
	var check, asJSON bool

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.ListRules(commands.ListRulesOptions{
				RuleFiles: f.cfg.Rewrite.Rules,
				Pairs:     f.pairs,
			})
			if err != nil {
				return err
			}

			if check {
				fmt.Fprintf(cmd.OutOrStdout(), MsgRulesValid, len(result.Rules))
				return nil
			}

			renderer := style.NewRenderer(cmd.OutOrStdout())
			render := renderer.RenderRules
			if asJSON {
				render = renderer.RenderRulesJSON
			}
			out, err := render(result.Rules)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	cmd.MarkFlagsMutuallyExclusive("check", "json")
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{Write: write})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}
			if len(result.FilesWritten) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), MsgConfigExists)
				return nil
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionLine, version.Version)
			fmt.Fprintf(out, MsgCommitLine, version.Commit)
			fmt.Fprintf(out, MsgBuiltLine, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout()); err != nil {
				return fmt.Errorf(MsgErrCompletion, args[0], err)
			}
			return nil
		},
	}
}
