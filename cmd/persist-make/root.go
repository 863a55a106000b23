package persistmake

import (
	"github.com/arthur-debert/persist-make/internal/version"
	"github.com/arthur-debert/persist-make/pkg/config"
	"github.com/arthur-debert/persist-make/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootState is shared by the root command and its subcommands
type rootState struct {
	verbosity  int
	configFile string

	// Set by apply's flags before the config is loaded
	sourceRoot string
	targetRoot string

	cfg *config.Config
}

// overrides turns root flags into config keys
func (s *rootState) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	if s.sourceRoot != "" {
		o["roots.source"] = s.sourceRoot
	}
	if s.targetRoot != "" {
		o["roots.target"] = s.targetRoot
	}
	return o
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:     "persist-make",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: state.configFile,
				Overrides:  state.overrides(),
			})
			if err != nil {
				return err
			}
			state.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: max(state.verbosity, cfg.Logging.Verbosity),
				File:      cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.PersistentFlags().CountVarP(&state.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&state.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml", "yaml", "yml")

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: MsgGroupCore},
		&cobra.Group{ID: "misc", Title: MsgGroupMisc},
	)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newMakeCmd())
	rootCmd.AddCommand(newApplyCmd(state))
	rootCmd.AddCommand(newConfigCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
