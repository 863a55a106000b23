package persistmake

import (
	"fmt"
	"os"

	"github.com/arthur-debert/persist-make/internal/version"
	"github.com/arthur-debert/persist-make/pkg/config"
	"github.com/arthur-debert/persist-make/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newMakeCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:     "make SOURCE_ROOT TARGET_ROOT PATH [PATH...]",
		Short:   MsgMakeShort,
		Long:    MsgMakeLong,
		Example: MsgMakeExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.Make(core.MakeOptions{
				SourceRoot: args[0],
				TargetRoot: args[1],
				Paths:      args[2:],
			})
			if err != nil {
				return err
			}
			if list {
				printResult(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, MsgFlagList)

	return cmd
}

func newApplyCmd(state *rootState) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.Apply(state.cfg, nil)
			if err != nil {
				return err
			}
			if list {
				printResult(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, MsgFlagList)
	cmd.Flags().StringVar(&state.sourceRoot, "source", "", MsgFlagSource)
	cmd.Flags().StringVar(&state.targetRoot, "target", "", MsgFlagTarget)
	_ = cmd.MarkFlagDirname("source")
	_ = cmd.MarkFlagDirname("target")

	return cmd
}

func newConfigCmd(state *rootState) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := config.Defaults()
			if !defaults {
				var err error
				if out, err = state.cfg.Dump(); err != nil {
					return err
				}
			}
			_, err := cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [DIR]",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrGenMan, err)
			}
			header := &doc.GenManHeader{
				Title:   "PERSIST-MAKE",
				Section: "1",
				Source:  "persist-make " + version.Version,
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrGenMan, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}
