// Package commands implements the karamapper command line.
package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/Pascal736/karamapper/internal/app"
	"github.com/Pascal736/karamapper/internal/logger"
	"github.com/Pascal736/karamapper/internal/settings"
)

// state is shared by the subcommands of one invocation.
type state struct {
	settingsPath string
	settings     *settings.Settings
}

// NewRootCmd returns the karamapper command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "karamapper",
		Short: "Compile layered key bindings into Karabiner-Elements rules",
		Long: `karamapper turns a TOML description of simple remaps, named layers and
per-layer bindings into Karabiner-Elements complex modifications.

Examples:
  karamapper create layers.toml              # print the generated configuration
  karamapper create layers.toml -m extend    # merge into ~/.config/karabiner/karabiner.json
  karamapper inspect layers.toml             # list layers and bindings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.settingsPath, "settings", "", "settings file (default ~/.config/karamapper/settings.toml)")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newCreateCmd(st))
	root.AddCommand(newInspectCmd(st))
	root.AddCommand(newVersionCmd())

	return root
}

// init loads settings, binds the global flags over them and starts the logger.
func (st *state) init(cmd *cobra.Command) error {
	v, err := settings.New(st.settingsPath)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(settings.KeyLogJSON, flags.Lookup("log-json")); err != nil {
		return errors.Wrap(err, "binding --log-json")
	}
	if err := v.BindPFlag(settings.KeyLogLevel, flags.Lookup("log-level")); err != nil {
		return errors.Wrap(err, "binding --log-level")
	}

	s, err := settings.Unmarshal(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(s.Log.JSON, s.Log.Level); err != nil {
		return err
	}

	st.settings = s
	logger.Logger.Debugw("settings loaded", "path", v.ConfigFileUsed())
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		logger.Logger.Debugw("command failed", "stage", app.StageOf(err), "error", err)
	}
	logger.Sync()
	if err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
	switch stage := app.StageOf(err); stage {
	case app.StageLoad, app.StageBuild:
		fmt.Fprintf(w, "Hint: %s failed, nothing was written\n", stage)
	}
}
