package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Pascal736/karamapper/internal/app"
	"github.com/Pascal736/karamapper/internal/install"
)

func newCreateCmd(st *state) *cobra.Command {
	var (
		method  string
		target  string
		profile string
	)

	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Compile a layer file into a Karabiner configuration",
		Long: `Compile a layer file and write the result.

Methods:
  stdout   print the generated karabiner.json
  replace  overwrite the target file
  extend   merge rules and simple modifications into the target file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := st.settings
			if cmd.Flags().Changed("method") {
				s.Output.Method = method
			}
			if cmd.Flags().Changed("target") {
				s.Output.Target = target
			}
			if cmd.Flags().Changed("profile") {
				s.Profile.Name = profile
			}

			m, err := install.ParseMethod(s.Output.Method)
			if err != nil {
				return err
			}

			_, err = app.Create(app.Options{
				InputPath: args[0],
				Compile:   s.CompileOptions(),
				Method:    m,
				Target:    s.Output.Target,
				Stdout:    cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			if m.WritesFile() {
				msg := fmt.Sprintf("Wrote profile %q to %s", s.Profile.Name, s.Output.Target)
				fmt.Fprintln(cmd.ErrOrStderr(), pterm.Success.Sprint(msg))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "stdout", "output method: stdout, replace, extend")
	cmd.Flags().StringVar(&target, "target", "", "karabiner.json to write (default ~/.config/karabiner/karabiner.json)")
	cmd.Flags().StringVar(&profile, "profile", "", "name of the generated profile")

	return cmd
}
