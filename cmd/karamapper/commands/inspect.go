package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Pascal736/karamapper/internal/app"
	"github.com/Pascal736/karamapper/internal/compiler"
	"github.com/Pascal736/karamapper/internal/config"
)

func newInspectCmd(_ *state) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the layers and bindings of a layer file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(nil, args[0])
			if err != nil {
				return err
			}
			return renderConfiguration(cmd.OutOrStdout(), cfg)
		},
	}
}

func renderConfiguration(w io.Writer, cfg *config.Configuration) error {
	sections := []struct {
		title string
		data  pterm.TableData
	}{
		{"Simple remaps", remapTable(cfg)},
		{"Layers", layerTable(cfg)},
		{"Bindings", bindingTable(cfg)},
	}

	for _, s := range sections {
		fmt.Fprintln(w, pterm.LightCyan(s.title))
		if len(s.data) == 1 {
			fmt.Fprintln(w, pterm.Gray("  none"))
			fmt.Fprintln(w)
			continue
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(s.data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		fmt.Fprintln(w)
	}
	return nil
}

func remapTable(cfg *config.Configuration) pterm.TableData {
	data := pterm.TableData{{"From", "To"}}
	for _, r := range cfg.SimpleRemaps {
		data = append(data, []string{r.From.String(), r.To.String()})
	}
	return data
}

func layerTable(cfg *config.Configuration) pterm.TableData {
	data := pterm.TableData{{"Layer", "Activation", "Bindings"}}
	for _, l := range cfg.Layers {
		data = append(data, []string{
			l.Name,
			l.Keys.String(),
			fmt.Sprint(len(cfg.AssignmentsFor(l.Name))),
		})
	}
	return data
}

func bindingTable(cfg *config.Configuration) pterm.TableData {
	layers := cfg.NonBaseLayers()
	data := pterm.TableData{{"Layer", "Key", "Class", "Action", "Next layer", "Description"}}
	for _, a := range cfg.Assignments {
		next := a.NextLayer
		if !a.HasNextLayer() {
			next = "-"
		}
		data = append(data, []string{
			a.Layer.Name,
			a.Key.String(),
			a.Key.Category(),
			a.Action.Kind().String(),
			next,
			compiler.AssignmentRule(a, layers).Description,
		})
	}
	return data
}
