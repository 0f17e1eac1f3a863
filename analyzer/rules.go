package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

func newRulesCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules and their effective severities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.cfg.AnalysisConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sevColor := map[validator.Severity]*color.Color{
				validator.SeverityError:   color.New(color.FgRed),
				validator.SeverityWarning: color.New(color.FgYellow),
				validator.SeverityOff:     color.New(color.Faint),
			}
			useColor := a.useColor(out)
			for _, c := range sevColor {
				if useColor {
					c.EnableColor()
				} else {
					c.DisableColor()
				}
			}

			width := len("RULE")
			for _, r := range validator.Rules {
				width = max(width, len(r.ID))
			}

			fmt.Fprintf(out, "%-*s  %-8s  %s\n", width, "RULE", "SEVERITY", "DESCRIPTION")
			for _, r := range validator.Rules {
				sev := cfg.Severity(r.ID)
				fmt.Fprintf(out, "%-*s  %s  %s\n", width, r.ID, sevColor[sev].Sprintf("%-8s", sev), r.Description)
				if verbose {
					kinds := make([]string, 0, len(r.Kinds))
					for _, k := range r.Kinds {
						kinds = append(kinds, string(k))
					}
					fmt.Fprintf(out, "%-*s  %-8s  messages: %s\n", width, "", "", strings.Join(kinds, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "messages", false, "also list the message ids each rule can report")
	return cmd
}
