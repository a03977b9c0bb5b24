package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lifegen/internal/core"
	"lifegen/pkg/rules"
)

func newSimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "List simulations and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.SimNames() {
				sim, err := core.Sims()[name](nil)
				if err != nil {
					return fmt.Errorf("building %s: %w", name, err)
				}
				fmt.Fprintln(out, name)
				if p, ok := sim.(core.ParametersProvider); ok {
					tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
					for _, group := range p.Parameters().Groups {
						for _, param := range group.Params {
							fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", param.Key, param.Type, param.Value, param.Label)
						}
					}
					if err := tw.Flush(); err != nil {
						sim.Close()
						return err
					}
				}
				sim.Close()
			}
			return nil
		},
	}
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List named count rules",
		Long:  "List named count rules. Any B/S rulestring such as B36/S23 is accepted wherever a rule name is.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range rules.Names() {
				r, err := rules.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%v\n", name, r)
			}
			return tw.Flush()
		},
	}
}
