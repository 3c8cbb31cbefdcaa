package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gnolang/shrink/config"
	"github.com/gnolang/shrink/rules"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "RULE\tDEFAULT\tENABLED")
			for _, r := range rules.All() {
				fmt.Fprintf(w, "%s\t%t\t%t\n", r.Name, rules.IsDefault(r.Name), cfg.Enabled(r.Name))
			}
			return w.Flush()
		},
	}
}
