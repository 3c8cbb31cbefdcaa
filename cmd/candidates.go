package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/shrink"
	"github.com/gnolang/shrink/codec"
	"github.com/gnolang/shrink/config"
	"github.com/gnolang/shrink/formatter"
	"github.com/gnolang/shrink/seq"
)

type candidatesOptions struct {
	max    int
	pretty bool
}

func newCandidatesCmd(opts *rootOptions) *cobra.Command {
	co := &candidatesOptions{}

	cmd := &cobra.Command{
		Use:   "candidates [file]",
		Short: "Print the shrink candidates of a JSON value",
		Long: `Prints the candidates the enabled rules generate for a JSON value, in the
order the minimization loop would try them, one JSON document per line.
Example) shrink candidates --max 10 input.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return runCandidates(cmd, opts, co, path)
		},
	}

	cmd.Flags().IntVarP(&co.max, "max", "n", 100, "Maximum number of candidates to print (negative for all)")
	cmd.Flags().BoolVar(&co.pretty, "pretty", false, "Number the candidates")
	return cmd
}

func runCandidates(cmd *cobra.Command, opts *rootOptions, co *candidatesOptions, path string) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	cdc := codec.Codec{TimeLayout: cfg.TimeLayout}

	value, err := readValue(cmd.InOrStdin(), path, cdc)
	if err != nil {
		return err
	}
	s, err := cfg.Build(shrink.WithLogger(opts.logger))
	if err != nil {
		return err
	}

	candidates := seq.Take(s.Shrinks(value), co.max)
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		d, err := cdc.Encode(c)
		if err != nil {
			return err
		}
		lines = append(lines, string(d))
	}

	out := cmd.OutOrStdout()
	if co.pretty {
		fmt.Fprint(out, formatter.FormatCandidates(lines))
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
