package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/shrink"
	"github.com/gnolang/shrink/codec"
	"github.com/gnolang/shrink/config"
	"github.com/gnolang/shrink/formatter"
)

var (
	ErrNotInteresting = errors.New("input does not make the command fail")
	ErrNoCommand      = errors.New("missing predicate command after --")
)

type runOptions struct {
	limit      int
	noProgress bool
	showSteps  bool
	raw        bool
	output     string
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [file] -- command [args...]",
		Short: "Shrink a JSON value while a command keeps failing on it",
		Long: `Runs the command once per candidate with the candidate as JSON on stdin.
A candidate is kept when the command exits with a non-zero status.
Example) shrink run input.json -- ./check.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash < 0 || dash >= len(args) {
				return ErrNoCommand
			}
			if dash > 1 {
				return fmt.Errorf("expected at most one input file, got %d", dash)
			}
			var path string
			if dash == 1 {
				path = args[0]
			}
			return runShrink(cmd, opts, ro, path, args[dash:])
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&ro.limit, "limit", "l", shrink.Unlimited, "Maximum number of accepted shrink steps (overrides the config)")
	flags.BoolVar(&ro.noProgress, "no-progress", false, "Do not display the progress bar")
	flags.BoolVar(&ro.showSteps, "steps", false, "List every accepted step")
	flags.BoolVar(&ro.raw, "raw", false, "Print only the minimal value as JSON")
	flags.StringVarP(&ro.output, "output", "o", "", "Also write the minimal value to this file")
	return cmd
}

func runShrink(cmd *cobra.Command, opts *rootOptions, ro *runOptions, path string, command []string) error {
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

	ctx, cancel := opts.context(cmd.Context())
	defer cancel()

	pred := &commandPredicate{
		name:    command[0],
		args:    command[1:],
		timeout: cfg.Timeout,
		codec:   cdc,
		logger:  opts.logger,
	}

	start := time.Now()
	interesting, err := pred.Interesting(ctx, value)
	if err != nil {
		return err
	}
	if !interesting {
		return fmt.Errorf("%w: %s", ErrNotInteresting, command[0])
	}

	limit := cfg.Limit
	if cmd.Flags().Changed("limit") {
		limit = ro.limit
	}

	bar := newProgress(cmd.ErrOrStderr(), limit, !ro.noProgress && !ro.raw)
	var steps []formatter.StepLine
	res, runErr := s.ShrinkContext(ctx, value, pred.Interesting,
		shrink.WithLimit(limit),
		shrink.WithObserver(func(st shrink.Step) {
			_ = bar.Add(1)
			if !ro.showSteps {
				return
			}
			d, err := cdc.Encode(st.Value)
			if err != nil {
				return
			}
			steps = append(steps, formatter.StepLine{Iteration: st.Iteration, Rule: st.Rule, Value: string(d)})
		}),
	)
	_ = bar.Finish()
	if runErr != nil {
		opts.logger.Error("Shrinking stopped early",
			zap.Int("iterations", res.Iterations),
			zap.Error(runErr),
		)
	}

	minimal, err := cdc.Encode(res.Data)
	if err != nil {
		return err
	}
	if ro.output != "" {
		if err := os.WriteFile(ro.output, minimal, 0o644); err != nil {
			return fmt.Errorf("error writing output %s: %w", ro.output, err)
		}
	}

	out := cmd.OutOrStdout()
	if ro.raw {
		fmt.Fprintln(out, string(minimal))
		return runErr
	}

	original, err := cdc.Encode(value)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.GenerateReport(formatter.Report{
		Source:     displayName(path),
		Original:   string(original),
		Minimal:    string(minimal),
		Iterations: res.Iterations,
		Runs:       pred.runs,
		Elapsed:    time.Since(start),
		Steps:      steps,
	}))
	return runErr
}

type progress interface {
	Add(n int) error
	Finish() error
}

type noProgress struct{}

func (noProgress) Add(int) error { return nil }
func (noProgress) Finish() error { return nil }

func newProgress(w io.Writer, limit int, enabled bool) progress {
	if !enabled {
		return noProgress{}
	}
	return progressbar.NewOptions(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("shrinking"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
