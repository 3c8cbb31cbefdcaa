package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

// NewRootCmd builds the shrink command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "shrink",
		Short:         "shrink - minimize failing inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", ".shrink.yaml", "Path to the configuration file")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "Overall timeout of a command")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(opts),
		newRunCmd(opts),
		newCandidatesCmd(opts),
		newRulesCmd(opts),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (o *rootOptions) context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if o.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, o.timeout)
}
