package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/helmcode/troubleshooter/pkg/config"
	"github.com/helmcode/troubleshooter/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options carries the root flags and the I/O every mode runs against.
type Options struct {
	Test    bool
	Output  string
	Verbose bool
	NoColor bool

	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *zap.Logger
}

// AddFlags registers the root flags on cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Test, "test", false, "Run the built-in scripted scenarios and exit")
	cmd.PersistentFlags().StringVarP(&o.Output, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "Disable colored output")
}

// Setup merges environment configuration under any flags set explicitly,
// wires I/O from cmd and builds the logger.
func (o *Options) Setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = o.Output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.Output = cfg.Output
	if cfg.NoColor {
		o.NoColor = true
	}
	if o.NoColor {
		color.NoColor = true
	}

	o.In = cmd.InOrStdin()
	o.Out = cmd.OutOrStdout()
	o.Err = cmd.ErrOrStderr()

	logger, err := logging.New(cfg.LogLevel, o.Verbose)
	if err != nil {
		return err
	}
	o.Logger = logger
	return nil
}

// Sync flushes the logger.
func (o *Options) Sync() {
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) stderr() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}
	return o.Err
}

func (o *Options) stdin() io.Reader {
	if o.In == nil {
		return os.Stdin
	}
	return o.In
}
