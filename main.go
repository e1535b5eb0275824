package main

import (
	"fmt"
	"os"

	"github.com/helmcode/troubleshooter/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}

	rootCmd := &cobra.Command{
		Use:   "troubleshooter",
		Short: "Rule-based tech support troubleshooter",
		Long: `troubleshooter asks for a one-sentence description of a computer problem,
routes it to a category by keyword, and walks a yes/no decision tree that
recommends actions or escalates to human support.

Examples:
  # Start an interactive session (type "exit" to leave)
  troubleshooter

  # Replay the built-in scripted scenarios
  troubleshooter --test

  # Same, as JSON
  troubleshooter --test -o json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return opts.Setup(c)
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			opts.Sync()
		},
		RunE: func(c *cobra.Command, args []string) error {
			if opts.Test {
				return cmd.RunScripted(opts)
			}
			return cmd.RunInteractive(opts)
		},
	}
	opts.AddFlags(rootCmd)

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewRouteCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "troubleshooter version %s\n", version)
		},
	}
}
