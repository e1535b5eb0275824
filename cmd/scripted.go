package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/helmcode/troubleshooter/pkg/formatter"
	"github.com/helmcode/troubleshooter/pkg/harness"
)

// RunScripted runs the built-in harness scenarios and renders the results.
func RunScripted(o *Options) error {
	scenarios := harness.Builtin()
	human := o.Output == formatter.FormatHuman

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(o.stderr()))
	s.Suffix = fmt.Sprintf(" Running %d scripted scenarios...", len(scenarios))
	if human {
		s.Start()
	}

	results, err := harness.RunAll(scenarios, o.logger())
	s.Stop()
	if err != nil {
		return fmt.Errorf("scripted run failed: %w", err)
	}
	if human {
		printSuccess(o.stderr(), fmt.Sprintf("Ran %d scenarios", len(results)))
	}

	return formatter.DisplayResults(o.stdout(), results, o.Output)
}
