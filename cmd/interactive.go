package cmd

import (
	"fmt"

	"github.com/helmcode/troubleshooter/pkg/input"
	"github.com/helmcode/troubleshooter/pkg/session"
	"go.uber.org/zap"
)

// RunInteractive runs the session loop against the terminal.
func RunInteractive(o *Options) error {
	out := o.stdout()
	src := input.NewInteractive(o.stdin(), out)

	rounds, err := session.New(src, out, o.logger()).Run()
	if err != nil {
		printError(o.stderr(), "Session aborted")
		return fmt.Errorf("interactive session: %w", err)
	}

	escalated := 0
	for _, r := range rounds {
		if r.Transcript.Escalated() {
			escalated++
		}
	}
	o.logger().Debug("session finished",
		zap.Int("rounds", len(rounds)),
		zap.Int("escalated", escalated))
	return nil
}
