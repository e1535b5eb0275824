package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/helmcode/troubleshooter/pkg/diagnose"
	"github.com/helmcode/troubleshooter/pkg/formatter"
	"github.com/helmcode/troubleshooter/pkg/input"
	"github.com/helmcode/troubleshooter/pkg/model"
	"github.com/helmcode/troubleshooter/pkg/router"
	"go.uber.org/zap"
)

const (
	Banner = "=== Tech Support Troubleshooter (Rule-Based) ==="

	describePrompt = "Describe your issue in one sentence:"
	againPrompt    = "\nWould you like to troubleshoot another issue?"
	noMatchNotice  = "I couldn't detect a category from that description."
	goodbye        = "Goodbye!"
)

// Round is one description and the transcript it produced.
type Round struct {
	ID          string            `json:"id" yaml:"id"`
	Description string            `json:"description" yaml:"description"`
	Routed      model.Category    `json:"routed" yaml:"routed"`
	Transcript  *model.Transcript `json:"transcript" yaml:"transcript"`
}

// Controller runs troubleshooting rounds until the user declines another.
type Controller struct {
	src    input.Source
	live   *formatter.Live
	logger *zap.Logger
}

func New(src input.Source, out io.Writer, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		src:    src,
		live:   formatter.NewLive(out),
		logger: logger,
	}
}

// Run loops until the user answers no to another round, types exit or quit
// at the description prompt, or input reaches EOF. The rounds completed so
// far are returned even on error.
func (c *Controller) Run() ([]Round, error) {
	c.live.Banner(Banner)

	var rounds []Round
	for {
		desc, err := input.Ask(c.src, describePrompt)
		if err != nil {
			return rounds, c.finish(err, "read description")
		}
		if IsExit(desc) {
			c.logger.Debug("exit requested", zap.Int("rounds", len(rounds)))
			return rounds, c.finish(nil, "")
		}

		round, err := c.round(desc)
		rounds = append(rounds, round)
		if err != nil {
			return rounds, c.finish(err, "diagnose")
		}

		again, err := input.AskYesNo(c.src, againPrompt)
		if err != nil {
			return rounds, c.finish(err, "read answer")
		}
		if !again {
			return rounds, c.finish(nil, "")
		}
	}
}

func (c *Controller) round(desc string) (Round, error) {
	id := uuid.NewString()
	category := router.Route(desc)
	log := c.logger.With(zap.String("round", id))
	log.Debug("routed description", zap.String("category", category.String()))

	if category == model.CategoryUnknown {
		c.live.Notice(noMatchNotice)
	}

	tr, err := diagnose.Diagnose(category, c.src, c.live)
	tr.ID = id
	log.Debug("round finished",
		zap.String("category", tr.Category.String()),
		zap.Int("entries", len(tr.Entries)),
		zap.Bool("escalated", tr.Escalated()))

	return Round{ID: id, Description: desc, Routed: category, Transcript: tr}, err
}

// finish says goodbye unless err is a real failure. EOF counts as a normal
// end of session.
func (c *Controller) finish(err error, op string) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.live.Notice(goodbye)
	return nil
}

// IsExit reports whether a description is a request to leave.
func IsExit(desc string) bool {
	switch strings.ToLower(strings.TrimSpace(desc)) {
	case "exit", "quit":
		return true
	}
	return false
}
