package input

import (
	"fmt"

	"go.uber.org/zap"
)

// Exchange records one prompt and the answer a Scripted source gave.
type Exchange struct {
	Prompt    string `json:"prompt" yaml:"prompt"`
	Answer    string `json:"answer" yaml:"answer"`
	Defaulted bool   `json:"defaulted,omitempty" yaml:"defaulted,omitempty"`
}

func (e Exchange) String() string {
	if e.Defaulted {
		return fmt.Sprintf("%s[auto-default: %s]", e.Prompt, e.Answer)
	}
	return e.Prompt + e.Answer
}

// Scripted replays a fixed list of answers in order. Once they are used up
// every further call returns DefaultAnswer; it never fails and never blocks.
type Scripted struct {
	answers   []string
	cursor    int
	exchanges []Exchange
	logger    *zap.Logger
}

func NewScripted(answers []string, logger *zap.Logger) *Scripted {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scripted{
		answers: append([]string(nil), answers...),
		logger:  logger,
	}
}

func (s *Scripted) Ask(prompt string) (string, error) {
	if s.Exhausted() {
		s.logger.Info("scripted input exhausted, using default",
			zap.String("prompt", prompt),
			zap.String("default", DefaultAnswer))
		s.exchanges = append(s.exchanges, Exchange{Prompt: prompt, Answer: DefaultAnswer, Defaulted: true})
		return DefaultAnswer, nil
	}

	ans := s.answers[s.cursor]
	s.cursor++
	s.logger.Debug("scripted answer",
		zap.String("prompt", prompt),
		zap.String("answer", ans),
		zap.Int("cursor", s.cursor))
	s.exchanges = append(s.exchanges, Exchange{Prompt: prompt, Answer: ans})
	return ans, nil
}

// Exhausted reports whether every canned answer has been consumed.
func (s *Scripted) Exhausted() bool {
	return s.cursor >= len(s.answers)
}

// Remaining is the number of canned answers not yet consumed.
func (s *Scripted) Remaining() int {
	return len(s.answers) - s.cursor
}

// Exchanges returns the prompts asked so far with their answers.
func (s *Scripted) Exchanges() []Exchange {
	return append([]Exchange(nil), s.exchanges...)
}
