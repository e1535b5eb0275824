// Package harness replays canned answers through the decision trees so
// their branches can be pinned down as regression fixtures.
package harness

import (
	"fmt"

	"github.com/helmcode/troubleshooter/pkg/diagnose"
	"github.com/helmcode/troubleshooter/pkg/input"
	"github.com/helmcode/troubleshooter/pkg/model"
	"go.uber.org/zap"
)

// Scenario drives one category tree with a fixed list of answers.
type Scenario struct {
	Name     string         `json:"name" yaml:"name"`
	Category model.Category `json:"category" yaml:"category"`
	Answers  []string       `json:"answers" yaml:"answers"`
}

// Result is what a scenario produced.
type Result struct {
	Scenario   Scenario          `json:"scenario" yaml:"scenario"`
	Exchanges  []input.Exchange  `json:"exchanges" yaml:"exchanges"`
	Transcript *model.Transcript `json:"transcript" yaml:"transcript"`
}

// Builtin returns the scenarios run by --test.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:     "POWER (no lights, no PSU light)",
			Category: model.CategoryPower,
			Answers:  []string{"n", "n"},
		},
		{
			Name:     "INTERNET (others offline, wifi connected no web)",
			Category: model.CategoryInternet,
			Answers:  []string{"n", "y", "n", "n"},
		},
		{
			Name:     "AUDIO (wrong device then fix)",
			Category: model.CategoryAudio,
			Answers:  []string{"n"},
		},
		{
			Name:     "BOOT (safe mode works)",
			Category: model.CategoryBoot,
			Answers:  []string{"y", "n", "y"},
		},
	}
}

// Run drives the scenario's tree to completion with a fresh scripted source.
func Run(s Scenario, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !s.Category.Valid() {
		return Result{}, fmt.Errorf("scenario %q: invalid category %q", s.Name, s.Category)
	}

	src := input.NewScripted(s.Answers, logger.With(zap.String("scenario", s.Name)))
	tr, err := diagnose.Diagnose(s.Category, src, nil)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return Result{
		Scenario:   s,
		Exchanges:  src.Exchanges(),
		Transcript: tr,
	}, nil
}

// RunAll runs scenarios in order and stops at the first failure.
func RunAll(scenarios []Scenario, logger *zap.Logger) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		res, err := Run(s, logger)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
