package model

import (
	"fmt"
	"strings"
)

// Category identifies one of the fixed diagnostic classifications.
type Category string

const (
	CategoryPower       Category = "POWER"
	CategoryBoot        Category = "BOOT"
	CategoryInternet    Category = "INTERNET"
	CategoryDisplay     Category = "DISPLAY"
	CategoryPerformance Category = "PERFORMANCE"
	CategoryAudio       Category = "AUDIO"
	CategorySoftware    Category = "SOFTWARE"
	CategoryUnknown     Category = "UNKNOWN"
)

// Categories returns every category in declaration order, UNKNOWN last.
func Categories() []Category {
	return []Category{
		CategoryPower,
		CategoryBoot,
		CategoryInternet,
		CategoryDisplay,
		CategoryPerformance,
		CategoryAudio,
		CategorySoftware,
		CategoryUnknown,
	}
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPower, CategoryBoot, CategoryInternet, CategoryDisplay,
		CategoryPerformance, CategoryAudio, CategorySoftware, CategoryUnknown:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Kind tags a transcript line.
type Kind string

const (
	KindAction   Kind = "ACTION"
	KindEscalate Kind = "ESCALATE"
)

type Entry struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Transcript is the append-only advisory output of one diagnostic round.
type Transcript struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Category Category `json:"category" yaml:"category"`
	Entries  []Entry  `json:"entries" yaml:"entries"`
}

func (t *Transcript) Append(e Entry) {
	t.Entries = append(t.Entries, e)
}

// Lines renders every entry as "KIND: message".
func (t *Transcript) Lines() []string {
	lines := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		lines = append(lines, e.String())
	}
	return lines
}

// Escalated reports whether the transcript ends in a handoff to human support.
func (t *Transcript) Escalated() bool {
	n := len(t.Entries)
	return n > 0 && t.Entries[n-1].Kind == KindEscalate
}
