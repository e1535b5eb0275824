package router

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/helmcode/troubleshooter/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// Rule binds a category to the keywords that select it.
type Rule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

var table = mustParseTable(keywordsYAML)

func mustParseTable(data []byte) []Rule {
	rules, err := ParseTable(data)
	if err != nil {
		panic(err)
	}
	return rules
}

// ParseTable decodes a keyword table. The order of the YAML sequence is the
// match order.
func ParseTable(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode keyword table: %w", err)
	}

	seen := make(map[model.Category]bool, len(rules))
	for i, r := range rules {
		if !r.Category.Valid() || r.Category == model.CategoryUnknown {
			return nil, fmt.Errorf("keyword table entry %d: invalid category %q", i, r.Category)
		}
		if seen[r.Category] {
			return nil, fmt.Errorf("keyword table entry %d: duplicate category %s", i, r.Category)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("keyword table entry %d: %s has no keywords", i, r.Category)
		}
		seen[r.Category] = true
	}
	return rules, nil
}

// Table returns a copy of the built-in keyword table in match order.
func Table() []Rule {
	out := make([]Rule, len(table))
	for i, r := range table {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Normalize trims and lowercases text before matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Route returns the first category whose keywords occur in text, or UNKNOWN.
func Route(text string) model.Category {
	return RouteWith(table, text)
}

// RouteWith is Route over a caller-supplied table.
func RouteWith(rules []Rule, text string) model.Category {
	normalized := Normalize(text)
	if normalized == "" {
		return model.CategoryUnknown
	}
	for _, r := range rules {
		if containsAny(normalized, r.Keywords) {
			return r.Category
		}
	}
	return model.CategoryUnknown
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
