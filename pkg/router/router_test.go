package router

import (
	"testing"

	"github.com/helmcode/troubleshooter/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		text string
		want model.Category
	}{
		{"wifi is down", model.CategoryInternet},
		{"My laptop WON'T BOOT", model.CategoryBoot},
		{"  the screen flickers  ", model.CategoryDisplay},
		{"everything is so slow", model.CategoryPerformance},
		{"no sound from speakers", model.CategoryAudio},
		{"the installer fails", model.CategorySoftware},
		{"it's dead, jim", model.CategoryPower},
		{"PC won’t turn on", model.CategoryPower},
		{"my potato exploded", model.CategoryUnknown},
		{"", model.CategoryUnknown},
		{"   ", model.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.text))
		})
	}
}

func TestRoute_EarlierCategoryWins(t *testing.T) {
	// "power" (POWER) and "boot" (BOOT)
	assert.Equal(t, model.CategoryPower, Route("power light on but no boot"))
	// "network" (INTERNET) and "slow" (PERFORMANCE)
	assert.Equal(t, model.CategoryInternet, Route("slow network"))
	// "monitor" (DISPLAY) and "app" (SOFTWARE)
	assert.Equal(t, model.CategoryDisplay, Route("app crashes on second monitor"))
}

func TestRoute_EveryKeywordRoutesToItsCategoryOrEarlier(t *testing.T) {
	rules := Table()
	for i, r := range rules {
		for _, kw := range r.Keywords {
			got := Route(kw)
			idx := indexOf(rules, got)
			require.NotEqual(t, -1, idx, "keyword %q routed to %s", kw, got)
			assert.LessOrEqual(t, idx, i, "keyword %q routed past its own category", kw)
		}
	}
}

func TestTable(t *testing.T) {
	rules := Table()
	require.Len(t, rules, 7)
	var order []model.Category
	for _, r := range rules {
		order = append(order, r.Category)
		assert.NotEqual(t, model.CategoryUnknown, r.Category)
	}
	assert.Equal(t, model.Categories()[:7], order)

	rules[0].Keywords[0] = "mutated"
	assert.Equal(t, "power", Table()[0].Keywords[0])
}

func TestParseTable_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown category": "- category: UNKNOWN\n  keywords: [x]\n",
		"bogus category":   "- category: TOASTER\n  keywords: [x]\n",
		"duplicate":        "- category: AUDIO\n  keywords: [x]\n- category: AUDIO\n  keywords: [y]\n",
		"no keywords":      "- category: AUDIO\n  keywords: []\n",
		"not yaml":         "::::",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTable([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestRouteWith_CustomOrder(t *testing.T) {
	rules, err := ParseTable([]byte("- category: SOFTWARE\n  keywords: [app]\n- category: DISPLAY\n  keywords: [monitor]\n"))
	require.NoError(t, err)
	assert.Equal(t, model.CategorySoftware, RouteWith(rules, "app crashes on second monitor"))
}

func indexOf(rules []Rule, c model.Category) int {
	for i, r := range rules {
		if r.Category == c {
			return i
		}
	}
	return -1
}
