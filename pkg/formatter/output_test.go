package formatter

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/helmcode/troubleshooter/pkg/harness"
	"github.com/helmcode/troubleshooter/pkg/input"
	"github.com/helmcode/troubleshooter/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func sampleResults() []harness.Result {
	return []harness.Result{
		{
			Scenario:  harness.Scenario{Name: "AUDIO (wrong device)", Category: model.CategoryAudio, Answers: []string{"n"}},
			Exchanges: []input.Exchange{{Prompt: "Is the correct audio output device selected? (y/n) ", Answer: "n"}},
			Transcript: &model.Transcript{
				Category: model.CategoryAudio,
				Entries:  []model.Entry{{Kind: model.KindAction, Message: "Switch outputs."}},
			},
		},
		{
			Scenario: harness.Scenario{Name: "UNKNOWN", Category: model.CategoryUnknown},
			Exchanges: []input.Exchange{
				{Prompt: "Describe: ", Answer: "n", Defaulted: true},
			},
			Transcript: &model.Transcript{
				Category: model.CategoryUnknown,
				Entries:  []model.Entry{{Kind: model.KindEscalate, Message: "No match."}},
			},
		},
		{
			Scenario:   harness.Scenario{Name: "SOFTWARE (nothing)", Category: model.CategorySoftware},
			Transcript: &model.Transcript{Category: model.CategorySoftware},
		},
	}
}

func TestDisplayResults_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleResults(), FormatHuman))

	out := buf.String()
	assert.Contains(t, out, "--- TEST 1: AUDIO (wrong device) ---")
	assert.Contains(t, out, "Is the correct audio output device selected? (y/n) n\n")
	assert.Contains(t, out, "Describe: [auto-default: n]\n")
	assert.Contains(t, out, "Category detected: UNKNOWN")
	assert.Contains(t, out, "- ACTION: Switch outputs.\n")
	assert.Contains(t, out, "- ESCALATE: No match.\n")
	assert.Contains(t, out, "(no actions)")
	assert.Contains(t, out, "3 scenarios, 1 escalated")
}

func TestDisplayResults_UnknownFormatFallsBackToHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleResults(), "table"))
	assert.Contains(t, buf.String(), "--- TEST 2: UNKNOWN ---")
}

func TestDisplayResults_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleResults(), FormatYAML))

	var got []harness.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.True(t, got[1].Exchanges[0].Defaulted)
	assert.Equal(t, model.KindEscalate, got[1].Transcript.Entries[0].Kind)
}

func TestDisplayRoute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayRoute(&buf, "wifi is down", model.CategoryInternet, FormatJSON))
	assert.JSONEq(t, `{"text":"wifi is down","category":"INTERNET"}`, buf.String())
}

func TestLive(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf)
	l.Banner("== title ==")
	l.CategoryDetected(model.CategoryPower)
	l.Emitted(model.Entry{Kind: model.KindAction, Message: "Check the cable."})
	l.Emitted(model.Entry{Kind: model.KindEscalate, Message: "Call support."})
	l.CategoryDetected(model.CategoryUnknown)
	l.Notice("Goodbye!")

	assert.Equal(t, "== title ==\n\nCategory detected: POWER\n- ACTION: Check the cable.\n- ESCALATE: Call support.\nGoodbye!\n", buf.String())
}
