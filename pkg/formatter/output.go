package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/troubleshooter/pkg/harness"
	"github.com/helmcode/troubleshooter/pkg/model"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Display*.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// DisplayResults renders harness results in the given format.
func DisplayResults(w io.Writer, results []harness.Result, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, results)
	case FormatYAML:
		return displayYAML(w, results)
	case FormatHuman:
		fallthrough
	default:
		displayHumanResults(w, results)
	}
	return nil
}

// DisplayRoute renders the category picked for a description.
func DisplayRoute(w io.Writer, text string, category model.Category, format string) error {
	out := struct {
		Text     string         `json:"text" yaml:"text"`
		Category model.Category `json:"category" yaml:"category"`
	}{text, category}

	switch format {
	case FormatJSON:
		return displayJSON(w, out)
	case FormatYAML:
		return displayYAML(w, out)
	default:
		fmt.Fprintf(w, "Category detected: %s\n", categoryColor(category).Sprint(category))
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHumanResults(w io.Writer, results []harness.Result) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	escalated := 0
	for i, res := range results {
		fmt.Fprintln(w)
		header.Fprintf(w, "--- TEST %d: %s ---\n", i+1, res.Scenario.Name)
		for _, ex := range res.Exchanges {
			dim.Fprintln(w, ex.String())
		}
		fmt.Fprintf(w, "\nCategory detected: %s\n", categoryColor(res.Transcript.Category).Sprint(res.Transcript.Category))
		if len(res.Transcript.Entries) == 0 {
			dim.Fprintln(w, "(no actions)")
		}
		for _, e := range res.Transcript.Entries {
			DisplayEntry(w, e)
		}
		if res.Transcript.Escalated() {
			escalated++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "%d scenarios, %d escalated\n", len(results), escalated)
	fmt.Fprintf(w, "%s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// DisplayEntry prints one transcript line as "- KIND: message".
func DisplayEntry(w io.Writer, e model.Entry) {
	c := getKindColor(e.Kind)
	fmt.Fprintf(w, "- %s %s\n", c.Sprintf("%s:", e.Kind), e.Message)
}

func getKindColor(kind model.Kind) *color.Color {
	switch kind {
	case model.KindEscalate:
		return color.New(color.FgRed, color.Bold)
	case model.KindAction:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func categoryColor(c model.Category) *color.Color {
	if c == model.CategoryUnknown {
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgCyan, color.Bold)
}
