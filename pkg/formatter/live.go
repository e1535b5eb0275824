package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/helmcode/troubleshooter/pkg/model"
)

// Live prints a round to a terminal as it happens. It satisfies
// diagnose.Observer.
type Live struct {
	w io.Writer
}

func NewLive(w io.Writer) *Live {
	return &Live{w: w}
}

// CategoryDetected announces resolved categories only; an unmatched
// description is reported by the caller.
func (l *Live) CategoryDetected(c model.Category) {
	if c == model.CategoryUnknown {
		return
	}
	fmt.Fprintf(l.w, "\nCategory detected: %s\n", categoryColor(c).Sprint(c))
}

func (l *Live) Emitted(e model.Entry) {
	DisplayEntry(l.w, e)
}

// Notice prints an informational line.
func (l *Live) Notice(msg string) {
	color.New(color.FgYellow).Fprintln(l.w, msg)
}

// Banner prints a bold title line.
func (l *Live) Banner(title string) {
	color.New(color.FgCyan, color.Bold).Fprintln(l.w, title)
}
