package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Interactive reads answers line by line from a terminal.
type Interactive struct {
	reader *bufio.Reader
	out    io.Writer
	prompt *color.Color
}

func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		reader: bufio.NewReader(in),
		out:    out,
		prompt: color.New(color.FgCyan),
	}
}

// Ask writes prompt and blocks for one line. It returns io.EOF once the
// input is closed and nothing more was typed.
func (i *Interactive) Ask(prompt string) (string, error) {
	if _, err := i.prompt.Fprint(i.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := i.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(i.out)
			return "", io.EOF
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
