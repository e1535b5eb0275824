package input

import (
	"strings"
)

// Source supplies the answer to a prompt. Interactive sources block until
// the user answers; scripted sources replay canned answers.
type Source interface {
	Ask(prompt string) (string, error)
}

// DefaultAnswer is returned by a Scripted source once its answers run out.
const DefaultAnswer = "n"

var affirmative = map[string]bool{
	"y":    true,
	"yes":  true,
	"sure": true,
	"true": true,
	"1":    true,
}

// YesNo reports whether answer is affirmative. Case and surrounding
// whitespace are ignored; anything outside the affirmative set is false.
func YesNo(answer string) bool {
	return affirmative[strings.ToLower(strings.TrimSpace(answer))]
}

// Ask asks a free-form question and trims the answer.
func Ask(src Source, prompt string) (string, error) {
	ans, err := src.Ask(prompt + " ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(ans), nil
}

// AskYesNo asks a yes/no question.
func AskYesNo(src Source, prompt string) (bool, error) {
	ans, err := src.Ask(prompt + " (y/n) ")
	if err != nil {
		return false, err
	}
	return YesNo(ans), nil
}
