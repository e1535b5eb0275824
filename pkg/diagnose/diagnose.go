// Package diagnose walks the per-category troubleshooting trees.
//
// Each tree is a fixed sequence of questions put to an input.Source; the
// answers pick the branch and every branch appends ACTION or ESCALATE
// entries to a transcript. Trees never loop, so every answer sequence ends.
package diagnose

import (
	"fmt"

	"github.com/helmcode/troubleshooter/pkg/input"
	"github.com/helmcode/troubleshooter/pkg/model"
	"github.com/helmcode/troubleshooter/pkg/router"
)

// DefaultEscalation is used when a tree escalates without a reason.
const DefaultEscalation = "Unable to resolve; provide device model/OS, recent changes, error text, and escalate to human support."

const (
	describePrompt  = "Please briefly describe your issue (include device model/OS and recent changes):"
	noCategoryMatch = "No matching rule category for the description provided."
)

// Observer is told about a round as it progresses, for live display.
type Observer interface {
	CategoryDetected(c model.Category)
	Emitted(e model.Entry)
}

type nopObserver struct{}

func (nopObserver) CategoryDetected(model.Category) {}
func (nopObserver) Emitted(model.Entry)             {}

// Diagnose runs the tree for c against src and returns the transcript.
// UNKNOWN asks for a new description and re-routes it once.
//
// If src fails, no further questions are asked and nothing more is
// emitted; the transcript so far is returned with the error.
// Diagnose panics if c is not a known category.
func Diagnose(c model.Category, src input.Source, obs Observer) (*model.Transcript, error) {
	if obs == nil {
		obs = nopObserver{}
	}
	r := &run{
		src: src,
		obs: obs,
		tr:  &model.Transcript{Category: c},
	}
	r.dispatch(c)
	return r.tr, r.err
}

type run struct {
	src input.Source
	obs Observer
	tr  *model.Transcript
	err error
}

func (r *run) dispatch(c model.Category) {
	r.tr.Category = c
	r.obs.CategoryDetected(c)

	switch c {
	case model.CategoryPower:
		power(r)
	case model.CategoryBoot:
		boot(r)
	case model.CategoryInternet:
		internet(r)
	case model.CategoryDisplay:
		display(r)
	case model.CategoryPerformance:
		performance(r)
	case model.CategoryAudio:
		audio(r)
	case model.CategorySoftware:
		software(r)
	case model.CategoryUnknown:
		unknown(r)
	default:
		panic(fmt.Sprintf("diagnose: invalid category %q", string(c)))
	}
}

// unknown gives the user one more chance to describe the problem.
func unknown(r *run) {
	desc := r.ask(describePrompt)
	if r.err != nil {
		return
	}
	c := router.Route(desc)
	if c == model.CategoryUnknown {
		r.escalate(noCategoryMatch)
		return
	}
	r.dispatch(c)
}

func (r *run) yes(prompt string) bool {
	if r.err != nil {
		return false
	}
	ok, err := input.AskYesNo(r.src, prompt)
	if err != nil {
		r.err = err
		return false
	}
	return ok
}

func (r *run) ask(prompt string) string {
	if r.err != nil {
		return ""
	}
	ans, err := input.Ask(r.src, prompt)
	if err != nil {
		r.err = err
		return ""
	}
	return ans
}

func (r *run) action(msg string) {
	r.emit(model.Entry{Kind: model.KindAction, Message: msg})
}

func (r *run) escalate(reason string) {
	if reason == "" {
		reason = DefaultEscalation
	}
	r.emit(model.Entry{Kind: model.KindEscalate, Message: reason})
}

func (r *run) emit(e model.Entry) {
	if r.err != nil {
		return
	}
	r.tr.Append(e)
	r.obs.Emitted(e)
}
