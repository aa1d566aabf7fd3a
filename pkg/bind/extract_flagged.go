// extract_flagged.go - the Flagged Extractor.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import (
	"fmt"

	"github.com/go-hest/hest/pkg/arg"
)

// ErrBareVariadicStop is returned when "--" appears outside of a
// flagged variadic option's parameter run.
type ErrBareVariadicStop struct{}

func (ErrBareVariadicStop) Error() string {
	return `"--" may only appear inside a variadic option's argument list`
}

// ErrTooFewParameters is returned when a flag's trailing run collects
// fewer tokens than the option's declared minimum.
type ErrTooFewParameters struct {
	Name     string
	Got, Min int
}

func (e ErrTooFewParameters) Error() string {
	return fmt.Sprintf("option %q requires at least %d argument(s), got %d", e.Name, e.Min, e.Got)
}

// ErrOptionNotInvoked is returned after the Flagged Extractor pass
// when a required flagged option (kind != 1, no default) was never
// matched.
type ErrOptionNotInvoked struct{ Name string }

func (e ErrOptionNotInvoked) Error() string {
	return fmt.Sprintf("option %q is required and was not given", e.Name)
}

// ExtractFlagged walks raw left to right, moving each matched flag's
// trailing parameter run into that option's private token vector. raw
// is mutated in place; what remains after a successful pass is the
// leftover tokens the Unflagged Extractor must account for.
func ExtractFlagged(options []*Option, raw *arg.Vec) error {
	i := 0
	for i < raw.Len() {
		tok := raw.At(i)
		matched := MatchFlag(options, tok.String())
		switch {
		case matched == nil:
			i++
			continue
		case matched == VariadicStop:
			return ErrBareVariadicStop{}
		}
		opt := matched
		raw.RemoveAt(i)

		limit := opt.Max
		if limit == Unbounded {
			limit = raw.Len() - i
			if limit < 0 {
				limit = 0
			}
		}

		opt.Tokens().Clear()
		count := 0
		stoppedOnDoubleDash := false
		for count < limit && i < raw.Len() {
			next := raw.At(i)
			if opt.Kind == KindVariadic && next.String() == "--" {
				stoppedOnDoubleDash = true
				break
			}
			if m := MatchFlag(options, next.String()); m != nil && m != VariadicStop {
				break
			}
			opt.Tokens().AppendMove(raw.RemoveAt(i))
			count++
		}

		if count < opt.Min {
			return ErrTooFewParameters{Name: opt.Name, Got: count, Min: opt.Min}
		}
		opt.MarkSeen(tok.Source())

		if stoppedOnDoubleDash {
			raw.RemoveAt(i)
		}
		// Do not advance i: the next iteration examines the
		// shifted-in token at the same position.
	}

	for _, opt := range options {
		if opt.Unflagged || opt.Kind == KindFlag {
			continue
		}
		// A non-empty Default means the Default Processor (§4.6) will
		// still fill this option in; only an unseen option with no
		// default to fall back on is an error here.
		if !opt.Seen() && opt.Default == "" {
			return ErrOptionNotInvoked{Name: opt.Name}
		}
	}
	return nil
}
