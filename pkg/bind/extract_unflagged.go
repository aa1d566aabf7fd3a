// extract_unflagged.go - the Unflagged Extractor.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import (
	"fmt"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/kballard/go-shellquote"
)

// ErrUnexpectedToken is returned when tokens remain after every
// unflagged option has claimed its share. Surplus holds every leftover
// token; when there is more than one, Error quotes them as a single
// shell-style command line so a caller can see the whole surplus run
// rather than just its first token.
type ErrUnexpectedToken struct {
	Token   string
	Surplus []string
}

func (e ErrUnexpectedToken) Error() string {
	if len(e.Surplus) <= 1 {
		return fmt.Sprintf("unexpected argument %q", e.Token)
	}
	return fmt.Sprintf("unexpected argument(s): %s", shellquote.Join(e.Surplus...))
}

// unflaggedOptions returns the unflagged subsequence of options, in
// registration order, along with the index of the single variadic one
// (-1 if none).
func unflaggedOptions(options []*Option) (u []*Option, variadicIdx int) {
	variadicIdx = -1
	for _, opt := range options {
		if !opt.Unflagged {
			continue
		}
		if opt.Kind == KindVariadic {
			variadicIdx = len(u)
		}
		u = append(u, opt)
	}
	return u, variadicIdx
}

// ExtractUnflagged distributes whatever tokens remain in raw (after
// [ExtractFlagged] has run) across the registry's unflagged options.
// raw is consumed; any token left over after every option has claimed
// its share is an error.
func ExtractUnflagged(options []*Option, raw *arg.Vec) error {
	u, variadicIdx := unflaggedOptions(options)
	if len(u) == 0 {
		if raw.Len() > 0 {
			return ErrUnexpectedToken{Token: raw.At(0).String(), Surplus: raw.Strings()}
		}
		return nil
	}

	before := u
	after := []*Option(nil)
	if variadicIdx >= 0 {
		before = u[:variadicIdx]
		after = u[variadicIdx+1:]
	}

	for _, opt := range before {
		if err := claimFront(opt, raw); err != nil {
			return err
		}
	}
	for i := len(after) - 1; i >= 0; i-- {
		if err := claimBack(after[i], raw); err != nil {
			return err
		}
	}
	if variadicIdx >= 0 {
		opt := u[variadicIdx]
		limit := opt.Max
		if limit == Unbounded || limit > raw.Len() {
			limit = raw.Len()
		}
		opt.Tokens().Clear()
		for raw.Len() > 0 && opt.Tokens().Len() < limit {
			opt.Tokens().AppendMove(raw.RemoveAt(0))
		}
		if opt.Tokens().Len() > 0 {
			opt.MarkSeen(opt.Tokens().At(opt.Tokens().Len() - 1).Source())
		}
		if opt.Tokens().Len() < opt.Min && opt.Default == "" {
			return ErrTooFewParameters{Name: opt.Name, Got: opt.Tokens().Len(), Min: opt.Min}
		}
	}

	if raw.Len() > 0 {
		return ErrUnexpectedToken{Token: raw.At(0).String(), Surplus: raw.Strings()}
	}
	return nil
}

func claimFront(opt *Option, raw *arg.Vec) error {
	return claim(opt, raw, true)
}

func claimBack(opt *Option, raw *arg.Vec) error {
	return claim(opt, raw, false)
}

func claim(opt *Option, raw *arg.Vec, front bool) error {
	opt.Tokens().Clear()
	if raw.Len() < opt.Min {
		if opt.Default != "" {
			return nil
		}
		return ErrTooFewParameters{Name: opt.Name, Got: raw.Len(), Min: opt.Min}
	}
	for n := 0; n < opt.Min; n++ {
		if front {
			opt.Tokens().AppendMove(raw.RemoveAt(0))
		} else {
			opt.Tokens().AppendMove(raw.RemoveAt(raw.Len() - 1))
		}
	}
	if !front {
		reverseVec(opt.Tokens())
	}
	opt.MarkSeen(opt.Tokens().At(opt.Tokens().Len() - 1).Source())
	return nil
}

func reverseVec(v *arg.Vec) {
	items := v.Slice()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
