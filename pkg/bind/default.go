// default.go - the Default Processor.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import (
	"fmt"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/go-hest/hest/pkg/input"
	"github.com/go-hest/hest/pkg/inputproc"
)

// ErrDefaultTooFewParameters is returned when an option's tokenized
// default string yields fewer tokens than its declared minimum.
type ErrDefaultTooFewParameters struct {
	Name     string
	Got, Min int
}

func (e ErrDefaultTooFewParameters) Error() string {
	return fmt.Sprintf("default for option %q produced %d argument(s), need at least %d", e.Name, e.Got, e.Min)
}

// RunDefaults fills in every option whose source is still
// [arg.Unknown] (neither extractor placed anything for it): its
// source becomes [arg.Default], and — unless it is a stand-alone flag
// — its default string is tokenized through the same input-processor
// machinery the command line itself goes through, with `--help`
// recognition disabled.
func RunDefaults(options []*Option) error {
	for _, opt := range options {
		if opt.Seen() {
			continue
		}
		opt.MarkSeen(arg.Default)
		if opt.Kind == KindFlag {
			continue
		}

		stack := input.NewStack()
		if err := stack.Push(input.NewDefaultInput(opt.Name, opt.Default)); err != nil {
			return err
		}
		proc := inputproc.NewProcessor(stack, inputproc.Config{
			ResponseFileEnable:       false,
			RespectHelp:              false,
			RespectBracketedComments: false,
		})

		opt.Tokens().Clear()
		if _, err := proc.Run(opt.Tokens()); err != nil {
			return err
		}
		if opt.Tokens().Len() < opt.Min {
			return ErrDefaultTooFewParameters{Name: opt.Name, Got: opt.Tokens().Len(), Min: opt.Min}
		}
	}
	return nil
}
