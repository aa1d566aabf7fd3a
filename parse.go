// parse.go - parse orchestration.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/go-hest/hest/pkg/bind"
	"github.com/go-hest/hest/pkg/input"
	"github.com/go-hest/hest/pkg/inputproc"
	"github.com/go-hest/hest/pkg/tokenizer"
	"github.com/go-hest/hest/pkg/valueset"
)

// Parse runs every stage of the pipeline, in order: registry
// validation, tokenization of argv through the Input Processor, the
// Flag Matcher and the two extractors, the Default Processor, and
// finally the Value Setter.
//
// On success it returns a [*valueset.Ledger] the caller may later hand
// to [ReleaseParsedValues]; [ErrHelpRequested] (wrapped) is
// returned the moment `--help` is recognized, with no ledger.
func Parse(reg *Registry, argv []string, params *Params, env Env) (*valueset.Ledger, error) {
	reg.RespectHelp = params.RespectDoubleDashHelp
	reg.RespectBracketedComments = params.RespectBracketedComments
	if err := reg.Validate(); err != nil {
		return nil, RegistryInvalidError{Err: err}
	}

	if params.NoArgsIsNoProblem && len(argv) == 0 {
		if err := bind.RunDefaults(reg.Options()); err != nil {
			return nil, DefaultParseFailureError{Err: err}
		}
		return runValueSet(reg)
	}

	stack := input.NewStack()
	if err := stack.Push(input.NewCommandLineInput(argv)); err != nil {
		return nil, InputFailureError{Err: err}
	}

	cfg := inputproc.Config{
		ResponseFileEnable:       params.ResponseFileEnable,
		RespectHelp:              params.RespectDoubleDashHelp,
		RespectBracketedComments: params.RespectBracketedComments,
		Sigil:                    params.Sigil,
		Open:                     params.Open,
	}
	if env != nil {
		cfg.Stdin = env.Stdin()
		if cfg.Open == nil {
			cfg.Open = func(name string) (io.ReadCloser, error) {
				return os.Open(name)
			}
		}
	}

	raw := arg.NewVec()
	helpRequested, err := inputproc.NewProcessor(stack, cfg).Run(raw)
	if err != nil {
		return nil, classifyInputError(err)
	}
	if helpRequested {
		return nil, fmt.Errorf("%w", ErrHelpRequested)
	}

	if err := bind.ExtractFlagged(reg.Options(), raw); err != nil {
		return nil, ExtractionError{Err: err}
	}
	if err := bind.ExtractUnflagged(reg.Options(), raw); err != nil {
		return nil, ExtractionError{Err: err}
	}
	if err := bind.RunDefaults(reg.Options()); err != nil {
		return nil, DefaultParseFailureError{Err: err}
	}

	return runValueSet(reg)
}

func runValueSet(reg *Registry) (*valueset.Ledger, error) {
	ledger, err := valueset.Run(reg.Options())
	if err != nil {
		return nil, ValueParseError{Err: err}
	}
	return ledger, nil
}

// classifyInputError sorts an error from [inputproc.Processor.Run]
// into the exported error taxonomy. A tokenizer failure (unterminated
// quote, dangling escape) becomes [TokenizerFailureError]; an
// unmatched or unclosed bracketed comment becomes
// [CommentUnbalancedError]; everything else — an unopenable or
// recursive response file, a second read of standard input, `--help`
// outside the command line, a response reference inside a default
// string, or input-stack depth exhaustion — becomes
// [InputFailureError].
func classifyInputError(err error) error {
	var tokErr *tokenizer.Error
	if errors.As(err, &tokErr) {
		return TokenizerFailureError{Err: err}
	}

	var unbalancedOnPop input.ErrCommentUnbalancedOnPop
	if errors.As(err, &unbalancedOnPop) {
		return CommentUnbalancedError{Err: err}
	}
	var unmatchedClose inputproc.ErrUnmatchedCommentClose
	if errors.As(err, &unmatchedClose) {
		return CommentUnbalancedError{Err: err}
	}

	return InputFailureError{Err: err}
}

// ReleaseParsedValues releases every allocation [Parse] recorded in
// ledger.
func ReleaseParsedValues(ledger *valueset.Ledger) {
	if ledger != nil {
		ledger.Release()
	}
}

// ReleaseRegistry is a no-op: Go's garbage collector reclaims a
// registry's strings (flag spellings, help text) once reg is
// unreachable. It exists only so callers used to an explicit release
// call have somewhere to put one.
func ReleaseRegistry(reg *Registry) {
	_ = reg
}
