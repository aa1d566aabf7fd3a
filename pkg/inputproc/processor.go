// processor.go - the input processor loop.
// SPDX-License-Identifier: GPL-3.0-or-later

package inputproc

import (
	"io"
	"os"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/go-hest/hest/pkg/input"
	"github.com/go-hest/hest/pkg/tokenizer"
)

// Opener opens the response file named by an `@name` reference. The
// default, [os.Open], is overridden in tests.
type Opener func(name string) (io.ReadCloser, error)

// Config controls which meta-tokens the [Processor] recognizes. The
// zero value recognizes none of them; each must be switched on.
type Config struct {
	// ResponseFileEnable toggles `@file` recognition.
	ResponseFileEnable bool

	// RespectHelp toggles `--help` recognition.
	RespectHelp bool

	// RespectBracketedComments toggles `-{`/`}-` recognition.
	RespectBracketedComments bool

	// Sigil is the response-file reference character. Defaults to
	// '@' when left zero.
	Sigil byte

	// Open opens a named response file. Defaults to [os.Open] plus
	// special-casing "-" as standard input.
	Open Opener

	// Stdin backs the `@-` response-file reference. Defaults to
	// [os.Stdin] when nil.
	Stdin io.Reader
}

func (c Config) sigil() byte {
	if c.Sigil == 0 {
		return '@'
	}
	return c.Sigil
}

// Processor drives package tokenizer across an [*input.Stack].
type Processor struct {
	Stack  *input.Stack
	Config Config
}

// NewProcessor returns a [*Processor] over stack using cfg.
func NewProcessor(stack *input.Stack, cfg Config) *Processor {
	return &Processor{Stack: stack, Config: cfg}
}

// Run drains the stack, appending every non-meta token to out tagged
// with its originating source. It returns helpRequested=true the
// moment `--help` is recognized, clearing out and returning
// immediately.
func (p *Processor) Run(out *arg.Vec) (helpRequested bool, err error) {
	for {
		top := p.Stack.Top()
		if top == nil {
			return false, nil
		}

		token, status, terr := p.acquire(top)
		if terr != nil {
			return false, terr
		}

		switch status {
		case tokenizer.TryAgain:
			if _, perr := p.Stack.Pop(); perr != nil {
				return false, perr
			}
			continue

		case tokenizer.Behold:
			handled, help, ierr := p.intercept(token, top, out)
			if ierr != nil {
				return false, ierr
			}
			if help {
				out.Clear()
				return true, nil
			}
			if !handled {
				out.AppendMove(arg.NewFromString(token, top.Source()))
			}
		}
	}
}

// acquire reads exactly one raw token from in, dispatching to the
// fast command-line path or to the tokenizer DFA for byte sources.
func (p *Processor) acquire(in input.Input) (string, tokenizer.Status, error) {
	if cli, ok := in.(*input.CommandLineInput); ok {
		tok, ok := cli.Next()
		if !ok {
			return "", tokenizer.TryAgain, nil
		}
		return tok, tokenizer.Behold, nil
	}

	bs, ok := in.(input.ByteSource)
	if !ok {
		panic("inputproc: unhandled Input implementation")
	}

	d := tokenizer.New()
	cur := arg.New(bs.Source())
	for {
		b, eof, rerr := bs.NextByte()
		if rerr != nil {
			return "", tokenizer.Unknown, rerr
		}
		status, terr := d.Step(cur, b, eof)
		if terr != nil {
			return "", tokenizer.Unknown, terr
		}
		switch status {
		case tokenizer.Behold:
			return cur.String(), tokenizer.Behold, nil
		case tokenizer.TryAgain:
			return "", tokenizer.TryAgain, nil
		}
	}
}

// intercept applies the meta-token rules (response-file references,
// bracketed comments, `--help`) to one raw token, returning
// handled=true when the token must not be appended to out as-is.
func (p *Processor) intercept(token string, top input.Input, out *arg.Vec) (handled, help bool, err error) {
	if p.Config.RespectBracketedComments {
		switch {
		case token == "-{":
			top.IncCommentDepth()
			return true, false, nil
		case token == "}-":
			if !top.DecCommentDepth() {
				return false, false, ErrUnmatchedCommentClose{}
			}
			return true, false, nil
		case top.CommentDepth() > 0:
			return true, false, nil
		}
	}

	if len(token) > 0 && token[0] == p.Config.sigil() {
		if top.Kind() == input.Default {
			return false, false, ErrResponseFileInDefault{Token: token}
		}
		if p.Config.ResponseFileEnable {
			if err := p.pushResponseFile(token[1:]); err != nil {
				return false, false, err
			}
			return true, false, nil
		}
	}

	if p.Config.RespectHelp && token == "--help" {
		if top.Kind() != input.CommandLine {
			return false, false, ErrHelpOutsideCommandLine{Source: top.Name()}
		}
		return true, true, nil
	}

	return false, false, nil
}

func (p *Processor) pushResponseFile(name string) error {
	if name == "-" {
		if p.Stack.StdinRead() {
			return input.ErrStdinAlreadyRead{}
		}
		p.Stack.MarkStdinRead()
		stdin := p.Config.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return p.Stack.Push(input.NewResponseFileInput("-", io.NopCloser(stdin)))
	}

	open := p.Config.Open
	if open == nil {
		open = func(n string) (io.ReadCloser, error) { return os.Open(n) }
	}
	f, err := open(name)
	if err != nil {
		return ErrUnopenableResponseFile{Name: name, Err: err}
	}
	return p.Stack.Push(input.NewResponseFileInput(name, f))
}
