// must.go - the convenience wrapper.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import (
	"errors"
	"fmt"

	"github.com/go-hest/hest/pkg/valueset"
)

// MustParse runs [Parse] and handles every non-nominal outcome itself:
// on [ErrHelpRequested] it writes the glossary to env.Stdout() and
// exits 0; on any other error it writes the error, the usage line
// (unless params.DieLessVerbose), and the glossary to env.Stderr() and
// exits 1. It returns normally, with a non-nil [*valueset.Ledger], only
// on success.
//
// Generalized from a flat "exit 1 on any error" policy to hest's
// richer exit-code and help-vs-error split.
func MustParse(env Env, reg *Registry, params *Params) *valueset.Ledger {
	ledger, err := Parse(reg, env.Args()[1:], params, env)
	if err == nil {
		return ledger
	}

	if errors.Is(err, ErrHelpRequested) {
		WriteGlossary(env.Stdout(), reg, params)
		env.Exit(0)
		return nil
	}

	fmt.Fprintln(env.Stderr(), err)
	if !params.DieLessVerbose {
		WriteUsage(env.Stderr(), reg, params)
	}
	WriteGlossary(env.Stderr(), reg, params)
	env.Exit(1)
	return nil
}
