// run.go - the Value Setter entry point.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset

import (
	"fmt"

	"github.com/go-hest/hest/internal/assert"
	"github.com/go-hest/hest/pkg/bind"
)

// Run walks options in registry order, parsing each one's accumulated
// tokens (as left by [bind.ExtractFlagged], [bind.ExtractUnflagged],
// and [bind.RunDefaults]) into its declared storage.
//
// On success it returns a [*Ledger] the caller can release later via
// [*Ledger.Release]. On failure every allocation recorded so far is
// released automatically before Run returns the error.
func Run(options []*bind.Option) (*Ledger, error) {
	ledger := NewLedger()
	for _, opt := range options {
		if err := setOne(opt, ledger); err != nil {
			ledger.Release()
			return nil, err
		}
	}
	return ledger, nil
}

func setOne(opt *bind.Option, ledger *Ledger) error {
	fmt.Fprintf(debugWriter, "valueset: option %q kind=%s type=%s tokens=%v\n",
		opt.Name, opt.Kind, opt.Type, opt.Tokens().Strings())

	switch opt.Kind {
	case bind.KindFlag:
		return setFlag(opt)
	case bind.KindOne:
		return setScalar(opt, ledger)
	case bind.KindOptional:
		return setOptional(opt, ledger)
	case bind.KindFixed, bind.KindVariadic:
		return setMany(opt, ledger)
	default:
		return fmt.Errorf("valueset: option %q has an unhandled kind %s", opt.Name, opt.Kind)
	}
}

// setFlag implements kind 1: the stored boolean records whether the
// flag was seen on the command line or through a response file.
func setFlag(opt *bind.Option) error {
	p, ok := opt.Storage.(*bool)
	if !ok {
		return badStorage(opt.Type, opt.Storage)
	}
	*p = opt.Seen() && opt.Source().IsUser()
	return nil
}

// setScalar implements kind 2: exactly one token, parsed into the
// option's slot.
func setScalar(opt *bind.Option, ledger *Ledger) error {
	if opt.Tokens().Len() < 1 {
		return fmt.Errorf("valueset: option %q has no token to parse", opt.Name)
	}
	return setOneToken(opt, opt.Tokens().At(0).String(), ledger)
}

// setOptional implements kind 4: zero tokens with a user-seen source
// means the flag was given bare, so the default is parsed and then
// numerically inverted; otherwise it behaves like kind 2 (falling
// back to the default when the option was never seen at all).
func setOptional(opt *bind.Option, ledger *Ledger) error {
	if opt.Tokens().Len() > 0 {
		return setOneToken(opt, opt.Tokens().At(0).String(), ledger)
	}
	if !opt.Seen() || !opt.Source().IsUser() {
		return fmt.Errorf("valueset: option %q has no default to fall back on", opt.Name)
	}
	kind, parse := numericParser(opt.Type)
	if parse == nil {
		return badStorage(opt.Type, opt.Storage)
	}
	v, err := parse(opt.Name, opt.Default)
	if err != nil {
		return err
	}
	fmt.Fprintf(debugWriter, "valueset: option %q invoked bare, inverting default %s\n", opt.Name, kind)
	return storeNumericScalar(opt.Type, opt.Storage, invertNumeric(opt.Type, v))
}

// setOneToken dispatches a single token to the parser matching the
// option's declared type.
func setOneToken(opt *bind.Option, token string, ledger *Ledger) error {
	switch opt.Type {
	case bind.String:
		p, ok := opt.Storage.(*string)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		copied := token
		*p = copied
		ledger.record(func() { *p = "" })
		return nil

	case bind.Char:
		p, ok := opt.Storage.(*byte)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		c, err := parseChar(opt.Name, token)
		if err != nil {
			return err
		}
		*p = c
		return nil

	case bind.Enum:
		p, ok := opt.Storage.(*int)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		v, err := opt.Enum.Lookup(token)
		if err != nil {
			return err
		}
		*p = v
		return nil

	case bind.Other:
		if opt.Other == nil || opt.Other.Parse == nil {
			return badStorage(opt.Type, opt.Storage)
		}
		if err := opt.Other.Parse(token, opt.Storage); err != nil {
			return ErrCallback{Name: opt.Name, Token: token, Err: err}
		}
		return nil

	default:
		_, parse := numericParser(opt.Type)
		if parse == nil {
			return badStorage(opt.Type, opt.Storage)
		}
		v, err := parse(opt.Name, token)
		if err != nil {
			return err
		}
		return storeNumericScalar(opt.Type, opt.Storage, v)
	}
}

// setMany implements kinds 3 and 5: every token is parsed into a
// freshly (re)built slice. For kind 5, the observed count is written
// to CountObserved when the caller asked for it.
func setMany(opt *bind.Option, ledger *Ledger) error {
	assert.True(opt.CountObserved == nil || opt.Kind == bind.KindVariadic,
		"valueset: CountObserved is only meaningful for a kind-5 option")
	n := opt.Tokens().Len()

	switch opt.Type {
	case bind.String:
		p, ok := opt.Storage.(*[]string)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, opt.Tokens().At(i).String())
		}
		*p = out
		ledger.record(func() { *p = nil })

	case bind.Char:
		p, ok := opt.Storage.(*[]byte)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		out := make([]byte, 0, n)
		for i := 0; i < n; i++ {
			c, err := parseChar(opt.Name, opt.Tokens().At(i).String())
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		*p = out
		ledger.record(func() { *p = nil })

	case bind.Enum:
		p, ok := opt.Storage.(*[]int)
		if !ok {
			return badStorage(opt.Type, opt.Storage)
		}
		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			v, err := opt.Enum.Lookup(opt.Tokens().At(i).String())
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		*p = out
		ledger.record(func() { *p = nil })

	case bind.Other:
		if opt.Other == nil || opt.Other.Parse == nil {
			return badStorage(opt.Type, opt.Storage)
		}
		for i := 0; i < n; i++ {
			tok := opt.Tokens().At(i).String()
			if err := opt.Other.Parse(tok, opt.Storage); err != nil {
				return ErrCallback{Name: opt.Name, Token: tok, Err: err}
			}
		}

	default:
		if err := resetNumericSlice(opt.Type, opt.Storage); err != nil {
			return err
		}
		ledger.record(func() { _ = resetNumericSlice(opt.Type, opt.Storage) })
		_, parse := numericParser(opt.Type)
		if parse == nil {
			return badStorage(opt.Type, opt.Storage)
		}
		for i := 0; i < n; i++ {
			v, err := parse(opt.Name, opt.Tokens().At(i).String())
			if err != nil {
				return err
			}
			if err := appendNumericSlice(opt.Type, opt.Storage, v); err != nil {
				return err
			}
		}
	}

	if opt.CountObserved != nil {
		*opt.CountObserved = n
	}
	return nil
}
