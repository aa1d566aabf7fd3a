// run_test.go - Value Setter tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset_test

import (
	"testing"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/go-hest/hest/pkg/bind"
	"github.com/go-hest/hest/pkg/valueset"
)

func seen(opt *bind.Option, source arg.Source, tokens ...string) {
	opt.Tokens().Clear()
	for _, t := range tokens {
		opt.Tokens().AppendMove(arg.NewFromString(t, source))
	}
	opt.MarkSeen(source)
}

func TestRunSetsFlag(t *testing.T) {
	r := bind.NewRegistry()
	var verbose bool
	opt := r.AddFlag("v", "verbose", "verbose", "", &verbose)
	seen(opt, arg.CommandLine)

	ledger, err := valueset.Run(r.Options())
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()
	if !verbose {
		t.Fatal("expected verbose=true")
	}
}

func TestRunSetsScalarInt(t *testing.T) {
	r := bind.NewRegistry()
	var n int32
	opt := bind.AddScalar(r, "n", "", "n", "", "", &n)
	seen(opt, arg.CommandLine, "42")

	if _, err := valueset.Run(r.Options()); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("n=%d, want 42", n)
	}
}

func TestRunSetsString(t *testing.T) {
	r := bind.NewRegistry()
	var s string
	opt := r.AddString("t", "", "tag", "", "", &s)
	seen(opt, arg.CommandLine, "hello")

	ledger, err := valueset.Run(r.Options())
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" {
		t.Fatalf("s=%q, want %q", s, "hello")
	}
	ledger.Release()
	if s != "" {
		t.Fatalf("after release s=%q, want empty", s)
	}
}

func TestRunOptionalInvertsOnBareFlag(t *testing.T) {
	r := bind.NewRegistry()
	var n int32
	opt := bind.AddOptional(r, "n", "", "n", "", "0", &n)
	seen(opt, arg.CommandLine) // no tokens: invoked bare

	if _, err := valueset.Run(r.Options()); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("n=%d, want 1 (default 0 inverted)", n)
	}
}

func TestRunVariadicPopulatesSliceAndCount(t *testing.T) {
	r := bind.NewRegistry()
	var sizes []int32
	var count int
	opt := bind.AddVariadic(r, "s", "", "size", "", 2, 4, &sizes, &count, false)
	seen(opt, arg.CommandLine, "1", "2", "3")

	if _, err := valueset.Run(r.Options()); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count=%d, want 3", count)
	}
	if len(sizes) != 3 || sizes[0] != 1 || sizes[2] != 3 {
		t.Fatalf("sizes=%v", sizes)
	}
}

func TestRunEnumLookupFailsOnUnknown(t *testing.T) {
	r := bind.NewRegistry()
	var v int
	enum := &bind.EnumDef{Name: "color", Values: map[string]int{"red": 0, "blue": 1}}
	opt := r.AddEnum("c", "", "color", "", "", &v, enum)
	seen(opt, arg.CommandLine, "green")

	if _, err := valueset.Run(r.Options()); err == nil {
		t.Fatal("expected an unknown-enum-value error")
	}
}

func TestRunReleasesOnFailure(t *testing.T) {
	r := bind.NewRegistry()
	var s string
	var n int32
	sOpt := r.AddString("t", "", "tag", "", "", &s)
	nOpt := bind.AddScalar(r, "n", "", "n", "", "", &n)
	seen(sOpt, arg.CommandLine, "hello")
	seen(nOpt, arg.CommandLine, "not-a-number")

	if _, err := valueset.Run(r.Options()); err == nil {
		t.Fatal("expected a parse error")
	}
	if s != "" {
		t.Fatalf("expected released string, got %q", s)
	}
}
