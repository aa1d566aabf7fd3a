// parse_test.go - end-to-end scenarios.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest_test

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/go-hest/hest"
	"github.com/go-hest/hest/pkg/arg"
	"github.com/google/go-cmp/cmp"
)

// Scenario 1: flagged scalar, flagged fixed pair, and a flag default.
func TestParseScenario1(t *testing.T) {
	reg := hest.NewRegistry()
	var v int32
	var s []int32
	var q bool
	vOpt := hest.AddScalar(reg, "v", "", "v", "", "0", &v)
	hest.AddFixed(reg, "s", "", "s", "", 2, &s, false)
	qOpt := reg.AddFlag("q", "", "q", "", &q)

	params := hest.NewParams("prog")
	ledger, err := hest.Parse(reg, []string{"-v", "3", "-s", "100", "200"}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()

	if v != 3 || !cmp.Equal(s, []int32{100, 200}) || q {
		t.Fatalf("v=%d s=%v q=%v", v, s, q)
	}
	if vOpt.Source() != arg.CommandLine {
		t.Fatalf("v source = %v, want command-line", vOpt.Source())
	}
	if qOpt.Source() != arg.Default {
		t.Fatalf("q source = %v, want default", qOpt.Source())
	}
}

// Scenario 2: response-file expansion.
func TestParseScenario2(t *testing.T) {
	reg := hest.NewRegistry()
	var v int32
	var s []int32
	var q bool
	hest.AddScalar(reg, "v", "", "v", "", "0", &v)
	hest.AddFixed(reg, "s", "", "s", "", 2, &s, false)
	reg.AddFlag("q", "", "q", "", &q)

	params := hest.NewParams("prog")
	params.Open = func(name string) (io.ReadCloser, error) {
		if name != "respA" {
			t.Fatalf("unexpected open(%q)", name)
		}
		return io.NopCloser(strings.NewReader("-s 8 16\n-v 4\n")), nil
	}

	ledger, err := hest.Parse(reg, []string{"-q", "@respA"}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()

	if v != 4 || !cmp.Equal(s, []int32{8, 16}) || !q {
		t.Fatalf("v=%d s=%v q=%v", v, s, q)
	}
}

// Scenario 3: --help short-circuits and writes nothing.
func TestParseScenario3(t *testing.T) {
	reg := hest.NewRegistry()
	var n int32
	hest.AddScalar(reg, "n", "", "n", "", "1", &n)

	params := hest.NewParams("prog")
	params.RespectDoubleDashHelp = true

	_, err := hest.Parse(reg, []string{"-n", "2", "--help", "-n", "3"}, params, nil)
	if !errors.Is(err, hest.ErrHelpRequested) {
		t.Fatalf("err=%v, want ErrHelpRequested", err)
	}
	if n != 0 {
		t.Fatalf("n=%d, want untouched zero value", n)
	}
}

// An unmatched `}-` is classified as a bracketed-comment failure, not
// a generic input failure.
func TestParseClassifiesUnmatchedCommentClose(t *testing.T) {
	reg := hest.NewRegistry()
	var n int32
	hest.AddScalar(reg, "n", "", "n", "", "1", &n)

	params := hest.NewParams("prog")

	_, err := hest.Parse(reg, []string{"}-"}, params, nil)
	var commentErr hest.CommentUnbalancedError
	if !errors.As(err, &commentErr) {
		t.Fatalf("err=%v, want hest.CommentUnbalancedError", err)
	}
}

// An unterminated quote inside a response file is classified as a
// tokenizer failure, not a generic input failure.
func TestParseClassifiesUnterminatedQuote(t *testing.T) {
	reg := hest.NewRegistry()
	var n int32
	hest.AddScalar(reg, "n", "", "n", "", "1", &n)

	params := hest.NewParams("prog")
	params.Open = func(name string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("'unterminated")), nil
	}

	_, err := hest.Parse(reg, []string{"@resp"}, params, nil)
	var tokErr hest.TokenizerFailureError
	if !errors.As(err, &tokErr) {
		t.Fatalf("err=%v, want hest.TokenizerFailureError", err)
	}
}

// Scenario 4: float default "nan" is accepted.
func TestParseScenario4(t *testing.T) {
	reg := hest.NewRegistry()
	var f, g float64
	hest.AddScalar(reg, "f", "", "f", "", "nan", &f)
	hest.AddScalar(reg, "g", "", "g", "", "0.5", &g)

	params := hest.NewParams("prog")
	_, err := hest.Parse(reg, []string{}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(f) {
		t.Fatalf("f=%v, want NaN", f)
	}
	if g != 0.5 {
		t.Fatalf("g=%v, want 0.5", g)
	}
}

// Scenario 5: short/long flag pair, variadic-stop sentinel.
func TestParseScenario5(t *testing.T) {
	reg := hest.NewRegistry()
	var tag []string
	var v []int32
	tagOpt := reg.AddStringFixed("t", "tag", "tag", "", 2, &tag, false)
	tagOpt.Default = ""
	hest.AddVariadic(reg, "v", "", "v", "", 1, hest.Unbounded, &v, nil, false)

	params := hest.NewParams("prog")
	ledger, err := hest.Parse(reg, []string{"--tag", "a", "b", "-v", "10", "20", "30", "--"}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()

	if !cmp.Equal(tag, []string{"a", "b"}) {
		t.Fatalf("tag=%v", tag)
	}
	if !cmp.Equal(v, []int32{10, 20, 30}) {
		t.Fatalf("v=%v", v)
	}
}

// Declaration order must not affect the parse of any input accepted by
// both registries, as long as neither carries an unflagged variadic
// option.
func TestParseIsInvariantUnderDeclarationOrder(t *testing.T) {
	build := func(reverse bool) (*hest.Registry, *int32, *bool, *[]int32) {
		reg := hest.NewRegistry()
		var v int32
		var q bool
		var s []int32
		add := []func(){
			func() { hest.AddScalar(reg, "v", "", "v", "", "0", &v) },
			func() { reg.AddFlag("q", "", "q", "", &q) },
			func() { hest.AddFixed(reg, "s", "", "s", "", 2, &s, false) },
		}
		if reverse {
			add[0], add[1], add[2] = add[2], add[1], add[0]
		}
		for _, fn := range add {
			fn()
		}
		return reg, &v, &q, &s
	}

	argv := []string{"-q", "-v", "3", "-s", "100", "200"}
	params := hest.NewParams("prog")

	regA, vA, qA, sA := build(false)
	ledgerA, err := hest.Parse(regA, argv, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledgerA.Release()

	regB, vB, qB, sB := build(true)
	ledgerB, err := hest.Parse(regB, argv, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledgerB.Release()

	if *vA != *vB || *qA != *qB || !cmp.Equal(*sA, *sB) {
		t.Fatalf("declaration order changed the result: (%d,%v,%v) vs (%d,%v,%v)",
			*vA, *qA, *sA, *vB, *qB, *sB)
	}
}

// Re-rendering an option's accumulated tokens with Option.Strings and
// re-parsing them on a fresh registry must reproduce the same value.
func TestOptionStringsRoundTrip(t *testing.T) {
	reg := hest.NewRegistry()
	var s []int32
	opt := hest.AddFixed(reg, "s", "", "s", "", 2, &s, false)

	params := hest.NewParams("prog")
	ledger, err := hest.Parse(reg, []string{"-s", "100", "200"}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()

	rendered := opt.Strings()
	if diff := cmp.Diff([]string{"-s", "100", "200"}, rendered); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	reg2 := hest.NewRegistry()
	var s2 []int32
	hest.AddFixed(reg2, "s", "", "s", "", 2, &s2, false)
	ledger2, err := hest.Parse(reg2, rendered, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger2.Release()

	if !cmp.Equal(s, s2) {
		t.Fatalf("round-trip mismatch: s=%v s2=%v", s, s2)
	}
}

// Scenario 6: unflagged positional plus an unflagged variadic tail.
func TestParseScenario6(t *testing.T) {
	reg := hest.NewRegistry()
	var positional int32
	var rest []int32
	var count int
	reg.AddUnflaggedOne("positional", "", hest.Int, &positional)
	hest.AddVariadic(reg, "", "", "rest", "", 0, hest.Unbounded, &rest, &count, true)

	params := hest.NewParams("prog")
	ledger, err := hest.Parse(reg, []string{"7", "1", "2", "3"}, params, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Release()

	if positional != 7 {
		t.Fatalf("positional=%d, want 7", positional)
	}
	if !cmp.Equal(rest, []int32{1, 2, 3}) {
		t.Fatalf("rest=%v", rest)
	}
	if count != 3 {
		t.Fatalf("count=%d, want 3", count)
	}
}
