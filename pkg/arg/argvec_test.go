// argvec_test.go - Vec tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package arg_test

import (
	"testing"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/google/go-cmp/cmp"
)

func TestVecAppendAndStrings(t *testing.T) {
	v := arg.NewVec()
	v.Append(arg.NewFromString("-v", arg.CommandLine))
	v.Append(arg.NewFromString("3", arg.CommandLine))

	if diff := cmp.Diff([]string{"-v", "3"}, v.Strings()); diff != "" {
		t.Fatal(diff)
	}
	if v.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", v.Len())
	}
}

func TestVecRemoveAt(t *testing.T) {
	v := arg.NewVec()
	v.Append(arg.NewFromString("a", arg.CommandLine))
	v.Append(arg.NewFromString("b", arg.CommandLine))
	v.Append(arg.NewFromString("c", arg.CommandLine))

	removed := v.RemoveAt(1)
	if removed.String() != "b" {
		t.Fatalf("expected to remove %q, got %q", "b", removed.String())
	}
	if diff := cmp.Diff([]string{"a", "c"}, v.Strings()); diff != "" {
		t.Fatal(diff)
	}
}

func TestVecAppendMoveTransfersOwnership(t *testing.T) {
	src := arg.NewVec()
	src.AppendMove(arg.New(arg.Default))
	dst := arg.NewVec()

	token := src.RemoveAt(0)
	token.Append('x')
	dst.AppendMove(token)

	if diff := cmp.Diff([]string{"x"}, dst.Strings()); diff != "" {
		t.Fatal(diff)
	}
	if src.Len() != 0 {
		t.Fatalf("expected source vector to be empty, got %d items", src.Len())
	}
}

func TestArgSourceString(t *testing.T) {
	cases := map[arg.Source]string{
		arg.Unknown:      "unknown",
		arg.CommandLine:  "command-line",
		arg.ResponseFile: "response-file",
		arg.Default:      "default",
	}
	for source, want := range cases {
		if got := source.String(); got != want {
			t.Fatalf("source %d: expected %q, got %q", source, want, got)
		}
	}
	if !arg.CommandLine.IsUser() || !arg.ResponseFile.IsUser() {
		t.Fatal("command-line and response-file must be user sources")
	}
	if arg.Default.IsUser() || arg.Unknown.IsUser() {
		t.Fatal("default and unknown must not be user sources")
	}
}
