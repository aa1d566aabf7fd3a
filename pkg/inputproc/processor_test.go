// processor_test.go - Processor tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package inputproc_test

import (
	"io"
	"strings"
	"testing"

	"github.com/go-hest/hest/pkg/arg"
	"github.com/go-hest/hest/pkg/input"
	"github.com/go-hest/hest/pkg/inputproc"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, argv []string, cfg inputproc.Config) ([]string, bool) {
	t.Helper()
	stack := input.NewStack()
	if err := stack.Push(input.NewCommandLineInput(argv)); err != nil {
		t.Fatal(err)
	}
	out := arg.NewVec()
	help, err := inputproc.NewProcessor(stack, cfg).Run(out)
	if err != nil {
		t.Fatal(err)
	}
	return out.Strings(), help
}

func TestProcessorPassesThroughPlainTokens(t *testing.T) {
	got, help := run(t, []string{"-v", "3", "-s", "100", "200"}, inputproc.Config{
		ResponseFileEnable:       true,
		RespectBracketedComments: true,
	})
	if help {
		t.Fatal("did not expect help")
	}
	want := []string{"-v", "3", "-s", "100", "200"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestProcessorExpandsResponseFile(t *testing.T) {
	cfg := inputproc.Config{
		ResponseFileEnable: true,
		Open: func(name string) (io.ReadCloser, error) {
			if name != "respA" {
				t.Fatalf("unexpected open(%q)", name)
			}
			return io.NopCloser(strings.NewReader("-s 8 16\n-v 4\n")), nil
		},
	}
	got, help := run(t, []string{"-q", "@respA"}, cfg)
	if help {
		t.Fatal("did not expect help")
	}
	want := []string{"-q", "-s", "8", "16", "-v", "4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestProcessorHelpShortCircuits(t *testing.T) {
	got, help := run(t, []string{"-n", "2", "--help", "-n", "3"}, inputproc.Config{RespectHelp: true})
	if !help {
		t.Fatal("expected help requested")
	}
	if len(got) != 0 {
		t.Fatalf("expected cleared output, got %#v", got)
	}
}

func TestProcessorBracketedCommentsAreNeutral(t *testing.T) {
	cfg := inputproc.Config{RespectBracketedComments: true}
	got, _ := run(t, []string{"-tag", "a", "-{", "-v", "99", "}-", "b"}, cfg)
	want := []string{"-tag", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestProcessorNestedBracketedComments(t *testing.T) {
	cfg := inputproc.Config{RespectBracketedComments: true}
	got, _ := run(t, []string{"x", "-{", "-{", "y", "}-", "z", "}-", "w"}, cfg)
	want := []string{"x", "w"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestProcessorUnmatchedCommentCloseFails(t *testing.T) {
	cfg := inputproc.Config{RespectBracketedComments: true}
	stack := input.NewStack()
	_ = stack.Push(input.NewCommandLineInput([]string{"}-"}))
	_, err := inputproc.NewProcessor(stack, cfg).Run(arg.NewVec())
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestProcessorRecursiveResponseFileFails(t *testing.T) {
	cfg := inputproc.Config{
		ResponseFileEnable: true,
		Open: func(name string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("@self")), nil
		},
	}
	stack := input.NewStack()
	_ = stack.Push(input.NewCommandLineInput([]string{"@self"}))
	_, err := inputproc.NewProcessor(stack, cfg).Run(arg.NewVec())
	if err == nil {
		t.Fatal("expected a recursion error")
	}
}
