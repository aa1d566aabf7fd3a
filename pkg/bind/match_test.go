// match_test.go - Flag Matcher tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind_test

import (
	"testing"

	"github.com/go-hest/hest/pkg/bind"
)

func TestMatchFlagShortAndLong(t *testing.T) {
	r := bind.NewRegistry()
	var v bool
	opt := r.AddFlag("v", "verbose", "verbose", "", &v)

	if got := bind.MatchFlag(r.Options(), "-v"); got != opt {
		t.Fatalf("short: got %v, want %v", got, opt)
	}
	if got := bind.MatchFlag(r.Options(), "--verbose"); got != opt {
		t.Fatalf("long: got %v, want %v", got, opt)
	}
	if got := bind.MatchFlag(r.Options(), "-x"); got != nil {
		t.Fatalf("unmatched: got %v, want nil", got)
	}
}

func TestMatchFlagVariadicStop(t *testing.T) {
	r := bind.NewRegistry()
	if got := bind.MatchFlag(r.Options(), "--"); got != bind.VariadicStop {
		t.Fatalf("got %v, want VariadicStop", got)
	}
}
