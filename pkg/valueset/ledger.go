// ledger.go - the allocation ledger.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset

import "io"

// debugWriter is the trace sink for the Value Setter, defaulting to
// discarding everything, swappable in tests.
var debugWriter io.Writer = io.Discard

// entry is one recorded allocation: release undoes it.
type entry struct {
	release func()
}

// Ledger records every string and slice a [Run] pass writes (values
// written by other-type callbacks are not recorded), in insertion
// order, so it can be unwound in reverse either
// on failure (automatically, by [Run]) or on caller request (via
// [*Ledger.Release]).
type Ledger struct {
	entries []entry
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// record appends a release function to the ledger.
func (l *Ledger) record(release func()) {
	l.entries = append(l.entries, entry{release: release})
}

// Release walks the ledger once in reverse order, invoking every
// recorded release function. After Release returns the ledger is
// empty and safe to discard.
func (l *Ledger) Release() {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].release != nil {
			l.entries[i].release()
		}
	}
	l.entries = nil
}

// Len reports how many allocations are currently recorded.
func (l *Ledger) Len() int { return len(l.entries) }
