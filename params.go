// params.go - parser configuration.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import "io"

// Params configures one [Parse] invocation. The zero
// value is not ready to use; call [NewParams] for the documented
// defaults, then override fields as needed.
type Params struct {
	// ProgramName is printed as the first word of the usage line.
	ProgramName string

	// ResponseFileEnable toggles `@file` expansion. Default true.
	ResponseFileEnable bool

	// RespectDoubleDashHelp toggles `--help` recognition. Default
	// false: a program must opt in, since enabling it also reserves
	// the long flag name "help" for every registered option.
	RespectDoubleDashHelp bool

	// RespectBracketedComments toggles `-{`/`}-` recognition. Default
	// true.
	RespectBracketedComments bool

	// NoArgsIsNoProblem, when true, skips the flagged/unflagged
	// extraction passes entirely when argv is empty, so a program with
	// every option defaulted can be invoked with no arguments even if
	// some options would otherwise be required.
	NoArgsIsNoProblem bool

	// DieLessVerbose trims the usage synopsis from an error message,
	// printing only the glossary.
	DieLessVerbose bool

	// Glossary elision rules. Each Elide* field, when true, suppresses
	// the `default:` clause under the stated condition.
	// CleverPluralizeOtherY is accepted but not read by the glossary
	// renderer.
	ElideSingleEnumType                    bool
	ElideSingleOtherType                   bool
	ElideSingleOtherDefault                bool
	ElideSingleNonExistentFloatDefault     bool
	ElideMultipleNonExistentFloatDefault   bool
	ElideSingleEmptyStringDefault          bool
	ElideMultipleEmptyStringDefault        bool
	CleverPluralizeOtherY                  bool

	// Columns overrides the terminal width word-wrapping targets. Zero
	// means "query the controlling terminal via [DetectColumns], fall
	// back to 80".
	Columns int

	// Sigil is the response-file reference character. Defaults to '@'.
	Sigil byte

	// Open opens a named response file. Defaults to [os.Open] plus
	// special-casing "-" as standard input, wired through the active
	// [Env].
	Open func(name string) (io.ReadCloser, error)
}

// NewParams returns a [Params] with documented defaults.
func NewParams(programName string) *Params {
	return &Params{
		ProgramName:              programName,
		ResponseFileEnable:       true,
		RespectBracketedComments: true,
	}
}
