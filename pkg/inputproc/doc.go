// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package inputproc implements the loop that drives package tokenizer
across an [input.Stack], recognizing three meta-tokens with special
meaning: response-file references (`@file`), the `--help` early-exit,
and stand-alone `-{`/`}-` bracketed comments.

Every other acquired token is appended, tagged with its source, to the
caller-supplied [*arg.Vec].
*/
package inputproc
