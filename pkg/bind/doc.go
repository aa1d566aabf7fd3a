// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package bind implements option binding: allocating each token acquired
by package inputproc to exactly one declared [*Option].

It knows nothing about how to turn a token into a typed Go value (that
is package valueset's job); it only decides *which* tokens belong to
*which* option. The pieces are:

  - [Type] and [Kind]: the closed type tag and the five arity shapes
    derived from an option's (min, max) pair.

  - [Option] and [*Registry]: the declarative description of the
    options a program accepts, with the validation the registry
    requires before any parsing begins.

  - [MatchFlag]: the Flag Matcher.

  - [ExtractFlagged] and [ExtractUnflagged]: the two extractor passes
    that distribute a raw [*arg.Vec] of tokens across the registry's
    options' private vectors.

This package plays a role similar to a classic flag-binding layer, but
the binding rules are hest's own: no short-flag grouping, no long-flag
abbreviation (see DESIGN.md), just fixed/variadic arity rules and a
single-unflagged-variadic-option constraint.
*/
package bind
