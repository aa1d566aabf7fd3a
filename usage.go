// usage.go - Usage / Glossary rendering.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-hest/hest/pkg/textwrap"
)

// WriteUsage writes a single-line usage synopsis: the program name
// followed by each option in registry order. Flagged options with a
// default or of [KindFlag] are wrapped in square brackets. Parameter
// placeholders use the option's Name.
func WriteUsage(w io.Writer, reg *Registry, params *Params) {
	var b strings.Builder
	b.WriteString(params.ProgramName)
	for _, opt := range reg.Options() {
		b.WriteByte(' ')
		b.WriteString(usageToken(opt))
	}
	for _, line := range textwrap.Lines(b.String(), columnsOrDefault(params.Columns), "") {
		fmt.Fprintln(w, line)
	}
}

func usageToken(opt *Option) string {
	inner := usageFlagAndPlaceholder(opt)
	if opt.Kind == KindFlag || opt.Default != "" {
		return "[" + inner + "]"
	}
	return inner
}

func usageFlagAndPlaceholder(opt *Option) string {
	flag := ""
	switch {
	case opt.HasShort():
		flag = "-" + opt.Short
	case opt.HasLong():
		flag = "--" + opt.Long
	}

	placeholder := usagePlaceholder(opt)
	switch {
	case opt.Unflagged:
		return placeholder
	case placeholder == "":
		return flag
	default:
		return flag + " " + placeholder
	}
}

func usagePlaceholder(opt *Option) string {
	switch opt.Kind {
	case KindFlag:
		return ""
	case KindOne, KindOptional:
		return opt.Name
	case KindFixed:
		return strings.TrimSpace(strings.Repeat(opt.Name+" ", opt.Min))
	case KindVariadic:
		return opt.Name + "..."
	default:
		return opt.Name
	}
}

// WriteGlossary writes one word-wrapped paragraph per option,
// indented to a common alignment, giving its help text followed by a
// parenthesized type/arity clause and, subject to params' elision
// rules, a `default:` clause.
func WriteGlossary(w io.Writer, reg *Registry, params *Params) {
	indent := "  "
	width := columnsOrDefault(params.Columns)
	for _, opt := range reg.Options() {
		header := glossaryHeader(opt)
		fmt.Fprintln(w, header)
		for _, line := range textwrap.Lines(glossaryBody(opt, params), width, indent) {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

func glossaryHeader(opt *Option) string {
	switch {
	case opt.Unflagged:
		return opt.Name
	case opt.HasShort() && opt.HasLong():
		return fmt.Sprintf("-%s, --%s", opt.Short, opt.Long)
	case opt.HasShort():
		return "-" + opt.Short
	default:
		return "--" + opt.Long
	}
}

func glossaryBody(opt *Option, params *Params) string {
	var b strings.Builder
	b.WriteString(opt.Help)
	b.WriteString(" (")
	b.WriteString(opt.Type.String())
	b.WriteString(", ")
	b.WriteString(opt.Kind.String())
	b.WriteByte(')')
	if clause := defaultClause(opt, params); clause != "" {
		b.WriteString(" ")
		b.WriteString(clause)
	}
	return b.String()
}

func defaultClause(opt *Option, params *Params) string {
	if opt.Kind == KindFlag {
		return ""
	}
	switch opt.Type {
	case Enum:
		if params.ElideSingleEnumType && len(opt.Enum.Values) == 1 {
			return ""
		}
	case Other:
		if params.ElideSingleOtherType {
			return ""
		}
		if params.ElideSingleOtherDefault && opt.Default == "" {
			return ""
		}
	case String:
		if opt.Default == "" {
			if opt.Kind == KindVariadic || opt.Kind == KindFixed {
				if params.ElideMultipleEmptyStringDefault {
					return ""
				}
			} else if params.ElideSingleEmptyStringDefault {
				return ""
			}
		}
	case Float, Double:
		if opt.Default == "nan" || opt.Default == "inf" || opt.Default == "-inf" {
			if opt.Kind == KindVariadic || opt.Kind == KindFixed {
				if params.ElideMultipleNonExistentFloatDefault {
					return ""
				}
			} else if params.ElideSingleNonExistentFloatDefault {
				return ""
			}
		}
	}
	return fmt.Sprintf("default: %s", opt.Default)
}
