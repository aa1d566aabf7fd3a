// textwrap.go - text wrapping utils.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package textwrap provides paragraph word-wrapping for usage and
// glossary text.
package textwrap

import "strings"

// Do wraps text to the given width with the specified indentation and
// returns the result as a single newline-joined string.
func Do(text string, width int, indent string) string {
	return strings.Join(Lines(text, width, indent), "\n")
}

// Lines wraps text to the given width with the specified indentation,
// returning one entry per output line. A width less than len(indent)+1
// is treated as len(indent)+1 so that every line holds at least one word.
func Lines(text string, width int, indent string) []string {
	words := strings.Fields(text)
	if len(words) <= 0 {
		return nil
	}
	if width < len(indent)+1 {
		width = len(indent) + 1
	}

	var lines []string
	current := indent + words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = indent + word
	}
	lines = append(lines, current)

	return lines
}

// Continued is like [Lines] but appends marker to every line except the
// last, so that multi-line output can be recognized as continuing.
func Continued(text string, width int, indent, marker string) []string {
	lines := Lines(text, width-len(marker), indent)
	for i := 0; i < len(lines)-1; i++ {
		lines[i] += marker
	}
	return lines
}
