// columns.go - terminal column capability.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import termsize "github.com/kopoli/go-terminal-size"

// DefaultColumns is used when no terminal width can be determined.
const DefaultColumns = 80

// DetectColumns queries the controlling terminal for its column
// count, falling back to [DefaultColumns] if the query fails (e.g.
// stdout is redirected to a file or pipe). Exposed as a plain function
// rather than a package-level global. [WriteUsage] and [WriteGlossary]
// call it only when [Params.Columns] is zero.
func DetectColumns() int {
	size, err := termsize.GetSize()
	if err != nil || size.Width <= 0 {
		return DefaultColumns
	}
	return size.Width
}

// columnsOrDefault resolves a [Params.Columns] override, falling back
// to [DetectColumns] when unset.
func columnsOrDefault(columns int) int {
	if columns > 0 {
		return columns
	}
	return DetectColumns()
}
