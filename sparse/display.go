// SPDX-License-Identifier: MIT

// Package sparse: fixed-width boxed rendering of the full matrix.
package sparse

import (
	"fmt"
	"strings"
)

// Rendering constants. Width and precision are fixed, not adaptive to the
// data's magnitude: values wider than the cell shift their row, which is
// acceptable for a debugging aid.
const (
	cellFmt  = "%6.2f" // one value: right-aligned, two decimal digits
	cellSlot = 8       // 6 value chars + comma + space (leading space on first)
)

// String renders the matrix as one bordered block with one line per row,
// every column's value comma-separated in cellFmt, using RowIter
// internally. Like the iterator it assumes the compressed view is fresh;
// render after RebuildCompressed to see the current state.
// Complexity: O(R*C) time and space for the output text.
func (m *SparseMatrix) String() string {
	inner := strings.Repeat(" ", cellSlot*m.shape.Cols)

	var sb strings.Builder
	// Top cap: tab, slash, inner padding, backslash.
	sb.WriteString("\t/")
	sb.WriteString(inner)
	sb.WriteString("\\\n")

	// One bordered line per dense row.
	for it := m.RowIter(); ; {
		row, ok := it.Next()
		if !ok {
			break
		}
		sb.WriteString("\t| ")
		for idx, elem := range row {
			if idx != 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, cellFmt, elem)
		}
		sb.WriteString(" |\n")
	}

	// Bottom cap mirrors the top.
	sb.WriteString("\t\\")
	sb.WriteString(inner)
	sb.WriteString("/\n")

	return sb.String()
}
