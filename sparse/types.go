// SPDX-License-Identifier: MIT

// Package sparse: domain types shared across the store, the compressed view
// and the operations. This file intentionally contains ONLY domain-facing
// types; errors and options live in dedicated files (errors.go, options.go)
// per the package conventions.
package sparse

// Shape is the fixed (rows, cols) extent of a matrix. Both components are
// non-negative; a (0,0) shape is the valid empty matrix. The shape changes
// only through TransposeInPlace, which swaps both components atomically with
// the re-keying of the store.
type Shape struct {
	Rows int // number of rows, >= 0
	Cols int // number of columns, >= 0
}

// Triplet is one (row, col, value) element for bulk ingestion.
// Keys are unique per (row, col); a later triplet for the same cell
// overwrites an earlier one (last-writer-wins, same as Insert).
type Triplet struct {
	Row int     // row index, bounded by Shape.Rows
	Col int     // column index, bounded by Shape.Cols
	Val float64 // stored value; an explicit 0.0 is retained like any other
}

// key addresses one cell in the authoritative store. Using a compact struct
// of ints keeps the map key hash-friendly.
// Complexity: O(1) to build; used in O(E) scans during rebuild/transpose.
type key struct {
	row int // row index
	col int // column index
}

// colVal is one (column, value) pair inside a row bucket during the CSR
// rebuild. Private by design; the public surface exposes flat arrays only.
type colVal struct {
	col int
	val float64
}

// compressedView is the CSR cache derived from the store: rowOffsets has
// Rows+1 entries when fresh, starts at 0, is monotonically non-decreasing
// and ends at the nonzero count; colIndices and values are co-indexed, one
// pair per stored entry, column-sorted within each row. The view is replaced
// wholesale by RebuildCompressed and never partially written, so a stale
// snapshot remains structurally valid (if outdated).
type compressedView struct {
	rowOffsets []int     // len == Rows+1 when fresh
	colIndices []int     // len == nnz, ascending within each row slice
	values     []float64 // co-indexed with colIndices
	fresh      bool      // false after any mutation of the store
}
