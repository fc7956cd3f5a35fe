// SPDX-License-Identifier: MIT

// Package sparse: the Compressed Sparse Row rebuild and its read-only
// accessors. The view is a pull-based cache: nothing here runs implicitly
// on mutation; callers invoke RebuildCompressed when they need row-ordered
// access and want to pay the conversion cost once.
package sparse

import "sort"

// RebuildCompressed recomputes the CSR triple from the authoritative store
// and marks the view fresh.
// Implementation:
//   - Stage 1 (Bucket): scatter all entries into per-row buckets, O(E).
//   - Stage 2 (Sort): sort each bucket by column ascending. Keys are unique
//     per (row, col), so no ties occur and the order is deterministic.
//   - Stage 3 (Flatten): concatenate buckets row-major into the flat column
//     and value arrays; record a running offset per row with a leading 0.
//
// Behavior highlights:
//   - The view is replaced wholesale, never patched in place; readers of a
//     stale snapshot keep seeing the previous (structurally valid) arrays.
//
// Determinism:
//   - Map iteration order is irrelevant: bucketing is order-insensitive and
//     the per-row sort fixes the final layout.
//
// Complexity:
//   - Time O(E log E) dominated by the per-row sorts, Space O(E + R).
//
// Notes:
//   - Deliberately manual: rebuilding on every mutation would defeat the
//     amortization the lazy cache exists for.
func (m *SparseMatrix) RebuildCompressed() {
	rows := m.shape.Rows
	nnz := len(m.entries)

	// Stage 1: bucket entries by row.
	buckets := make([][]colVal, rows)
	for k, v := range m.entries {
		buckets[k.row] = append(buckets[k.row], colVal{col: k.col, val: v})
	}

	// Stage 2 + 3: sort each bucket and flatten row-major.
	offsets := make([]int, 1, rows+1) // leading 0 is already in place
	cols := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)
	for r := 0; r < rows; r++ {
		b := buckets[r]
		sort.Slice(b, func(i, j int) bool { return b[i].col < b[j].col })
		for _, cv := range b {
			cols = append(cols, cv.col)
			vals = append(vals, cv.val)
		}
		// Running total of emitted entries after row r.
		offsets = append(offsets, len(vals))
	}

	// Wholesale replacement; the only place that sets fresh=true.
	m.view = compressedView{
		rowOffsets: offsets,
		colIndices: cols,
		values:     vals,
		fresh:      true,
	}
}

// Fresh reports whether the compressed view reflects the current store.
// Complexity: O(1).
func (m *SparseMatrix) Fresh() bool { return m.view.fresh }

// RowOffsets returns a copy of the CSR row-offset array. The slice
// [RowOffsets()[r], RowOffsets()[r+1]) indexes the column/value arrays for
// row r. A copy is returned so callers can never mutate the cache outside
// the rebuild path.
// Complexity: O(R).
func (m *SparseMatrix) RowOffsets() []int {
	return append([]int(nil), m.view.rowOffsets...)
}

// ColIndices returns a copy of the CSR column-index array, ascending within
// each row slice.
// Complexity: O(E).
func (m *SparseMatrix) ColIndices() []int {
	return append([]int(nil), m.view.colIndices...)
}

// Values returns a copy of the CSR value array, co-indexed with ColIndices.
// Complexity: O(E).
func (m *SparseMatrix) Values() []float64 {
	return append([]float64(nil), m.view.values...)
}
