// SPDX-License-Identifier: MIT

// Package sparse: transposition, in copying and in-place variants.
package sparse

// Transpose returns a new matrix of swapped shape (Cols, Rows) where every
// stored entry (r, c, v) of the receiver appears as (c, r, v). The receiver
// is not modified and the result's view starts stale.
// Complexity: O(E) time and space.
func (m *SparseMatrix) Transpose() *SparseMatrix {
	// Shape components swap; the receiver's shape is already validated.
	out := newSized(m.shape.Cols, m.shape.Rows, len(m.entries))
	for k, v := range m.entries {
		out.entries[key{row: k.col, col: k.row}] = v
	}

	return out
}

// TransposeInPlace swaps the shape components and re-keys every stored
// entry (r, c) → (c, r) within the same instance, then marks the view stale.
// Implementation:
//   - Stage 1: swap shape atomically with respect to callers (single
//     assignment; the type is not concurrency-safe anyway).
//   - Stage 2: rebuild the store into a fresh map. Re-keying in place is
//     unsafe because (r, c) and (c, r) may both exist.
//
// Complexity:
//   - Time O(E), Space O(E) for the replacement map.
func (m *SparseMatrix) TransposeInPlace() {
	m.shape = Shape{Rows: m.shape.Cols, Cols: m.shape.Rows}

	rekeyed := make(map[key]float64, len(m.entries))
	for k, v := range m.entries {
		rekeyed[key{row: k.col, col: k.row}] = v
	}
	m.entries = rekeyed
	m.view.fresh = false
}
