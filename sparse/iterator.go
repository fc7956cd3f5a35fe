// SPDX-License-Identifier: MIT

// Package sparse: row-major traversal over the compressed view.
package sparse

// RowIterator walks the matrix row by row, materializing each row as a
// dense []float64 of length Cols(). Each call to RowIter returns a fresh,
// independent cursor, so traversal is restartable at will.
//
// The iterator consumes the compressed view as-is and assumes the caller
// invoked RebuildCompressed after the last mutation. Reading through a
// stale view replays the previously rebuilt snapshot (the cache is only
// ever replaced wholesale); a never-rebuilt view yields no rows.
type RowIterator struct {
	m   *SparseMatrix // source matrix; not copied, must not be mutated mid-walk
	row int           // next row to produce
}

// RowIter returns a new iterator positioned before row 0.
// Complexity: O(1).
func (m *SparseMatrix) RowIter() *RowIterator {
	return &RowIterator{m: m}
}

// Next produces the next dense row in ascending row order.
// Implementation:
//   - Stage 1: stop when past the last row, or past the cached offset count
//     (a stale snapshot may describe fewer rows than the current shape).
//   - Stage 2: zero-fill a vector of the row width and scatter the view's
//     (column, value) pairs for this row into it.
//
// Returns:
//   - ([]float64, true) with a freshly allocated row, or (nil, false) when
//     the sequence is exhausted.
//
// Complexity:
//   - Time O(Cols + nnz(row)) per call, Space O(Cols) for the output row.
func (it *RowIterator) Next() ([]float64, bool) {
	// Exhausted against the current shape or against the cached snapshot.
	if it.row >= it.m.shape.Rows || it.row+1 >= len(it.m.view.rowOffsets) {
		return nil, false
	}
	start := it.m.view.rowOffsets[it.row]
	end := it.m.view.rowOffsets[it.row+1]

	// Zero-filled dense row of the current width.
	dense := make([]float64, it.m.shape.Cols)
	for i := start; i < end; i++ {
		c := it.m.view.colIndices[i]
		// A stale snapshot may carry columns wider than the current shape
		// (e.g. after an un-rebuilt in-place transpose); skip those rather
		// than index out of range.
		if c < len(dense) {
			dense[c] = it.m.view.values[i]
		}
	}
	it.row++

	return dense, true
}
