// SPDX-License-Identifier: MIT

// Package sparse: the SparseMatrix container and its authoritative-store
// operations. The store is a Dictionary-of-Keys map; the compressed view it
// feeds lives in compressed.go, derived operations in transpose.go and
// ops_sum.go.
package sparse

import "fmt"

// SparseMatrix owns a fixed shape and a sparse (row, col) → value mapping,
// plus a derived Compressed Sparse Row view gated by a freshness flag.
//
// Representation contract:
//   - entries is authoritative: every mutation goes through it.
//   - view is a cache: any mutation marks it stale; RebuildCompressed is the
//     only writer that can mark it fresh again.
//   - Absence of a key means an implicit zero; an explicitly stored 0.0 is a
//     real entry and is counted and iterated like any other value.
//
// A SparseMatrix is not safe for concurrent use; callers must serialize
// access to one instance.
type SparseMatrix struct {
	shape   Shape           // fixed extent; swapped only by TransposeInPlace
	entries map[key]float64 // authoritative DOK store
	view    compressedView  // derived CSR cache + dirty bit
}

// opErrorf wraps an underlying sentinel with SparseMatrix method context.
func opErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SparseMatrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an empty matrix of shape (0,0) with a stale view.
// Useful as a zero-extent placeholder; every indexed operation on it fails
// with an out-of-range sentinel until the caller builds a shaped instance.
// Complexity: O(1).
func New() *SparseMatrix {
	return &SparseMatrix{
		shape:   Shape{},
		entries: make(map[key]float64),
	}
}

// NewWithShape creates an empty rows×cols matrix.
// Implementation:
//   - Stage 1 (Validate): reject negative dimensions.
//   - Stage 2 (Prepare): resolve options, reserve map capacity for roughly
//     rows*cols/DefaultSparsityDivisor entries (see options.go).
//   - Stage 3 (Finalize): return the instance with a stale view.
//
// Inputs:
//   - rows, cols: non-negative extents; zero is valid.
//   - opts: capacity tuning (WithCapacityHint, WithSparsityDivisor).
//
// Returns:
//   - *SparseMatrix: empty shaped matrix.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(1) plus the map reservation, Space O(reservation).
//
// Notes:
//   - The reservation is a sparsity heuristic, not a limit; the store grows
//     past it transparently.
func NewWithShape(rows, cols int, opts ...Option) (*SparseMatrix, error) {
	// Validate dimensions before any allocation.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Resolve effective options (defaults + user setters).
	o := gatherOptions(opts...)

	return newSized(rows, cols, o.reserveFor(rows, cols)), nil
}

// newSized builds a shaped instance around a pre-sized store. Dimensions
// must already be validated by the caller.
func newSized(rows, cols, reserve int) *SparseMatrix {
	return &SparseMatrix{
		shape:   Shape{Rows: rows, Cols: cols},
		entries: make(map[key]float64, reserve),
	}
}

// Identity creates an n×n matrix with 1.0 on the diagonal and exactly n
// stored entries.
// Errors: ErrBadShape when n < 0.
// Complexity: O(n) time and space.
func Identity(n int, opts ...Option) (*SparseMatrix, error) {
	// Delegate shape validation and reservation.
	m, err := NewWithShape(n, n, opts...)
	if err != nil {
		return nil, err
	}
	// Populate the diagonal directly; indices are in bounds by construction.
	for i := 0; i < n; i++ {
		m.entries[key{row: i, col: i}] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *SparseMatrix) Rows() int { return m.shape.Rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *SparseMatrix) Cols() int { return m.shape.Cols }

// Dims returns (rows, cols), matching the gonum dimension convention.
// Complexity: O(1).
func (m *SparseMatrix) Dims() (rows, cols int) { return m.shape.Rows, m.shape.Cols }

// Shape returns the current shape by value. Complexity: O(1).
func (m *SparseMatrix) Shape() Shape { return m.shape }

// NumNonZero returns the count of stored entries, independent of the view's
// freshness. An explicitly stored 0.0 counts. Complexity: O(1).
func (m *SparseMatrix) NumNonZero() int { return len(m.entries) }

// Insert sets or overwrites the value at (row, col) and marks the view stale.
// Implementation:
//   - Stage 1 (Validate): bounds check via ValidateIndex.
//   - Stage 2 (Execute): write into the store, clear the freshness flag.
//
// Errors:
//   - ErrNilMatrix, ErrRowOutOfRange, ErrColOutOfRange (wrapped with method
//     context; match via errors.Is).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
//
// Notes:
//   - Storing 0.0 is permitted and indistinguishable from any other stored
//     value in counting and iteration.
func (m *SparseMatrix) Insert(row, col int, v float64) error {
	// Bounds check through the centralized validator.
	if err := ValidateIndex(m, row, col); err != nil {
		return opErrorf("Insert", row, col, err)
	}
	// Authoritative write; last-writer-wins per cell.
	m.entries[key{row: row, col: col}] = v
	// Any store mutation invalidates the derived view.
	m.view.fresh = false

	return nil
}

// InsertTriplets applies each triplet in order under the same bounds check
// as Insert.
// Implementation:
//   - Stage 1: per-element validation, first violation aborts the call.
//   - Stage 2: write each validated element, clearing the freshness flag
//     together with the write so an abort mid-batch still leaves the view
//     stale behind the applied elements.
//
// Errors:
//   - Same sentinels as Insert, wrapped with the offending coordinates.
//
// Complexity:
//   - Time O(k) amortized for k triplets, Space O(1).
//
// Notes:
//   - NOT atomic: elements preceding the failing one stay applied (and the
//     view is invalid the moment the first one lands). Callers needing
//     all-or-nothing semantics must validate coordinates up front or apply
//     into a Clone.
//   - An empty batch, or one failing on its very first element, mutates
//     nothing and leaves the freshness flag untouched.
func (m *SparseMatrix) InsertTriplets(ts []Triplet) error {
	for _, t := range ts {
		// Validate each element; abort on the first violation.
		if err := ValidateIndex(m, t.Row, t.Col); err != nil {
			return opErrorf("InsertTriplets", t.Row, t.Col, err)
		}
		m.entries[key{row: t.Row, col: t.Col}] = t.Val
		// Invalidate with the write, not after the loop: every applied
		// mutation must be observable as a stale view, including on the
		// partial-application error path.
		m.view.fresh = false
	}

	return nil
}

// ClearAt removes the entry at (row, col) if present.
// Implementation:
//   - Stage 1 (Validate): bounds check via ValidateIndex.
//   - Stage 2 (Execute): delete from the store, clear the freshness flag.
//
// Returns:
//   - (value, true, nil) when an entry was removed,
//   - (0, false, nil) when the cell held no entry (absence is an outcome,
//     not an error).
//
// Errors:
//   - ErrNilMatrix, ErrRowOutOfRange, ErrColOutOfRange.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
//
// Notes:
//   - The view is invalidated even when nothing was removed; the flag only
//     records "a mutation happened", not whether state changed.
func (m *SparseMatrix) ClearAt(row, col int) (float64, bool, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, false, opErrorf("ClearAt", row, col, err)
	}
	k := key{row: row, col: col}
	v, ok := m.entries[k]
	delete(m.entries, k)
	// Invalidate regardless of the present-or-absent outcome.
	m.view.fresh = false

	return v, ok, nil
}

// PeekAt returns the stored value at (row, col) without mutating anything.
// Returns (0, false, nil) when the cell holds no entry; absence is never
// conflated with a stored zero.
// Errors: ErrNilMatrix, ErrRowOutOfRange, ErrColOutOfRange.
// Complexity: O(1).
func (m *SparseMatrix) PeekAt(row, col int) (float64, bool, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, false, opErrorf("PeekAt", row, col, err)
	}
	v, ok := m.entries[key{row: row, col: col}]

	return v, ok, nil
}

// Clone returns a deep copy: the store, the compressed arrays and the
// freshness flag are all duplicated, so the copy is fully independent of
// the original.
// Complexity: O(E + R) time and space (entries plus cached offsets).
func (m *SparseMatrix) Clone() *SparseMatrix {
	// Copy the authoritative store.
	entries := make(map[key]float64, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v
	}

	// Copy the cached view verbatim, including its freshness.
	return &SparseMatrix{
		shape:   m.shape,
		entries: entries,
		view: compressedView{
			rowOffsets: append([]int(nil), m.view.rowOffsets...),
			colIndices: append([]int(nil), m.view.colIndices...),
			values:     append([]float64(nil), m.view.values...),
			fresh:      m.view.fresh,
		},
	}
}
