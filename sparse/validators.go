// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep store methods and operations minimal by delegating nil/bounds/shape
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with method context.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateCompressed scans,
//    everything else is O(1) and allocates nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Row → Col).

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *SparseMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateIndex ensures (row, col) addresses a cell inside m's shape.
// Sequence: NotNil → row bound → column bound, so the row sentinel wins
// when both coordinates are bad.
//
// Errors: ErrNilMatrix, ErrRowOutOfRange, ErrColOutOfRange.
// Complexity: O(1).
func ValidateIndex(m *SparseMatrix, row, col int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateIndex", err)
	}
	if row < 0 || row >= m.shape.Rows {
		return validatorErrorf("ValidateIndex", ErrRowOutOfRange)
	}
	if col < 0 || col >= m.shape.Cols {
		return validatorErrorf("ValidateIndex", ErrColOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and share the same
// extent. Used as the precondition guard for binary element-wise ops.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (tagged Rows or Columns).
// Complexity: O(1).
func ValidateSameShape(a, b *SparseMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.shape.Rows != b.shape.Rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.shape.Cols != b.shape.Cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateCompressed checks the structural invariants of m's compressed
// view against the authoritative store:
//
//   - the view is fresh (else ErrStaleView),
//   - rowOffsets has exactly Rows+1 elements, starts at 0, is monotonically
//     non-decreasing and ends at the stored entry count,
//   - colIndices and values are co-indexed (equal length),
//   - within every row slice, column indices are strictly ascending and
//     inside [0, Cols).
//
// Violations of the array invariants can only arise from external mutation
// of leaked slices (the public accessors return copies precisely to prevent
// that) and are reported as ErrCorruptView.
//
// Errors: ErrNilMatrix, ErrStaleView, ErrCorruptView.
// Complexity: O(E + R). Space O(1).
func ValidateCompressed(m *SparseMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateCompressed", err)
	}
	if !m.view.fresh {
		return validatorErrorf("ValidateCompressed", ErrStaleView)
	}
	// Offset array extent and endpoints.
	if len(m.view.rowOffsets) != m.shape.Rows+1 {
		return validatorErrorf("ValidateCompressed: offsets length", ErrCorruptView)
	}
	if m.view.rowOffsets[0] != 0 {
		return validatorErrorf("ValidateCompressed: leading offset", ErrCorruptView)
	}
	if m.view.rowOffsets[m.shape.Rows] != len(m.entries) {
		return validatorErrorf("ValidateCompressed: trailing offset", ErrCorruptView)
	}
	// Co-indexed column/value arrays.
	if len(m.view.colIndices) != len(m.view.values) {
		return validatorErrorf("ValidateCompressed: array lengths", ErrCorruptView)
	}
	if len(m.view.values) != len(m.entries) {
		return validatorErrorf("ValidateCompressed: entry count", ErrCorruptView)
	}

	// Per-row scan: monotone offsets, strictly ascending in-bounds columns.
	var r, i int
	for r = 0; r < m.shape.Rows; r++ {
		start, end := m.view.rowOffsets[r], m.view.rowOffsets[r+1]
		if start > end || start < 0 || end > len(m.view.colIndices) {
			return validatorErrorf("ValidateCompressed: offset order", ErrCorruptView)
		}
		for i = start; i < end; i++ {
			c := m.view.colIndices[i]
			if c < 0 || c >= m.shape.Cols {
				return validatorErrorf("ValidateCompressed: column bound", ErrCorruptView)
			}
			// Strictly ascending within the row; keys are unique so equality
			// is as corrupt as inversion.
			if i > start && c <= m.view.colIndices[i-1] {
				return validatorErrorf("ValidateCompressed: column order", ErrCorruptView)
			}
		}
	}

	return nil
}
