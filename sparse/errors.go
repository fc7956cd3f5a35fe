// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape validity -> row bound -> column bound -> shape
// mismatch -> view staleness -> view corruption.
//
// The priority applies to error-returning operations. Infallible methods
// (Clone, Transpose, TransposeInPlace, RebuildCompressed, RowIter, String)
// have no error channel by design; calling one on a nil receiver is a
// programmer error and panics like any nil method dereference.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Constructors must validate before allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrRowOutOfRange indicates a row index outside [0, Rows()).
	// Public indexers (Insert/ClearAt/PeekAt) MUST return this, not panic.
	ErrRowOutOfRange = errors.New("sparse: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, Cols()).
	ErrColOutOfRange = errors.New("sparse: column index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. Sum over matrices of different dimensions.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrNilMatrix indicates that a nil *SparseMatrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrStaleView signals that the compressed view does not reflect the
	// authoritative store; call RebuildCompressed before reading it.
	ErrStaleView = errors.New("sparse: compressed view is stale")

	// ErrCorruptView signals that the compressed arrays violate the CSR
	// structural invariants (offsets length, monotonicity, column order).
	// This can only happen through external mutation of leaked slices.
	ErrCorruptView = errors.New("sparse: compressed view is corrupt")
)
