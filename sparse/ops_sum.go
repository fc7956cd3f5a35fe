// SPDX-License-Identifier: MIT

// Package sparse: element-wise binary operations over whole matrices.
// Kept separate from the store methods so the mutation surface (matrix.go)
// stays minimal.
package sparse

import "fmt"

// Sum returns a new matrix holding the element-wise sum of a and b, which
// must share the same shape. Neither operand is mutated.
// Implementation:
//   - Stage 1 (Validate): nil and shape guards via ValidateSameShape.
//   - Stage 2 (Seed): deep-copy a, so a's explicit entries carry over.
//   - Stage 3 (Fold): for each entry of b, add onto the seeded cell,
//     treating absence as 0.0.
//
// Behavior highlights:
//   - A cell summing to exactly zero stays stored: cancellation is not
//     re-scanned, matching the explicit-zero retention policy.
//
// Returns:
//   - *SparseMatrix: freshly allocated result with a stale view.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(E(a) + E(b)) amortized, Space O(E(a) + E(b)).
func Sum(a, b *SparseMatrix) (*SparseMatrix, error) {
	// Validate operands through the centralized shape guard.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Sum: %w", err)
	}

	// Seed from the left operand; Clone keeps shape and entries.
	out := a.Clone()
	// Fold the right operand in; map default 0.0 covers absent cells.
	for k, v := range b.entries {
		out.entries[k] += v
	}
	// The seed may have carried a fresh snapshot from a; the fold above is a
	// store mutation, so the result's view must start stale.
	out.view.fresh = false

	return out, nil
}
