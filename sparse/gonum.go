// SPDX-License-Identifier: MIT

// Package sparse: read-only interop with the gonum matrix interfaces, so a
// SparseMatrix can be handed to pipelines that consume mat.Matrix without
// copying into a dense structure first.
package sparse

import "gonum.org/v1/gonum/mat"

// matView adapts a *SparseMatrix to gonum's read-only mat.Matrix surface.
// It aliases the source matrix: reads always reflect the current store
// (PeekAt is cache-independent), and the adapter performs no mutation.
type matView struct {
	m *SparseMatrix
}

// Mat returns a read-only gonum mat.Matrix view of the matrix. The view is
// live: later mutations of m are visible through it.
// Complexity: O(1).
func (m *SparseMatrix) Mat() mat.Matrix {
	return matView{m: m}
}

// Dims returns the matrix dimensions. Complexity: O(1).
func (v matView) Dims() (r, c int) { return v.m.Dims() }

// At returns the value at (i, j), with absence reading as 0. Out-of-range
// indices panic, per the gonum indexing convention; the panic value carries
// the package sentinel for context.
// Complexity: O(1).
func (v matView) At(i, j int) float64 {
	val, _, err := v.m.PeekAt(i, j)
	if err != nil {
		panic(err)
	}

	return val
}

// T returns the transpose as a lazy gonum wrapper; no data is copied or
// re-keyed.
// Complexity: O(1).
func (v matView) T() mat.Matrix { return mat.Transpose{Matrix: v} }
