// Package sparse provides a mutable sparse matrix with a lazily
// synchronized compressed-row read view.
//
// The sparse package provides:
//
//   - SparseMatrix, a Dictionary-of-Keys (DOK) store supporting O(1)
//     element insertion, removal and lookup under bounds checks.
//   - A Compressed Sparse Row (CSR) view derived from the store on demand
//     via RebuildCompressed, gated by a freshness flag.
//   - RowIterator for row-major traversal as dense []float64 rows, plus a
//     fixed-width boxed fmt.Stringer rendering built on top of it.
//   - Copying and in-place transposition, and shape-checked element-wise
//     addition (Sum).
//   - A read-only gonum mat.Matrix adapter (Mat) for linear-algebra
//     pipelines that consume the gonum interfaces.
//
// The CSR view is a cache: every mutation marks it stale, and nothing
// rebuilds it implicitly. Callers decide when to pay the O(E log E)
// conversion cost, which amortizes arbitrarily many mutations into a
// single rebuild.
//
// The package is single-threaded by design; a matrix instance must be
// owned by one goroutine at a time (or serialized externally).
//
// See the examples in this package for usage patterns.
package sparse
