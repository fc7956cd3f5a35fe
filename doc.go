// Package sparsemat is a small, reusable sparse matrix container for
// numeric pipelines.
//
// 🚀 What is sparse-mat?
//
//	A compact library built around one data structure:
//		• Authoritative store: a Dictionary-of-Keys (DOK) map for O(1) mutation
//		• Derived view: a Compressed Sparse Row (CSR) triple for row-ordered reads
//		• Lazy synchronization: a dirty bit, rebuilt on demand, never per mutation
//		• Element ops: insert, bulk insert, remove, peek, shape-checked addition
//		• Transposition: copying and in-place variants
//		• Rendering: a fixed-width boxed textual view of the full matrix
//
// ✨ Why choose sparse-mat?
//
//   - Predictable costs: many inserts amortize into one O(E log E) rebuild
//   - Recoverable errors: sentinel errors instead of panics for bad indices
//   - Pure Go core: the container itself has no runtime dependencies
//   - Pipeline-ready: a read-only gonum mat.Matrix view for interop
//
// Everything lives under one subpackage:
//
//	sparse/ — the SparseMatrix type, its CSR view, iterators and validators
//
// Quick ASCII example of the boxed rendering:
//
//	/                        \
//	|  10.00,   0.00,  20.00 |
//	|   0.00,  30.00,   0.00 |
//	\                        /
//
// See the sparse package documentation for usage patterns.
package sparsemat
