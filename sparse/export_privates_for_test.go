// SPDX-License-Identifier: MIT
//go:build test

package sparse

// Test-Bridge (White-Box) for Private Helpers and the Raw View
//
// Purpose:
//   - Expose UNEXPORTED helpers and the raw (un-copied) compressed arrays to
//     white-box tests ONLY, without widening the production API.
//   - The public accessors return copies by design; corruption tests need
//     the aliased slices to tamper with.
//
// Build Policy:
//   - Compiles ONLY under `-tags test` via the //go:build directive above.
//   - File is in package sparse, so it can access private symbols, but it is
//     invisible in production builds.
//
// Risks & Maintenance:
//   - Keep RawView_TestOnly in sync with compressedView fields; white-box
//     tests will catch drift.

var (
	// ExportedNewSized exposes newSized for constructor white-box tests.
	ExportedNewSized = newSized
	// ExportedGatherOptions exposes option resolution for snapshot tests.
	ExportedGatherOptions = gatherOptions
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityHintInvalid_TestOnly    = panicCapacityHintInvalid
	PanicSparsityDivisorInvalid_TestOnly = panicSparsityDivisorInvalid
)

// RawView_TestOnly returns the live compressed arrays WITHOUT copying.
// Mutating them corrupts the cache; that is the point for corruption tests.
func RawView_TestOnly(m *SparseMatrix) (offsets, cols []int, vals []float64, fresh bool) {
	return m.view.rowOffsets, m.view.colIndices, m.view.values, m.view.fresh
}

// ReserveFor_TestOnly exposes the capacity heuristic of resolved Options.
func ReserveFor_TestOnly(o Options, rows, cols int) int {
	return o.reserveFor(rows, cols)
}
