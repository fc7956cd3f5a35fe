package sparse_test

import (
	"testing"

	"github.com/slitchfield/sparse-mat/sparse"
	"github.com/stretchr/testify/require"
)

// rectTriplets is the canonical 4×6 fixture used across tests: eight
// entries whose CSR layout is known in closed form.
var rectTriplets = []sparse.Triplet{
	{Row: 0, Col: 0, Val: 10.0},
	{Row: 0, Col: 1, Val: 20.0},
	{Row: 1, Col: 1, Val: 30.0},
	{Row: 2, Col: 2, Val: 50.0},
	{Row: 1, Col: 3, Val: 40.0},
	{Row: 2, Col: 3, Val: 60.0},
	{Row: 2, Col: 4, Val: 70.0},
	{Row: 3, Col: 5, Val: 80.0},
}

// newRectFixture builds the 4×6 fixture matrix without rebuilding its view.
func newRectFixture(t *testing.T) *sparse.SparseMatrix {
	t.Helper()
	m, err := sparse.NewWithShape(4, 6)
	require.NoError(t, err)
	require.NoError(t, m.InsertTriplets(rectTriplets))

	return m
}

// mustPeek asserts the cell holds a stored value and returns it.
func mustPeek(t *testing.T, m *sparse.SparseMatrix, row, col int) float64 {
	t.Helper()
	v, ok, err := m.PeekAt(row, col)
	require.NoError(t, err)
	require.True(t, ok, "expected a stored entry at (%d,%d)", row, col)

	return v
}

// requireAbsent asserts the cell holds no stored value.
func requireAbsent(t *testing.T, m *sparse.SparseMatrix, row, col int) {
	t.Helper()
	_, ok, err := m.PeekAt(row, col)
	require.NoError(t, err)
	require.False(t, ok, "expected no entry at (%d,%d)", row, col)
}
