package sparse_test

import (
	"testing"

	"github.com/slitchfield/sparse-mat/sparse"
	"github.com/stretchr/testify/require"
)

func TestSum_ShapeMismatch(t *testing.T) {
	a, err := sparse.NewWithShape(3, 3)
	require.NoError(t, err)
	b, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)

	_, err = sparse.Sum(a, b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	// Zero-shaped against shaped must fail the same way.
	_, err = sparse.Sum(a, sparse.New())
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestSum_NilOperand(t *testing.T) {
	a, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)

	_, err = sparse.Sum(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Sum(a, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestSum_WithOwnTranspose(t *testing.T) {
	m, err := sparse.NewWithShape(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.InsertTriplets([]sparse.Triplet{
		{Row: 0, Col: 0, Val: 10.0},
		{Row: 0, Col: 1, Val: 20.0},
		{Row: 1, Col: 1, Val: 30.0},
		{Row: 2, Col: 2, Val: 50.0},
	}))

	s, err := sparse.Sum(m, m.Transpose())
	require.NoError(t, err)
	// Diagonal entries double, the (0,1)/(1,0) pair mirrors.
	require.Equal(t, 20.0, mustPeek(t, s, 0, 0))
	require.Equal(t, 20.0, mustPeek(t, s, 0, 1))
	require.Equal(t, 20.0, mustPeek(t, s, 1, 0))
	require.Equal(t, 60.0, mustPeek(t, s, 1, 1))
	require.Equal(t, 100.0, mustPeek(t, s, 2, 2))
}

func TestSum_AbsentTreatedAsZero(t *testing.T) {
	a, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Insert(0, 0, 1.5))

	b, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Insert(1, 1, 2.5))

	s, err := sparse.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.5, mustPeek(t, s, 0, 0))
	require.Equal(t, 2.5, mustPeek(t, s, 1, 1))
	requireAbsent(t, s, 0, 1)
	require.Equal(t, 2, s.NumNonZero())
}

func TestSum_ZeroSumStaysStored(t *testing.T) {
	a, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Insert(0, 0, 1.0))

	b, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Insert(0, 0, -1.0))

	s, err := sparse.Sum(a, b)
	require.NoError(t, err)
	// No cancellation re-scan: the zero-valued result cell remains stored.
	v, ok, err := s.PeekAt(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0.0, v)
	require.Equal(t, 1, s.NumNonZero())
}

func TestSum_OperandsUnchanged(t *testing.T) {
	a, err := sparse.Identity(2)
	require.NoError(t, err)
	b, err := sparse.Identity(2)
	require.NoError(t, err)

	s, err := sparse.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, mustPeek(t, s, 0, 0))
	require.Equal(t, 1.0, mustPeek(t, a, 0, 0))
	require.Equal(t, 1.0, mustPeek(t, b, 0, 0))
	require.False(t, s.Fresh(), "a fresh result view would lie about the folded entries")
}
