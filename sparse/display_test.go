package sparse_test

import (
	"strings"
	"testing"

	"github.com/slitchfield/sparse-mat/sparse"
	"github.com/stretchr/testify/require"
)

func TestString_SingleRow(t *testing.T) {
	m, err := sparse.NewWithShape(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0, 10.0))
	m.RebuildCompressed()

	inner := strings.Repeat(" ", 8*2)
	want := "\t/" + inner + "\\\n" +
		"\t|  10.00,   0.00 |\n" +
		"\t\\" + inner + "/\n"
	require.Equal(t, want, m.String())
}

func TestString_MultiRow(t *testing.T) {
	m, err := sparse.NewWithShape(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.InsertTriplets([]sparse.Triplet{
		{Row: 0, Col: 0, Val: 10.0},
		{Row: 1, Col: 1, Val: 30.0},
	}))
	m.RebuildCompressed()

	inner := strings.Repeat(" ", 8*2)
	want := "\t/" + inner + "\\\n" +
		"\t|  10.00,   0.00 |\n" +
		"\t|   0.00,  30.00 |\n" +
		"\t\\" + inner + "/\n"
	require.Equal(t, want, m.String())
}

func TestString_NegativeValues(t *testing.T) {
	m, err := sparse.NewWithShape(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0, -1.5))
	m.RebuildCompressed()

	inner := strings.Repeat(" ", 8)
	want := "\t/" + inner + "\\\n" +
		"\t|  -1.50 |\n" +
		"\t\\" + inner + "/\n"
	require.Equal(t, want, m.String())
}

func TestString_ZeroShape(t *testing.T) {
	// A (0,0) matrix renders as the two caps with no inner padding and no
	// row lines; a never-rebuilt view holds no rows to print either way.
	want := "\t/\\\n\t\\/\n"
	require.Equal(t, want, sparse.New().String())
}

func TestString_RendersWholeRows(t *testing.T) {
	m := newRectFixture(t)
	m.RebuildCompressed()

	out := m.String()
	// One line per row plus two caps.
	require.Equal(t, 4+2, strings.Count(out, "\n"))
	require.Contains(t, out, " 10.00,  20.00,")
	require.Contains(t, out, " 80.00 |")
}
