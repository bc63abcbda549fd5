package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridDist is a tiny symmetric distance table used for grounded,
// hand-checkable tests.
type gridDist struct {
	n int
	d [][]int
}

func (g gridDist) Dimension() int { return g.n }
func (g gridDist) Dist(i, j int) int {
	return g.d[i][j]
}

func square4() gridDist {
	// unit square, vertices 0,1,2,3 at corners; symmetric integer
	// distances (Euclidean rounded).
	d := [][]int{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	return gridDist{n: 4, d: d}
}

func TestAllNeighbors(t *testing.T) {
	c, err := Create(square4(), AllNeighbors, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, c.Neighbors(0))
}

func TestNearestNeighborsK(t *testing.T) {
	g := gridDist{n: 5, d: [][]int{
		{0, 5, 1, 9, 2},
		{5, 0, 3, 1, 8},
		{1, 3, 0, 4, 6},
		{9, 1, 4, 0, 7},
		{2, 8, 6, 7, 0},
	}}
	c, err := Create(g, NearestNeighbors, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, c.Neighbors(0))
}

func TestAlphaNeighborsRuns(t *testing.T) {
	g := gridDist{n: 6, d: [][]int{
		{0, 2, 9, 10, 7, 3},
		{2, 0, 6, 4, 3, 8},
		{9, 6, 0, 8, 5, 2},
		{10, 4, 8, 0, 6, 9},
		{7, 3, 5, 6, 0, 4},
		{3, 8, 2, 9, 4, 0},
	}}
	c, err := Create(g, AlphaNearestNeighbors, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Dimension())
	for v := 0; v < 6; v++ {
		assert.Len(t, c.Neighbors(v), 3)
		assert.NotContains(t, c.Neighbors(v), v)
	}

	c2, err := Create(g, OptimizedAlphaNearestNeighbors, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, c2.Dimension())
}

func TestInvalidK(t *testing.T) {
	_, err := Create(square4(), NearestNeighbors, 0)
	assert.ErrorIs(t, err, ErrInvalidK)
	_, err = Create(square4(), NearestNeighbors, 10)
	assert.ErrorIs(t, err, ErrInvalidK)
}
