package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplk/walk"
)

func square(t *testing.T) *Tour {
	t.Helper()
	tr, err := New([]int{0, 1, 2, 3})
	require.NoError(t, err)
	return tr
}

func TestNeighbors(t *testing.T) {
	tr := square(t)
	assert.Equal(t, 1, tr.Successor(0))
	assert.Equal(t, 3, tr.Predecessor(0))
	assert.Equal(t, [2]int{3, 1}, tr.Neighbors(0))
}

func TestContainsEdge(t *testing.T) {
	tr := square(t)
	assert.True(t, tr.ContainsEdge(0, 1))
	assert.True(t, tr.ContainsEdge(3, 0))
	assert.False(t, tr.ContainsEdge(0, 2))
}

func TestExchangeTwoOpt(t *testing.T) {
	// tour 0-1-2-3-0; a 2-opt move via alternating walk (0,1,2,3)
	// closed removes (0,1) and (2,3), adds (1,2) and (3,0) -- that's
	// a no-op reconnection equal to the original tour's reverse, so
	// instead build a genuine improving move on a 5-cycle.
	tr, err := New([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	w := walk.AlternatingWalk{0, 1, 3, 2}.Close() // removes (0,1),(3,2); adds (1,3),(2,0)
	ok := tr.IsTourAfterExchange(w)
	require.True(t, ok)
	tr.Exchange(w)

	assert.True(t, tr.ContainsEdge(1, 3))
	assert.True(t, tr.ContainsEdge(2, 0))
	assert.False(t, tr.ContainsEdge(0, 1))
	assert.Equal(t, 5, tr.Len())
}

func TestIsTourAfterExchangeRejectsSubtours(t *testing.T) {
	tr, err := New([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	// Removing (2,3) and (5,0), adding (3,5) and (0,2) closes each
	// half of the cycle on itself -- 0-1-2-0 and 3-4-5-3 -- two
	// disjoint 3-cycles instead of one Hamiltonian 6-cycle.
	w := walk.AlternatingWalk{2, 3, 5, 0}.Close()
	assert.False(t, tr.IsTourAfterExchange(w))
}
