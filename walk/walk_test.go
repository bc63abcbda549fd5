package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndClose(t *testing.T) {
	w := AlternatingWalk{0, 1, 2}
	closed := w.AppendAndClose(3)
	require.Equal(t, AlternatingWalk{0, 1, 2, 3, 0}, closed)
	// original untouched
	assert.Equal(t, AlternatingWalk{0, 1, 2}, w)
}

func TestClose(t *testing.T) {
	w := AlternatingWalk{0, 1, 2, 3}
	assert.Equal(t, AlternatingWalk{0, 1, 2, 3, 0}, w.Close())
}

func TestContainsEdge(t *testing.T) {
	w := AlternatingWalk{0, 1, 2, 3}
	assert.True(t, w.ContainsEdge(0, 1))
	assert.True(t, w.ContainsEdge(1, 0))
	assert.True(t, w.ContainsEdge(2, 3))
	assert.False(t, w.ContainsEdge(0, 2))
	assert.False(t, w.ContainsEdge(0, 3))
}

func TestAppendTruncate(t *testing.T) {
	w := AlternatingWalk{0, 1}
	w2 := w.Append(2)
	require.Equal(t, AlternatingWalk{0, 1, 2}, w2)
	assert.Equal(t, AlternatingWalk{0, 1}, w2.Truncate(2))
}
