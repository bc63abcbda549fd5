package tsplib_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplk/tsplib"
)

const sample = `NAME: square4
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
EOF
`

func TestParseAndDist(t *testing.T) {
	// Load exercises the file-path entry point; parse the same text
	// via a temp file to keep the test self-contained.
	dir := t.TempDir()
	path := dir + "/square4.tsp"
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := tsplib.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "square4", p.Name())
	assert.Equal(t, 4, p.Dimension())
	assert.Equal(t, 10, p.Dist(0, 1))
	assert.Equal(t, 14, p.Dist(0, 2))
	assert.Equal(t, 40, p.Length([]int{0, 1, 2, 3}))
}

func TestRandomEuclideanReproducible(t *testing.T) {
	p1, err := tsplib.RandomEuclidean("r1", 20, 100, 100, 7)
	require.NoError(t, err)
	p2, err := tsplib.RandomEuclidean("r2", 20, 100, 100, 7)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			assert.Equal(t, p1.Dist(i, j), p2.Dist(i, j))
		}
	}
}
