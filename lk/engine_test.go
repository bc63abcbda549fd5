package lk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplk/candidate"
	"github.com/katalvlaran/tsplk/lk"
	"github.com/katalvlaran/tsplk/tour"
	"github.com/katalvlaran/tsplk/tsplib"
)

// square builds a unit-square instance (scaled by 10) where the
// crossing tour 0-2-1-3-0 is strictly worse than 0-1-2-3-0.
func square(t *testing.T) *tsplib.Problem {
	t.Helper()
	d, err := tsplib.NewDistanceMatrix(4, 4)
	require.NoError(t, err)
	dist := [4][4]float64{
		{0, 10, 14, 10},
		{10, 0, 10, 14},
		{14, 10, 0, 10},
		{10, 14, 10, 0},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, d.Set(i, j, dist[i][j]))
		}
	}
	p, err := tsplib.NewFromMatrix("square", d)
	require.NoError(t, err)
	return p
}

func TestImproveTourUncrossesSquare(t *testing.T) {
	problem := square(t)
	cands, err := candidate.Create(problem, candidate.AllNeighbors, 0)
	require.NoError(t, err)

	start, err := tour.New([]int{0, 2, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 48, problem.Length(start.Order()))

	engine := lk.NewSearchEngine(problem, cands)
	result := engine.ImproveTour(start, nil)

	require.Equal(t, 40, problem.Length(result.Order()))
	// start must remain untouched
	require.Equal(t, 48, problem.Length(start.Order()))
}

func TestImproveTourNoOpOnOptimalTour(t *testing.T) {
	problem := square(t)
	cands, err := candidate.Create(problem, candidate.AllNeighbors, 0)
	require.NoError(t, err)

	start, err := tour.New([]int{0, 1, 2, 3})
	require.NoError(t, err)

	engine := lk.NewSearchEngine(problem, cands)
	result := engine.ImproveTour(start, nil)

	require.Equal(t, 40, problem.Length(result.Order()))
}
