package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplk/candidate"
	"github.com/katalvlaran/tsplk/driver"
	"github.com/katalvlaran/tsplk/lk"
	"github.com/katalvlaran/tsplk/tsplib"
)

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

func TestFindBestTourReachesOptimum(t *testing.T) {
	problem := square(t)
	cands, err := candidate.Create(problem, candidate.AllNeighbors, 0)
	require.NoError(t, err)
	engine := lk.NewSearchEngine(problem, cands)

	d := driver.New(problem, cands, engine, 42, nil)
	best, err := d.FindBestTour(5, 40, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 40, problem.Length(best.Order()))
	assert.Equal(t, 40, d.BestLength())
}

func TestFindBestTourRejectsZeroTrials(t *testing.T) {
	problem := square(t)
	cands, err := candidate.Create(problem, candidate.AllNeighbors, 0)
	require.NoError(t, err)
	engine := lk.NewSearchEngine(problem, cands)

	d := driver.New(problem, cands, engine, 1, nil)
	_, err = d.FindBestTour(0, 40, 0.0)
	assert.ErrorIs(t, err, driver.ErrNoTrials)
}
