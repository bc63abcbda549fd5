package tsplib

import "math/rand"

// RandomEuclidean builds a random Euclidean instance of n cities
// drawn uniformly from [0,width]x[0,height]. seed==0 selects a fixed,
// reproducible stream, matching the driver package's RNG policy.
func RandomEuclidean(name string, n int, width, height float64, seed int64) (*Problem, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	s := seed
	if s == 0 {
		s = 1
	}
	rng := rand.New(rand.NewSource(s))

	coords := make([][2]float64, n)
	for i := range coords {
		coords[i] = [2]float64{rng.Float64() * width, rng.Float64() * height}
	}

	dense, err := buildDistanceMatrix(coords, euc2D)
	if err != nil {
		return nil, err
	}
	return NewFromMatrix(name, dense)
}
