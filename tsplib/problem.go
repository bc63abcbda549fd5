// Package tsplib provides the Problem collaborator: a distance
// function over vertices 0..n-1, loaded either from a TSPLIB-subset
// text file or built directly from an in-memory distance matrix.
package tsplib

import (
	"errors"

	"github.com/katalvlaran/tsplk/walk"
)

// ErrDimensionMismatch is returned when a supplied matrix or
// coordinate list is not square / not of the declared dimension.
var ErrDimensionMismatch = errors.New("tsplib: dimension mismatch")

// Problem is the read-only collaborator the search engine and driver
// query for distances, tour length, and exchange gain. It never
// mutates, and is safe to share across sequential trials.
type Problem struct {
	name string
	dist *DistanceMatrix
}

// Dimension returns the number of vertices, n.
func (p *Problem) Dimension() int {
	return p.dist.Rows()
}

// Name returns the problem's display name (may be empty).
func (p *Problem) Name() string {
	return p.name
}

// Dist returns the integer distance between vertices i and j.
// Distances loaded from a TSPLIB file are already integral (rounded to
// nearest for EUC_2D, rounded up for CEIL_2D and ATT); a non-integer
// entry in a caller-built matrix is truncated toward zero.
func (p *Problem) Dist(i, j int) int {
	v, err := p.dist.At(i, j)
	if err != nil {
		panic("tsplib: Dist called with out-of-range vertex")
	}
	return int(v)
}

// Length returns the total length of a closed tour given as a
// permutation of 0..n-1.
func (p *Problem) Length(t []int) int {
	n := len(t)
	total := 0
	for i := 0; i < n; i++ {
		total += p.Dist(t[i], t[(i+1)%n])
	}
	return total
}

// ExchangeGain returns the total gain of a closed alternating walk:
// the sum of distances on its removed (even-indexed) edges minus the
// sum of distances on its added (odd-indexed) edges.
func (p *Problem) ExchangeGain(w walk.AlternatingWalk) int {
	gain := 0
	for i := 0; i < w.Len()-1; i++ {
		d := p.Dist(w.At(i), w.At(i+1))
		if i%2 == 0 {
			gain += d
		} else {
			gain -= d
		}
	}
	return gain
}

// NewFromMatrix builds a Problem directly from a pre-built distance
// matrix, named name.
func NewFromMatrix(name string, dist *DistanceMatrix) (*Problem, error) {
	if dist == nil || dist.Rows() != dist.Cols() || dist.Rows() <= 0 {
		return nil, ErrDimensionMismatch
	}
	return &Problem{name: name, dist: dist}, nil
}
