package tsplib

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by DistanceMatrix.At/Set for an
// out-of-bounds (row, col) pair.
var ErrOutOfRange = errors.New("tsplib: index out of range")

// DistanceMatrix is a dense, row-major n×n float64 container: the
// only storage tsplib needs to hold pairwise vertex distances, loaded
// from a TSPLIB coordinate section or built directly by a caller.
type DistanceMatrix struct {
	rows, cols int
	data       []float64
}

// NewDistanceMatrix allocates a zero-filled rows×cols matrix.
func NewDistanceMatrix(rows, cols int) (*DistanceMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrDimensionMismatch
	}
	return &DistanceMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *DistanceMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *DistanceMatrix) Cols() int { return m.cols }

// At returns the value at (row, col), or ErrOutOfRange.
func (m *DistanceMatrix) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set stores v at (row, col), or returns ErrOutOfRange.
func (m *DistanceMatrix) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

func (m *DistanceMatrix) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("DistanceMatrix(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}
