// Package driver implements the multi-start wrapper around the
// search engine: it generates a candidate-guided random starting
// tour for each trial, improves it, and tracks the best tour found
// across all trials, exiting early once it is within an acceptable
// error of a known optimum.
package driver

import (
	"errors"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/tsplk/candidate"
	"github.com/katalvlaran/tsplk/lk"
	"github.com/katalvlaran/tsplk/tour"
)

// ErrNoTrials is returned when FindBestTour is asked to run fewer
// than one trial.
var ErrNoTrials = errors.New("driver: numberOfTrials must be >= 1")

// Problem is the collaborator the driver needs beyond what the search
// engine already uses: a way to measure a completed tour's length.
type Problem interface {
	Dimension() int
	Length(t []int) int
}

// Driver runs repeated randomized-start Lin–Kernighan trials and
// keeps the best tour seen. It is not safe for concurrent use: trials
// run strictly sequentially, sharing one RNG stream and one
// best-tour record, matching the single-threaded resource model of
// the search engine it wraps.
type Driver struct {
	problem    Problem
	candidates *candidate.CandidateEdges
	engine     *lk.SearchEngine
	rng        *rand.Rand
	logger     *zap.SugaredLogger

	currentBestTour   *tour.Tour
	currentBestLength int

	observer Observer
}

// Observer receives one notification per completed trial; metrics.Collectors
// satisfies this without driver importing the metrics package.
type Observer interface {
	Observe(startLength, improvedLength, bestLength int)
}

// SetObserver attaches an Observer (e.g. a metrics.Collectors) that
// receives per-trial outcomes. Pass nil to detach.
func (d *Driver) SetObserver(o Observer) {
	d.observer = o
}

// New builds a Driver. logger may be nil, in which case a no-op
// logger is used. seed==0 selects a fixed, reproducible stream.
func New(problem Problem, candidates *candidate.CandidateEdges, engine *lk.SearchEngine, seed int64, logger *zap.SugaredLogger) *Driver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Driver{
		problem:    problem,
		candidates: candidates,
		engine:     engine,
		rng:        rngFromSeed(seed),
		logger:     logger,
	}
}

func (d *Driver) chooseRandomElement(elements []int) int {
	return elements[d.rng.Intn(len(elements))]
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}

// generateRandomTour builds a starting tour by repeatedly extending a
// path from a random vertex, preferring at each step (1) a candidate
// neighbor that also lies on the current best tour, then (2) any
// unplaced candidate neighbor, then (3) any unplaced vertex at all.
func (d *Driver) generateRandomTour() *tour.Tour {
	dimension := d.problem.Dimension()
	remaining := allVertices(dimension)
	inRemaining := make(map[int]bool, dimension)
	for _, v := range remaining {
		inRemaining[v] = true
	}

	order := make([]int, 0, dimension)
	current := d.chooseRandomElement(remaining)
	delete(inRemaining, current)
	remaining = removeValue(remaining, current)
	order = append(order, current)

	var candidatesInBestTour, candidatesList []int
	for len(remaining) > 0 {
		candidatesInBestTour = candidatesInBestTour[:0]
		candidatesList = candidatesList[:0]

		for _, other := range d.candidates.Neighbors(current) {
			if !inRemaining[other] {
				continue
			}
			if d.currentBestTour != nil && d.currentBestTour.ContainsEdge(current, other) {
				candidatesInBestTour = append(candidatesInBestTour, other)
			}
			candidatesList = append(candidatesList, other)
		}

		switch {
		case len(candidatesInBestTour) > 0:
			current = d.chooseRandomElement(candidatesInBestTour)
		case len(candidatesList) > 0:
			current = d.chooseRandomElement(candidatesList)
		default:
			current = d.chooseRandomElement(remaining)
		}

		delete(inRemaining, current)
		remaining = removeValue(remaining, current)
		order = append(order, current)
	}

	t, err := tour.New(order)
	if err != nil {
		panic("driver: generateRandomTour produced a malformed permutation")
	}
	return t
}

func allVertices(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// FindBestTour runs up to numberOfTrials randomized-start trials,
// returning the best tour found. It exits early once the best tour's
// length is within acceptableError of optimumTourLength (a relative
// tolerance: bestLength < (1+acceptableError)*optimumTourLength).
// Pass a non-positive optimumTourLength to disable the early exit.
func (d *Driver) FindBestTour(numberOfTrials int, optimumTourLength int, acceptableError float64) (*tour.Tour, error) {
	if numberOfTrials < 1 {
		return nil, ErrNoTrials
	}

	d.currentBestTour = nil
	d.currentBestLength = math.MaxInt

	for trial := 1; trial <= numberOfTrials; trial++ {
		start := d.generateRandomTour()
		startLength := d.problem.Length(start.Order())

		improved := d.engine.ImproveTour(start, d.currentBestTour)
		improvedLength := d.problem.Length(improved.Order())

		if improvedLength < d.currentBestLength {
			d.currentBestTour = improved
			d.currentBestLength = improvedLength
		}

		d.logger.Debugw("trial complete",
			"trial", trial,
			"startLength", startLength,
			"improvedLength", improvedLength,
			"bestLength", d.currentBestLength,
		)
		if d.observer != nil {
			d.observer.Observe(startLength, improvedLength, d.currentBestLength)
		}

		if optimumTourLength > 0 && float64(d.currentBestLength) < (1+acceptableError)*float64(optimumTourLength) {
			break
		}
	}

	return d.currentBestTour, nil
}

// BestLength returns the length of the best tour found by the most
// recent FindBestTour call.
func (d *Driver) BestLength() int {
	return d.currentBestLength
}
