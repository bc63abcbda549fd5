// Package lk implements the depth-bounded backtracking Lin–Kernighan
// search: SearchEngine.ImproveTour repeatedly extends an alternating
// walk, applies the best strictly-gainful feasible exchange it finds,
// and restarts from a fresh first-edge choice until no exchange
// improves the tour further.
package lk

import (
	"fmt"

	"github.com/katalvlaran/tsplk/candidate"
	"github.com/katalvlaran/tsplk/tour"
	"github.com/katalvlaran/tsplk/walk"
)

// backtrackingDepth bounds how far a failed branch backtracks: on
// exhaustion at depth i>0 the search resumes at min(i-1,
// backtrackingDepth), never deeper than this constant.
const backtrackingDepth = 5

// infeasibilityDepth is the depth up to which newly-added candidate
// vertices are accepted without an expensive feasibility check —
// early in the walk, almost every extension is still repairable.
const infeasibilityDepth = 2

// Problem is the distance/gain collaborator ImproveTour needs.
// tsplib.Problem satisfies this.
type Problem interface {
	Dimension() int
	Dist(i, j int) int
	ExchangeGain(w walk.AlternatingWalk) int
}

// SearchEngine runs the bounded backtracking search over a fixed
// problem instance and candidate-edge list. It holds no per-trial
// state; callers may reuse one SearchEngine across many ImproveTour
// calls (the driver's multi-start loop does exactly this).
type SearchEngine struct {
	problem    Problem
	candidates *candidate.CandidateEdges
}

// NewSearchEngine builds a SearchEngine over problem, restricting the
// "add" side of every odd-depth extension to candidates.
func NewSearchEngine(problem Problem, candidates *candidate.CandidateEdges) *SearchEngine {
	return &SearchEngine{problem: problem, candidates: candidates}
}

func allVertices(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

func invariantPanic(i int, gotChoices, gotWalk int) {
	panic(fmt.Sprintf("lk: invariant violated at depth %d: len(vertexChoices)=%d (want %d), len(currentWalk)=%d (want %d)",
		i, gotChoices, i+1, gotWalk, i))
}

// ImproveTour runs the bounded backtracking search starting from
// start, applying the best strictly-gainful feasible exchange found in
// each pass until a pass finds none, and returns the resulting tour. start is not
// modified. currentBest, which may be nil, is consulted only to
// diversify the very first edge broken (spec's first-edge
// diversification rule): once a best tour exists across trials, the
// very first edge is never chosen from that best tour's own edges.
func (e *SearchEngine) ImproveTour(start *tour.Tour, currentBest *tour.Tour) *tour.Tour {
	dimension := e.problem.Dimension()
	currentTour := start.Clone()

	for {
		vertexChoices := make([][]int, 1, backtrackingDepth+2)
		vertexChoices[0] = allVertices(dimension)
		var currentWalk walk.AlternatingWalk
		var bestWalk walk.AlternatingWalk
		highestGain := 0
		i := 0

		for {
			if len(vertexChoices) != i+1 || currentWalk.Len() != i {
				invariantPanic(i, len(vertexChoices), currentWalk.Len())
			}

			if len(vertexChoices[i]) == 0 {
				if highestGain > 0 {
					currentTour.Exchange(bestWalk)
					break
				}
				if i == 0 {
					return currentTour
				}
				i = min(i-1, backtrackingDepth)
				vertexChoices = vertexChoices[:i+1]
				currentWalk = currentWalk.Truncate(i)
				continue
			}

			last := len(vertexChoices[i]) - 1
			v := vertexChoices[i][last]
			vertexChoices[i] = vertexChoices[i][:last]
			currentWalk = currentWalk.Append(v)

			if i%2 == 1 && i >= 3 {
				closed := currentWalk.Close()
				if gain := e.problem.ExchangeGain(closed); gain > highestGain && currentTour.IsTourAfterExchange(closed) {
					bestWalk = closed
					highestGain = gain
				}
			}

			xi := currentWalk.At(i)
			var next []int

			if i%2 == 1 { // odd depth: choose the next "in" (added) edge from candidates
				currentGain := e.problem.ExchangeGain(currentWalk)
				pred, succ := currentTour.Predecessor(xi), currentTour.Successor(xi)
				for _, x := range e.candidates.Neighbors(xi) {
					if x == currentWalk.At(0) || x == pred || x == succ {
						continue
					}
					if currentWalk.ContainsEdge(xi, x) {
						continue
					}
					if currentGain-e.problem.Dist(xi, x) > highestGain {
						next = append(next, x)
					}
				}
			} else { // even depth: choose the next "out" (removed) edge from tour neighbors
				nb := currentTour.Neighbors(xi)
				switch {
				case i == 0 && currentBest != nil:
					// The first broken edge must not already lie on the
					// best tour found so far, to diversify restarts.
					x0Pred, x0Succ := currentBest.Predecessor(currentWalk.At(0)), currentBest.Successor(currentWalk.At(0))
					for _, neighbor := range nb {
						if neighbor != currentWalk.At(0) && neighbor != x0Pred && neighbor != x0Succ {
							next = append(next, neighbor)
						}
					}
				case i <= infeasibilityDepth:
					for _, neighbor := range nb {
						if neighbor != currentWalk.At(0) && !currentWalk.ContainsEdge(xi, neighbor) {
							next = append(next, neighbor)
						}
					}
				default:
					for _, neighbor := range nb {
						if neighbor != currentWalk.At(0) &&
							!currentWalk.ContainsEdge(xi, neighbor) &&
							neighbor != currentWalk.At(1) &&
							currentTour.IsTourAfterExchange(currentWalk.AppendAndClose(neighbor)) {
							next = append(next, neighbor)
						}
					}
				}
			}

			vertexChoices = append(vertexChoices, next)
			i++
		}
	}
}
