package candidate

import "sort"

// rankedNeighbor is a scratch pairing used while sorting candidate
// lists; key1 is the primary sort key (α-distance or raw distance),
// key2 the tie-breaking secondary key (always raw distance).
type rankedNeighbor struct {
	vertex     int
	key1, key2 float64
}

func sortAndTrim(cands []rankedNeighbor, k int) []int {
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].key1 != cands[b].key1 {
			return cands[a].key1 < cands[b].key1
		}
		return cands[a].key2 < cands[b].key2
	})
	if k > 0 && k < len(cands) {
		cands = cands[:k]
	}
	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.vertex
	}
	return out
}

// Create builds a CandidateEdges for the given problem under the
// requested strategy. k is the neighbor-list size for NearestNeighbors
// and the two α-based strategies; it is ignored for AllNeighbors. The
// root vertex used for the underlying 1-tree is fixed at 0, matching
// the teacher's convention of using a canonical distinguished vertex
// when the caller has no reason to prefer another.
func Create(dist Dister, kind Type, k int) (*CandidateEdges, error) {
	n := dist.Dimension()
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if kind != AllNeighbors && (k < 1 || k >= n) {
		return nil, ErrInvalidK
	}

	switch kind {
	case AllNeighbors:
		return allNeighbors(dist)
	case NearestNeighbors:
		return nearestNeighbors(dist, k)
	case AlphaNearestNeighbors:
		return alphaNeighbors(dist, k, false)
	case OptimizedAlphaNearestNeighbors:
		return alphaNeighbors(dist, k, true)
	default:
		return nil, ErrDimensionMismatch
	}
}

func allNeighbors(dist Dister) (*CandidateEdges, error) {
	n := dist.Dimension()
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		list := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				list = append(list, j)
			}
		}
		neighbors[i] = list
	}
	return &CandidateEdges{neighbors: neighbors}, nil
}

func nearestNeighbors(dist Dister, k int) (*CandidateEdges, error) {
	n := dist.Dimension()
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		cands := make([]rankedNeighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := float64(dist.Dist(i, j))
			cands = append(cands, rankedNeighbor{vertex: j, key1: d, key2: d})
		}
		neighbors[i] = sortAndTrim(cands, k)
	}
	return &CandidateEdges{neighbors: neighbors}, nil
}

func alphaNeighbors(dist Dister, k int, optimizePi bool) (*CandidateEdges, error) {
	n := dist.Dimension()
	root := 0
	alpha, err := buildAlphaMatrix(dist, root, optimizePi, DefaultOneTreeConfig())
	if err != nil {
		return nil, err
	}

	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		cands := make([]rankedNeighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, rankedNeighbor{
				vertex: j,
				key1:   alpha[i*n+j],
				key2:   float64(dist.Dist(i, j)),
			})
		}
		neighbors[i] = sortAndTrim(cands, k)
	}
	return &CandidateEdges{neighbors: neighbors}, nil
}
