package candidate

import (
	"math"
	"time"
)

// Dister is the distance collaborator candidate needs: a dimension
// and a symmetric integer distance function. tsplib.Problem satisfies
// this without candidate importing tsplib's concrete type.
type Dister interface {
	Dimension() int
	Dist(i, j int) int
}

// OneTreeConfig controls the subgradient loop used to optimize the
// 1-tree's vertex multipliers before deriving α-distances.
type OneTreeConfig struct {
	// MaxIter bounds the subgradient loop (ignored for the
	// unoptimized/plain 1-tree used by AlphaNearestNeighbors).
	MaxIter int
	// Alpha is the step-size scale, in (0, 2).
	Alpha float64
	// TimeLimit bounds wall-clock time spent optimizing; 0 disables it.
	TimeLimit time.Duration
}

// DefaultOneTreeConfig mirrors the teacher engine's conservative
// defaults for the subgradient loop.
func DefaultOneTreeConfig() OneTreeConfig {
	return OneTreeConfig{MaxIter: 32, Alpha: 0.9, TimeLimit: 0}
}

// oneTreeEngine builds minimum 1-trees on reduced costs and tracks
// enough tree structure (Prim parent pointers, depths, edge costs) to
// answer "maximum reduced-cost edge on the tree path between u and v"
// queries, which the α-nearness formula needs for non-root pairs.
type oneTreeEngine struct {
	n    int
	root int
	w    []float64 // dense original distances, n*n
	pi   []float64 // vertex multipliers

	inTree []bool
	parent []int
	key    []float64

	deg          []int
	depth        []int
	edgeToParent []float64 // reduced cost of (v, parent[v])
	treeStart    int

	m1, m2     float64
	m1To, m2To int
}

func newOneTreeEngine(n, root int, w []float64) *oneTreeEngine {
	return &oneTreeEngine{
		n:            n,
		root:         root,
		w:            w,
		pi:           make([]float64, n),
		inTree:       make([]bool, n),
		parent:       make([]int, n),
		key:          make([]float64, n),
		deg:          make([]int, n),
		depth:        make([]int, n),
		edgeToParent: make([]float64, n),
	}
}

func (e *oneTreeEngine) reduced(u, v int) float64 {
	return e.w[u*e.n+v] + e.pi[u] + e.pi[v]
}

// build constructs the minimum 1-tree on current reduced costs: an
// (n-1)-vertex MST over V\{root} via Prim, plus the two cheapest
// root-incident edges. It fills deg/parent/depth/edgeToParent and the
// two root-edge fields, and returns the reduced-cost total.
func (e *oneTreeEngine) build() (float64, error) {
	inf := math.Inf(1)
	for i := 0; i < e.n; i++ {
		e.deg[i] = 0
		e.inTree[i] = false
		e.parent[i] = -1
		e.key[i] = inf
	}

	start := 0
	if start == e.root {
		start = 1
	}
	e.treeStart = start
	e.key[start] = 0

	var costReduced float64
	for iter := 0; iter < e.n-1; iter++ {
		best := -1
		for v := 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] || (e.key[v] == e.key[best] && v < best) {
				best = v
			}
		}
		if best == -1 || math.IsInf(e.key[best], 0) {
			return 0, ErrIncompleteGraph
		}
		e.inTree[best] = true
		if e.parent[best] != -1 {
			u := e.parent[best]
			c := e.reduced(best, u)
			costReduced += c
			e.deg[best]++
			e.deg[u]++
			e.edgeToParent[best] = c
			e.depth[best] = e.depth[u] + 1
		}
		for v := 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] || v == best {
				continue
			}
			c := e.reduced(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	m1, m2 := inf, inf
	m1To, m2To := -1, -1
	for v := 0; v < e.n; v++ {
		if v == e.root {
			continue
		}
		c := e.reduced(e.root, v)
		if c < m1 || (c == m1 && v < m1To) {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 || (c == m2 && v < m2To) {
			m2, m2To = c, v
		}
	}
	if math.IsInf(m1, 0) || math.IsInf(m2, 0) {
		return 0, ErrIncompleteGraph
	}
	costReduced += m1 + m2
	e.deg[e.root] += 2
	e.deg[m1To]++
	e.deg[m2To]++
	e.m1, e.m2, e.m1To, e.m2To = m1, m2, m1To, m2To

	return costReduced, nil
}

// optimize runs the subgradient ascent used by
// OptimizedAlphaNearestNeighbors; it rebuilds the 1-tree at most
// cfg.MaxIter times, nudging pi towards degree-2 feasibility.
func (e *oneTreeEngine) optimize(cfg OneTreeConfig) error {
	var deadline time.Time
	useDeadline := cfg.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	for iter := 0; iter < cfg.MaxIter; iter++ {
		if useDeadline && time.Now().After(deadline) {
			return nil
		}
		if _, err := e.build(); err != nil {
			return err
		}
		norm2 := 0.0
		for i := 0; i < e.n; i++ {
			d := float64(e.deg[i] - 2)
			norm2 += d * d
		}
		if norm2 == 0 {
			return nil
		}
		step := cfg.Alpha / (1.0 + float64(iter))
		if step == 0 {
			return nil
		}
		for i := 0; i < e.n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}
	}
	return nil
}

// maxOnTreePath returns the maximum reduced-cost edge on the MST path
// between u and v (both != root), via a naive ancestor walk. Neither
// u nor v is required to be in the deeper subtree of the other.
func (e *oneTreeEngine) maxOnTreePath(u, v int) float64 {
	// Bring both to the same depth, tracking the max edge along the way.
	max := math.Inf(-1)
	for e.depth[u] > e.depth[v] {
		if e.edgeToParent[u] > max {
			max = e.edgeToParent[u]
		}
		u = e.parent[u]
	}
	for e.depth[v] > e.depth[u] {
		if e.edgeToParent[v] > max {
			max = e.edgeToParent[v]
		}
		v = e.parent[v]
	}
	for u != v {
		if e.edgeToParent[u] > max {
			max = e.edgeToParent[u]
		}
		if e.edgeToParent[v] > max {
			max = e.edgeToParent[v]
		}
		u = e.parent[u]
		v = e.parent[v]
	}
	return max
}

func (e *oneTreeEngine) isTreeEdge(i, j int) bool {
	if i == e.root {
		return j == e.m1To || j == e.m2To
	}
	if j == e.root {
		return i == e.m1To || i == e.m2To
	}
	return e.parent[i] == j || e.parent[j] == i
}

// alpha returns α(i,j): the cost of forcing edge (i,j) into the
// minimum 1-tree, minus the 1-tree's own reduced cost. Zero for tree
// edges.
func (e *oneTreeEngine) alpha(i, j int) float64 {
	if i == j {
		return 0
	}
	if e.isTreeEdge(i, j) {
		return 0
	}
	if i == e.root || j == e.root {
		v := i
		if i == e.root {
			v = j
		}
		return e.reduced(e.root, v) - e.m2
	}
	return e.reduced(i, j) - e.maxOnTreePath(i, j)
}

// buildAlphaMatrix runs a 1-tree computation (optimizing multipliers
// first when optimizePi is true) and returns the full α-distance
// matrix, flattened row-major like the teacher's dense weight arrays.
func buildAlphaMatrix(dist Dister, root int, optimizePi bool, cfg OneTreeConfig) ([]float64, error) {
	n := dist.Dimension()
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if root < 0 || root >= n {
		return nil, ErrDimensionMismatch
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w[i*n+j] = float64(dist.Dist(i, j))
			}
		}
	}

	eng := newOneTreeEngine(n, root, w)
	var err error
	if optimizePi {
		err = eng.optimize(cfg)
		if err == nil {
			// optimize may stop right after a multiplier update; rebuild
			// so the tree matches the final multipliers.
			_, err = eng.build()
		}
	} else {
		_, err = eng.build()
	}
	if err != nil {
		return nil, err
	}

	alpha := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				alpha[i*n+j] = eng.alpha(i, j)
			}
		}
	}
	return alpha, nil
}
