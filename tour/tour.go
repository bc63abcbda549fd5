// Package tour implements the cyclic tour representation used by the
// search engine: an array-based Hamiltonian cycle over vertices
// 0..n-1 with O(1) neighbor/position lookups and O(n) exchange.
package tour

import (
	"errors"

	"github.com/katalvlaran/tsplk/walk"
)

// ErrDimensionMismatch is returned when a permutation does not have
// exactly the vertices 0..n-1, each exactly once.
var ErrDimensionMismatch = errors.New("tour: permutation must be a 0..n-1 permutation")

// Tour is a Hamiltonian cycle over vertices 0..n-1, stored as an
// explicit visiting order plus its inverse (position) array so that
// Predecessor/Successor/ContainsEdge run in O(1).
type Tour struct {
	order []int // order[k] = vertex visited at step k
	pos   []int // pos[v] = step k at which v is visited; inverse of order
}

// New builds a Tour from a permutation of 0..n-1. It copies the
// permutation; the caller's slice is not retained.
func New(permutation []int) (*Tour, error) {
	n := len(permutation)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	order := make([]int, n)
	copy(order, permutation)

	for k, v := range order {
		if v < 0 || v >= n || pos[v] != -1 {
			return nil, ErrDimensionMismatch
		}
		pos[v] = k
	}

	return &Tour{order: order, pos: pos}, nil
}

// Len returns the number of vertices in the tour.
func (t *Tour) Len() int {
	return len(t.order)
}

// Order returns a copy of the current visiting order.
func (t *Tour) Order() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)
	return out
}

// Clone returns an independent copy of the tour.
func (t *Tour) Clone() *Tour {
	order := make([]int, len(t.order))
	copy(order, t.order)
	pos := make([]int, len(t.pos))
	copy(pos, t.pos)
	return &Tour{order: order, pos: pos}
}

// Successor returns the vertex immediately after v in tour order.
func (t *Tour) Successor(v int) int {
	n := len(t.order)
	return t.order[(t.pos[v]+1)%n]
}

// Predecessor returns the vertex immediately before v in tour order.
func (t *Tour) Predecessor(v int) int {
	n := len(t.order)
	return t.order[(t.pos[v]-1+n)%n]
}

// Neighbors returns v's two tour neighbors, predecessor then successor.
func (t *Tour) Neighbors(v int) [2]int {
	return [2]int{t.Predecessor(v), t.Successor(v)}
}

// ContainsEdge reports whether {v1,v2} is a tour edge.
func (t *Tour) ContainsEdge(v1, v2 int) bool {
	return t.Successor(v1) == v2 || t.Predecessor(v1) == v2
}

// touchedNeighbors computes, for every vertex appearing in the closed
// walk w, its two tour neighbors after removing w's "remove" edges
// (even-indexed steps) and adding its "add" edges (odd-indexed steps).
// It returns nil and false if any touched vertex ends up with a degree
// other than 2, which signals a malformed walk.
func (t *Tour) touchedNeighbors(w walk.AlternatingWalk) (map[int][2]int, bool) {
	type pair struct {
		a, b int
		n    int // how many slots filled
	}
	neigh := make(map[int]*pair)

	get := func(v int) *pair {
		if p, ok := neigh[v]; ok {
			return p
		}
		nb := t.Neighbors(v)
		p := &pair{a: nb[0], b: nb[1], n: 2}
		neigh[v] = p
		return p
	}
	remove := func(v, other int) bool {
		p := get(v)
		switch {
		case p.a == other && p.n > 0:
			p.a = -1
			p.n--
			return true
		case p.b == other && p.n > 0:
			p.b = -1
			p.n--
			return true
		default:
			return false
		}
	}
	add := func(v, other int) bool {
		p := get(v)
		switch {
		case p.n >= 2:
			return false
		case p.a == -1:
			p.a = other
			p.n++
			return true
		case p.b == -1:
			p.b = other
			p.n++
			return true
		default:
			return false
		}
	}

	// All removals first, then all additions: an added edge may land on
	// a vertex whose removed edge comes later in the walk.
	for i := 0; i < w.Len()-1; i += 2 {
		a, b := w.At(i), w.At(i+1)
		if !remove(a, b) || !remove(b, a) {
			return nil, false
		}
	}
	for i := 1; i < w.Len()-1; i += 2 {
		a, b := w.At(i), w.At(i+1)
		if !add(a, b) || !add(b, a) {
			return nil, false
		}
	}

	out := make(map[int][2]int, len(neigh))
	for v, p := range neigh {
		if p.n != 2 {
			return nil, false
		}
		out[v] = [2]int{p.a, p.b}
	}
	return out, true
}

// simulate walks the hypothetical post-exchange adjacency starting at
// the walk's base vertex w.At(0), returning the resulting visiting
// order if it forms a single cycle covering all n vertices.
func (t *Tour) simulate(w walk.AlternatingWalk) ([]int, bool) {
	touched, ok := t.touchedNeighbors(w)
	if !ok {
		return nil, false
	}

	neighborsOf := func(v int) [2]int {
		if nb, ok := touched[v]; ok {
			return nb
		}
		return t.Neighbors(v)
	}

	n := len(t.order)
	order := make([]int, 0, n)
	start := w.At(0)
	prev, cur := -1, start
	for {
		order = append(order, cur)
		nb := neighborsOf(cur)
		var next int
		if nb[0] != prev {
			next = nb[0]
		} else {
			next = nb[1]
		}
		prev, cur = order[len(order)-1], next
		if cur == start {
			break
		}
		if len(order) > n {
			// cycled without returning to start within budget: not a
			// single Hamiltonian cycle.
			return nil, false
		}
	}
	if len(order) != n {
		return nil, false
	}
	return order, true
}

// IsTourAfterExchange reports whether applying the closed alternating
// walk w (removing its even-indexed edges, adding its odd-indexed
// edges) to this tour yields a single Hamiltonian cycle.
func (t *Tour) IsTourAfterExchange(w walk.AlternatingWalk) bool {
	_, ok := t.simulate(w)
	return ok
}

// Exchange applies the closed alternating walk w to the tour in
// place. Callers must have already confirmed IsTourAfterExchange(w);
// Exchange panics if the walk does not yield a feasible tour, since
// that indicates the caller violated its contract.
func (t *Tour) Exchange(w walk.AlternatingWalk) {
	order, ok := t.simulate(w)
	if !ok {
		panic("tour: Exchange called with a walk that does not yield a Hamiltonian cycle")
	}
	for k, v := range order {
		t.order[k] = v
		t.pos[v] = k
	}
}
