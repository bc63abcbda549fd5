// Package walk implements the alternating walk, the sequence of
// vertices a Lin–Kernighan move builds up as x_0, x_1, x_2, ... where,
// counting edges from 0, the even-indexed edges (x_0,x_1), (x_2,x_3),
// ... are removed from the current tour and the odd-indexed edges
// (x_1,x_2), (x_3,x_4), ... are added.
package walk

// AlternatingWalk is the vertex sequence x_0, x_1, ..., x_k of an
// in-progress or completed Lin–Kernighan move. It is a plain value
// type backed by a slice; callers own copies the way they own any
// other slice-backed value in this codebase.
type AlternatingWalk []int

// Len returns the number of vertices currently in the walk.
func (w AlternatingWalk) Len() int {
	return len(w)
}

// At returns the vertex at position i.
func (w AlternatingWalk) At(i int) int {
	return w[i]
}

// Append returns a new walk with vertex appended. Callers that build a
// walk incrementally during search use this rather than mutating a
// shared backing array across backtracking branches.
func (w AlternatingWalk) Append(vertex int) AlternatingWalk {
	result := make(AlternatingWalk, len(w)+1)
	copy(result, w)
	result[len(w)] = vertex
	return result
}

// Truncate returns the first n vertices of the walk.
func (w AlternatingWalk) Truncate(n int) AlternatingWalk {
	out := make(AlternatingWalk, n)
	copy(out, w[:n])
	return out
}

// Pop returns a copy of the walk with its last vertex removed.
func (w AlternatingWalk) Pop() AlternatingWalk {
	return w.Truncate(len(w) - 1)
}

// Close returns a copy of the walk with x_0 appended at the end,
// turning the open walk x_0..x_k into the closed cycle x_0..x_k,x_0.
func (w AlternatingWalk) Close() AlternatingWalk {
	result := make(AlternatingWalk, len(w)+1)
	copy(result, w)
	result[len(w)] = w[0]
	return result
}

// AppendAndClose returns a copy of the walk with vertex appended and
// then x_0 appended after it, i.e. x_0..x_k,vertex,x_0.
func (w AlternatingWalk) AppendAndClose(vertex int) AlternatingWalk {
	result := make(AlternatingWalk, len(w)+2)
	copy(result, w)
	result[len(w)] = vertex
	result[len(w)+1] = w[0]
	return result
}

// ContainsEdge reports whether the walk, read as a path
// x_0-x_1-x_2-...-x_k, contains the undirected edge {v1,v2}.
func (w AlternatingWalk) ContainsEdge(v1, v2 int) bool {
	for i := 0; i < len(w)-1; i++ {
		if (w[i] == v1 && w[i+1] == v2) || (w[i] == v2 && w[i+1] == v1) {
			return true
		}
	}
	return false
}
