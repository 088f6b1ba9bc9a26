// Package graph provides the two graph representations the solver needs:
// DenseGraph, a per-vertex bit-complement-neighbourhood used by the
// bit-parallel clique search, and SparseGraph, an adjacency-list form
// owned by the reduction pipeline. VtxList is the shared incumbent /
// candidate-set container used by both the clique search and the local
// search helper.
package graph

import "github.com/basiutekk/peatyvc/bitset"

// DenseGraph holds, for every vertex v, its bit-complement-neighbourhood
// Comp[v]: the bit-set of vertices that are NOT adjacent to v in this
// graph, minus v itself. The clique search branches with P ∩ ¬Comp[v]
// (vertices adjacent to everything chosen so far), while the colouring
// bound grows its classes with P ∩ Comp[v] (sets of pairwise
// non-adjacent vertices, of which any clique can contain at most one).
//
// Invariants: Comp[v][v] = 0, Comp[v][u] = Comp[u][v], and bits at
// positions >= N are zero.
//
// DenseGraph is immutable after construction within a single search: it
// is rebuilt once per connected component and then referenced read-only
// by the colouring oracle and the B&B driver.
type DenseGraph struct {
	N        int          // vertex count
	NumWords int          // ceil(N/64)
	Weight   []int64      // per-vertex weight, length N
	Comp     []bitset.Set // Comp[v] = bit-complement-neighbourhood of v, length N
}

// NewDenseGraph returns an edgeless DenseGraph on n vertices (every
// Comp[v] full except the diagonal) with every weight zero. Callers
// populate edges with AddEdge/RemoveEdge and weights directly.
func NewDenseGraph(n int) *DenseGraph {
	g := &DenseGraph{
		N:        n,
		NumWords: bitset.Words(n),
		Weight:   make([]int64, n),
		Comp:     make([]bitset.Set, n),
	}
	for v := 0; v < n; v++ {
		g.Comp[v] = bitset.New(n)
		bitset.SetFirstNBits(g.Comp[v], n)
		bitset.UnsetBit(g.Comp[v], v)
	}
	return g
}

// AddEdge makes v and w adjacent: clear the corresponding bit in each
// other's bit-complement-neighbourhood.
func (g *DenseGraph) AddEdge(v, w int) {
	bitset.UnsetBit(g.Comp[v], w)
	bitset.UnsetBit(g.Comp[w], v)
}

// RemoveEdge makes v and w non-adjacent: set the corresponding bit in
// each other's bit-complement-neighbourhood.
func (g *DenseGraph) RemoveEdge(v, w int) {
	bitset.SetBit(g.Comp[v], w)
	bitset.SetBit(g.Comp[w], v)
}
