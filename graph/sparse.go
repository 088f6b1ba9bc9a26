package graph

import "sort"

// SparseGraph is an adjacency-list graph owned by the reduction pipeline.
// Adjacency is kept symmetric by construction: AddEdge always appends to
// both endpoints' lists. Self-loops are tracked separately in HasLoop and
// never appear in Adj.
type SparseGraph struct {
	N       int
	Adj     [][]int
	Weight  []int64
	HasLoop []bool
}

// NewSparseGraph returns an empty SparseGraph on n vertices, every weight
// defaulting to 1 (the unweighted case).
func NewSparseGraph(n int) *SparseGraph {
	adj := make([][]int, n)
	weight := make([]int64, n)
	for i := range weight {
		weight[i] = 1
	}
	return &SparseGraph{N: n, Adj: adj, Weight: weight, HasLoop: make([]bool, n)}
}

// Clone returns a deep copy of g, independent of any further mutation.
// The reduction pipeline mutates its graph in place, so callers that need
// to validate a solution against the original, pre-reduction adjacency
// (as the solver does) must clone before handing a graph to the pipeline.
func (g *SparseGraph) Clone() *SparseGraph {
	out := &SparseGraph{
		N:       g.N,
		Adj:     make([][]int, g.N),
		Weight:  append([]int64(nil), g.Weight...),
		HasLoop: append([]bool(nil), g.HasLoop...),
	}
	for v, adj := range g.Adj {
		out.Adj[v] = append([]int(nil), adj...)
	}
	return out
}

// AddLoop marks v as carrying a self-loop: v must be in every valid cover.
func (g *SparseGraph) AddLoop(v int) {
	g.HasLoop[v] = true
}

// AddEdge adds the undirected edge {v, w} to both adjacency lists.
func (g *SparseGraph) AddEdge(v, w int) {
	g.Adj[v] = append(g.Adj[v], w)
	g.Adj[w] = append(g.Adj[w], v)
}

// HasEdge reports whether v and w are adjacent, searching whichever
// adjacency list is shorter.
func (g *SparseGraph) HasEdge(v, w int) bool {
	if len(g.Adj[w]) < len(g.Adj[v]) {
		v, w = w, v
	}
	for _, u := range g.Adj[v] {
		if u == w {
			return true
		}
	}
	return false
}

// VVAreClique reports whether every pair of distinct vertices in vv is
// adjacent. Quadratic in len(vv); callers only pass small neighbourhoods.
func (g *SparseGraph) VVAreClique(vv []int) bool {
	for i := 0; i < len(vv); i++ {
		for j := i + 1; j < len(vv); j++ {
			if !g.HasEdge(vv[i], vv[j]) {
				return false
			}
		}
	}
	return true
}

// RemoveEdgesIncidentToLoopyVertices empties the adjacency list of every
// loopy vertex, and strips every reference to a loopy vertex from the
// remaining lists. The reduction pipeline forces every loopy vertex into
// the cover right after calling this, so their incident edges are
// covered and can be dropped.
func (g *SparseGraph) RemoveEdgesIncidentToLoopyVertices() {
	for v := 0; v < g.N; v++ {
		if g.HasLoop[v] {
			g.Adj[v] = nil
			continue
		}
		kept := g.Adj[v][:0]
		for _, w := range g.Adj[v] {
			if !g.HasLoop[w] {
				kept = append(kept, w)
			}
		}
		g.Adj[v] = kept
	}
}

// SortAdjLists sorts every adjacency list ascending.
func (g *SparseGraph) SortAdjLists() {
	for _, lst := range g.Adj {
		sort.Ints(lst)
	}
}

// InducedSubgraph returns the subgraph induced by vv, renumbered so that
// vv[i] becomes vertex i in the result. Only edges with both endpoints in
// vv survive.
func (g *SparseGraph) InducedSubgraph(vv []int) *SparseGraph {
	oldToNew := make([]int, g.N)
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	for i, v := range vv {
		oldToNew[v] = i
	}

	sub := NewSparseGraph(len(vv))
	for _, oldV := range vv {
		newV := oldToNew[oldV]
		for _, oldW := range g.Adj[oldV] {
			if oldW > oldV {
				continue
			}
			if newW := oldToNew[oldW]; newW != -1 {
				sub.AddEdge(newV, newW)
			}
		}
	}
	for i, v := range vv {
		sub.Weight[i] = g.Weight[v]
		sub.HasLoop[i] = g.HasLoop[v]
	}
	return sub
}

// ComplementOfInducedSubgraph returns a DenseGraph whose edges are
// exactly the non-edges of the subgraph induced by vv (self-loops are
// excluded, since a vertex is never its own neighbour in either graph).
// A clique in the result corresponds to an independent set of the
// induced subgraph, and the result's Comp[v] holds exactly the
// neighbours of vv[v] within vv.
func (g *SparseGraph) ComplementOfInducedSubgraph(vv []int) *DenseGraph {
	oldToNew := make([]int, g.N)
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	for i, v := range vv {
		oldToNew[v] = i
	}

	sub := NewDenseGraph(len(vv))
	for i := 0; i < len(vv); i++ {
		for j := 0; j < i; j++ {
			sub.AddEdge(i, j)
		}
	}
	for oldV, newV := range oldToNew {
		if newV == -1 {
			continue
		}
		for _, oldW := range g.Adj[oldV] {
			if oldW > oldV {
				continue
			}
			if newW := oldToNew[oldW]; newW != -1 {
				sub.RemoveEdge(newV, newW)
			}
		}
	}
	for i, v := range vv {
		sub.Weight[i] = g.Weight[v]
	}
	return sub
}
