// Package fchrom implements the f-fold graph colouring search the solver
// uses as a fractional-chromatic-number oracle: for the smallest feasible
// palette size k, every vertex receives f distinct colours with no colour
// shared by two conflicting vertices. Conflicts run between NON-adjacent
// vertices of the input, so the answer divided by f upper-bounds the
// input's maximum independent set.
package fchrom

// ColouringGraph is a dense adjacency-matrix-plus-adjacency-list graph,
// separate from graph.DenseGraph: the search here walks every vertex's
// adjacency list on every unit-propagation step, so a plain slice of
// neighbours is more convenient than a bit-complement-neighbourhood.
type ColouringGraph struct {
	N         int
	AdjMatrix [][]bool
	AdjList   [][]int
}

// NewColouringGraph returns an edgeless graph on n vertices.
func NewColouringGraph(n int) *ColouringGraph {
	adjMatrix := make([][]bool, n)
	for i := range adjMatrix {
		adjMatrix[i] = make([]bool, n)
	}
	return &ColouringGraph{N: n, AdjMatrix: adjMatrix, AdjList: make([][]int, n)}
}

// AddEdge adds the undirected edge {v, w} to the adjacency matrix. Call
// MakeAdjacencyLists afterwards to refresh AdjList.
func (g *ColouringGraph) AddEdge(v, w int) {
	g.AdjMatrix[v][w] = true
	g.AdjMatrix[w][v] = true
}

// MakeAdjacencyLists rebuilds AdjList, in ascending order, from AdjMatrix.
func (g *ColouringGraph) MakeAdjacencyLists() {
	for i := 0; i < g.N; i++ {
		g.AdjList[i] = g.AdjList[i][:0]
		for j := 0; j < g.N; j++ {
			if g.AdjMatrix[i][j] {
				g.AdjList[i] = append(g.AdjList[i], j)
			}
		}
	}
}

// InducedSubgraph returns the subgraph induced by vv, renumbered so vv[i]
// becomes vertex i. AdjList is left empty; call MakeAdjacencyLists on the
// result before searching it.
func (g *ColouringGraph) InducedSubgraph(vv []int) *ColouringGraph {
	sub := NewColouringGraph(len(vv))
	for i := 0; i < sub.N; i++ {
		for j := 0; j < i; j++ {
			if g.AdjMatrix[vv[i]][vv[j]] {
				sub.AddEdge(i, j)
			}
		}
	}
	return sub
}
