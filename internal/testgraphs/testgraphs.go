// Package testgraphs builds the small canonical graphs the test suites
// share: paths, cycles, stars, complete graphs, and seeded random
// weighted graphs. Every constructor emits vertices 0..n-1 and edges in
// a deterministic order, and returns the graph with adjacency already
// sorted.
package testgraphs

import (
	"golang.org/x/exp/rand"

	"github.com/basiutekk/peatyvc/graph"
)

// Path returns the path P_n: edges i-(i+1) for i = 0..n-2.
func Path(n int) *graph.SparseGraph {
	g := graph.NewSparseGraph(n)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}
	g.SortAdjLists()
	return g
}

// Cycle returns the cycle C_n: edges i-(i+1) mod n.
func Cycle(n int) *graph.SparseGraph {
	g := graph.NewSparseGraph(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	g.SortAdjLists()
	return g
}

// Star returns the star K_{1,leaves}: vertex 0 is the hub, vertices
// 1..leaves are its leaves.
func Star(leaves int) *graph.SparseGraph {
	g := graph.NewSparseGraph(leaves + 1)
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}
	g.SortAdjLists()
	return g
}

// Complete returns the complete graph K_n.
func Complete(n int) *graph.SparseGraph {
	g := graph.NewSparseGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			g.AddEdge(i, j)
		}
	}
	g.SortAdjLists()
	return g
}

// Random returns an Erdős–Rényi style graph on n vertices where each
// pair is an edge with probability edgeProb, with vertex weights drawn
// uniformly from [1, maxWeight]. The same seed always yields the same
// graph.
func Random(seed uint64, n int, edgeProb float64, maxWeight int) *graph.SparseGraph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.NewSparseGraph(n)
	for v := 0; v < n; v++ {
		g.Weight[v] = int64(1 + rng.Intn(maxWeight))
	}
	for v := 0; v < n; v++ {
		for w := v + 1; w < n; w++ {
			if rng.Float64() < edgeProb {
				g.AddEdge(v, w)
			}
		}
	}
	g.SortAdjLists()
	return g
}
