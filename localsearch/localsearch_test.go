package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basiutekk/peatyvc/graph"
	"github.com/basiutekk/peatyvc/localsearch"
)

// An edgeless graph's largest independent set is every vertex; repeated
// Search episodes must eventually find it since no edge ever forces a
// conflict.
func TestSearcherFindsFullIndependentSetOnEdgelessGraph(t *testing.T) {
	g := graph.NewSparseGraph(6)
	incumbent := graph.NewVtxList(g.N)
	s := localsearch.NewSearcher(g, incumbent, 1)
	for i := 0; i < 5; i++ {
		s.Search()
	}
	assert.Len(t, incumbent.VV, 6)
}

// A star's largest independent set is its four leaves (the hub conflicts
// with all of them); the incumbent should never be able to exceed 4.
func TestSearcherNeverExceedsTrueIndependenceNumberOnStar(t *testing.T) {
	g := graph.NewSparseGraph(5)
	for i := 1; i < 5; i++ {
		g.AddEdge(0, i)
	}
	incumbent := graph.NewVtxList(g.N)
	s := localsearch.NewSearcher(g, incumbent, 1)
	for i := 0; i < 20; i++ {
		s.Search()
		assert.LessOrEqual(t, len(incumbent.VV), 4)
	}
}

// GetTime strictly increases across Search calls: it is a monotonic
// virtual-time counter, never reset below its previous value.
func TestSearcherTimeMonotonicallyIncreases(t *testing.T) {
	g := graph.NewSparseGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	incumbent := graph.NewVtxList(g.N)
	s := localsearch.NewSearcher(g, incumbent, 42)
	prev := s.GetTime()
	for i := 0; i < 5; i++ {
		s.Search()
		got := s.GetTime()
		assert.Greater(t, got, prev)
		prev = got
	}
}

// Whatever the incumbent ends up holding, it must actually be an
// independent set in g: no two of its vertices may be adjacent.
func TestSearcherIncumbentIsAlwaysIndependent(t *testing.T) {
	g := graph.NewSparseGraph(8)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	incumbent := graph.NewVtxList(g.N)
	s := localsearch.NewSearcher(g, incumbent, 7)
	for i := 0; i < 10; i++ {
		s.Search()
	}
	inSet := make(map[int]bool, len(incumbent.VV))
	for _, v := range incumbent.VV {
		inSet[v] = true
	}
	for _, v := range incumbent.VV {
		for _, w := range g.Adj[v] {
			assert.Falsef(t, inSet[w], "vertices %d and %d are both in the incumbent but adjacent", v, w)
		}
	}
}
