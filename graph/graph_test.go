package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiutekk/peatyvc/bitset"
	"github.com/basiutekk/peatyvc/graph"
)

func TestDenseGraphComplementInvariant(t *testing.T) {
	g := graph.NewDenseGraph(5)
	// freshly built: edgeless, so every bit but the diagonal is set in
	// each Comp row.
	for v := 0; v < 5; v++ {
		for w := 0; w < 5; w++ {
			if v == w {
				assert.False(t, bitset.TestBit(g.Comp[v], w))
				continue
			}
			assert.True(t, bitset.TestBit(g.Comp[v], w))
		}
	}

	g.AddEdge(0, 1)
	assert.False(t, bitset.TestBit(g.Comp[0], 1))
	assert.False(t, bitset.TestBit(g.Comp[1], 0))

	g.RemoveEdge(0, 1)
	assert.True(t, bitset.TestBit(g.Comp[0], 1))
	assert.True(t, bitset.TestBit(g.Comp[1], 0))
}

func TestVtxListPushPopClone(t *testing.T) {
	vl := graph.NewVtxList(4)
	vl.Push(2, 10)
	vl.Push(5, 3)
	require.Equal(t, []int{2, 5}, vl.VV)
	assert.EqualValues(t, 13, vl.TotalWt)

	clone := vl.Clone()
	vl.Pop(3)
	assert.EqualValues(t, 10, vl.TotalWt)
	assert.Equal(t, []int{2}, vl.VV)

	// clone is unaffected by further mutation of the original.
	assert.Equal(t, []int{2, 5}, clone.VV)
	assert.EqualValues(t, 13, clone.TotalWt)

	vl.Clear()
	assert.Empty(t, vl.VV)
	assert.EqualValues(t, 0, vl.TotalWt)
}

func TestSparseGraphEdgesAndClique(t *testing.T) {
	g := graph.NewSparseGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, g.VVAreClique([]int{0, 1, 2}))
	assert.False(t, g.VVAreClique([]int{0, 1, 3}))
}

func TestSparseGraphRemoveEdgesIncidentToLoopyVertices(t *testing.T) {
	g := graph.NewSparseGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddLoop(1)

	g.RemoveEdgesIncidentToLoopyVertices()
	assert.Empty(t, g.Adj[1])
	assert.NotContains(t, g.Adj[0], 1)
	assert.NotContains(t, g.Adj[2], 1)
}

func TestSparseGraphSortAdjLists(t *testing.T) {
	g := graph.NewSparseGraph(4)
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.SortAdjLists()
	assert.Equal(t, []int{1, 2, 3}, g.Adj[0])
}

func TestSparseGraphInducedSubgraph(t *testing.T) {
	g := graph.NewSparseGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.Weight[1] = 7

	sub := g.InducedSubgraph([]int{1, 2, 3})
	require.Equal(t, 3, sub.N)
	assert.True(t, sub.HasEdge(0, 1)) // old 1-2
	assert.True(t, sub.HasEdge(1, 2)) // old 2-3
	assert.False(t, sub.HasEdge(0, 2))
	assert.EqualValues(t, 7, sub.Weight[0])
}

func TestSparseGraphComplementOfInducedSubgraph(t *testing.T) {
	g := graph.NewSparseGraph(3)
	g.AddEdge(0, 1)

	dense := g.ComplementOfInducedSubgraph([]int{0, 1, 2})
	// 0-1 is an edge of the sparse graph, so it is a non-edge of the
	// complement and bit 1 is set in the complement's Comp[0].
	assert.True(t, bitset.TestBit(dense.Comp[0], 1))
	assert.True(t, bitset.TestBit(dense.Comp[1], 0))
	// 0-2 and 1-2 are non-edges of the sparse graph, so they are edges
	// of the complement and their Comp bits are clear.
	assert.False(t, bitset.TestBit(dense.Comp[0], 2))
	assert.False(t, bitset.TestBit(dense.Comp[1], 2))
	// The diagonal stays clear either way.
	for v := 0; v < 3; v++ {
		assert.False(t, bitset.TestBit(dense.Comp[v], v))
	}
}
