package testgraphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiutekk/peatyvc/internal/testgraphs"
)

func TestPath(t *testing.T) {
	g := testgraphs.Path(4)
	assert.Equal(t, []int{1}, g.Adj[0])
	assert.Equal(t, []int{0, 2}, g.Adj[1])
	assert.Equal(t, []int{2}, g.Adj[3])
}

func TestCycleIsTwoRegular(t *testing.T) {
	g := testgraphs.Cycle(5)
	for v := 0; v < 5; v++ {
		assert.Len(t, g.Adj[v], 2)
	}
	assert.True(t, g.HasEdge(4, 0))
}

func TestStar(t *testing.T) {
	g := testgraphs.Star(4)
	require.Equal(t, 5, g.N)
	assert.Len(t, g.Adj[0], 4)
	for leaf := 1; leaf <= 4; leaf++ {
		assert.Equal(t, []int{0}, g.Adj[leaf])
	}
}

func TestCompleteIsClique(t *testing.T) {
	g := testgraphs.Complete(4)
	vv := []int{0, 1, 2, 3}
	assert.True(t, g.VVAreClique(vv))
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a := testgraphs.Random(7, 10, 0.4, 5)
	b := testgraphs.Random(7, 10, 0.4, 5)
	assert.Equal(t, a.Adj, b.Adj)
	assert.Equal(t, a.Weight, b.Weight)
}
