package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiutekk/peatyvc/format"
)

func TestReadPaceBasic(t *testing.T) {
	in := "c a comment\np td 4 3\n1 2\n2 3\n3 4\n"
	g, err := format.Read(strings.NewReader(in), format.Pace)
	require.NoError(t, err)

	require.Equal(t, 4, g.N)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 2))
	for _, w := range g.Weight {
		assert.EqualValues(t, 1, w)
	}
}

// PACE reading stops after exactly M edge lines, ignoring anything that
// follows.
func TestReadPaceStopsAfterMEdges(t *testing.T) {
	in := "p td 3 1\n1 2\n2 3\n"
	g, err := format.Read(strings.NewReader(in), format.Pace)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
}

// A reflexive edge {v, v} becomes a loop, not an adjacency-list entry.
func TestReadPaceLoop(t *testing.T) {
	in := "p td 3 1\n2 2\n"
	g, err := format.Read(strings.NewReader(in), format.Pace)
	require.NoError(t, err)
	assert.True(t, g.HasLoop[1])
	assert.Empty(t, g.Adj[1])
}

func TestReadPaceMalformedHeader(t *testing.T) {
	_, err := format.Read(strings.NewReader("p wrong 3 1\n1 2\n"), format.Pace)
	assert.ErrorIs(t, err, format.ErrMalformedHeader)
}

func TestReadPaceEdgeCountMismatch(t *testing.T) {
	_, err := format.Read(strings.NewReader("p td 3 2\n1 2\n"), format.Pace)
	assert.ErrorIs(t, err, format.ErrEdgeCountMismatch)
}

func TestReadPaceRejectsOutOfRangeVertex(t *testing.T) {
	_, err := format.Read(strings.NewReader("p td 3 1\n1 4\n"), format.Pace)
	assert.ErrorIs(t, err, format.ErrMalformedHeader)
}

func TestReadDimacsBasic(t *testing.T) {
	in := "c comment\np edge 3 2\ne 1 2\ne 2 3\n"
	g, err := format.Read(strings.NewReader(in), format.Dimacs)
	require.NoError(t, err)
	require.Equal(t, 3, g.N)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
}

func TestReadDimacsWeights(t *testing.T) {
	in := "p edge 3 1\ne 1 2\nn 3 42\n"
	g, err := format.Read(strings.NewReader(in), format.Dimacs)
	require.NoError(t, err)
	assert.EqualValues(t, 1, g.Weight[0])
	assert.EqualValues(t, 42, g.Weight[2])
}

func TestReadDimacsDuplicateAndReflexiveEdgesCollapse(t *testing.T) {
	in := "p edge 3 3\ne 1 2\ne 2 1\ne 3 3\n"
	g, err := format.Read(strings.NewReader(in), format.Dimacs)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, g.Adj[0])
	assert.Equal(t, []int{0}, g.Adj[1])
	assert.True(t, g.HasLoop[2])
}

// The DIMACS header's declared edge count is enforced against the raw
// `e` lines read, before deduplication.
func TestReadDimacsEdgeCountMismatch(t *testing.T) {
	_, err := format.Read(strings.NewReader("p edge 3 99\ne 1 2\n"), format.Dimacs)
	assert.ErrorIs(t, err, format.ErrEdgeCountMismatch)

	_, err = format.Read(strings.NewReader("p edge 3 1\ne 1 2\ne 2 3\n"), format.Dimacs)
	assert.ErrorIs(t, err, format.ErrEdgeCountMismatch)
}

func TestWriteCoverSortsAscending(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.WriteCover(&buf, 5, []int{3, 0, 1}))
	assert.Equal(t, "s vc 5 3\n1\n2\n4\n", buf.String())
}

func TestWriteCoverEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.WriteCover(&buf, 0, nil))
	assert.Equal(t, "s vc 0 0\n", buf.String())
}
