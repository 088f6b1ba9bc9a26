package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := run(strings.NewReader(input), &out, true, false, 3, 0, -1, 1, "pace")
	require.NoError(t, err)
	return out.String()
}

func TestScenarioEmptyGraph(t *testing.T) {
	assert.Equal(t, "s vc 0 0\n", runCLI(t, "p td 0 0\n"))
}

func TestScenarioSingleEdge(t *testing.T) {
	out := runCLI(t, "p td 2 1\n1 2\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{"s vc 2 1"}, lines[:1])
	assert.Contains(t, []string{"1", "2"}, lines[1])
}

func TestScenarioTriangle(t *testing.T) {
	out := runCLI(t, "p td 3 3\n1 2\n2 3\n1 3\n")
	assert.True(t, strings.HasPrefix(out, "s vc 3 2\n"))
}

func TestScenarioPath4(t *testing.T) {
	// Several size-2 covers exist ({2,3}, {1,3}, {2,4}); only the total
	// weight is pinned down.
	out := runCLI(t, "p td 4 3\n1 2\n2 3\n3 4\n")
	assert.True(t, strings.HasPrefix(out, "s vc 4 2\n"))
}

func TestScenarioStarK14(t *testing.T) {
	out := runCLI(t, "p td 5 4\n1 2\n1 3\n1 4\n1 5\n")
	assert.Equal(t, "s vc 5 1\n1\n", out)
}

func TestScenarioFiveCycle(t *testing.T) {
	out := runCLI(t, "p td 5 5\n1 2\n2 3\n3 4\n4 5\n5 1\n")
	assert.True(t, strings.HasPrefix(out, "s vc 5 3\n"))
}

func TestScenarioLoopyVertex(t *testing.T) {
	out := runCLI(t, "p td 7 1\n7 7\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[1:], "7")
}

func TestRunRejectsMalformedInput(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("not a graph\n"), &out, true, false, 3, 0, -1, 1, "pace")
	assert.Error(t, err)
}

func TestRunAcceptsDimacsDialect(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("p edge 2 1\ne 1 2\n"), &out, true, false, 3, 0, -1, 1, "dimacs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "s vc 2 1\n"))
}
