package colour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basiutekk/peatyvc/bitset"
	"github.com/basiutekk/peatyvc/colour"
	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/graph"
)

func allColourers(g *graph.DenseGraph) map[string]colour.Colourer {
	return map[string]colour.Colourer{
		"even-simpler": colour.NewEvenSimplerColourer(g, config.New()),
		"unit-prop":    colour.NewUnitPropColourer(g, config.New()),
		"class-enlarge": colour.NewClassEnlargingUnitPropColourer(g, config.New(
			config.WithColouringVariant(3),
		)),
	}
}

// fullP returns a bit-set with the first n bits set.
func fullP(n int) bitset.Set {
	s := bitset.New(n)
	bitset.SetFirstNBits(s, n)
	return s
}

type testEdge struct{ u, v int }

// Each sample names a sparse component graph; the colourers are exercised
// on its dense complement, exactly as the clique driver builds it.
var sampleGraphs = []struct {
	name    string
	n       int
	weights []int64
	edges   []testEdge
}{
	{"empty", 4, []int64{1, 2, 3, 4}, nil},
	{"path", 5, []int64{2, 2, 2, 2, 2}, []testEdge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
	{"star", 5, []int64{10, 1, 1, 1, 1}, []testEdge{{0, 1}, {0, 2}, {0, 3}, {0, 4}}},
	{"cycle5", 5, []int64{3, 1, 4, 1, 5}, []testEdge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
	{"two-triangles", 6, []int64{1, 2, 3, 4, 5, 6}, []testEdge{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}},
}

func buildDenseGraph(n int, weights []int64, edges []testEdge) *graph.DenseGraph {
	s := graph.NewSparseGraph(n)
	for _, e := range edges {
		s.AddEdge(e.u, e.v)
	}
	s.SortAdjLists()
	vv := make([]int, n)
	for i := range vv {
		vv[i] = i
	}
	g := s.ComplementOfInducedSubgraph(vv)
	copy(g.Weight, weights)
	return g
}

// A lone candidate vertex forms its own class regardless of which
// colourer is asked: bound equals its weight exactly.
func TestEvenSimplerColourerSingleVertex(t *testing.T) {
	g := graph.NewDenseGraph(1)
	g.Weight[0] = 7

	c := colour.NewEvenSimplerColourer(g, config.New())
	P := fullP(1)
	branchVV := bitset.New(1)

	assert.True(t, c.ColouringBound(P, branchVV, 6))
	assert.False(t, c.ColouringBound(P, branchVV, 7))
	assert.False(t, c.ColouringBound(P, branchVV, 100))
}

// An empty candidate set never needs branching: the greedy loop never
// runs, so bound stays zero and every non-negative target proves prunable.
func TestColouringBoundOnEmptyCandidateSet(t *testing.T) {
	g := graph.NewDenseGraph(3)
	g.Weight[0], g.Weight[1], g.Weight[2] = 5, 5, 5
	P := bitset.New(3)
	branchVV := bitset.New(3)

	for name, c := range allColourers(g) {
		assert.Falsef(t, c.ColouringBound(P, branchVV, 0), "%s", name)
		assert.Falsef(t, c.ColouringBound(P, branchVV, 5), "%s", name)
	}
}

// (P4, monotonicity half) Raising target can only turn a must-branch
// verdict into a can-prune one, never the reverse: the bound computation
// itself does not depend on target except through "> target"/"<= target"
// comparisons, so a larger target can only relax them.
func TestColouringBoundMonotonicInTarget(t *testing.T) {
	for _, tc := range sampleGraphs {
		t.Run(tc.name, func(t *testing.T) {
			g := buildDenseGraph(tc.n, tc.weights, tc.edges)
			P := fullP(tc.n)

			for name, c := range allColourers(g) {
				prevMustBranch := true
				for target := int64(-1); target <= 30; target++ {
					branchVV := bitset.New(tc.n)
					mustBranch := c.ColouringBound(P, branchVV, target)
					if !prevMustBranch {
						assert.Falsef(t, mustBranch,
							"%s/%s: target=%d must-branch after target=%d already pruned",
							tc.name, name, target, target-1)
					}
					prevMustBranch = mustBranch
				}
			}
		})
	}
}

// Unit propagation only ever removes weight the plain greedy bound
// already counted, and its greedy phase is identical to the unrefined
// one, so whenever EvenSimplerColourer proves a target safe to prune the
// unit-propagating variant must agree.
func TestUnitPropPrunesAtLeastAsOftenAsGreedy(t *testing.T) {
	for _, tc := range sampleGraphs {
		t.Run(tc.name, func(t *testing.T) {
			g := buildDenseGraph(tc.n, tc.weights, tc.edges)
			P := fullP(tc.n)

			even := colour.NewEvenSimplerColourer(g, config.New())
			unitProp := colour.NewUnitPropColourer(g, config.New())

			for target := int64(0); target <= 30; target++ {
				evenBranchVV := bitset.New(tc.n)
				if !even.ColouringBound(P, evenBranchVV, target) {
					upBranchVV := bitset.New(tc.n)
					require.Falsef(t, unitProp.ColouringBound(P, upBranchVV, target),
						"unit-prop must prune at target=%d when greedy does", target)
				}
			}
		})
	}
}

// maxWeightClique brute-forces the heaviest clique of the dense graph
// contained in P: pairwise adjacent means the Comp bit is CLEAR. This is
// the heaviest extension the branch-and-bound driver could ever build
// from P.
func maxWeightClique(g *graph.DenseGraph, P bitset.Set) int64 {
	var vv []int
	bitset.ForEach(P, g.NumWords, func(v int) { vv = append(vv, v) })

	var best int64
	for mask := 0; mask < 1<<len(vv); mask++ {
		var wt int64
		ok := true
		for i := 0; i < len(vv) && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			wt += g.Weight[vv[i]]
			for j := i + 1; j < len(vv); j++ {
				if mask&(1<<j) != 0 && bitset.TestBit(g.Comp[vv[i]], vv[j]) {
					ok = false
					break
				}
			}
		}
		if ok && wt > best {
			best = wt
		}
	}
	return best
}

// The singleton-only propagation mode reports where the running bound
// first exceeds target: with a generous target it must walk the whole
// clause list, and with target 0 it must stop at the first clause that
// carries any weight.
func TestUnitPropagateM1BoundThreshold(t *testing.T) {
	g := buildDenseGraph(4, []int64{1, 2, 3, 4}, []testEdge{{0, 1}, {2, 3}})
	up := colour.NewUnitPropagator(g, config.New())

	cc := colour.NewListOfClauses(g.N)
	cc.Clause[0].VV = []int{0, 1}
	cc.Clause[0].Weight = 1
	cc.Clause[1].VV = []int{2, 3}
	cc.Clause[1].Weight = 3
	cc.Size = 2

	P := fullP(4)
	assert.Equal(t, 2, up.UnitPropagateM1(cc, 4, 100, P))
	assert.Equal(t, 0, up.UnitPropagateM1(cc, 4, 0, P))
}

// Soundness: no variant may report "prunable" for a target below the
// weight of the heaviest clique actually hiding in P, because pruning at
// that target would cut the optimum out of the search tree.
func TestColouringBoundNeverPrunesTheOptimum(t *testing.T) {
	for _, tc := range sampleGraphs {
		t.Run(tc.name, func(t *testing.T) {
			g := buildDenseGraph(tc.n, tc.weights, tc.edges)
			P := fullP(tc.n)
			maxCliqueWt := maxWeightClique(g, P)

			for name, c := range allColourers(g) {
				for target := int64(0); target < maxCliqueWt; target++ {
					branchVV := bitset.New(tc.n)
					require.Truef(t, c.ColouringBound(P, branchVV, target),
						"%s pruned at target=%d although a clique of weight %d exists",
						name, target, maxCliqueWt)
				}
			}
		})
	}
}
