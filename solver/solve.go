package solver

import (
	"log"
	"sort"
	"sync/atomic"

	"github.com/basiutekk/peatyvc/colour"
	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/fchrom"
	"github.com/basiutekk/peatyvc/graph"
	"github.com/basiutekk/peatyvc/localsearch"
	"github.com/basiutekk/peatyvc/reduce"
)

// Result is the outcome of a full Solve call: the minimum-weight vertex
// cover found, expressed as original-graph vertex indices, plus the
// cumulative number of branch-and-bound search nodes expanded across
// every connected component.
type Result struct {
	Cover           *graph.VtxList
	SearchNodeCount int64
}

// sequentialMWC finds a maximum-weight clique in the complement of one
// connected component's sparse subgraph, writing it into incumbent and
// returning the number of B&B search nodes it cost: degeneracy-order the
// component, build the dense complement, attach the colouring oracle and
// the two helpers, and run the recursive driver.
func sequentialMWC(g *graph.SparseGraph, params *config.Params, incumbent *graph.VtxList) int64 {
	ls := localsearch.NewSearcher(g, incumbent, 1)
	if g.N > 30 {
		for i := 0; i < 10; i++ {
			ls.Search()
		}
	}

	cg := fchrom.NewColouringGraph(g.N)
	for v := 0; v < g.N; v++ {
		for _, w := range g.Adj[v] {
			if v < w {
				cg.AddEdge(v, w)
			}
		}
	}
	// The cancellation flag is plumbed through both finders but never set
	// by this sequential driver; a future timed or parallel caller can
	// flip it to abandon an in-flight colouring search.
	var terminateEarly atomic.Bool
	exactColourer1 := fchrom.NewColouringNumberFinder(cg, 1, 0)
	exactColourer1.SetTerminateEarly(&terminateEarly)
	exactColourer2 := fchrom.NewColouringNumberFinder(cg, 2, 0)
	exactColourer2.SetTerminateEarly(&terminateEarly)

	vv0 := DegeneracyOrder(g)
	orderedGraph := g.InducedSubgraph(vv0)
	orderedGraph.SortAdjLists()

	vv1 := make([]int, orderedGraph.N)
	for i := range vv1 {
		vv1[i] = i
	}
	orderedSubgraph := orderedGraph.ComplementOfInducedSubgraph(vv1)
	colourer := colour.NewColourer(orderedSubgraph, params)

	C := graph.NewVtxList(g.N)
	d := newDriver(orderedSubgraph, params, incumbent, colourer, vv0, ls, exactColourer1, exactColourer2)
	d.run(C)
	return d.searchNodeCount
}

// Solve computes a minimum-weight vertex cover of g: reduce to a
// fixpoint, split into connected components, solve each component's
// complement as a maximum-weight clique search, unwind the reductions,
// and validate the result against the original (unreduced) graph.
//
// g is not mutated; the reduction pipeline runs against an internal
// clone, so the final validation can run against the caller's own copy.
func Solve(g *graph.SparseGraph, params *config.Params) (*Result, error) {
	working := g.Clone()

	pipeline := reduce.NewPipeline(working)
	pipeline.EnableBowTie = params.EnableBowTie
	// The rewriters compare vertex counts, not weights, so they preserve
	// the optimum only when every vertex weighs the same.
	uniformWeights := true
	for _, wt := range working.Weight {
		if wt != working.Weight[0] {
			uniformWeights = false
			break
		}
	}
	if uniformWeights {
		pipeline.Run()
	}

	if err := reduce.CheckAdjacencyIntegrity(working); err != nil {
		return nil, err
	}

	components := reduce.ConnectedComponents(working, pipeline.Live)

	var searchNodeCount int64
	for _, component := range components {
		sort.Ints(component)
		if !params.Quiet {
			log.Printf("c COMPONENT %d", len(component))
		}

		sub := working.InducedSubgraph(component)
		independentSet := graph.NewVtxList(sub.N)
		searchNodeCount += sequentialMWC(sub, params, independentSet)

		inIndSet := make([]bool, sub.N)
		for _, v := range independentSet.VV {
			inIndSet[v] = true
		}
		for i, v := range component {
			if !inIndSet[i] {
				pipeline.InCover[v] = true
			}
		}
	}

	reduce.UnwindAll(pipeline.Records, pipeline.InCover)

	cover := graph.NewVtxList(g.N)
	for v := 0; v < g.N; v++ {
		if pipeline.InCover[v] {
			cover.Push(v, g.Weight[v])
		}
	}

	if err := ValidateCover(g, cover.VV); err != nil {
		return nil, err
	}

	return &Result{Cover: cover, SearchNodeCount: searchNodeCount}, nil
}
