package fchrom

import "sync/atomic"

// FindColouringNumber searches for the smallest numColours such that g
// has a complete f-fold colouring using that many colours. Within one
// numColours, an attempt that exhausts its search-node budget is
// inconclusive: the budget grows by 10%, the vertex order is
// re-randomised, and the attempt repeats until the search either
// completes (satisfiable) or runs dry within budget (unsatisfiable,
// advance numColours). It returns -1 if terminateEarly is set before an
// answer is found.
func FindColouringNumber(g *ColouringGraph, f int, terminateEarly *atomic.Bool) int {
	seed := uint64(0)
	order := randomisedVertexOrder(g.N, seed)
	sub := g.InducedSubgraph(order)

	expandCallLimit := uint64(1000)
	for numColours := 0; ; numColours++ {
		incumbent := NewSolution(g.N, f)
		sub.MakeAdjacencyLists()

		for {
			if terminateEarly != nil && terminateEarly.Load() {
				return -1
			}
			nodes := solve(sub, incumbent, numColours, f, expandCallLimit, terminateEarly)
			if nodes < expandCallLimit {
				break
			}
			incumbent.Size = 0
			expandCallLimit += expandCallLimit / 10
			seed++
			order = randomisedVertexOrder(g.N, seed)
			sub = g.InducedSubgraph(order)
			sub.MakeAdjacencyLists()
		}

		if incumbent.Size == g.N*f {
			return numColours
		}
	}
}

// ColouringNumberFinder performs incremental, budget-limited f-fold
// colouring-number searches, intended to be called many times across a
// branch-and-bound search so its cost is amortised: each Search call
// makes one bounded attempt at the current target palette size over a
// randomised vertex order whose seed advances after each
// budget-exhausted attempt.
type ColouringNumberFinder struct {
	g                       *ColouringGraph
	f                       int
	currentTargetNumColours int
	rngSeed                 uint64
	searchNodeCount         uint64
	localSearchNodeLimit    uint64
	colouringNumber         int
	terminateEarly          *atomic.Bool
}

// NewColouringNumberFinder returns a finder that searches g for an f-fold
// colouring number, starting its first Search call at numColours.
func NewColouringNumberFinder(g *ColouringGraph, f, numColours int) *ColouringNumberFinder {
	return &ColouringNumberFinder{
		g:                       g,
		f:                       f,
		currentTargetNumColours: numColours,
		localSearchNodeLimit:    1000,
		colouringNumber:         -1,
	}
}

// SetTerminateEarly installs a cancellation flag: once set, any in-flight
// or future Search call returns without updating the colouring number, so
// a caller polling GetColouringNumber sees the stale (possibly -1) value.
func (cf *ColouringNumberFinder) SetTerminateEarly(flag *atomic.Bool) {
	cf.terminateEarly = flag
}

// GetSearchNodeCount returns the cumulative number of search nodes
// expanded across all Search calls on this finder.
func (cf *ColouringNumberFinder) GetSearchNodeCount() uint64 {
	return cf.searchNodeCount
}

// GetColouringNumber returns the f-fold colouring number found so far, or
// -1 if Search has not yet succeeded.
func (cf *ColouringNumberFinder) GetColouringNumber() int {
	return cf.colouringNumber
}

// Search runs one bounded attempt at colouring g with
// currentTargetNumColours colours. A budget-exhausted attempt grows the
// budget by 10% and re-randomises the vertex order for the next call; an
// attempt that ran dry within budget either records the colouring number
// (complete colouring found) or advances to the next target. Returns true
// once the colouring number is known.
func (cf *ColouringNumberFinder) Search() bool {
	if cf.colouringNumber != -1 {
		return true
	}
	if cf.terminateEarly != nil && cf.terminateEarly.Load() {
		return false
	}

	sortedGraph := cf.g.InducedSubgraph(randomisedVertexOrder(cf.g.N, cf.rngSeed))
	sortedGraph.MakeAdjacencyLists()

	incumbent := NewSolution(cf.g.N, cf.f)
	nodes := solve(sortedGraph, incumbent, cf.currentTargetNumColours, cf.f, cf.localSearchNodeLimit, cf.terminateEarly)
	cf.searchNodeCount += nodes

	if nodes >= cf.localSearchNodeLimit {
		cf.localSearchNodeLimit += cf.localSearchNodeLimit / 10
		cf.rngSeed++
		return false
	}

	if incumbent.Size == cf.g.N*cf.f {
		cf.colouringNumber = cf.currentTargetNumColours
		return true
	}
	cf.currentTargetNumColours++
	return false
}
