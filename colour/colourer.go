// Package colour implements the weighted-colouring branch-and-bound
// oracle: given a candidate set P and a target clique weight, greedily
// partition P into classes of pairwise non-adjacent vertices (no clique
// can take two members of one class), optionally sharpen the resulting
// bound with MAX-SAT style unit propagation, and report whether it still
// permits a clique heavier than target.
package colour

import (
	"sort"

	"github.com/basiutekk/peatyvc/bitset"
	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/graph"
)

// Colourer computes a colouring-based upper bound on the weight of any
// clique contained in P.
//
// ColouringBound reports whether branching is still required: true means
// the bound could not rule out a clique heavier than target, and
// branchVV has been filled with every vertex that must be considered as
// a branch candidate; false means the colouring alone already proves no
// such clique exists in P, and branchVV is left in an undefined state.
// Callers clear branchVV before the call and only trust its contents
// when ColouringBound returns true.
type Colourer interface {
	ColouringBound(P, branchVV bitset.Set, target int64) bool
}

// NewColourer builds the Colourer selected by params.ColouringVariant:
// 2 for UnitPropColourer, 3 for ClassEnlargingUnitPropColourer, anything
// else (including 0, GreedyOnly) for EvenSimplerColourer.
func NewColourer(g *graph.DenseGraph, params *config.Params) Colourer {
	switch params.ColouringVariant {
	case config.GreedyWithUnitPropagation:
		return NewUnitPropColourer(g, params)
	case config.ClassEnlargingUnitPropagation:
		return NewClassEnlargingUnitPropColourer(g, params)
	default:
		return NewEvenSimplerColourer(g, params)
	}
}

// EvenSimplerColourer computes the plain greedy weighted-colouring bound
// with no unit propagation: the cheapest and least precise of the three
// variants.
type EvenSimplerColourer struct {
	g *graph.DenseGraph

	candidates bitset.Set
	residualWt []int64
	colClass   []int
}

func NewEvenSimplerColourer(g *graph.DenseGraph, _ *config.Params) *EvenSimplerColourer {
	return &EvenSimplerColourer{
		g:          g,
		candidates: bitset.New(g.N),
		residualWt: make([]int64, g.N),
	}
}

func (c *EvenSimplerColourer) ColouringBound(P, branchVV bitset.Set, target int64) bool {
	numWords := bitset.TrimmedWords(P, c.g.NumWords)
	bitset.Copy(branchVV, P)
	copy(c.residualWt, c.g.Weight)

	var bound int64
	for {
		v := bitset.FirstSetBit(branchVV, numWords)
		if v == -1 {
			break
		}
		classMinWt := c.residualWt[v]
		c.colClass = c.colClass[:0]
		c.colClass = append(c.colClass, v)
		bitset.Intersection(c.candidates, branchVV, c.g.Comp[v], numWords)
		for {
			v = bitset.FirstSetBit(c.candidates, numWords)
			if v == -1 {
				break
			}
			if c.residualWt[v] < classMinWt {
				classMinWt = c.residualWt[v]
			}
			c.colClass = append(c.colClass, v)
			bitset.IntersectWith(c.candidates, c.g.Comp[v], numWords)
		}
		bound += classMinWt
		if bound > target {
			return true
		}
		for _, w := range c.colClass {
			c.residualWt[w] -= classMinWt
			bitset.UnsetBitIf(branchVV, w, c.residualWt[w] == 0)
		}
	}
	return false
}

// UnitPropColourer augments the greedy bound with MAX-SAT style unit
// propagation over the resulting colour classes, without the class-
// enlarging step ClassEnlargingUnitPropColourer adds.
type UnitPropColourer struct {
	g  *graph.DenseGraph
	up *UnitPropagator
	cc *ListOfClauses

	toColour   bitset.Set
	candidates bitset.Set
	residualWt []int64
}

func NewUnitPropColourer(g *graph.DenseGraph, params *config.Params) *UnitPropColourer {
	return &UnitPropColourer{
		g:          g,
		up:         NewUnitPropagator(g, params),
		cc:         NewListOfClauses(g.N),
		toColour:   bitset.New(g.N),
		candidates: bitset.New(g.N),
		residualWt: make([]int64, g.N),
	}
}

func (c *UnitPropColourer) ColouringBound(P, branchVV bitset.Set, target int64) bool {
	numWords := bitset.TrimmedWords(P, c.g.NumWords)
	bitset.Copy(c.toColour, P)
	copy(c.residualWt, c.g.Weight)
	c.cc.Clear()

	var bound int64
	for {
		v := bitset.FirstSetBit(c.toColour, numWords)
		if v == -1 {
			break
		}
		clause := &c.cc.Clause[c.cc.Size]
		clause.VV = append(clause.VV[:0], v)
		classMinWt := c.residualWt[v]
		bitset.Intersection(c.candidates, c.toColour, c.g.Comp[v], numWords)
		for {
			v = bitset.FirstSetBit(c.candidates, numWords)
			if v == -1 {
				break
			}
			if c.residualWt[v] < classMinWt {
				classMinWt = c.residualWt[v]
			}
			clause.VV = append(clause.VV, v)
			bitset.IntersectWith(c.candidates, c.g.Comp[v], numWords)
		}

		for _, w := range clause.VV {
			c.residualWt[w] -= classMinWt
			bitset.UnsetBitIf(c.toColour, w, c.residualWt[w] == 0)
		}
		bound += classMinWt
		clause.Weight = classMinWt
		c.cc.Size++
	}

	improvement := c.up.UnitPropagate(c.cc, bound-target, P)
	provedWeCanPrune := bound-improvement <= target

	if !provedWeCanPrune {
		bound = 0
		for i := 0; i < c.cc.Size; i++ {
			clause := &c.cc.Clause[i]
			bound += clause.Weight
			if bound > target {
				for _, w := range clause.VV {
					bitset.SetBit(branchVV, w)
				}
			}
		}
	}
	return !provedWeCanPrune
}

// ClassEnlargingUnitPropColourer is the default, strongest colourer: it
// greedily grows each colour class as in UnitPropColourer, then tries to
// swap the class's lone straggler member for a pair of mutually
// non-adjacent leftover candidates before handing the clause list to
// unit propagation, sorted largest-class-first.
type ClassEnlargingUnitPropColourer struct {
	g  *graph.DenseGraph
	up *UnitPropagator
	cc *ListOfClauses

	vv         []int
	toColour   bitset.Set
	candidates [2]bitset.Set
	residualWt []int64
}

func NewClassEnlargingUnitPropColourer(g *graph.DenseGraph, params *config.Params) *ClassEnlargingUnitPropColourer {
	return &ClassEnlargingUnitPropColourer{
		g:          g,
		up:         NewUnitPropagator(g, params),
		cc:         NewListOfClauses(g.N),
		toColour:   bitset.New(g.N),
		candidates: [2]bitset.Set{bitset.New(g.N), bitset.New(g.N)},
		residualWt: make([]int64, g.N),
	}
}

// tryToEnlargeClause looks for a pair w, u among candidates that are
// mutually non-adjacent in the dense graph, trying pairs in ascending
// order of the sum of their positions in the candidate list (outermost
// pair first among equal sums), and if found replaces the
// clause's last member with the pair (a net gain of one class member).
func (c *ClassEnlargingUnitPropColourer) tryToEnlargeClause(clause *Clause, numWords int, candidates bitset.Set) {
	c.vv = c.vv[:0]
	bitset.ForEach(candidates, numWords, func(v int) { c.vv = append(c.vv, v) })

	sz := len(c.vv)
	for sum := 0; sum <= sz*2-3; sum++ {
		iStart := sum - sz + 1
		if iStart < 0 {
			iStart = 0
		}
		for i, j := iStart, sum-iStart; i < j; i, j = i+1, j-1 {
			w, u := c.vv[i], c.vv[j]
			if bitset.TestBit(c.g.Comp[w], u) {
				clause.VV = clause.VV[:len(clause.VV)-1]
				clause.VV = append(clause.VV, w, u)
				return
			}
		}
	}
}

func (c *ClassEnlargingUnitPropColourer) ColouringBound(P, branchVV bitset.Set, target int64) bool {
	numWords := bitset.TrimmedWords(P, c.g.NumWords)
	bitset.Copy(c.toColour, P)
	copy(c.residualWt, c.g.Weight)
	c.cc.Clear()

	var bound int64
	w := 0
	for {
		v := bitset.FirstSetBit(c.toColour, numWords)
		if v == -1 {
			break
		}
		clause := &c.cc.Clause[c.cc.Size]
		clause.VV = append(clause.VV[:0], v)
		bitset.Intersection(c.candidates[0], c.toColour, c.g.Comp[v], numWords)
		i := 0
		for {
			v = bitset.FirstSetBit(c.candidates[i], numWords)
			if v == -1 {
				break
			}
			clause.VV = append(clause.VV, v)
			bitset.Intersection(c.candidates[1-i], c.candidates[i], c.g.Comp[v], numWords)
			i = 1 - i
			w = v
		}
		if len(clause.VV) > 1 {
			bitset.UnsetBit(c.candidates[1-i], w)
			c.tryToEnlargeClause(clause, numWords, c.candidates[1-i])
		}

		classMinWt := c.residualWt[clause.VV[0]]
		for _, u := range clause.VV[1:] {
			if c.residualWt[u] < classMinWt {
				classMinWt = c.residualWt[u]
			}
		}
		for _, u := range clause.VV {
			c.residualWt[u] -= classMinWt
			bitset.UnsetBitIf(c.toColour, u, c.residualWt[u] <= 0)
		}
		bound += classMinWt
		clause.Weight = classMinWt
		c.cc.Size++
	}

	for i := 0; i < c.cc.Size; i++ {
		cl := &c.cc.Clause[i]
		cl.sortingScore = uint64(len(cl.VV))<<32 - uint64(i)
	}
	active := c.cc.Clause[:c.cc.Size]
	sort.Slice(active, func(i, j int) bool {
		return active[i].sortingScore > active[j].sortingScore
	})

	improvement := c.up.UnitPropagate(c.cc, bound-target, P)
	provedWeCanPrune := bound-improvement <= target

	if !provedWeCanPrune {
		bound = 0
		for i := 0; i < c.cc.Size; i++ {
			clause := &c.cc.Clause[i]
			bound += clause.Weight
			if bound > target {
				for _, u := range clause.VV {
					bitset.SetBit(branchVV, u)
				}
			}
		}
	}
	return !provedWeCanPrune
}
