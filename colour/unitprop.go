package colour

import (
	"math/bits"

	"github.com/basiutekk/peatyvc/bitset"
	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/graph"
)

// clauseMembership maps each vertex to the indices of the clauses it
// currently belongs to.
type clauseMembership [][]int

// UnitPropagator treats a colourer's greedy colour classes as a MAX-SAT
// instance (one clause per class, satisfied by keeping any one member
// out of the branch set) and looks for weight it can additionally strip
// out of the colouring bound via unit propagation: for each vertex of a
// clause in turn, propagate the consequences of choosing it through the
// complement graph, and whenever every one of those derivations forces
// every member of some clause to be excluded, merge weight out of the
// union of the inconsistent sets of clauses found.
type UnitPropagator struct {
	g      *graph.DenseGraph
	params *config.Params

	q    *fastIntQueue
	i    *intStackWithoutDups
	iset *intStackWithoutDups
	cm   clauseMembership

	vvCount          []int
	remainingVVCount []int

	vertexHasBeenPropagated []bool

	// reason[v] is the clause index that forced v out during the current
	// unitPropagateOnce call, or -1 if v has no reason yet.
	reason []int
}

// NewUnitPropagator returns a propagator sized for a graph with g.N
// vertices.
func NewUnitPropagator(g *graph.DenseGraph, params *config.Params) *UnitPropagator {
	cm := make(clauseMembership, g.N)
	return &UnitPropagator{
		g:                       g,
		params:                  params,
		q:                       newFastIntQueue(g.N),
		i:                       newIntStackWithoutDups(g.N),
		iset:                    newIntStackWithoutDups(g.N),
		cm:                      cm,
		vvCount:                 make([]int, g.N),
		remainingVVCount:        make([]int, g.N),
		vertexHasBeenPropagated: make([]bool, g.N),
		reason:                  make([]int, g.N),
	}
}

func (up *UnitPropagator) getUniqueRemainingVtx(c *Clause) int {
	i := 0
	for up.reason[c.VV[i]] != -1 {
		i++
	}
	return c.VV[i]
}

func (up *UnitPropagator) createInconsistentSet(cIdx int, cc *ListOfClauses) {
	up.i.push(cIdx)
	j := 0
	for j != len(up.i.vals) {
		for _, w := range cc.Clause[up.i.vals[j]].VV {
			r := up.reason[w]
			if r != -1 && !up.i.onStack[r] {
				up.i.push(r)
			}
		}
		j++
	}
}

// propagateVertex walks the complement-graph neighbourhood of v
// (restricted to P), giving every vertex there that has no reason yet
// the reason uIdx and decrementing every clause those vertices belong
// to. It reports whether doing so emptied some clause,
// in which case the inconsistent set covering that clause is left in
// up.i.
func (up *UnitPropagator) propagateVertex(cc *ListOfClauses, v, uIdx int, P bitset.Set) bool {
	for i := 0; i < up.g.NumWords; i++ {
		word := up.g.Comp[v][i] & P[i]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			word &^= 1 << uint(bit)
			w := i*64 + bit
			if up.reason[w] == -1 {
				up.reason[w] = uIdx
				for _, cIdx := range up.cm[w] {
					up.remainingVVCount[cIdx]--
					switch up.remainingVVCount[cIdx] {
					case 1:
						up.q.enqueue(cIdx)
					case 0:
						up.createInconsistentSet(cIdx, cc)
						return true
					}
				}
			}
		}
	}
	return false
}

func (up *UnitPropagator) unitPropagateOnce(cc *ListOfClauses, firstClauseIndex, firstV int, P bitset.Set) {
	up.i.clear()
	up.q.clear()

	copy(up.remainingVVCount, up.vvCount)
	for i := range up.vertexHasBeenPropagated {
		up.vertexHasBeenPropagated[i] = false
	}
	for i := range up.reason {
		up.reason[i] = -1
	}

	if up.propagateVertex(cc, firstV, firstClauseIndex, P) {
		return
	}
	up.vertexHasBeenPropagated[firstV] = true

	for !up.q.empty() {
		uIdx := up.q.dequeue()
		v := up.getUniqueRemainingVtx(&cc.Clause[uIdx])
		if !up.vertexHasBeenPropagated[v] {
			if up.propagateVertex(cc, v, uIdx, P) {
				return
			}
			up.vertexHasBeenPropagated[v] = true
		}
	}
}

func (up *UnitPropagator) removeFromClauseMembership(v, clauseIdx int) {
	m := up.cm[v]
	for i, c := range m {
		if c == clauseIdx {
			up.cm[v] = append(m[:i], m[i+1:]...)
			return
		}
	}
}

// processInconsistentSet merges the minimum remaining weight across the
// clauses named in iset out of all of them, subtracts it from the Weight
// of the highest-indexed clause in the set, and returns that merged
// weight.
func (up *UnitPropagator) processInconsistentSet(iset *intStackWithoutDups, cc *ListOfClauses) int64 {
	maxIdx := iset.vals[0]
	minWt := cc.Clause[maxIdx].RemainingWt
	for _, cIdx := range iset.vals[1:] {
		wt := cc.Clause[cIdx].RemainingWt
		if wt < minWt {
			minWt = wt
		}
		if cIdx > maxIdx {
			maxIdx = cIdx
		}
	}

	for _, cIdx := range iset.vals {
		c := &cc.Clause[cIdx]
		c.RemainingWt -= minWt
		if c.RemainingWt == 0 {
			for _, v := range c.VV {
				up.removeFromClauseMembership(v, cIdx)
			}
		}
	}
	cc.Clause[maxIdx].Weight -= minWt
	return minWt
}

func (up *UnitPropagator) getMaxClauseSize(cc *ListOfClauses) int {
	maxSize := 0
	for i := 0; i < cc.Size; i++ {
		if sz := len(cc.Clause[i].VV); sz > maxSize {
			maxSize = sz
		}
	}
	return maxSize
}

// UnitPropagate looks for up to targetReduction of weight to strip from
// cc's clauses via unit propagation, processing clauses in ascending
// size order (capped at params.MaxSATLevel when set), and returns the
// total improvement found. It returns 0 immediately if targetReduction
// is not positive: the colouring bound already proves enough without it.
func (up *UnitPropagator) UnitPropagate(cc *ListOfClauses, targetReduction int64, P bitset.Set) int64 {
	if targetReduction <= 0 {
		return 0
	}

	for v := range up.cm {
		up.cm[v] = up.cm[v][:0]
	}
	for i := 0; i < cc.Size; i++ {
		clause := &cc.Clause[i]
		up.vvCount[i] = len(clause.VV)
		for _, v := range clause.VV {
			up.cm[v] = append(up.cm[v], i)
		}
	}
	for i := 0; i < cc.Size; i++ {
		cc.Clause[i].RemainingWt = cc.Clause[i].Weight
	}

	var improvement int64

	maxClauseSize := up.params.MaxSATLevel
	if maxClauseSize == -1 {
		maxClauseSize = up.getMaxClauseSize(cc)
	}

	for clauseSize := 1; clauseSize <= maxClauseSize; clauseSize++ {
		for i := 0; i < cc.Size; i++ {
			clause := &cc.Clause[i]
			if len(clause.VV) != clauseSize {
				continue
			}

			for {
				if clause.RemainingWt == 0 {
					break
				}

				up.iset.clear()
				for _, v := range clause.VV {
					up.unitPropagateOnce(cc, i, v, P)
					if up.i.empty() {
						up.iset.clear()
						break
					}
					for _, cIdx := range up.i.vals {
						up.iset.push(cIdx)
					}
				}

				if up.iset.empty() {
					break
				}

				improvement += up.processInconsistentSet(up.iset, cc)

				if improvement >= targetReduction {
					return improvement
				}
			}
		}
	}

	return improvement
}

// UnitPropagateM1 is the cheap size-1-clause-only propagation mode: it
// only propagates from singleton clauses, and instead of running to
// completion it walks the clause list accumulating the running bound,
// returning the index of the first clause that pushes the bound past
// target (or cc.Size if none does).
func (up *UnitPropagator) UnitPropagateM1(cc *ListOfClauses, targetReduction, target int64, P bitset.Set) int {
	if targetReduction <= 0 {
		return cc.Size
	}

	for v := range up.cm {
		up.cm[v] = up.cm[v][:0]
	}
	for i := 0; i < cc.Size; i++ {
		clause := &cc.Clause[i]
		up.vvCount[i] = len(clause.VV)
		for _, v := range clause.VV {
			up.cm[v] = append(up.cm[v], i)
		}
	}
	for i := 0; i < cc.Size; i++ {
		cc.Clause[i].RemainingWt = cc.Clause[i].Weight
	}

	var improvement int64
	var bound int64

	for i := 0; i < cc.Size; i++ {
		clause := &cc.Clause[i]
		if len(clause.VV) == 1 {
			for {
				if clause.RemainingWt == 0 {
					break
				}
				v := clause.VV[0]
				up.unitPropagateOnce(cc, i, v, P)
				if up.i.empty() {
					break
				}
				improvement += up.processInconsistentSet(up.i, cc)
				if improvement >= targetReduction {
					return cc.Size
				}
			}
		}

		bound += clause.Weight
		if bound > target {
			return i
		}
	}

	return cc.Size
}
