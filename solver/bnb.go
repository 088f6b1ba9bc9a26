// Package solver ties together the reduction pipeline, the colouring
// oracle, the fractional-chromatic helper, and the local-search booster
// into the bit-parallel branch-and-bound clique driver, and exposes the
// top-level Solve entry point that reduces, decomposes, searches each
// component, and unwinds back to a minimum-weight vertex cover.
package solver

import (
	"github.com/basiutekk/peatyvc/bitset"
	"github.com/basiutekk/peatyvc/colour"
	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/fchrom"
	"github.com/basiutekk/peatyvc/graph"
	"github.com/basiutekk/peatyvc/localsearch"
)

// driver runs the recursive bit-parallel clique expansion over a single
// connected component's dense complement graph. Per-depth scratch
// buffers (branchVV/newP) are indexed by the current partial clique's
// size and allocated lazily the first time a depth is reached, then
// reused on every later visit to that depth.
type driver struct {
	g         *graph.DenseGraph
	params    *config.Params
	incumbent *graph.VtxList
	colourer  colour.Colourer

	vertexNumbersInOriginal []int

	localSearcher  *localsearch.Searcher
	exactColourer1 *fchrom.ColouringNumberFinder
	exactColourer2 *fchrom.ColouringNumberFinder

	branchVVBitsets []bitset.Set
	newPBitsets     []bitset.Set

	searchNodeCount int64
}

func newDriver(
	g *graph.DenseGraph,
	params *config.Params,
	incumbent *graph.VtxList,
	colourer colour.Colourer,
	vertexNumbersInOriginal []int,
	localSearcher *localsearch.Searcher,
	exactColourer1, exactColourer2 *fchrom.ColouringNumberFinder,
) *driver {
	return &driver{
		g:                       g,
		params:                  params,
		incumbent:               incumbent,
		colourer:                colourer,
		vertexNumbersInOriginal: vertexNumbersInOriginal,
		localSearcher:           localSearcher,
		exactColourer1:          exactColourer1,
		exactColourer2:          exactColourer2,
		branchVVBitsets:         make([]bitset.Set, g.N),
		newPBitsets:             make([]bitset.Set, g.N),
	}
}

// run searches the whole component, starting from the empty partial
// clique C and the full candidate set.
func (d *driver) run(C *graph.VtxList) {
	P := bitset.New(d.g.N)
	bitset.SetFirstNBits(P, d.g.N)
	d.expand(C, P)
}

// updateIncumbentIfNecessary replaces the incumbent with C, translating
// every vertex id back to the parent component's numbering, whenever C
// is strictly heavier.
func (d *driver) updateIncumbentIfNecessary(C *graph.VtxList) {
	if C.TotalWt <= d.incumbent.TotalWt {
		return
	}
	d.incumbent.Clear()
	for _, v := range C.VV {
		d.incumbent.Push(d.vertexNumbersInOriginal[v], d.g.Weight[v])
	}
}

// expand is one node of the recursive search: count the node, check the
// incumbent when P is exhausted, give the helpers their turn, compute the
// colouring bound, then branch on the surviving vertices in ascending
// index order.
func (d *driver) expand(C *graph.VtxList, P bitset.Set) {
	d.searchNodeCount++

	if bitset.Empty(P, d.g.NumWords) {
		d.updateIncumbentIfNecessary(C)
		return
	}

	if d.g.N > 30 {
		if d.searchNodeCount > int64(d.localSearcher.GetTime()) {
			d.localSearcher.Search()
		}
		if d.searchNodeCount > int64(d.exactColourer1.GetSearchNodeCount())*50 {
			d.exactColourer1.Search()
		}
		if colouringNum := d.exactColourer1.GetColouringNumber(); colouringNum != -1 && len(d.incumbent.VV) == colouringNum {
			return
		}
		if d.exactColourer1.GetColouringNumber() != -1 &&
			d.searchNodeCount > int64(d.exactColourer2.GetSearchNodeCount())*1000 {
			d.exactColourer2.Search()
		}
		if fractionalColouringNum := d.exactColourer2.GetColouringNumber(); fractionalColouringNum != -1 {
			if len(d.incumbent.VV) == fractionalColouringNum/2 {
				return
			}
		}
	}

	branchVV := d.branchVVBitsets[len(C.VV)]
	if branchVV == nil {
		branchVV = bitset.New(d.g.N)
		d.branchVVBitsets[len(C.VV)] = branchVV
	} else {
		bitset.Clear(branchVV)
	}

	target := d.incumbent.TotalWt - C.TotalWt
	if !d.colourer.ColouringBound(P, branchVV, target) {
		return
	}

	newP := d.newPBitsets[len(C.VV)]
	if newP == nil {
		newP = bitset.New(d.g.N)
		d.newPBitsets[len(C.VV)] = newP
	}

	bitset.IntersectWithComplement(P, branchVV, d.g.NumWords)

	for {
		v := bitset.FirstSetBit(branchVV, d.g.NumWords)
		if v == -1 {
			break
		}
		bitset.UnsetBit(branchVV, v)
		bitset.IntersectionWithComplement(newP, P, d.g.Comp[v], d.g.NumWords)

		C.Push(v, d.g.Weight[v])
		d.expand(C, newP)
		C.Pop(d.g.Weight[v])
		bitset.SetBit(P, v)
	}
}
