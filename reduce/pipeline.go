package reduce

import "github.com/basiutekk/peatyvc/graph"

// Pipeline owns the live/in-cover bookkeeping around a SparseGraph while
// the five rewriters run to fixpoint. Adjacency is mutated in place:
// deleting a vertex strips it from every live neighbour's list, so Adj[v]
// always reflects v's current live neighbourhood.
type Pipeline struct {
	G       *graph.SparseGraph
	Live    []bool
	InCover []bool
	Records []Record

	// EnableBowTie gates the bow-tie rewriter, off by default.
	EnableBowTie bool
}

// NewPipeline wraps g for reduction. Every vertex starts live; loopy
// vertices are immediately forced into the cover and have their incident
// edges dropped, since a self-loop can only be covered by its own vertex.
func NewPipeline(g *graph.SparseGraph) *Pipeline {
	p := &Pipeline{
		G:       g,
		Live:    make([]bool, g.N),
		InCover: make([]bool, g.N),
	}
	for v := 0; v < g.N; v++ {
		p.Live[v] = true
	}
	g.RemoveEdgesIncidentToLoopyVertices()
	for v := 0; v < g.N; v++ {
		if g.HasLoop[v] {
			p.InCover[v] = true
			p.Live[v] = false
		}
	}
	return p
}

// Run executes the five rewriters in the fixed order (isolated-vertex
// removal, domination, degree-2 folding, funnel, [bow-tie]) and iterates
// until a full pass changes nothing.
func (p *Pipeline) Run() {
	for {
		changed := false
		changed = p.isolatedVertexPass() || changed
		changed = p.dominationPass() || changed
		changed = p.deg2FoldPass() || changed
		changed = p.funnelPass() || changed
		if p.EnableBowTie {
			changed = p.bowTiePass() || changed
		}
		if !changed {
			return
		}
	}
}

// LiveVertices returns the vertices still live after Run, in ascending
// order.
func (p *Pipeline) LiveVertices() []int {
	var vv []int
	for v := 0; v < p.G.N; v++ {
		if p.Live[v] {
			vv = append(vv, v)
		}
	}
	return vv
}

// deleteVertex removes v from the live graph: it is stripped from every
// live neighbour's adjacency list and its own list is cleared. It does
// not touch InCover; callers decide that separately.
func (p *Pipeline) deleteVertex(v int) {
	if !p.Live[v] {
		return
	}
	p.Live[v] = false
	for _, w := range p.G.Adj[v] {
		if p.Live[w] {
			p.G.Adj[w] = removeValue(p.G.Adj[w], v)
		}
	}
	p.G.Adj[v] = nil
}

func removeValue(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// isolatedVertexPass implements the clique-neighbourhood rule: if a live
// vertex's live neighbourhood forms a clique, including all of it in the
// cover dominates including v alone, so v is deleted and its whole
// neighbourhood is forced in.
func (p *Pipeline) isolatedVertexPass() bool {
	changed := false
	for v := 0; v < p.G.N; v++ {
		if !p.Live[v] || p.G.HasLoop[v] {
			continue
		}
		n := p.G.Adj[v]
		if len(n) == 0 || !p.G.VVAreClique(n) {
			continue
		}
		neighbours := append([]int(nil), n...)
		for _, u := range neighbours {
			p.InCover[u] = true
			p.deleteVertex(u)
		}
		p.deleteVertex(v)
		changed = true
	}
	return changed
}

// dominationPass forces in any neighbour w of a degree->=3 vertex v that
// is itself adjacent to every other neighbour of v: w dominates v's
// neighbourhood and must be in an optimal cover.
func (p *Pipeline) dominationPass() bool {
	changed := false
	for v := 0; v < p.G.N; v++ {
		if !p.Live[v] {
			continue
		}
		n := p.G.Adj[v]
		if len(n) < 3 {
			continue
		}
		for _, w := range append([]int(nil), n...) {
			if !p.Live[w] || !p.dominates(w, v) {
				continue
			}
			p.InCover[w] = true
			p.deleteVertex(w)
			changed = true
			break
		}
	}
	return changed
}

func (p *Pipeline) dominates(w, v int) bool {
	for _, u := range p.G.Adj[v] {
		if u == w {
			continue
		}
		if !p.G.HasEdge(w, u) {
			return false
		}
	}
	return true
}

// deg2FoldPass contracts every live degree-2 vertex v whose two
// neighbours w, x are non-adjacent: x's other neighbours are merged into
// w, then v and x are deleted.
func (p *Pipeline) deg2FoldPass() bool {
	changed := false
	for v := 0; v < p.G.N; v++ {
		if !p.Live[v] {
			continue
		}
		n := p.G.Adj[v]
		if len(n) != 2 {
			continue
		}
		w, x := n[0], n[1]
		if p.G.HasEdge(w, x) {
			continue
		}

		for _, u := range p.G.Adj[x] {
			if u == v || u == w {
				continue
			}
			if !p.G.HasEdge(w, u) {
				p.G.AddEdge(w, u)
			}
		}
		p.deleteVertex(v)
		p.deleteVertex(x)
		p.Records = append(p.Records, Record{Kind: Deg2Fold, V: v, W: w, X: x})
		changed = true
	}
	return changed
}

// funnelPass generalises deg2FoldPass: a live v whose neighbourhood
// splits into a clique Keep plus one vertex y with no edges into Keep is
// contracted by deleting v and y and merging y's other neighbours into
// every member of Keep.
func (p *Pipeline) funnelPass() bool {
	changed := false
	for v := 0; v < p.G.N; v++ {
		if !p.Live[v] {
			continue
		}
		n := append([]int(nil), p.G.Adj[v]...)
		if len(n) < 3 {
			continue
		}
		for yi, y := range n {
			keep := make([]int, 0, len(n)-1)
			for j, u := range n {
				if j != yi {
					keep = append(keep, u)
				}
			}
			if !p.G.VVAreClique(keep) {
				continue
			}
			touchesKeep := false
			for _, u := range keep {
				if p.G.HasEdge(y, u) {
					touchesKeep = true
					break
				}
			}
			if touchesKeep {
				continue
			}

			yNeighbours := append([]int(nil), p.G.Adj[y]...)
			p.deleteVertex(v)
			p.deleteVertex(y)
			for _, u := range yNeighbours {
				if u == v || !p.Live[u] {
					continue
				}
				for _, k := range keep {
					if u == k {
						continue
					}
					if !p.G.HasEdge(k, u) {
						p.G.AddEdge(k, u)
					}
				}
			}
			p.Records = append(p.Records, Record{Kind: Funnel, V: v, Keep: keep, Y: y})
			changed = true
			break
		}
	}
	return changed
}

// bowTiePass handles a live degree-4 vertex v whose four neighbours
// induce exactly two disjoint edges (a perfect matching on the four of
// them): v is deleted, and adjacency is cross-wired between the matched
// pairs {a,b} and {c,d} so a absorbs c's neighbours, b absorbs d's, c
// absorbs b's and d absorbs a's. This does not force any of a,b,c,d into
// the cover; the five-case Unwind table recovers v's and, where needed,
// a/b/c/d's correct membership from the child solve. Disabled unless
// EnableBowTie is set.
func (p *Pipeline) bowTiePass() bool {
	changed := false
	for v := 0; v < p.G.N; v++ {
		if !p.Live[v] {
			continue
		}
		n := p.G.Adj[v]
		if len(n) != 4 || !isBowTie(p.G, n) {
			continue
		}

		a, b, c, d := n[0], n[1], n[2], n[3]
		// Canonicalize so {a,b} and {c,d} are the two matching edges.
		switch {
		case p.G.HasEdge(a, c):
			b, c = c, b
		case p.G.HasEdge(a, d):
			b, d = d, b
		}

		p.deleteVertex(v)

		adjA := append([]int(nil), p.G.Adj[a]...)
		adjB := append([]int(nil), p.G.Adj[b]...)
		adjC := append([]int(nil), p.G.Adj[c]...)
		adjD := append([]int(nil), p.G.Adj[d]...)
		for _, u := range adjC {
			if !p.G.HasEdge(a, u) {
				p.G.AddEdge(a, u)
			}
		}
		for _, u := range adjD {
			if !p.G.HasEdge(b, u) {
				p.G.AddEdge(b, u)
			}
		}
		for _, u := range adjB {
			if !p.G.HasEdge(c, u) {
				p.G.AddEdge(c, u)
			}
		}
		for _, u := range adjA {
			if !p.G.HasEdge(d, u) {
				p.G.AddEdge(d, u)
			}
		}

		p.Records = append(p.Records, Record{Kind: BowTie, V: v, A: a, B: b, C: c, D: d})
		changed = true
	}
	return changed
}

// isBowTie reports whether the four vertices in n each have exactly one
// edge to another member of n, i.e. n induces a perfect matching.
func isBowTie(g *graph.SparseGraph, n []int) bool {
	for _, v := range n {
		edges := 0
		for _, w := range n {
			if v == w {
				continue
			}
			if g.HasEdge(v, w) {
				edges++
				if edges > 1 {
					break
				}
			}
		}
		if edges != 1 {
			return false
		}
	}
	return true
}
