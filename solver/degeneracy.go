package solver

import "github.com/basiutekk/peatyvc/graph"

// DegeneracyOrder computes a smallest-last degeneracy ordering of g's
// complement, the graph the B&B driver searches for cliques, using
// bucket doubly-linked lists with one bucket per residual degree in g:
// each step removes a vertex of maximum residual degree in g, which is a
// vertex of minimum residual degree in the complement. Once every
// remaining vertex has residual degree 0, they are appended in ascending
// index order. The sequence is then reversed to a largest-first
// processing order. This is the order the dense complement graph is
// rebuilt in, so that within the B&B driver FirstSetBit walks candidates
// in a heuristically strong sequence.
func DegeneracyOrder(g *graph.SparseGraph) []int {
	n := g.N
	var vv []int
	if n == 0 {
		return vv
	}

	residualDeg := make([]int, n)
	for v := 0; v < n; v++ {
		residualDeg[v] = len(g.Adj[v])
	}

	// Bucket lists indexed [0, n) for vertices, [n, 2n) for list heads
	// and sentinel self-links, all in one pair of next/prev slices.
	next := make([]int, n*2)
	prev := make([]int, n*2)
	for i := 0; i < n; i++ {
		next[n+i] = n + i
		prev[n+i] = n + i
	}
	for v := 0; v < n; v++ {
		deg := residualDeg[v]
		prev[v] = n + deg
		next[v] = next[n+deg]
		prev[next[v]] = v
		next[n+deg] = v
	}

	inVV := make([]bool, n)
	listIdx := n - 1
	for {
		for next[n+listIdx] >= n {
			listIdx--
		}
		if listIdx == 0 {
			for v := 0; v < n; v++ {
				if !inVV[v] {
					vv = append(vv, v)
				}
			}
			reverseInts(vv)
			return vv
		}

		v := next[n+listIdx]
		vv = append(vv, v)
		inVV[v] = true

		next[prev[v]] = next[v]
		prev[next[v]] = prev[v]

		for _, w := range g.Adj[v] {
			if inVV[w] {
				continue
			}
			next[prev[w]] = next[w]
			prev[next[w]] = prev[w]

			residualDeg[w]--
			r := residualDeg[w]

			prev[w] = n + r
			next[w] = next[n+r]
			prev[next[w]] = w
			next[n+r] = w
		}
		if listIdx < n-1 {
			listIdx++
		}
	}
}

func reverseInts(vv []int) {
	for i, j := 0, len(vv)-1; i < j; i, j = i+1, j-1 {
		vv[i], vv[j] = vv[j], vv[i]
	}
}
