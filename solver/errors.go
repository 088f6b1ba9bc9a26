package solver

import (
	"errors"

	"github.com/basiutekk/peatyvc/graph"
)

// ErrInvalidCover is returned by Solve (via ValidateCover) when the
// computed cover fails to cover some edge or omits a loopy vertex. It
// always indicates a bug in the solver itself rather than bad input,
// since input is validated at parse time.
var ErrInvalidCover = errors.New("solver: computed cover is not a valid vertex cover")

// ValidateCover reports ErrInvalidCover if some edge of g has neither
// endpoint in cover, or if some loopy vertex is missing from cover. g
// must be the original, pre-reduction graph.
func ValidateCover(g *graph.SparseGraph, cover []int) error {
	inCover := make([]bool, g.N)
	for _, v := range cover {
		inCover[v] = true
	}
	for v := 0; v < g.N; v++ {
		if g.HasLoop[v] && !inCover[v] {
			return ErrInvalidCover
		}
	}
	for v := 0; v < g.N; v++ {
		if inCover[v] {
			continue
		}
		for _, w := range g.Adj[v] {
			if !inCover[w] {
				return ErrInvalidCover
			}
		}
	}
	return nil
}
