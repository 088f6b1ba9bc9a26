package reduce

import (
	"errors"
	"fmt"

	"github.com/basiutekk/peatyvc/graph"
)

// ErrAdjacencyAsymmetry reports a post-reduction graph where v lists w as
// a neighbour but w does not list v. It always indicates a pipeline bug
// rather than bad input, since input is made symmetric at read time.
var ErrAdjacencyAsymmetry = errors.New("reduce: adjacency asymmetry")

// ErrDuplicateEdge reports a vertex whose adjacency list names the same
// neighbour twice.
var ErrDuplicateEdge = errors.New("reduce: duplicate edge")

// CheckAdjacencyIntegrity verifies g's adjacency is symmetric and free of
// duplicate neighbours. The reduction pipeline's rewriters are supposed
// to preserve both properties; this is the check that catches a bug in
// one of them before it reaches the B&B driver.
func CheckAdjacencyIntegrity(g *graph.SparseGraph) error {
	for v := 0; v < g.N; v++ {
		seen := make(map[int]bool, len(g.Adj[v]))
		for _, w := range g.Adj[v] {
			if seen[w] {
				return fmt.Errorf("%w: vertex %d lists %d twice", ErrDuplicateEdge, v, w)
			}
			seen[w] = true
			if !g.HasEdge(w, v) {
				return fmt.Errorf("%w: %d->%d present but %d->%d missing", ErrAdjacencyAsymmetry, v, w, w, v)
			}
		}
	}
	return nil
}
