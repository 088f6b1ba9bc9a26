// Package reduce implements the graph-reduction pipeline: a fixpoint of
// five local rewrites over a SparseGraph, each either updating an
// in-cover assignment directly or emitting a reversible Record so the
// post-reduction solution can be unwound back to the original graph.
package reduce

// Kind tags the payload carried by a Record.
type Kind int

const (
	// Deg2Fold records the contraction of a degree-2 vertex v between
	// two non-adjacent neighbours w and x into a single vertex w.
	Deg2Fold Kind = iota
	// Funnel records the contraction of v, whose live neighbourhood
	// splits into a clique Keep plus one vertex Y with no edges into
	// Keep.
	Funnel
	// BowTie records a degree-4 vertex v whose neighbourhood induces
	// exactly two disjoint edges; v is deleted and Unwind decides
	// whether it joins the cover.
	BowTie
)

// Record is the reduction pipeline's tagged union: each variant carries
// exactly the fields its Kind needs, and Unwind knows how to turn a
// Boolean in-cover assignment on the reduced graph into a correct one on
// the pre-reduction graph.
type Record struct {
	Kind Kind

	// Deg2Fold: v folds onto w, absorbing x.
	V, W, X int

	// Funnel: v's neighbourhood is Keep (a clique) plus Y.
	Keep []int
	Y    int

	// BowTie: v's four neighbours, canonicalized so {a,b} and {c,d} are
	// the two matching edges the bow-tie rewiring was built from.
	A, B, C, D int
}

// Unwind updates inCover (indexed by original vertex id) from the
// reduced graph's solution to the pre-reduction graph's solution.
func (r Record) Unwind(inCover []bool) {
	switch r.Kind {
	case Deg2Fold:
		// w absorbed v and x. If w ended up in the cover, x must join
		// it to cover the edge the fold hid; v stays out. Otherwise v
		// itself must be in the cover, and x stays out.
		if inCover[r.W] {
			inCover[r.X] = true
		} else {
			inCover[r.V] = true
		}
	case Funnel:
		allKeepIn := true
		for _, u := range r.Keep {
			if !inCover[u] {
				allKeepIn = false
				break
			}
		}
		if allKeepIn {
			inCover[r.Y] = true
		} else {
			inCover[r.V] = true
		}
	case BowTie:
		switch {
		case !inCover[r.A]:
			inCover[r.C] = false
			inCover[r.V] = true
		case !inCover[r.B]:
			inCover[r.D] = false
			inCover[r.V] = true
		case !inCover[r.C]:
			inCover[r.B] = false
			inCover[r.V] = true
		case !inCover[r.D]:
			inCover[r.A] = false
			inCover[r.V] = true
		default:
			inCover[r.V] = false
		}
	}
}

// UnwindAll consumes records LIFO, which is the order the reduction
// fixpoint's invertibility guarantee requires.
func UnwindAll(records []Record, inCover []bool) {
	for i := len(records) - 1; i >= 0; i-- {
		records[i].Unwind(inCover)
	}
}
