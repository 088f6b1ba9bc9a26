package colour

// Clause is a colour class produced by the greedy phase: a set of
// vertices pairwise non-adjacent in the dense graph, so no clique can
// take more than one of them. It carries the class's weight and the
// residual weight unit propagation has not yet consumed.
type Clause struct {
	VV          []int
	Weight      int64
	RemainingWt int64

	sortingScore uint64
}

// ListOfClauses is a contiguous, reusable clause buffer: Size may be less
// than len(Clause), and successive ColouringBound calls reuse the same
// backing Clause slices rather than reallocating.
type ListOfClauses struct {
	Clause []Clause
	Size   int
}

// NewListOfClauses returns a ListOfClauses with capacity pre-allocated
// clauses (at most one clause per vertex can ever be live at once).
func NewListOfClauses(capacity int) *ListOfClauses {
	return &ListOfClauses{Clause: make([]Clause, capacity)}
}

// Clear resets Size to zero without releasing the underlying clauses'
// VV slices, so the next colouring pass reuses their capacity.
func (l *ListOfClauses) Clear() {
	l.Size = 0
}
