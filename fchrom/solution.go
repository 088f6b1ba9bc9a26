package fchrom

// Solution is a partial or complete f-fold colouring: VtxColour[v] holds
// up to f colour indices assigned to v so far, and Size counts the total
// number of (vertex, colour) assignments made across every vertex.
type Solution struct {
	Size      int
	VtxColour [][]int
}

// NewSolution returns an empty f-fold colouring scratch space for n
// vertices.
func NewSolution(n, f int) *Solution {
	vc := make([][]int, n)
	for i := range vc {
		vc[i] = make([]int, f)
	}
	return &Solution{VtxColour: vc}
}

// copyFrom deep-copies src into s; both must have been built with the
// same n and f.
func (s *Solution) copyFrom(src *Solution) {
	s.Size = src.Size
	for i := range s.VtxColour {
		copy(s.VtxColour[i], src.VtxColour[i])
	}
}
