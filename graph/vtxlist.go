package graph

// VtxList is an ordered list of vertex indices together with a cached
// total weight. The invariant TotalWt == sum(weight[v] for v in VV) holds
// after every mutation through Push/Pop; callers that build a VtxList by
// any other means (e.g. assignment during incumbent replacement) are
// responsible for keeping it true.
type VtxList struct {
	TotalWt int64
	VV      []int
}

// NewVtxList returns an empty VtxList with its backing slice pre-sized to
// capacity.
func NewVtxList(capacity int) *VtxList {
	return &VtxList{VV: make([]int, 0, capacity)}
}

// Clear empties the list and resets the cached weight to zero.
func (c *VtxList) Clear() {
	c.TotalWt = 0
	c.VV = c.VV[:0]
}

// Push appends v with the given weight and updates the cached total.
func (c *VtxList) Push(v int, weight int64) {
	c.VV = append(c.VV, v)
	c.TotalWt += weight
}

// Pop removes the last vertex, given its weight, and updates the cached
// total. The caller must pass the same weight that was used to Push it.
func (c *VtxList) Pop(weight int64) {
	c.TotalWt -= weight
	c.VV = c.VV[:len(c.VV)-1]
}

// Clone returns an independent copy of c.
func (c *VtxList) Clone() *VtxList {
	out := &VtxList{TotalWt: c.TotalWt, VV: make([]int, len(c.VV))}
	copy(out.VV, c.VV)
	return out
}
