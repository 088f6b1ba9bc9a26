package fchrom

import (
	"math"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/basiutekk/peatyvc/bitset"
)

// randomisedVertexOrder returns a Fisher-Yates shuffle of [0, n) seeded
// deterministically by seed, used to escape unlucky colouring orders
// between budget-exhausted restarts.
func randomisedVertexOrder(n int, seed uint64) []int {
	rng := rand.New(rand.NewSource(seed))
	vv := make([]int, n)
	for i := range vv {
		vv[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		r := rng.Intn(i + 1)
		vv[i], vv[r] = vv[r], vv[i]
	}
	return vv
}

// solver holds the scratch state for one expand/backtrack search over g
// at a fixed palette size (numColours) and fold count f.
type solver struct {
	g              *ColouringGraph
	numColours     int
	f              int
	domainNumWords int

	expandCallCount uint64
	expandCallLimit uint64

	terminateEarly *atomic.Bool
}

// colourVtx assigns colour to v, recording it in C and marking colour
// unavailable for v in avail (clearing avail[v] entirely once v has all f
// of its colours).
func (s *solver) colourVtx(C *Solution, avail []bitset.Set, assigned []int, v, colour int) {
	C.Size++
	C.VtxColour[v][assigned[v]] = colour
	assigned[v]++
	bitset.UnsetBit(avail[v], colour)
	if assigned[v] == s.f {
		bitset.Clear(avail[v])
	}
}

// chooseBranchingVertex picks the vertex with the fewest available
// colours, breaking ties in favour of the vertex most "entangled" with
// other tied vertices: non-adjacent tied pairs score by how many
// available colours they still share, and the vertex with the highest
// total score is chosen. Precondition: some vertex has a non-empty
// domain.
func (s *solver) chooseBranchingVertex(avail []bitset.Set) int {
	bestCount := math.MaxInt
	var vertices []int
	for i := 0; i < s.g.N; i++ {
		if bitset.Empty(avail[i], s.domainNumWords) {
			continue
		}
		count := bitset.Popcount(avail[i], s.domainNumWords)
		if count < bestCount {
			bestCount = count
			vertices = vertices[:0]
		}
		if count == bestCount {
			vertices = append(vertices, i)
		}
	}

	scores := make([]int, len(vertices))
	for i, v := range vertices {
		for j := 0; j < i; j++ {
			w := vertices[j]
			if !s.g.AdjMatrix[v][w] {
				pc := bitset.IntersectionPopcount(avail[v], avail[w], s.domainNumWords)
				scores[i] += pc
				scores[j] += pc
			}
		}
	}

	bestV, bestScore := -1, -1
	for i, v := range vertices {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestV = v
		}
	}
	return bestV
}

// expand performs one node of the f-fold colouring search: unit-propagate
// every vertex whose remaining domain exactly matches its remaining
// colour slots, then branch on the vertex chosen by chooseBranchingVertex,
// trying each of its available colours in turn. It stops exploring once
// expandCallLimit calls have been made (the caller checks whether the
// limit was hit via GetSearchNodeCount-equivalent bookkeeping) or once
// incumbent already holds a complete colouring.
func (s *solver) expand(C, incumbent *Solution, avail []bitset.Set, assigned []int) {
	s.expandCallCount++
	if s.expandCallCount >= s.expandCallLimit {
		return
	}

	if s.terminateEarly != nil && s.terminateEarly.Load() {
		return
	}

	if C.Size == s.g.N*s.f {
		incumbent.copyFrom(C)
		return
	}

	szBeforeUnitProp := C.Size
	var unitVStack []int
	for i := 0; i < s.g.N; i++ {
		pc := bitset.Popcount(avail[i], s.domainNumWords)
		numPossible := pc + assigned[i]
		switch {
		case pc != 0 && numPossible == s.f:
			unitVStack = append(unitVStack, i)
		case numPossible < s.f:
			return
		}
	}

	for len(unitVStack) > 0 {
		v := unitVStack[len(unitVStack)-1]
		unitVStack = unitVStack[:len(unitVStack)-1]
		colour := bitset.FirstSetBit(avail[v], s.domainNumWords)
		s.colourVtx(C, avail, assigned, v, colour)
		if assigned[v] != s.f {
			unitVStack = append(unitVStack, v)
		}

		adj := s.g.AdjList[v]
		ai := 0
		for w := 0; w < s.g.N; w++ {
			if ai < len(adj) && adj[ai] == w {
				ai++
				continue
			} else if w == v {
				continue
			}
			if bitset.TestBit(avail[w], colour) {
				bitset.UnsetBit(avail[w], colour)
				popcount := bitset.Popcount(avail[w], s.domainNumWords)
				switch {
				case popcount != 0 && popcount+assigned[w] == s.f:
					unitVStack = append(unitVStack, w)
				case popcount+assigned[w] < s.f:
					C.Size = szBeforeUnitProp
					return
				}
			}
		}
	}

	if C.Size == s.g.N*s.f {
		incumbent.copyFrom(C)
		C.Size = szBeforeUnitProp
		return
	}

	bestV := s.chooseBranchingVertex(avail)

	coloursInAllDomains := bitset.New(s.numColours)
	bitset.SetFirstNBits(coloursInAllDomains, s.numColours)
	for i := 0; i < s.g.N; i++ {
		if !bitset.Empty(avail[i], s.domainNumWords) {
			bitset.IntersectWith(coloursInAllDomains, avail[i], s.domainNumWords)
		}
	}

	domainCopy := bitset.New(s.numColours)
	bitset.Copy(domainCopy, avail[bestV])

	for {
		colour := bitset.FirstSetBit(domainCopy, s.domainNumWords)
		bitset.UnsetBit(domainCopy, colour)
		colourIsInAllDomains := bitset.TestBit(coloursInAllDomains, colour)

		newAvail := make([]bitset.Set, s.g.N)
		for i := range newAvail {
			newAvail[i] = bitset.New(s.numColours)
			bitset.Copy(newAvail[i], avail[i])
		}
		newAssigned := append([]int(nil), assigned...)

		adj := s.g.AdjList[bestV]
		ai := 0
		for w := 0; w < s.g.N; w++ {
			if ai < len(adj) && adj[ai] == w {
				ai++
				continue
			} else if w == bestV {
				continue
			}
			bitset.UnsetBit(newAvail[w], colour)
			// A domain that went unit would already have been
			// instantiated by the unit-propagation pass above.
		}

		s.colourVtx(C, newAvail, newAssigned, bestV, colour)
		s.expand(C, incumbent, newAvail, newAssigned)
		C.Size--

		if !(incumbent.Size < s.g.N*s.f && !colourIsInAllDomains && !bitset.Empty(domainCopy, s.domainNumWords)) {
			break
		}
	}

	C.Size = szBeforeUnitProp
}

// solve runs one bounded f-fold colouring search of g with the given
// palette size, writing any complete colouring found into incumbent, and
// returns the number of search nodes expanded. A set terminateEarly flag
// makes the search return at the next node without touching incumbent.
func solve(g *ColouringGraph, incumbent *Solution, numColours, f int, expandCallLimit uint64, terminateEarly *atomic.Bool) uint64 {
	C := NewSolution(g.N, f)
	domainNumWords := bitset.Words(numColours)
	avail := make([]bitset.Set, g.N)
	for i := range avail {
		avail[i] = bitset.New(numColours)
		bitset.SetFirstNBits(avail[i], numColours)
	}
	assigned := make([]int, g.N)

	s := &solver{g: g, numColours: numColours, f: f, domainNumWords: domainNumWords, expandCallLimit: expandCallLimit, terminateEarly: terminateEarly}
	s.expand(C, incumbent, avail, assigned)
	return s.expandCallCount
}
