// Package localsearch implements a tabu-search incumbent booster that
// hunts for a large independent set directly on the original (pre-
// complement) graph, independently of the bit-parallel clique search.
// It is cheap enough to interleave with branch-and-bound on large graphs,
// and its found independent sets translate straight into cover candidates
// once complemented back by the caller.
package localsearch

import (
	"golang.org/x/exp/rand"

	"github.com/basiutekk/peatyvc/graph"
)

// fastSet is an O(1) add/remove/contains set over [0, capacity), backed
// by a dense membership slice plus a swap-removal element list.
type fastSet struct {
	inSet          []bool
	positionInList []int
	elements       []int
}

func newFastSet(capacity int) *fastSet {
	return &fastSet{inSet: make([]bool, capacity), positionInList: make([]int, capacity)}
}

func (s *fastSet) add(x int) {
	if s.inSet[x] {
		return
	}
	s.inSet[x] = true
	s.positionInList[x] = len(s.elements)
	s.elements = append(s.elements, x)
}

func (s *fastSet) remove(x int) {
	if !s.inSet[x] {
		return
	}
	pos := s.positionInList[x]
	last := len(s.elements) - 1
	s.elements[pos] = s.elements[last]
	s.positionInList[s.elements[pos]] = pos
	s.elements = s.elements[:last]
	s.inSet[x] = false
}

func (s *fastSet) size() int {
	return len(s.elements)
}

// Searcher hunts for a large independent set in g using a tabu-driven
// greedy-add / swap-or-drop cycle, reporting any improvement over the
// weight-1-per-vertex incumbent it is given. It is not safe for
// concurrent use.
type Searcher struct {
	g                      *graph.SparseGraph
	numConflicts           []int
	noConflictSet          *fastSet
	oneConflictSet         *fastSet
	inIndSet               []bool
	indSetSize             int
	tabuDuration           int
	time                   uint64
	localTimeLimit         uint64
	lastTimeChanged        []int
	incumbent              *graph.VtxList
	rng                    *rand.Rand
}

// NewSearcher returns a Searcher over g whose improved independent sets
// (scored one per vertex, ignoring g's own weights) are written into
// incumbent whenever they beat its current size.
func NewSearcher(g *graph.SparseGraph, incumbent *graph.VtxList, seed uint64) *Searcher {
	s := &Searcher{
		g:               g,
		numConflicts:    make([]int, g.N),
		noConflictSet:   newFastSet(g.N),
		oneConflictSet:  newFastSet(g.N),
		inIndSet:        make([]bool, g.N),
		tabuDuration:    10,
		lastTimeChanged: make([]int, g.N),
		incumbent:       incumbent,
		rng:             rand.New(rand.NewSource(seed)),
	}
	s.time = uint64(s.tabuDuration + 1)
	s.localTimeLimit = 5000
	for v := 0; v < g.N; v++ {
		s.noConflictSet.add(v)
	}
	return s
}

// GetTime returns the searcher's virtual-time counter, used by the
// caller to decide how often to invoke Search relative to its own
// branch-and-bound search-node count.
func (s *Searcher) GetTime() uint64 {
	return s.time
}

func (s *Searcher) reset() {
	for i := range s.numConflicts {
		s.numConflicts[i] = 0
	}
	for i := range s.inIndSet {
		s.inIndSet[i] = false
	}
	for i := range s.lastTimeChanged {
		s.lastTimeChanged[i] = 0
	}
	s.indSetSize = 0
	for v := 0; v < s.g.N; v++ {
		s.noConflictSet.add(v)
		s.oneConflictSet.remove(v)
	}
}

func (s *Searcher) addToIndSet(v int) {
	s.inIndSet[v] = true
	s.indSetSize++
	for _, w := range s.g.Adj[v] {
		switch s.numConflicts[w] {
		case 0:
			s.noConflictSet.remove(w)
			s.oneConflictSet.add(w)
		case 1:
			s.oneConflictSet.remove(w)
		}
		s.numConflicts[w]++
	}
}

func (s *Searcher) removeFromIndSet(v int) {
	s.lastTimeChanged[v] = int(s.time)
	s.inIndSet[v] = false
	s.indSetSize--
	for _, w := range s.g.Adj[v] {
		s.numConflicts[w]--
		switch s.numConflicts[w] {
		case 0:
			s.noConflictSet.add(w)
			s.oneConflictSet.remove(w)
		case 1:
			s.oneConflictSet.add(w)
		}
	}
}

func (s *Searcher) permittedByTabuRule(v int) bool {
	return int(s.time) > s.lastTimeChanged[v]+s.tabuDuration
}

func (s *Searcher) greedilyAddToIS() {
	if s.noConflictSet.size() == s.indSetSize {
		return
	}

	var withoutConflict []int
	for _, v := range s.noConflictSet.elements {
		if !s.inIndSet[v] {
			withoutConflict = append(withoutConflict, v)
		}
	}
	s.rng.Shuffle(len(withoutConflict), func(i, j int) {
		withoutConflict[i], withoutConflict[j] = withoutConflict[j], withoutConflict[i]
	})

	for _, v := range withoutConflict {
		if s.numConflicts[v] == 0 && (s.indSetSize >= len(s.incumbent.VV) || s.permittedByTabuRule(v)) {
			s.addToIndSet(v)
		}
	}

	if s.indSetSize > len(s.incumbent.VV) {
		s.incumbent.Clear()
		for v := 0; v < s.g.N; v++ {
			if s.inIndSet[v] {
				s.incumbent.Push(v, 1)
			}
		}
	}
}

func (s *Searcher) doSwapOrDeletion() {
	var withOneConflict []int
	if s.rng.Intn(21) != 0 {
		for _, v := range s.oneConflictSet.elements {
			if s.permittedByTabuRule(v) {
				withOneConflict = append(withOneConflict, v)
			}
		}
	}

	if len(withOneConflict) == 0 {
		var inIS []int
		for v := 0; v < s.g.N; v++ {
			if s.inIndSet[v] {
				inIS = append(inIS, v)
			}
		}
		if len(inIS) > 0 {
			v := inIS[s.rng.Intn(len(inIS))]
			s.removeFromIndSet(v)
		}
		return
	}

	v := withOneConflict[s.rng.Intn(len(withOneConflict))]
	for _, w := range s.g.Adj[v] {
		if s.inIndSet[w] {
			s.removeFromIndSet(w)
			s.addToIndSet(v)
			break
		}
	}
}

// Search runs one bounded local-search episode, growing its own time
// budget by 0.1% each time it exhausts it, then resets its working state
// so the next episode starts fresh.
func (s *Searcher) Search() {
	var localTime uint64
	localBest := 0
	for localTime < s.localTimeLimit {
		s.greedilyAddToIS()
		s.doSwapOrDeletion()
		s.doSwapOrDeletion()
		if s.indSetSize > localBest {
			localBest = s.indSetSize
			localTime = 0
		}
		localTime++
		s.time++
	}
	s.localTimeLimit += s.localTimeLimit / 1000
	s.reset()
}
