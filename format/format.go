// Package format implements the two DIMACS-family graph dialects the
// solver accepts (DIMACS-clique and PACE-vc) and the cover writer.
// Readers build a graph.SparseGraph directly: edges are
// deduplicated, a reflexive pair {v,v} becomes a loop, and adjacency is
// sorted ascending before the reader returns.
package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/basiutekk/peatyvc/graph"
)

// Format selects which dialect Read parses.
type Format int

const (
	// Pace selects the PACE-vc dialect (`p td N M`, bare `V W` edge
	// lines), the default.
	Pace Format = iota
	// Dimacs selects the DIMACS-clique dialect (`p edge N M`, `e V W`
	// edges, `n V WT` weights).
	Dimacs
)

// Sentinel errors for input parsing: fatal at read time, never retried.
var (
	ErrMalformedHeader    = errors.New("format: malformed header line")
	ErrBadInteger         = errors.New("format: expected an integer")
	ErrEdgeCountMismatch  = errors.New("format: edge lines do not match the count the header declared")
	ErrTooManyVertices    = errors.New("format: vertex count exceeds the supported maximum")
	ErrTooManyEdges       = errors.New("format: edge count exceeds the supported maximum")
	ErrMissingHeader      = errors.New("format: input ended before a header line was seen")
)

// maxCount bounds vertex and edge counts at INT_MAX. Go's int is 64-bit
// on every supported platform, so this is a deliberate ceiling rather
// than a genuine overflow limit.
const maxCount = math.MaxInt32

// Read parses r in the given dialect and returns the resulting sparse
// graph, with adjacency sorted ascending and duplicate/reflexive edges
// already collapsed.
func Read(r io.Reader, f Format) (*graph.SparseGraph, error) {
	switch f {
	case Dimacs:
		return readDimacs(r)
	default:
		return readPace(r)
	}
}

// edgeKey canonicalizes an undirected edge for deduplication: (min, max).
type edgeKey struct{ v, w int }

func canonicalEdge(v, w int) edgeKey {
	if v > w {
		v, w = w, v
	}
	return edgeKey{v, w}
}

func parseInt(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadInteger, field)
	}
	return n, nil
}

// buildGraph applies edges (1-based) and weight overrides to a fresh
// SparseGraph: reflexive pairs become loops, duplicates collapse, and
// adjacency is sorted before return.
func buildGraph(n int, edges []edgeKey, weights map[int]int64) (*graph.SparseGraph, error) {
	if n < 0 || n > maxCount {
		return nil, ErrTooManyVertices
	}
	if len(edges) > maxCount {
		return nil, ErrTooManyEdges
	}

	g := graph.NewSparseGraph(n)
	for v, wt := range weights {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: weight for out-of-range vertex %d", ErrMalformedHeader, v+1)
		}
		g.Weight[v] = wt
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].v != edges[j].v {
			return edges[i].v < edges[j].v
		}
		return edges[i].w < edges[j].w
	})

	var prev edgeKey
	havePrev := false
	for _, e := range edges {
		if e.v < 0 || e.w >= n {
			return nil, fmt.Errorf("%w: edge %d-%d outside 1..%d", ErrMalformedHeader, e.v+1, e.w+1, n)
		}
		if havePrev && e == prev {
			continue
		}
		prev, havePrev = e, true

		if e.v == e.w {
			g.AddLoop(e.v)
			continue
		}
		g.AddEdge(e.v, e.w)
	}
	g.SortAdjLists()
	return g, nil
}

// readPace parses the PACE-vc dialect: `c` comments, a single `p td N M`
// header, then exactly M `V W` edge lines. Reading stops after M edges.
func readPace(r io.Reader) (*graph.SparseGraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var n, m int
	haveHeader := false
	edges := make([]edgeKey, 0)

scanLines:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if haveHeader {
				continue
			}
			if len(fields) != 4 || fields[1] != "td" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			var err error
			if n, err = parseInt(fields[2]); err != nil {
				return nil, err
			}
			if m, err = parseInt(fields[3]); err != nil {
				return nil, err
			}
			haveHeader = true
		default:
			if !haveHeader {
				return nil, ErrMissingHeader
			}
			if len(edges) >= m {
				continue
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			v, err := parseInt(fields[0])
			if err != nil {
				return nil, err
			}
			w, err := parseInt(fields[1])
			if err != nil {
				return nil, err
			}
			edges = append(edges, canonicalEdge(v-1, w-1))
			if len(edges) == m {
				break scanLines
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, ErrMissingHeader
	}
	if len(edges) < m {
		return nil, ErrEdgeCountMismatch
	}
	return buildGraph(n, edges, nil)
}

// readDimacs parses the DIMACS-clique dialect: `c` comments, a single
// `p edge N M` header, `e V W` edges, and `n V WT` weight overrides
// (unweighted inputs default every weight to 1).
func readDimacs(r io.Reader) (*graph.SparseGraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var n, m int
	haveHeader := false
	edges := make([]edgeKey, 0)
	weights := make(map[int]int64)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if haveHeader {
				continue
			}
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			var err error
			if n, err = parseInt(fields[2]); err != nil {
				return nil, err
			}
			if m, err = parseInt(fields[3]); err != nil {
				return nil, err
			}
			haveHeader = true
		case "e":
			if !haveHeader {
				return nil, ErrMissingHeader
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			v, err := parseInt(fields[1])
			if err != nil {
				return nil, err
			}
			w, err := parseInt(fields[2])
			if err != nil {
				return nil, err
			}
			edges = append(edges, canonicalEdge(v-1, w-1))
		case "n":
			if !haveHeader {
				return nil, ErrMissingHeader
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			v, err := parseInt(fields[1])
			if err != nil {
				return nil, err
			}
			wt, err := parseInt(fields[2])
			if err != nil {
				return nil, err
			}
			weights[v-1] = int64(wt)
		default:
			return nil, fmt.Errorf("%w: unrecognized line %q", ErrMalformedHeader, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, ErrMissingHeader
	}
	if m > 0 && len(edges) != m {
		return nil, ErrEdgeCountMismatch
	}
	return buildGraph(n, edges, weights)
}

// WriteCover writes the `s vc <N> <|cover|>` block followed by one
// 1-based vertex index per line, sorted ascending.
func WriteCover(w io.Writer, n int, cover []int) error {
	sorted := append([]int(nil), cover...)
	sort.Ints(sorted)

	if _, err := fmt.Fprintf(w, "s vc %d %d\n", n, len(sorted)); err != nil {
		return err
	}
	for _, v := range sorted {
		if _, err := fmt.Fprintf(w, "%d\n", v+1); err != nil {
			return err
		}
	}
	return nil
}
