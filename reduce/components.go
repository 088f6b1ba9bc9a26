package reduce

import "github.com/basiutekk/peatyvc/graph"

// ConnectedComponents partitions the live vertices of g into connected
// components by BFS over live edges. A live vertex with an empty
// adjacency list belongs to no component: it contributes nothing to the
// cover and is simply absent from every component's solve.
func ConnectedComponents(g *graph.SparseGraph, live []bool) [][]int {
	visited := make([]bool, g.N)
	var components [][]int
	for s := 0; s < g.N; s++ {
		if !live[s] || visited[s] || len(g.Adj[s]) == 0 {
			continue
		}
		comp := []int{}
		queue := []int{s}
		visited[s] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, w := range g.Adj[v] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}
