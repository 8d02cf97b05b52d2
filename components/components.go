// Package components computes the connected components of an
// undirected graph.
//
// Compute partitions the vertex set by running breadth-first search
// from every vertex not yet claimed by an earlier component. Each
// component lists its members in BFS discovery order; the components
// themselves appear in order of their first-discovered vertex, which
// follows the graph's deterministic vertex iteration order.
//
// Complexity: O(V + E) time, O(V) memory.
package components

import (
	"errors"
	"fmt"

	"github.com/quastd/algograph/core"
)

// Sentinel errors for component computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrDirectedGraph is returned for directed input; connectivity in
	// the directed sense (strong components) is a different problem.
	ErrDirectedGraph = errors.New("components: directed graphs not supported")
)

// Compute returns the connected components of g. An empty graph yields
// an empty slice; an isolated vertex forms its own singleton component.
//
// Errors: ErrGraphNil, ErrDirectedGraph.
func Compute(g core.Graph) ([][]string, error) {
	// 1. Structural preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.VertexCount() == 0 {
		return [][]string{}, nil
	}

	// 2. Dense visited state over the vertex bijection.
	ix := core.NewVertexIndex(g)
	n := ix.Len()
	visited := make([]bool, n)
	result := make([][]string, 0)

	// 3. BFS from every unclaimed vertex; the flood fill is one component.
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		component := []string{ix.VertexAt(root)}

		for head := 0; head < len(queue); head++ {
			v := ix.VertexAt(queue[head])
			neighbors, err := g.NeighborIDs(v)
			if err != nil {
				return nil, fmt.Errorf("components: neighbors of %q: %w", v, err)
			}
			for _, w := range neighbors {
				wi, ok := ix.IndexOf(w)
				if !ok || visited[wi] {
					continue
				}
				visited[wi] = true
				queue = append(queue, wi)
				component = append(component, w)
			}
		}

		result = append(result, component)
	}

	return result, nil
}

// Count returns the number of connected components of g.
//
// Errors: ErrGraphNil, ErrDirectedGraph.
func Count(g core.Graph) (int, error) {
	comps, err := Compute(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// Connected reports whether g consists of a single component. The
// empty graph is considered connected.
//
// Errors: ErrGraphNil, ErrDirectedGraph.
func Connected(g core.Graph) (bool, error) {
	n, err := Count(g)
	if err != nil {
		return false, err
	}

	return n <= 1, nil
}
