// This file implements topological sorting over a directed acyclic
// graph.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v. Acyclicity is verified
// by a full HasCycle pass before sorting begins — a deliberate
// correctness-over-performance trade, keeping the sort itself free of
// cycle bookkeeping.
//
// Complexity: O(V + E) for the precheck plus O(V + E) for the sort.
package dfs

import (
	"fmt"

	"github.com/quastd/algograph/core"
)

// TopologicalSort returns a topological order of all vertices in g.
// Ties among siblings follow the graph's neighbor iteration order.
//
// Errors: ErrGraphNil, ErrUndirectedGraph for undirected input,
// ErrNotDAG when the precheck detects a cycle.
func TopologicalSort(g core.Graph) ([]string, error) {
	// 1. Structural preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2. Full acyclicity precheck (separate pass, see file comment).
	cyclic, err := HasCycle(g)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, ErrNotDAG
	}

	// 3. DFS postorder from every unvisited vertex: a vertex is pushed
	//    only after all its descendants have been pushed.
	ix := core.NewVertexIndex(g)
	s := &topoSorter{
		graph:   g,
		ix:      ix,
		visited: make([]bool, ix.Len()),
		stack:   make([]string, 0, ix.Len()),
	}
	for i := 0; i < ix.Len(); i++ {
		if !s.visited[i] {
			if err = s.visit(i); err != nil {
				return nil, err
			}
		}
	}

	// 4. Popping the stack top-to-bottom yields the topological order.
	order := make([]string, 0, len(s.stack))
	for i := len(s.stack) - 1; i >= 0; i-- {
		order = append(order, s.stack[i])
	}

	return order, nil
}

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	graph   core.Graph
	ix      *core.VertexIndex
	visited []bool
	stack   []string // postorder push sequence
}

// visit recurses into unvisited neighbors of idx, then pushes idx.
func (s *topoSorter) visit(idx int) error {
	s.visited[idx] = true

	id := s.ix.VertexAt(idx)
	neighbors, err := s.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		ni, ok := s.ix.IndexOf(nbr)
		if !ok || s.visited[ni] {
			continue
		}
		if err = s.visit(ni); err != nil {
			return err
		}
	}

	s.stack = append(s.stack, id)

	return nil
}
