// This file implements cycle detection for directed and undirected
// graphs. The algorithm is selected by Graph.Directed():
//
//   - Directed: DFS with a recursion-stack set (White/Gray/Black).
//     A back-edge to a Gray vertex — one still on the active call
//     path — proves a cycle. Vertices turn Black once fully explored,
//     so cross-edges to finished vertices never produce false
//     positives.
//   - Undirected: DFS tracking the immediate parent. An edge to a
//     visited vertex other than the immediate parent proves a cycle;
//     the parent check correctly ignores the trivial 2-cycle of
//     walking back along the same edge.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

import (
	"fmt"

	"github.com/quastd/algograph/core"
)

// HasCycle reports whether g contains a cycle. Only a nil graph fails;
// an empty graph is trivially acyclic.
func HasCycle(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	ix := core.NewVertexIndex(g)
	if g.Directed() {
		return hasDirectedCycle(g, ix)
	}

	return hasUndirectedCycle(g, ix)
}

// hasDirectedCycle launches a three-color DFS from every White vertex.
func hasDirectedCycle(g core.Graph, ix *core.VertexIndex) (bool, error) {
	state := make([]int, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		if state[i] != White {
			continue
		}
		cyclic, err := directedVisit(g, ix, i, state)
		if err != nil {
			return false, err
		}
		if cyclic {
			return true, nil
		}
	}

	return false, nil
}

// directedVisit recurses from idx, keeping Gray vertices as the
// recursion stack. Gray→Gray means a back-edge, hence a cycle.
func directedVisit(g core.Graph, ix *core.VertexIndex, idx int, state []int) (bool, error) {
	state[idx] = Gray

	id := ix.VertexAt(idx)
	neighbors, err := g.NeighborIDs(id)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		ni, ok := ix.IndexOf(nbr)
		if !ok {
			continue
		}
		switch state[ni] {
		case Gray:
			return true, nil // back-edge to an ancestor
		case White:
			cyclic, err := directedVisit(g, ix, ni, state)
			if err != nil || cyclic {
				return cyclic, err
			}
		}
		// Black: already fully explored, a harmless cross-edge.
	}

	state[idx] = Black

	return false, nil
}

// hasUndirectedCycle launches a parent-tracking DFS from every
// unvisited vertex.
func hasUndirectedCycle(g core.Graph, ix *core.VertexIndex) (bool, error) {
	visited := make([]bool, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		if visited[i] {
			continue
		}
		cyclic, err := undirectedVisit(g, ix, i, core.NilPredecessor, visited)
		if err != nil {
			return false, err
		}
		if cyclic {
			return true, nil
		}
	}

	return false, nil
}

// undirectedVisit recurses from idx remembering the immediate parent;
// any other edge into a visited vertex closes a cycle.
func undirectedVisit(g core.Graph, ix *core.VertexIndex, idx, parent int, visited []bool) (bool, error) {
	visited[idx] = true

	id := ix.VertexAt(idx)
	neighbors, err := g.NeighborIDs(id)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		ni, ok := ix.IndexOf(nbr)
		if !ok {
			continue
		}
		if !visited[ni] {
			cyclic, err := undirectedVisit(g, ix, ni, idx, visited)
			if err != nil || cyclic {
				return cyclic, err
			}

			continue
		}
		if ni != parent {
			return true, nil // visited and not the edge we came in on
		}
	}

	return false, nil
}
