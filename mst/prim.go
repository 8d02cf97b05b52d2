package mst

import (
	"container/heap"
	"fmt"

	"github.com/quastd/algograph/core"
)

// Prim computes a minimum spanning tree by growing outward from root:
// a min-heap holds candidate edges crossing the tree boundary, and the
// lightest edge into an unvisited vertex is accepted each round.
//
// Errors: ErrInvalidGraph for nil, directed, or unweighted input;
// ErrEmptyRoot for a blank root; core.ErrVertexNotFound when root is
// absent; ErrDisconnected when the tree cannot reach every vertex.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g core.WeightedGraph, root string) ([]core.Edge, int64, error) {
	// 1. Structural preconditions.
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("mst: %w: %q", core.ErrVertexNotFound, root)
	}

	// 2. Single vertex: the trivial empty tree.
	ix := core.NewVertexIndex(g)
	n := ix.Len()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Seed the frontier with the root's incident edges.
	visited := make([]bool, n)
	ri, _ := ix.IndexOf(root)
	visited[ri] = true

	pq := &edgeHeap{}
	heap.Init(pq)
	if err := pushFrontier(g, ix, visited, pq, root); err != nil {
		return nil, 0, err
	}

	// 4. Repeatedly accept the lightest crossing edge; edges whose far
	//    endpoint was visited in the meantime are stale and skipped.
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		vi, ok := ix.IndexOf(e.To)
		if !ok || visited[vi] {
			continue
		}
		visited[vi] = true
		mst = append(mst, e)
		total += e.Weight
		if err := pushFrontier(g, ix, visited, pq, e.To); err != nil {
			return nil, 0, err
		}
	}

	// 5. Fewer than |V|−1 edges means some vertex was unreachable.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// pushFrontier queues every edge from id whose far endpoint is not yet
// in the tree.
func pushFrontier(g core.WeightedGraph, ix *core.VertexIndex, visited []bool, pq *edgeHeap, id string) error {
	neighbors, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %q: %w", id, err)
	}
	for _, e := range neighbors {
		vi, ok := ix.IndexOf(e.To)
		if ok && !visited[vi] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgeHeap is a min-heap of candidate edges ordered by weight.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
