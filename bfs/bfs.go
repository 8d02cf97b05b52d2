// Package bfs provides breadth-first search over a core.Graph,
// returning level distances, parent links, and visit order, plus a
// short-circuiting predicate search.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional per-vertex action, depth limiting, and neighbor
// filtering. Each reachable vertex is visited exactly once.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead
//   - Memory: O(V) for the frontier queue and dense state arrays
package bfs

import (
	"fmt"

	"github.com/quastd/algograph/core"
)

// queueItem pairs a dense vertex index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph core.Graph
	opts  Options
	ix    *core.VertexIndex
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The traversal visits every reachable
// vertex once, in increasing level distance.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrStartVertexNotFound,
// ErrOptionViolation, or any error returned by the OnVisit action.
func BFS(g core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	for len(w.queue) > 0 {
		item := w.dequeue()
		id := w.ix.VertexAt(item.idx)

		w.res.Order = append(w.res.Order, id)
		if err = w.opts.OnVisit(id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit at %q: %w", id, err)
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// FindFirst searches breadth-first from start for the first vertex
// satisfying pred, short-circuiting as soon as one is found.
// Returns ErrNoMatch after exhausting all reachable vertices, or
// ErrNilPredicate, ErrGraphNil, ErrEmptyGraph, ErrStartVertexNotFound.
func FindFirst(g core.Graph, start string, pred func(id string) bool) (string, error) {
	if pred == nil {
		return "", ErrNilPredicate
	}
	w, err := newWalker(g, start, nil)
	if err != nil {
		return "", err
	}

	for len(w.queue) > 0 {
		item := w.dequeue()
		id := w.ix.VertexAt(item.idx)
		if pred(id) {
			return id, nil
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return "", err
		}
	}

	return "", ErrNoMatch
}

// newWalker validates inputs, builds the index maps and dense state,
// and seeds the frontier with the start vertex.
func newWalker(g core.Graph, start string, opts []Option) (*walker, error) {
	// 1. Validate graph and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Validate start vertex against the snapshot.
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 3. Build index maps once; all state is dense from here on.
	ix := core.NewVertexIndex(g)
	n := ix.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ix:    ix,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:   make([]string, 0, n),
			ix:      ix,
			visited: make([]bool, n),
			depth:   make([]int, n),
			parent:  make([]int, n),
		},
	}
	for i := range w.res.parent {
		w.res.parent[i] = core.NilPredecessor
	}

	// 4. Seed the frontier.
	si, _ := ix.IndexOf(start)
	w.enqueue(si, 0, core.NilPredecessor)

	return w, nil
}

// enqueue marks idx visited at depth d with the given parent and adds
// it to the frontier. Visitation is decided at enqueue time, so each
// vertex enters the queue at most once.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.visited[idx] = true
	w.res.depth[idx] = d
	w.res.parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// dequeue pops the head of the FIFO frontier.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor of item one level deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	id := w.ix.VertexAt(item.idx)
	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		ni, ok := w.ix.IndexOf(nbr)
		if !ok || w.res.visited[ni] {
			continue
		}
		w.enqueue(ni, nextDepth, item.idx)
	}

	return nil
}
