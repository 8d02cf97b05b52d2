// Package dfs implements depth-first traversal over a core.Graph in
// two flavors — an iterative explicit-stack walk and a recursive walk —
// plus predicate search, cycle detection (cycle.go) and topological
// sorting (topological.go).
//
// The iterative walk allows duplicate stack entries: a vertex may be
// pushed several times before it is first popped, and visitation is
// decided by the first pop. The recursive walk marks a vertex visited
// before descending and additionally delivers post-order OnExit hooks.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead
//   - Memory: O(V) stack + dense state arrays (stack may briefly hold
//     O(E) duplicate entries in the iterative variant)
package dfs

import (
	"errors"
	"fmt"

	"github.com/quastd/algograph/core"
)

// errFound aborts a FindFirst walk from inside the OnVisit action.
var errFound = errors.New("dfs: match found")

// stackItem is one pending visit on the explicit DFS stack.
type stackItem struct {
	idx    int
	depth  int
	parent int
}

// DFS performs an iterative depth-first traversal of g from start.
// Neighbors are expanded in ascending ID order.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrStartVertexNotFound,
// ErrOptionViolation, or any error returned by the OnVisit action.
func DFS(g core.Graph, start string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(g, start); err != nil {
		return nil, err
	}

	ix := core.NewVertexIndex(g)
	res := newResult(ix)

	si, _ := ix.IndexOf(start)
	stack := []stackItem{{idx: si, depth: 0, parent: core.NilPredecessor}}

	for len(stack) > 0 {
		// Pop the top item.
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A vertex may sit on the stack several times; the first pop wins.
		if res.visited[top.idx] {
			continue
		}
		res.visited[top.idx] = true
		res.depth[top.idx] = top.depth
		res.parent[top.idx] = top.parent

		id := ix.VertexAt(top.idx)
		res.Order = append(res.Order, id)
		if o.OnVisit != nil {
			if err := o.OnVisit(id); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
			}
		}

		if o.MaxDepth >= 0 && top.depth >= o.MaxDepth {
			continue
		}
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		// Push in reverse so the smallest neighbor is popped first.
		for i := len(neighbors) - 1; i >= 0; i-- {
			nbr := neighbors[i]
			if o.FilterNeighbor != nil && !o.FilterNeighbor(nbr) {
				continue
			}
			ni, ok := ix.IndexOf(nbr)
			if !ok || res.visited[ni] {
				continue
			}
			stack = append(stack, stackItem{idx: ni, depth: top.depth + 1, parent: top.idx})
		}
	}

	return res, nil
}

// DFSRecursive performs a recursive depth-first traversal of g from
// start, delivering pre-order OnVisit and post-order OnExit hooks.
// Like DFS it covers a single reachable region; HasCycle and
// TopologicalSort run their own per-root loops to span forests.
func DFSRecursive(g core.Graph, start string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(g, start); err != nil {
		return nil, err
	}

	ix := core.NewVertexIndex(g)
	res := newResult(ix)
	w := &recWalker{graph: g, opts: o, ix: ix, res: res}

	si, _ := ix.IndexOf(start)
	if err := w.visit(si, 0, core.NilPredecessor); err != nil {
		return nil, err
	}

	return res, nil
}

// FindFirst searches depth-first from start for the first vertex
// satisfying pred, short-circuiting on a match.
// Returns ErrNoMatch after exhausting all reachable vertices.
func FindFirst(g core.Graph, start string, pred func(id string) bool) (string, error) {
	if pred == nil {
		return "", ErrNilPredicate
	}
	var match string
	_, err := DFS(g, start, WithOnVisit(func(id string) error {
		if pred(id) {
			match = id

			return errFound // aborts the walk; unwrapped below
		}

		return nil
	}))
	if err != nil {
		if errors.Is(err, errFound) {
			return match, nil
		}

		return "", err
	}

	return "", ErrNoMatch
}

// recWalker carries the state of one recursive traversal.
type recWalker struct {
	graph core.Graph
	opts  Options
	ix    *core.VertexIndex
	res   *Result
}

// visit marks idx visited before recursing into its unvisited
// neighbors, honoring depth limit, filtering and both hooks.
func (w *recWalker) visit(idx, depth, parent int) error {
	w.res.visited[idx] = true
	w.res.depth[idx] = depth
	w.res.parent[idx] = parent

	id := w.ix.VertexAt(idx)
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range neighbors {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				continue
			}
			ni, ok := w.ix.IndexOf(nbr)
			if !ok || w.res.visited[ni] {
				continue
			}
			if err = w.visit(ni, depth+1, idx); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit at %q: %w", id, err)
		}
	}

	return nil
}
