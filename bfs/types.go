// Package bfs provides tunable options, error definitions and the
// Result type for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/quastd/algograph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("bfs: graph is empty")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: starting vertex doesn't belong to graph")

	// ErrNilPredicate is returned by FindFirst for a nil predicate.
	ErrNilPredicate = errors.New("bfs: predicate is nil")

	// ErrNoMatch is returned by FindFirst when no reachable vertex
	// satisfies the predicate.
	ErrNoMatch = errors.New("bfs: no vertex matches predicate")

	// ErrNoPath is returned by Result.PathTo for unreached vertices.
	ErrNoPath = errors.New("bfs: no path to vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is the traversal action, called once per visited vertex
	// with its level distance from the start. Returning an error aborts
	// the traversal and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// a no-op visit action.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnVisit registers the visit action; returning an error from it
// stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal. It is immutable after
// construction; all per-vertex state lives in dense arrays indexed
// through a core.VertexIndex built at traversal start.
type Result struct {
	// Order lists vertices in visit sequence, start first.
	Order []string

	ix      *core.VertexIndex
	visited []bool
	depth   []int // level distance from start; valid only where visited
	parent  []int // core.NilPredecessor for start and unreached
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id string) bool {
	i, ok := r.ix.IndexOf(id)

	return ok && r.visited[i]
}

// DepthOf returns the level distance (in edges) from the start to id,
// and whether id was reached.
func (r *Result) DepthOf(id string) (int, bool) {
	i, ok := r.ix.IndexOf(id)
	if !ok || !r.visited[i] {
		return 0, false
	}

	return r.depth[i], true
}

// ParentOf returns the vertex via which id was first reached.
// ok is false for the start vertex and for unreached vertices.
func (r *Result) ParentOf(id string) (string, bool) {
	i, ok := r.ix.IndexOf(id)
	if !ok || r.parent[i] == core.NilPredecessor {
		return "", false
	}

	return r.ix.VertexAt(r.parent[i]), true
}

// PathTo reconstructs the path from the start vertex to dest by
// walking parent links backward. Returns ErrNoPath if dest was not
// reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	i, ok := r.ix.IndexOf(dest)
	if !ok || !r.visited[i] {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	// Walk backward, then reverse to get start → dest.
	path := make([]string, 0, r.depth[i]+1)
	for cur := i; cur != core.NilPredecessor; cur = r.parent[cur] {
		path = append(path, r.ix.VertexAt(cur))
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

// Frontiers groups the visited vertices into level-synchronous layers:
// element d holds every vertex at depth d, in visit order.
func (r *Result) Frontiers() [][]string {
	var layers [][]string
	for _, id := range r.Order {
		d, _ := r.DepthOf(id)
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}

	return layers
}
