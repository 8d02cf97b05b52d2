// Package dfs defines types and options for depth-first traversal,
// cycle detection, and topological sorting.
package dfs

import (
	"errors"
	"fmt"

	"github.com/quastd/algograph/core"
)

// Visitation states used by cycle detection and topological sort.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack (visiting)
	Black        // fully explored
)

// Sentinel errors for the dfs package.
var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// HasCycle, or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptyGraph is returned when a traversal is started on a graph
	// with no vertices.
	ErrEmptyGraph = errors.New("dfs: graph is empty")

	// ErrStartVertexNotFound indicates the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: starting vertex doesn't belong to graph")

	// ErrNilPredicate is returned by FindFirst for a nil predicate.
	ErrNilPredicate = errors.New("dfs: predicate is nil")

	// ErrNoMatch is returned by FindFirst when no reachable vertex
	// satisfies the predicate.
	ErrNoMatch = errors.New("dfs: no vertex matches predicate")

	// ErrUndirectedGraph is returned by TopologicalSort for graphs
	// whose edges are not directed.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires directed graph")

	// ErrNotDAG is returned by TopologicalSort when the cycle precheck
	// finds the graph is not acyclic.
	ErrNotDAG = errors.New("dfs: graph is not a DAG")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks and filters are O(1).
type Options struct {
	// OnVisit, if non-nil, is the traversal action, invoked when a
	// vertex is first visited (pre-order). Returning an error aborts
	// the traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Only the recursive variant
	// produces post-order callbacks.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called per neighbor ID before it
	// is pushed. Return false to skip it.
	FilterNeighbor func(id string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hooks, no depth limit and no
// neighbor filtering.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order action.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook (recursive variant).
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative
// limit is invalid and surfaces as ErrOptionViolation at invocation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)

			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first traversal. Immutable
// after construction; per-vertex state is dense, indexed through a
// core.VertexIndex built at traversal start.
type Result struct {
	// Order records vertices in first-visit (pre-order) sequence.
	Order []string

	ix      *core.VertexIndex
	visited []bool
	depth   []int
	parent  []int // core.NilPredecessor for start and unreached
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id string) bool {
	i, ok := r.ix.IndexOf(id)

	return ok && r.visited[i]
}

// DepthOf returns the tree depth at which id was first visited, and
// whether id was reached.
func (r *Result) DepthOf(id string) (int, bool) {
	i, ok := r.ix.IndexOf(id)
	if !ok || !r.visited[i] {
		return 0, false
	}

	return r.depth[i], true
}

// ParentOf returns the vertex from which id was first discovered.
// ok is false for the start vertex and for unreached vertices.
func (r *Result) ParentOf(id string) (string, bool) {
	i, ok := r.ix.IndexOf(id)
	if !ok || r.parent[i] == core.NilPredecessor {
		return "", false
	}

	return r.ix.VertexAt(r.parent[i]), true
}

// newResult allocates dense traversal state over ix.
func newResult(ix *core.VertexIndex) *Result {
	n := ix.Len()
	res := &Result{
		Order:   make([]string, 0, n),
		ix:      ix,
		visited: make([]bool, n),
		depth:   make([]int, n),
		parent:  make([]int, n),
	}
	for i := range res.parent {
		res.parent[i] = core.NilPredecessor
	}

	return res
}

// validate performs the shared input checks of all dfs entry points.
func validate(g core.Graph, start string) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	return nil
}
