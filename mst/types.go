// Package mst computes minimum spanning trees of undirected, weighted
// graphs with a choice of Prim's or Kruskal's algorithm.
//
// Both algorithms return the tree as a slice of edges plus the total
// weight. Compute dispatches between them via MSTOptions; Prim and
// Kruskal remain directly callable.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
package mst

import (
	"errors"

	"github.com/quastd/algograph/core"
)

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph is returned when the graph is nil, directed, or
	// unweighted; spanning trees are defined over undirected weighted
	// graphs.
	ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

	// ErrEmptyRoot is returned by Prim when no root vertex was given.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrDisconnected is returned when no spanning tree covering every
	// vertex exists: the empty graph, or more than one component.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for a Method outside the
	// known constants.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root via a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges plus union-find).
const MethodKruskal = "kruskal"

// MSTOptions selects the algorithm and, for Prim, the starting vertex.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Ignored by Kruskal.
	Root string
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm to run.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim.
func WithRoot(root string) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions selects Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts and returns the tree
// edges and their total weight.
//
// Errors: ErrUnknownMethod for an unrecognized Method, plus whatever
// the selected algorithm returns.
func Compute(g core.WeightedGraph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate applies the shared structural preconditions.
func validate(g core.WeightedGraph) error {
	if g == nil || g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}
	if g.VertexCount() == 0 {
		return ErrDisconnected
	}

	return nil
}
