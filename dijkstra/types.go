package dijkstra

import "errors"

// Sentinel errors for Dijkstra shortest paths.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph is returned for graphs with no vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrUnweightedGraph is returned when the graph does not carry
	// meaningful weights; shortest paths over unit weights belong to BFS.
	ErrUnweightedGraph = errors.New("dijkstra: graph is not weighted")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("dijkstra: source vertex doesn't belong to graph")

	// ErrNegativeWeight is returned when any edge carries a negative
	// weight; Dijkstra's greedy invariant requires non-negative weights.
	// Use bellmanford for graphs with negative edges.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNoPath is returned by path queries for unreachable targets.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrVerifyFailed is returned by ShortestPaths.Verify when a
	// shortest-path invariant does not hold: the source is not at
	// distance zero, an edge remains relaxable, or a tree edge is not
	// tight.
	ErrVerifyFailed = errors.New("dijkstra: verification failed")
)

// Options configures a Dijkstra run.
type Options struct {
	// Verify runs ShortestPaths.Verify after the run: source
	// conditions, edge optimality, and tree-edge tightness. Any
	// violation fails construction with ErrVerifyFailed. Off by
	// default; the check costs O(V + E).
	Verify bool
}

// DefaultOptions returns the zero configuration: no verification.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithVerify enables the post-run invariant check.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}
