package bellmanford

import "errors"

// Sentinel errors for Bellman-Ford shortest paths.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrEmptyGraph is returned for graphs with no vertices.
	ErrEmptyGraph = errors.New("bellmanford: graph is empty")

	// ErrUnweightedGraph is returned when the graph does not carry
	// meaningful weights; shortest paths over unit weights belong to BFS.
	ErrUnweightedGraph = errors.New("bellmanford: graph is not weighted")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("bellmanford: source vertex doesn't belong to graph")

	// ErrNegativeCycle is returned when a negative-weight cycle is
	// reachable from the source; distances are undefined in that case.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

	// ErrNoPath is returned by path queries for unreachable targets.
	ErrNoPath = errors.New("bellmanford: no path to target")

	// ErrVerifyFailed is returned by ShortestPaths.Verify when a
	// shortest-path invariant does not hold: the source is not at
	// distance zero, an edge remains relaxable, or a tree edge is not
	// tight.
	ErrVerifyFailed = errors.New("bellmanford: verification failed")
)

// Options configures a Bellman-Ford run.
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
