// This file implements all-pairs shortest paths as repeated
// single-source runs, one per vertex. The per-source ShortestPaths
// instances are retained, so pair queries are lookups rather than
// recomputation.
//
// Complexity: O(V·(V + E) log V) time, O(V²) memory.

package dijkstra

import (
	"fmt"

	"github.com/quastd/algograph/core"
)

// AllPairs holds one completed ShortestPaths run per vertex.
type AllPairs struct {
	runs map[string]*ShortestPaths
}

// NewAllPairs runs Dijkstra from every vertex of g.
// Validation errors surface exactly as in New; the negative-weight
// scan happens once per run but fails on the first source already.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrUnweightedGraph,
// ErrNegativeWeight, and ErrVerifyFailed when WithVerify is set.
func NewAllPairs(g core.WeightedGraph, opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	ap := &AllPairs{runs: make(map[string]*ShortestPaths, len(vertices))}
	for _, source := range vertices {
		sp, err := New(g, source, opts...)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: all-pairs from %q: %w", source, err)
		}
		ap.runs[source] = sp
	}
	if len(ap.runs) == 0 {
		return nil, ErrEmptyGraph
	}

	return ap, nil
}

// From returns the single-source result rooted at source.
//
// Errors: ErrSourceNotFound for vertices outside the graph.
func (ap *AllPairs) From(source string) (*ShortestPaths, error) {
	sp, ok := ap.runs[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	return sp, nil
}

// DistanceBetween returns the shortest-path distance from u to v.
//
// Errors: ErrSourceNotFound, core.ErrVertexNotFound, ErrNoPath.
func (ap *AllPairs) DistanceBetween(u, v string) (int64, error) {
	sp, err := ap.From(u)
	if err != nil {
		return 0, err
	}

	return sp.DistanceTo(v)
}

// PathBetween returns the vertex sequence of a shortest path from u
// to v, u first.
//
// Errors: ErrSourceNotFound, core.ErrVertexNotFound, ErrNoPath.
func (ap *AllPairs) PathBetween(u, v string) ([]string, error) {
	sp, err := ap.From(u)
	if err != nil {
		return nil, err
	}

	return sp.ShortestPathTo(v)
}
