// Package bellmanford implements single-source shortest paths with
// support for negative edge weights.
//
// New runs the algorithm to completion inside the constructor: |V|−1
// rounds of relaxation over the full edge list, followed by one extra
// round that detects negative-weight cycles. Undirected edges are
// relaxed in both orientations. The returned ShortestPaths value is
// immutable and answers distance and path queries without further
// graph access.
//
// Relaxations guard against signed wraparound in both directions: an
// edge out of a vertex still at the Infinity sentinel is skipped, as
// is any relaxation whose sum would exceed the sentinel or fall below
// the representable minimum.
//
// Complexity: O(V·E) time, O(V) memory.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/quastd/algograph/core"
)

// ShortestPaths holds the distances and predecessor tree of one
// Bellman-Ford run.
type ShortestPaths struct {
	source   string
	ix       *core.VertexIndex
	distance []int64
	parent   []int
}

// New computes shortest paths from source over every vertex of g.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrUnweightedGraph,
// ErrSourceNotFound, ErrNegativeCycle, and ErrVerifyFailed when
// WithVerify is set.
func New(g core.WeightedGraph, source string, opts ...Option) (*ShortestPaths, error) {
	// 1. Validate inputs.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 2. Initialize dense state: all distances at Infinity except source.
	ix := core.NewVertexIndex(g)
	n := ix.Len()
	sp := &ShortestPaths{
		source:   source,
		ix:       ix,
		distance: make([]int64, n),
		parent:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		sp.distance[i] = core.Infinity
		sp.parent[i] = core.NilPredecessor
	}
	src, _ := ix.IndexOf(source)
	sp.distance[src] = 0

	edges := g.Edges()
	directed := g.Directed()

	// 3. |V|−1 rounds of relaxation; stop early once a round changes
	//    nothing.
	for round := 1; round < n; round++ {
		changed := false
		for _, e := range edges {
			if sp.relaxEdge(e.From, e.To, e.Weight) {
				changed = true
			}
			if !directed && sp.relaxEdge(e.To, e.From, e.Weight) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 4. One more round: any further improvement proves a reachable
	//    negative cycle.
	for _, e := range edges {
		if sp.relaxable(e.From, e.To, e.Weight) ||
			(!directed && sp.relaxable(e.To, e.From, e.Weight)) {
			return nil, ErrNegativeCycle
		}
	}

	// 5. Optional verification of the full invariant set.
	if o.Verify {
		if err := sp.Verify(g); err != nil {
			return nil, err
		}
	}

	return sp, nil
}

// Verify re-checks the shortest-path invariants against g: the source
// sits at distance zero with no predecessor, no edge remains
// relaxable, and every tree edge is tight
// (distance[child] == distance[parent] + weight).
// Callers may also invoke it later to detect that g drifted from the
// snapshot this run was computed over.
//
// Returns ErrVerifyFailed on the first violation.
func (sp *ShortestPaths) Verify(g core.WeightedGraph) error {
	// 1. Source conditions.
	si, _ := sp.ix.IndexOf(sp.source)
	if sp.distance[si] != 0 || sp.parent[si] != core.NilPredecessor {
		return fmt.Errorf("%w: source %q not at distance zero", ErrVerifyFailed, sp.source)
	}

	// 2. Edge optimality: dist[v] <= dist[u] + w for every edge.
	directed := g.Directed()
	for _, e := range g.Edges() {
		if sp.relaxable(e.From, e.To, e.Weight) ||
			(!directed && sp.relaxable(e.To, e.From, e.Weight)) {
			return fmt.Errorf("%w: edge %s->%s still relaxable", ErrVerifyFailed, e.From, e.To)
		}
	}

	// 3. Tree tightness: each predecessor link must correspond to an
	//    existing edge whose weight exactly closes the distance gap.
	for i := 0; i < sp.ix.Len(); i++ {
		p := sp.parent[i]
		if p == core.NilPredecessor {
			continue
		}
		pid := sp.ix.VertexAt(p)
		weights, err := g.NeighborWeights(pid)
		if err != nil {
			return fmt.Errorf("bellmanford: neighbors of %q: %w", pid, err)
		}
		id := sp.ix.VertexAt(i)
		w, ok := weights[id]
		if !ok || sp.distance[i] != sp.distance[p]+w {
			return fmt.Errorf("%w: tree edge %s->%s not tight", ErrVerifyFailed, pid, id)
		}
	}

	return nil
}

// relaxEdge applies one relaxation u→v and reports whether it improved
// the distance to v.
func (sp *ShortestPaths) relaxEdge(u, v string, w int64) bool {
	ui, _ := sp.ix.IndexOf(u)
	vi, _ := sp.ix.IndexOf(v)
	du := sp.distance[ui]
	if du == core.Infinity {
		return false
	}
	if w > 0 && core.Infinity-w <= du {
		// Adding w would overflow past the sentinel.
		return false
	}
	if w < 0 && du < math.MinInt64-w {
		// Symmetric underflow guard: the sum saturates instead of
		// wrapping positive.
		return false
	}
	if du+w < sp.distance[vi] {
		sp.distance[vi] = du + w
		sp.parent[vi] = ui

		return true
	}

	return false
}

// relaxable reports whether u→v could still improve v, without
// mutating state.
func (sp *ShortestPaths) relaxable(u, v string, w int64) bool {
	ui, _ := sp.ix.IndexOf(u)
	vi, _ := sp.ix.IndexOf(v)
	du := sp.distance[ui]
	if du == core.Infinity {
		return false
	}
	if w > 0 && core.Infinity-w <= du {
		return false
	}
	if w < 0 && du < math.MinInt64-w {
		return false
	}

	return du+w < sp.distance[vi]
}

// Source returns the source vertex of this run.
func (sp *ShortestPaths) Source() string { return sp.source }

// HasPathTo reports whether id is reachable from the source. Unknown
// vertices are unreachable.
func (sp *ShortestPaths) HasPathTo(id string) bool {
	i, ok := sp.ix.IndexOf(id)

	return ok && sp.distance[i] != core.Infinity
}

// DistanceTo returns the shortest-path distance from the source to id.
//
// Errors: core.ErrVertexNotFound for unknown vertices, ErrNoPath for
// unreachable ones.
func (sp *ShortestPaths) DistanceTo(id string) (int64, error) {
	i, ok := sp.ix.IndexOf(id)
	if !ok {
		return 0, fmt.Errorf("bellmanford: %w: %q", core.ErrVertexNotFound, id)
	}
	if sp.distance[i] == core.Infinity {
		return 0, fmt.Errorf("%w: %q", ErrNoPath, id)
	}

	return sp.distance[i], nil
}

// ShortestPathTo returns the vertex sequence of a shortest path from
// the source to id, source first.
//
// Errors: core.ErrVertexNotFound, ErrNoPath.
func (sp *ShortestPaths) ShortestPathTo(id string) ([]string, error) {
	i, ok := sp.ix.IndexOf(id)
	if !ok {
		return nil, fmt.Errorf("bellmanford: %w: %q", core.ErrVertexNotFound, id)
	}
	if sp.distance[i] == core.Infinity {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, id)
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []string{sp.ix.VertexAt(i)}
	for p := sp.parent[i]; p != core.NilPredecessor; p = sp.parent[p] {
		path = append(path, sp.ix.VertexAt(p))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// EdgeTo returns the final edge of the shortest path into id, oriented
// predecessor→id. The source has no incoming tree edge and yields
// ErrNoPath.
//
// Errors: core.ErrVertexNotFound, ErrNoPath.
func (sp *ShortestPaths) EdgeTo(id string) (core.Edge, error) {
	i, ok := sp.ix.IndexOf(id)
	if !ok {
		return core.Edge{}, fmt.Errorf("bellmanford: %w: %q", core.ErrVertexNotFound, id)
	}
	if sp.parent[i] == core.NilPredecessor {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrNoPath, id)
	}

	p := sp.parent[i]

	return core.Edge{
		From:   sp.ix.VertexAt(p),
		To:     sp.ix.VertexAt(i),
		Weight: sp.distance[i] - sp.distance[p],
	}, nil
}
