// Package dijkstra implements single-source and all-pairs shortest
// paths over graphs with non-negative edge weights.
//
// New validates up front that no edge carries a negative weight, then
// runs the greedy algorithm with a keyed min-priority queue: each
// vertex is enqueued at most once, improvements are applied with
// decrease-key, and a vertex is settled the moment it leaves the
// queue. The returned ShortestPaths value is immutable and answers
// distance and path queries without further graph access.
//
// Complexity: O((V + E) log V) time, O(V) memory.
package dijkstra

import (
	"fmt"

	"github.com/quastd/algograph/core"
	"github.com/quastd/algograph/pqueue"
)

// ShortestPaths holds the distances and predecessor tree of one
// Dijkstra run.
type ShortestPaths struct {
	source   string
	ix       *core.VertexIndex
	distance []int64
	parent   []int
}

// New computes shortest paths from source over every vertex of g.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrUnweightedGraph,
// ErrSourceNotFound, ErrNegativeWeight, and ErrVerifyFailed when
// WithVerify is set.
func New(g core.WeightedGraph, source string, opts ...Option) (*ShortestPaths, error) {
	// 1. Validate inputs, negative weights included: failing before the
	//    run starts beats a silently wrong answer.
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
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s weight %d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
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

	// 3. Greedy main loop over the keyed queue.
	settled := make([]bool, n)
	pq := pqueue.NewMin(n)
	if err := pq.Enqueue(source, 0); err != nil {
		return nil, fmt.Errorf("dijkstra: seed queue: %w", err)
	}
	for !pq.IsEmpty() {
		u, err := pq.DequeueMin()
		if err != nil {
			return nil, fmt.Errorf("dijkstra: dequeue: %w", err)
		}
		ui, _ := ix.IndexOf(u)
		settled[ui] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			vi, ok := ix.IndexOf(e.To)
			if !ok || settled[vi] {
				continue
			}
			if core.Infinity-e.Weight <= sp.distance[ui] {
				// Relaxation would overflow past the sentinel.
				continue
			}
			alt := sp.distance[ui] + e.Weight
			if alt >= sp.distance[vi] {
				continue
			}
			sp.distance[vi] = alt
			sp.parent[vi] = ui
			if pq.Contains(e.To) {
				err = pq.UpdatePriority(e.To, alt)
			} else {
				err = pq.Enqueue(e.To, alt)
			}
			if err != nil {
				return nil, fmt.Errorf("dijkstra: relax %q: %w", e.To, err)
			}
		}
	}

	// 4. Optional verification of the full invariant set.
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
		if sp.slack(e.From, e.To, e.Weight) ||
			(!directed && sp.slack(e.To, e.From, e.Weight)) {
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
			return fmt.Errorf("dijkstra: neighbors of %q: %w", pid, err)
		}
		id := sp.ix.VertexAt(i)
		w, ok := weights[id]
		if !ok || sp.distance[i] != sp.distance[p]+w {
			return fmt.Errorf("%w: tree edge %s->%s not tight", ErrVerifyFailed, pid, id)
		}
	}

	return nil
}

// slack reports whether u→v could still improve v.
func (sp *ShortestPaths) slack(u, v string, w int64) bool {
	ui, _ := sp.ix.IndexOf(u)
	vi, _ := sp.ix.IndexOf(v)
	du := sp.distance[ui]
	if du == core.Infinity {
		return false
	}
	if w > 0 && core.Infinity-w <= du {
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
		return 0, fmt.Errorf("dijkstra: %w: %q", core.ErrVertexNotFound, id)
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
		return nil, fmt.Errorf("dijkstra: %w: %q", core.ErrVertexNotFound, id)
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
		return core.Edge{}, fmt.Errorf("dijkstra: %w: %q", core.ErrVertexNotFound, id)
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
