// This file implements AdjacencyGraph, the adjacency-list
// implementation of the WeightedGraph contract.
package core

import "sort"

// GraphOption configures an AdjacencyGraph before first use.
type GraphOption func(*AdjacencyGraph)

// WithDirected sets edge directedness (true = directed edges).
func WithDirected(directed bool) GraphOption {
	return func(g *AdjacencyGraph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *AdjacencyGraph) { g.weighted = true }
}

// AdjacencyGraph is an in-memory adjacency-list graph satisfying
// WeightedGraph. By default it is undirected and unweighted.
//
// It performs no locking: callers must not mutate the graph while an
// algorithm instance is being constructed over it.
type AdjacencyGraph struct {
	directed bool
	weighted bool

	vertices map[string]struct{}
	out      map[string]map[string]int64 // from → to → weight
	in       map[string]map[string]int64 // to → from → weight
	edges    int
}

// compile-time contract check
var _ WeightedGraph = (*AdjacencyGraph)(nil)

// NewAdjacencyGraph creates an empty graph with the given options.
// Complexity: O(1).
func NewAdjacencyGraph(opts ...GraphOption) *AdjacencyGraph {
	g := &AdjacencyGraph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]int64),
		in:       make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *AdjacencyGraph) Directed() bool { return g.directed }

// Weighted reports whether edges carry meaningful weights.
func (g *AdjacencyGraph) Weighted() bool { return g.weighted }

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *AdjacencyGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges; undirected edges count once.
// Complexity: O(1).
func (g *AdjacencyGraph) EdgeCount() int { return g.edges }

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID on empty input. Complexity: O(1).
func (g *AdjacencyGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]int64)
	g.in[id] = make(map[string]int64)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *AdjacencyGraph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
// Returns ErrEmptyVertexID or ErrVertexNotFound. Complexity: O(deg(v)).
func (g *AdjacencyGraph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}

	// Outgoing side: drop reverse references, count removed edges.
	for to := range g.out[id] {
		delete(g.in[to], id)
		if !g.directed {
			delete(g.out[to], id)
		}
		g.edges--
	}
	// Incoming side (directed only; undirected edges were all in out[id]).
	if g.directed {
		for from := range g.in[id] {
			delete(g.out[from], id)
			g.edges--
		}
	}

	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge connects from→to with the given weight, creating missing
// endpoints on the fly. For undirected graphs the edge is stored in
// both orientations but counted once.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint ID is empty.
//   - ErrSelfLoop:      from == to.
//   - ErrBadWeight:     weight != 0 on an unweighted graph.
//   - ErrDuplicateEdge: the endpoints are already connected.
//
// Complexity: O(1) amortized.
func (g *AdjacencyGraph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if g.HasEdge(from, to) {
		return ErrDuplicateEdge
	}

	// Endpoints are created implicitly; AddVertex is idempotent.
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	g.out[from][to] = weight
	g.in[to][from] = weight
	if !g.directed {
		g.out[to][from] = weight
		g.in[from][to] = weight
	}
	g.edges++

	return nil
}

// HasEdge reports whether an edge from→to exists; symmetric for
// undirected graphs. Complexity: O(1).
func (g *AdjacencyGraph) HasEdge(from, to string) bool {
	_, ok := g.out[from][to]

	return ok
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *AdjacencyGraph) RemoveEdge(from, to string) error {
	if !g.HasEdge(from, to) {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	if !g.directed {
		delete(g.out[to], from)
		delete(g.in[from], to)
	}
	g.edges--

	return nil
}

// UpdateEdgeWeight replaces the weight of an existing edge. It is the
// only sanctioned way to change a weight; edges are otherwise
// immutable. Must not be called during an algorithm run.
// Returns ErrBadWeight on unweighted graphs, ErrEdgeNotFound if absent.
func (g *AdjacencyGraph) UpdateEdgeWeight(from, to string, weight int64) error {
	if !g.weighted {
		return ErrBadWeight
	}
	if !g.HasEdge(from, to) {
		return ErrEdgeNotFound
	}
	g.out[from][to] = weight
	g.in[to][from] = weight
	if !g.directed {
		g.out[to][from] = weight
		g.in[from][to] = weight
	}

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// This is the stable iteration order used for dense index assignment.
// Complexity: O(V log V).
func (g *AdjacencyGraph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once, sorted by (From, To). Undirected
// edges are reported with the smaller endpoint first.
// Complexity: O(E log E).
func (g *AdjacencyGraph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for from, row := range g.out {
		for to, w := range row {
			if !g.directed && from > to {
				continue // undirected edges stored twice; report once
			}
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
func (g *AdjacencyGraph) NeighborIDs(id string) ([]string, error) {
	row, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(row))
	for to := range row {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Neighbors returns the incident edges of id oriented outward from it,
// sorted by destination ID.
func (g *AdjacencyGraph) Neighbors(id string) ([]Edge, error) {
	row, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(row))
	for to, w := range row {
		edges = append(edges, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// OutgoingEdges returns the edges leaving id. Equal to Neighbors for
// undirected graphs.
func (g *AdjacencyGraph) OutgoingEdges(id string) ([]Edge, error) {
	return g.Neighbors(id)
}

// IncomingEdges returns the edges entering id, oriented into it and
// sorted by source ID.
func (g *AdjacencyGraph) IncomingEdges(id string) ([]Edge, error) {
	row, ok := g.in[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(row))
	for from, w := range row {
		edges = append(edges, Edge{From: from, To: id, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].From < edges[j].From })

	return edges, nil
}

// NeighborWeights returns a copy of the neighbor→weight map for id.
func (g *AdjacencyGraph) NeighborWeights(id string) (map[string]int64, error) {
	row, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	weights := make(map[string]int64, len(row))
	for to, w := range row {
		weights[to] = w
	}

	return weights, nil
}
