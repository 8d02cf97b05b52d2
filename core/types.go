// This file declares the Edge value type, the Graph and WeightedGraph
// capability interfaces, shared algorithm sentinels (Infinity,
// NilPredecessor), and the sentinel errors of the core package.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrSelfLoop indicates an attempted edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates an attempted parallel edge between
	// endpoints that are already connected.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Infinity is the distance sentinel for vertices not (yet) reached by a
// shortest-path algorithm. Distance arrays are initialized to Infinity
// everywhere except the source.
const Infinity int64 = math.MaxInt64

// NilPredecessor is the predecessor-index sentinel for source and
// unreached vertices in dense predecessor arrays.
const NilPredecessor = -1

// Edge is an immutable connection between two vertices.
//
// For undirected graphs, edge iteration methods orient each edge
// outward from the queried vertex, so From is always the vertex the
// edge was asked from. Weight is 0 on unweighted graphs.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. May be negative only
	// where the consuming algorithm tolerates it (Bellman-Ford).
	Weight int64
}

// Graph is the read capability every algorithm consumes.
//
// Implementations must keep the vertex and edge sets stable for the
// lifetime of any algorithm instance built over them, and must return
// vertices in a deterministic order from Vertices.
type Graph interface {
	// Directed reports whether edges are one-way.
	Directed() bool

	// Weighted reports whether edges carry meaningful weights.
	Weighted() bool

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges (undirected edges count once).
	EdgeCount() int

	// Vertices returns all vertex IDs in lexicographic ascending order.
	Vertices() []string

	// Edges returns every edge once, sorted by (From, To). Undirected
	// edges are reported with the lexicographically smaller endpoint
	// first.
	Edges() []Edge

	// HasVertex reports whether id exists (empty ID ⇒ false).
	HasVertex(id string) bool

	// HasEdge reports whether an edge from→to exists. For undirected
	// graphs the check is symmetric.
	HasEdge(from, to string) bool

	// NeighborIDs returns the IDs adjacent to id, sorted ascending.
	// Returns ErrVertexNotFound if id is absent.
	NeighborIDs(id string) ([]string, error)

	// Neighbors returns the incident edges of id oriented outward from
	// it (every returned Edge has From == id).
	// Returns ErrVertexNotFound if id is absent.
	Neighbors(id string) ([]Edge, error)

	// OutgoingEdges returns the edges leaving id. For undirected graphs
	// this equals Neighbors.
	OutgoingEdges(id string) ([]Edge, error)

	// IncomingEdges returns the edges entering id, oriented into it
	// (every returned Edge has To == id).
	IncomingEdges(id string) ([]Edge, error)
}

// WeightedGraph is the Graph facet extended with weight access.
// Algorithms requiring weights take this type, making the capability
// bound explicit.
type WeightedGraph interface {
	Graph

	// NeighborWeights returns a neighbor→weight map for the edges
	// leaving id. The returned map is a copy; mutating it does not
	// affect the graph. Returns ErrVertexNotFound if id is absent.
	NeighborWeights(id string) (map[string]int64, error)

	// UpdateEdgeWeight replaces the weight of an existing edge. It must
	// never be called while an algorithm runs over the graph.
	// Returns ErrEdgeNotFound if the edge is absent, ErrBadWeight on
	// unweighted graphs.
	UpdateEdgeWeight(from, to string, weight int64) error
}
