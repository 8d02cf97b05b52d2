// Package core defines the graph contract consumed by every algorithm
// in algograph, and provides AdjacencyGraph, a ready adjacency-list
// implementation of it.
//
// The contract is split into two capability facets:
//
//   - Graph: structural queries — directedness, vertex/edge counts,
//     deterministic vertex enumeration, incident-edge iteration.
//   - WeightedGraph: Graph plus weight lookup and explicit weight
//     updates. Algorithms that need weights (Dijkstra, Bellman-Ford,
//     MST) declare this facet as their parameter type, so the
//     dependency is visible in the signature instead of probed at
//     runtime.
//
// Vertices are identified by non-empty string IDs; identity is value
// equality and no two vertices in a graph may share an ID. Edges are
// immutable (From, To, Weight) values; self-loops and parallel edges
// are rejected. Vertices() enumerates IDs in lexicographic ascending
// order, and that order is the stable iteration order algorithms use
// to assign dense array slots via VertexIndex.
//
// Concurrency: core performs no internal synchronization. Every
// algorithm in this module assumes the graph is a frozen snapshot for
// the lifetime of a run; freezing is a documented caller obligation.
// Multiple algorithms may run concurrently over one graph as long as
// nothing mutates it during that window.
package core
