// Package algograph is an in-memory library of classical graph
// algorithms over a small, capability-based graph contract.
//
// What is inside?
//
//	A pure-Go, zero-dependency library that brings together:
//		• Core contract: Graph / WeightedGraph capability interfaces
//		  plus a ready adjacency-list implementation
//		• Traversals: BFS, DFS (iterative and recursive), predicate search
//		• Structure checks: bipartite 2-coloring, cycle detection,
//		  topological sort, connected components
//		• Shortest paths: Dijkstra (single-source & all-pairs),
//		  Bellman-Ford with negative-cycle detection
//		• Minimum spanning trees: Prim, Kruskal
//		• A keyed min-priority queue with decrease-key, consumed by Dijkstra
//
// Why choose algograph?
//
//   - Minimal API — each algorithm is a pure function from
//     (graph, source) to an immutable, queryable result
//   - Explicit failure taxonomy — sentinel errors distinguish
//     "you called it wrong" from "the graph lacks this property"
//   - Pure Go — no cgo, no hidden deps
//   - Extensible — OnVisit hooks and neighbor filters for custom logic
//
// Packages:
//
//	core/        — Graph & WeightedGraph contracts, AdjacencyGraph, VertexIndex
//	bfs/         — breadth-first traversal, level tracking, FindFirst
//	dfs/         — depth-first traversal, HasCycle, TopologicalSort
//	bipartite/   — BFS 2-coloring with odd-cycle failure
//	components/  — connected components of undirected graphs
//	pqueue/      — keyed min-priority queue with UpdatePriority
//	bellmanford/ — negative-edge-tolerant shortest paths
//	dijkstra/    — non-negative shortest paths, single-source & all-pairs
//	mst/         — Prim & Kruskal minimum spanning trees
//
// All algorithms treat the consumed graph as a frozen snapshot for the
// duration of a run; the library performs no internal synchronization.
//
//	go get github.com/quastd/algograph
package algograph
