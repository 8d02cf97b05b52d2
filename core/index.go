// This file implements VertexIndex, the vertex↔dense-index bijection
// every algorithm builds once at construction time.
package core

// VertexIndex maps vertex IDs to dense integer indices in
// [0, VertexCount) and back. Algorithms build one per run from
// Graph.Vertices() and then keep all per-vertex state (distances,
// predecessors, visited flags, colors) in plain slices indexed through
// it, instead of per-vertex maps.
//
// The bijection is immutable after construction and valid only for the
// graph snapshot it was built from.
type VertexIndex struct {
	at []string       // index → vertex ID
	of map[string]int // vertex ID → index
}

// NewVertexIndex builds the bijection by iterating g.Vertices() once.
// Slot assignment follows that iteration order. Complexity: O(V).
func NewVertexIndex(g Graph) *VertexIndex {
	ids := g.Vertices()
	ix := &VertexIndex{
		at: ids,
		of: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		ix.of[id] = i
	}

	return ix
}

// Len returns the number of indexed vertices.
func (ix *VertexIndex) Len() int { return len(ix.at) }

// IndexOf returns the dense index of id, and whether id is indexed.
func (ix *VertexIndex) IndexOf(id string) (int, bool) {
	i, ok := ix.of[id]

	return i, ok
}

// VertexAt returns the vertex ID at dense index i.
// i must be in [0, Len).
func (ix *VertexIndex) VertexAt(i int) string { return ix.at[i] }
