package mst

import (
	"sort"

	"github.com/quastd/algograph/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in
// ascending weight order and joining components with a union-find
// structure (path compression plus union by rank).
//
// Errors: ErrInvalidGraph for nil, directed, or unweighted input;
// ErrDisconnected when no spanning tree covers every vertex.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g core.WeightedGraph) ([]core.Edge, int64, error) {
	// 1. Structural preconditions.
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	// 2. Single vertex: the trivial empty tree.
	ix := core.NewVertexIndex(g)
	n := ix.Len()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Edges ascending by weight. Stable sort keeps the deterministic
	//    (From, To) enumeration order among equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find over dense vertex indices.
	uf := newUnionFind(n)

	// 5. Greedy scan: an edge joins the tree iff its endpoints are in
	//    different components.
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range edges {
		ui, _ := ix.IndexOf(e.From)
		vi, _ := ix.IndexOf(e.To)
		if uf.find(ui) == uf.find(vi) {
			continue
		}
		uf.union(ui, vi)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 6. Fewer than |V|−1 edges means some component was unreachable.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// unionFind is a disjoint-set forest over dense indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the set root of u, halving paths along the way.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, attaching by rank.
func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	if uf.rank[ru] < uf.rank[rv] {
		uf.parent[ru] = rv

		return
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}
}
