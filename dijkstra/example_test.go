package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/quastd/algograph/core"
	"github.com/quastd/algograph/dijkstra"
)

// ExampleNew shows the two-hop path a→b→c beating the direct edge.
func ExampleNew() {
	g := core.NewAdjacencyGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 10)

	sp, err := dijkstra.New(g, "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := sp.DistanceTo("c")
	path, _ := sp.ShortestPathTo("c")
	fmt.Printf("distance: %d, path: %s\n", d, strings.Join(path, " "))
	// Output: distance: 3, path: a b c
}

// ExampleNewAllPairs answers pair queries from retained per-source runs.
func ExampleNewAllPairs() {
	g := core.NewAdjacencyGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "a", 4)

	ap, err := dijkstra.NewAllPairs(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := ap.DistanceBetween("c", "b")
	fmt.Println("c to b:", d)
	// Output: c to b: 5
}
