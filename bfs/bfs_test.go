package bfs_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/quastd/algograph/bfs"
	"github.com/quastd/algograph/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// empty graph
	if _, err := bfs.BFS(core.NewAdjacencyGraph(), "A"); !errors.Is(err, bfs.ErrEmptyGraph) {
		t.Errorf("empty graph: want ErrEmptyGraph, got %v", err)
	}
	// start vertex not found
	g := core.NewAdjacencyGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatal(err)
	}
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d, ok := res.DepthOf("A"); !ok || d != 0 {
		t.Errorf("DepthOf(A) = %d,%v; want 0,true", d, ok)
	}
	if _, ok := res.ParentOf("A"); ok {
		t.Error("start vertex must have no parent")
	}
}

// TestBFS_CycleAndDepths covers a square cycle and checks level distances.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewAdjacencyGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != "A" {
		t.Errorf("first vertex = %s; want A", res.Order[0])
	}
	wantDepths := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for id, want := range wantDepths {
		if got, ok := res.DepthOf(id); !ok || got != want {
			t.Errorf("DepthOf(%s) = %d,%v; want %d,true", id, got, ok, want)
		}
	}
}

// TestBFS_Frontiers verifies level-synchronous layer grouping.
func TestBFS_Frontiers(t *testing.T) {
	g := core.NewAdjacencyGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"A"}, {"B", "C"}, {"D"}}
	if got := res.Frontiers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Frontiers = %v; want %v", got, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the start component.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("X", "Y", 0); err != nil { // component 1
		t.Fatal(err)
	}
	if err := g.AddEdge("P", "Q", 0); err != nil { // component 2
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "X")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", res.Order)
	}
	if res.Visited("P") {
		t.Error("P must not be visited from X")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit).
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 0); err != nil {
		t.Fatal(err)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 0); err != nil {
		t.Fatal(err)
	}
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort checks that an action error aborts the traversal.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestBFS_PathTo covers trivial, multi-hop and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertex("Z"); err != nil {
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if path, _ := res.PathTo("A"); !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("PathTo start: got %v; want [A]", path)
	}
	if path, _ := res.PathTo("C"); !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo C: got %v; want [A B C]", path)
	}
	if _, err = res.PathTo("Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestFindFirst covers match, no-match and nil-predicate paths.
func TestFindFirst(t *testing.T) {
	g := core.NewAdjacencyGraph()
	if err := g.AddEdge("a1", "a2", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("a2", "b3", 0); err != nil {
		t.Fatal(err)
	}

	got, err := bfs.FindFirst(g, "a1", func(id string) bool { return strings.HasPrefix(id, "b") })
	if err != nil {
		t.Fatal(err)
	}
	if got != "b3" {
		t.Errorf("FindFirst = %q; want b3", got)
	}

	if _, err = bfs.FindFirst(g, "a1", func(string) bool { return false }); !errors.Is(err, bfs.ErrNoMatch) {
		t.Errorf("no match: want ErrNoMatch, got %v", err)
	}
	if _, err = bfs.FindFirst(g, "a1", nil); !errors.Is(err, bfs.ErrNilPredicate) {
		t.Errorf("nil predicate: want ErrNilPredicate, got %v", err)
	}
}
