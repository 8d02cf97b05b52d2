package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quastd/algograph/bellmanford"
	"github.com/quastd/algograph/core"
)

// weighted builds an empty directed weighted graph.
func weighted(t *testing.T) *core.AdjacencyGraph {
	t.Helper()

	return core.NewAdjacencyGraph(core.WithDirected(true), core.WithWeighted())
}

// TestNew_Errors verifies rejection of invalid inputs.
func TestNew_Errors(t *testing.T) {
	_, err := bellmanford.New(nil, "A")
	assert.ErrorIs(t, err, bellmanford.ErrGraphNil)

	unweighted := core.NewAdjacencyGraph(core.WithDirected(true))
	require.NoError(t, unweighted.AddEdge("A", "B", 0))
	_, err = bellmanford.New(unweighted, "A")
	assert.ErrorIs(t, err, bellmanford.ErrUnweightedGraph)

	_, err = bellmanford.New(weighted(t), "A")
	assert.ErrorIs(t, err, bellmanford.ErrEmptyGraph)

	g := weighted(t)
	require.NoError(t, g.AddEdge("A", "B", 1))
	_, err = bellmanford.New(g, "missing")
	assert.ErrorIs(t, err, bellmanford.ErrSourceNotFound)
}

// TestNew_BasicDistances relaxes a small DAG with a shortcut.
func TestNew_BasicDistances(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("a", "c", 10))

	sp, err := bellmanford.New(g, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", sp.Source())

	d, err := sp.DistanceTo("c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), d, "path via b beats the direct edge")

	path, err := sp.ShortestPathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)
}

// TestNew_NegativeEdge: a negative edge without a negative cycle is
// fine, and reroutes the shortest path.
func TestNew_NegativeEdge(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("s", "a", 4))
	require.NoError(t, g.AddEdge("s", "b", 5))
	require.NoError(t, g.AddEdge("b", "a", -3))

	sp, err := bellmanford.New(g, "s")
	require.NoError(t, err)

	d, err := sp.DistanceTo("a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)

	path, err := sp.ShortestPathTo("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "a"}, path)
}

// TestNew_NegativeCycle: the all-negative triangle a→b→c→a must fail.
func TestNew_NegativeCycle(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", -1))
	require.NoError(t, g.AddEdge("b", "c", -1))
	require.NoError(t, g.AddEdge("c", "a", -1))

	_, err := bellmanford.New(g, "a")
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

// TestNew_UnreachableNegativeCycle: a negative cycle not reachable
// from the source must not poison the run.
func TestNew_UnreachableNegativeCycle(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("s", "a", 1))
	require.NoError(t, g.AddEdge("x", "y", -2))
	require.NoError(t, g.AddEdge("y", "x", -2))

	sp, err := bellmanford.New(g, "s")
	require.NoError(t, err)
	assert.True(t, sp.HasPathTo("a"))
	assert.False(t, sp.HasPathTo("x"))
}

// TestNew_UndirectedBothOrientations relaxes an undirected edge both
// ways.
func TestNew_UndirectedBothOrientations(t *testing.T) {
	g := core.NewAdjacencyGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("b", "a", 7))

	sp, err := bellmanford.New(g, "a")
	require.NoError(t, err)
	d, err := sp.DistanceTo("b")
	require.NoError(t, err)
	assert.Equal(t, int64(7), d)
}

// TestQueries_Unreachable covers the no-path and unknown-vertex paths.
func TestQueries_Unreachable(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddVertex("island"))

	sp, err := bellmanford.New(g, "a")
	require.NoError(t, err)

	assert.False(t, sp.HasPathTo("island"))
	assert.False(t, sp.HasPathTo("ghost"))

	_, err = sp.DistanceTo("island")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
	_, err = sp.DistanceTo("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = sp.ShortestPathTo("island")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
}

// TestEdgeTo returns the final tree edge and rejects the source.
func TestEdgeTo(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))

	sp, err := bellmanford.New(g, "a")
	require.NoError(t, err)

	e, err := sp.EdgeTo("c")
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: "b", To: "c", Weight: 2}, e)

	_, err = sp.EdgeTo("a")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
}

// TestVerify_DetectsDriftedGraph: mutating the graph after the run
// violates the recomputed invariants, both the optimality and the
// tree-tightness condition.
func TestVerify_DetectsDriftedGraph(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("a", "c", 10))

	sp, err := bellmanford.New(g, "a", bellmanford.WithVerify())
	require.NoError(t, err)
	require.NoError(t, sp.Verify(g))

	// The direct a→c edge now undercuts the recorded distance 3.
	require.NoError(t, g.UpdateEdgeWeight("a", "c", 1))
	assert.ErrorIs(t, sp.Verify(g), bellmanford.ErrVerifyFailed)

	// Restore optimality, then raise the b→c tree edge: no edge is
	// relaxable anymore, but the tree edge no longer closes the
	// recorded distance gap exactly.
	require.NoError(t, g.UpdateEdgeWeight("a", "c", 10))
	require.NoError(t, g.UpdateEdgeWeight("b", "c", 5))
	assert.ErrorIs(t, sp.Verify(g), bellmanford.ErrVerifyFailed)
}

// TestNew_UnderflowGuard: chained MinInt64 edges saturate instead of
// wrapping positive.
func TestNew_UnderflowGuard(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("s", "a", math.MinInt64))
	require.NoError(t, g.AddEdge("a", "b", math.MinInt64))

	sp, err := bellmanford.New(g, "s")
	require.NoError(t, err)

	d, err := sp.DistanceTo("a")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), d)

	// The s→a→b total is below the representable range; the relaxation
	// is skipped rather than wrapped into a bogus positive distance.
	_, err = sp.DistanceTo("b")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
}

// TestNew_WithVerify passes the post-run check on a healthy graph.
func TestNew_WithVerify(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 3))
	require.NoError(t, g.AddEdge("b", "c", 4))

	sp, err := bellmanford.New(g, "a", bellmanford.WithVerify())
	require.NoError(t, err)
	d, err := sp.DistanceTo("c")
	require.NoError(t, err)
	assert.Equal(t, int64(7), d)
}

// TestNew_TrivialSource: distance to the source itself is zero and the
// path is a single vertex.
func TestNew_TrivialSource(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddEdge("a", "b", 1))

	sp, err := bellmanford.New(g, "a")
	require.NoError(t, err)

	d, err := sp.DistanceTo("a")
	require.NoError(t, err)
	assert.Zero(t, d)

	path, err := sp.ShortestPathTo("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)
}
