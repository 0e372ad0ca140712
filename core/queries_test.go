// Package core_test: read-only query determinism — name lookup
// precedence, nearest-node tie-breaking, and active-only visibility.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routecraft/rcgraph/core"
)

func TestFindNodeByName_ExactBeatsSubstring(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("Portland East", 0, 0)
	exact, _ := g.AddNode("Portland", 1, 0)

	// "Portland East" contains "portland" and has the lower id, but the
	// exact pass runs first.
	id, err := g.FindNodeByName("portland")
	require.NoError(t, err)
	require.Equal(t, exact, id)
}

func TestFindNodeByName_SubstringFallbackFirstMatch(t *testing.T) {
	g := core.NewGraph()
	first, _ := g.AddNode("North Station", 0, 0)
	_, _ = g.AddNode("South Station", 1, 0)

	id, err := g.FindNodeByName("STATION")
	require.NoError(t, err)
	require.Equal(t, first, id)
}

func TestFindNodeByName_SkipsInactive(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("Depot", 0, 0)
	b, _ := g.AddNode("Depot", 1, 0)
	require.NoError(t, g.RemoveNode(a))

	id, err := g.FindNodeByName("Depot")
	require.NoError(t, err)
	require.Equal(t, b, id)
}

func TestFindNodeByName_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("Depot", 0, 0)

	id, err := g.FindNodeByName("harbor")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.Equal(t, core.InvalidNode, id)
}

func TestFindNodeNear_ClosestWithinRadius(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("far", 100, 100)
	near, _ := g.AddNode("near", 3, 4) // distance 5 from origin

	id, err := g.FindNodeNear(0, 0, 10)
	require.NoError(t, err)
	require.Equal(t, near, id)
}

func TestFindNodeNear_TieGoesToLowestID(t *testing.T) {
	g := core.NewGraph()
	lo, _ := g.AddNode("L", 5, 0)
	_, _ = g.AddNode("R", -5, 0) // same distance from origin

	id, err := g.FindNodeNear(0, 0, 10)
	require.NoError(t, err)
	require.Equal(t, lo, id)
}

func TestFindNodeNear_RespectsRadiusAndActivity(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", 3, 4)

	_, err := g.FindNodeNear(0, 0, 4.9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	require.NoError(t, g.RemoveNode(a))
	_, err = g.FindNodeNear(0, 0, 100)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDistance_EuclideanHelper(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", 0, 0)
	b, _ := g.AddNode("B", 3, 4)

	require.Equal(t, 5.0, g.Distance(a, b))
	require.Equal(t, 0.0, g.Distance(a, 99))
}

func TestNodes_ActiveSnapshotInIDOrder(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", 0, 0)
	b, _ := g.AddNode("B", 1, 0)
	c, _ := g.AddNode("C", 2, 0)
	require.NoError(t, g.RemoveNode(b))

	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	require.Equal(t, a, nodes[0].ID)
	require.Equal(t, c, nodes[1].ID)

	require.Equal(t, 2, g.ActiveNodeCount())
	require.Equal(t, 3, g.NodeCount())
}

func TestOutEdges_ActiveOnly(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", 0, 0)
	b, _ := g.AddNode("B", 1, 0)
	c, _ := g.AddNode("C", 2, 0)
	require.NoError(t, g.AddEdge(a, b, 1.5))
	require.NoError(t, g.AddEdge(a, c, 2.5))
	require.NoError(t, g.RemoveEdge(a, b))

	edges, err := g.OutEdges(a)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, c, edges[0].To)
	require.Equal(t, 2.5, edges[0].Weight)
}
