// Package core_test: binary snapshot round-trips, including soft-deleted
// slots, compression, and format-mismatch failures.
package core_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routecraft/rcgraph/core"
)

// fixtureGraph builds a graph exercising every slot state: active and
// removed nodes, active and removed edges, and a bidirectional pair.
func fixtureGraph(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithNodeCapacity(16), core.WithEdgeCapacity(4))
	a, _ := g.AddNode("Alpha", 0, 0)
	b, _ := g.AddNode("Beta", 10, 0)
	c, _ := g.AddNode("Gamma", 10, 10)
	d, _ := g.AddNode("Doomed", -5, -5)

	require.NoError(t, g.AddEdge(a, b, 10))
	require.NoError(t, g.AddEdge(b, c, 10))
	require.NoError(t, g.AddBidirectionalEdge(a, c, 30))
	require.NoError(t, g.AddEdge(a, d, 7))

	// Leave inactive slots behind in both arenas.
	require.NoError(t, g.RemoveEdge(c, a))
	require.NoError(t, g.RemoveNode(d))

	return g
}

func TestCodec_RoundTripPreservesSlots(t *testing.T) {
	g := fixtureGraph(t)

	var buf bytes.Buffer
	require.NoError(t, g.SaveTo(&buf))

	loaded, err := core.LoadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// Active view matches.
	require.Equal(t, g.Nodes(), loaded.Nodes())
	require.Equal(t, g.NodeCount(), loaded.NodeCount())
	require.Equal(t, g.ActiveNodeCount(), loaded.ActiveNodeCount())
	require.Equal(t, g.NodeCapacity(), loaded.NodeCapacity())
	require.Equal(t, g.EdgeCapacity(), loaded.EdgeCapacity())

	w, err := loaded.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, w)
	require.True(t, loaded.HasEdge(0, 2))
	require.False(t, loaded.HasEdge(2, 0)) // removed before save
	require.False(t, loaded.HasNode(3))    // removed node stays removed

	// Inactive slots are preserved exactly: re-encoding the loaded graph
	// reproduces the original bytes bit for bit.
	var again bytes.Buffer
	require.NoError(t, loaded.SaveTo(&again))
	require.Equal(t, buf.Bytes(), again.Bytes())
}

func TestCodec_CompressedRoundTrip(t *testing.T) {
	g := fixtureGraph(t)

	var plain, packed bytes.Buffer
	require.NoError(t, g.SaveTo(&plain))
	require.NoError(t, g.SaveTo(&packed, core.WithCompression()))

	loaded, err := core.LoadFrom(bytes.NewReader(packed.Bytes()))
	require.NoError(t, err)
	require.Equal(t, g.Nodes(), loaded.Nodes())

	// The compressed body still round-trips to the identical plain encoding.
	var again bytes.Buffer
	require.NoError(t, loaded.SaveTo(&again))
	require.Equal(t, plain.Bytes(), again.Bytes())
}

func TestCodec_SaveLoadFile(t *testing.T) {
	g := fixtureGraph(t)
	path := filepath.Join(t.TempDir(), "map.rcg")

	require.NoError(t, g.Save(path, core.WithCompression()))

	loaded, err := core.Load(path)
	require.NoError(t, err)
	require.Equal(t, g.Nodes(), loaded.Nodes())
}

func TestCodec_BadMagic(t *testing.T) {
	_, err := core.LoadFrom(bytes.NewReader([]byte("NOTAGRPH\x00rest of file")))
	require.ErrorIs(t, err, core.ErrBadMagic)
}

func TestCodec_Truncated(t *testing.T) {
	g := fixtureGraph(t)
	var buf bytes.Buffer
	require.NoError(t, g.SaveTo(&buf))

	// Chop the stream at several depths; every cut must fail cleanly.
	for _, n := range []int{0, 4, 8, 9, 15, buf.Len() / 2, buf.Len() - 1} {
		_, err := core.LoadFrom(bytes.NewReader(buf.Bytes()[:n]))
		require.ErrorIs(t, err, core.ErrTruncated, "cut at %d bytes", n)
	}
}

func TestCodec_MalformedCounts(t *testing.T) {
	// A header declaring more nodes than its own capacity must be rejected.
	var buf bytes.Buffer
	g := core.NewGraph(core.WithNodeCapacity(1))
	_, _ = g.AddNode("only", 0, 0)
	require.NoError(t, g.SaveTo(&buf))

	raw := buf.Bytes()
	// nodeCount sits after magic(8) + flags(1) + three int32 capacities.
	countOff := 8 + 1 + 12
	raw[countOff] = 2

	_, err := core.LoadFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, core.ErrMalformed)
}
