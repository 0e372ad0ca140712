// Package core: binary file format for Graph snapshots.
//
// Layout (all integers and floats little-endian, fixed width):
//
//	bytes[8]  magic "RCGRAPH2"
//	byte      flags (bit 0: body is a zstd stream)
//	--- body, optionally zstd-compressed from here on ---
//	int32     nodeCapacity
//	int32     edgeCapacity
//	int32     maxNameLength
//	int32     nodeCount
//	nodeCount × { int32 id, uint16 nameLen, name bytes,
//	              float64 x, float64 y, byte active }
//	nodeCount × int32 edgeSlotCount
//	per node, edgeSlotCount × { int32 from, int32 to,
//	                            float64 weight, byte active }
//
// Inactive node and edge slots are written as-is, so a load reproduces
// the arena exactly: ids, soft-delete flags, and slot layout included.
//
// The format replaced the host-endian "RCGRAPH1" layout (native int and
// bool widths, 128-byte padded names, capacity-sized edge-count table);
// the magic was bumped because the two are not wire-compatible.
package core

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/orb"
)

// MagicV2 prefixes every rcgraph snapshot file.
const MagicV2 = "RCGRAPH2"

const flagZstd byte = 1 << 0

// CodecOption configures Save behavior. Load auto-detects from the
// flags byte and takes no options.
type CodecOption func(*codecOptions)

type codecOptions struct {
	compress bool
}

// WithCompression writes the body as a zstd stream.
func WithCompression() CodecOption {
	return func(o *codecOptions) { o.compress = true }
}

// Save writes the graph snapshot to path, replacing any existing file.
func (g *Graph) Save(path string, opts ...CodecOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("core: save %s: %w", path, err)
	}
	if err = g.SaveTo(f, opts...); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// SaveTo writes the graph snapshot to w.
func (g *Graph) SaveTo(w io.Writer, opts ...CodecOption) error {
	var cfg codecOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Magic and flags go out uncompressed so Load can sniff them.
	var flags byte
	if cfg.compress {
		flags |= flagZstd
	}
	if _, err := w.Write([]byte(MagicV2)); err != nil {
		return fmt.Errorf("core: write magic: %w", err)
	}
	if _, err := w.Write([]byte{flags}); err != nil {
		return fmt.Errorf("core: write flags: %w", err)
	}

	// 2) Route the body through zstd when requested.
	body := w
	var enc *zstd.Encoder
	if cfg.compress {
		var err error
		if enc, err = zstd.NewWriter(w); err != nil {
			return fmt.Errorf("core: create compressor: %w", err)
		}
		body = enc
	}
	bw := bufio.NewWriter(body)

	if err := g.writeBody(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("core: flush body: %w", err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("core: close compressor: %w", err)
		}
	}

	return nil
}

func (g *Graph) writeBody(w io.Writer) error {
	// Header: capacities, then slot count.
	for _, v := range []int32{int32(g.nodeCap), int32(g.edgeCap), int32(g.maxNameLen), int32(len(g.nodes))} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("core: write header: %w", err)
		}
	}

	// Node slots, active or not.
	for i := range g.nodes {
		n := &g.nodes[i]
		if err := binary.Write(w, binary.LittleEndian, int32(n.ID)); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(n.Name))); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
		if _, err := w.Write([]byte(n.Name)); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, n.Pos.X()); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, n.Pos.Y()); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
		if err := writeBool(w, n.Active); err != nil {
			return fmt.Errorf("core: write node: %w", err)
		}
	}

	// Edge-slot counts, one per node slot.
	for i := range g.edges {
		if err := binary.Write(w, binary.LittleEndian, int32(len(g.edges[i]))); err != nil {
			return fmt.Errorf("core: write edge counts: %w", err)
		}
	}

	// Edge slots, active or not.
	for i := range g.edges {
		for j := range g.edges[i] {
			e := &g.edges[i][j]
			if err := binary.Write(w, binary.LittleEndian, int32(e.From)); err != nil {
				return fmt.Errorf("core: write edge: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, int32(e.To)); err != nil {
				return fmt.Errorf("core: write edge: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, e.Weight); err != nil {
				return fmt.Errorf("core: write edge: %w", err)
			}
			if err := writeBool(w, e.Active); err != nil {
				return fmt.Errorf("core: write edge: %w", err)
			}
		}
	}

	return nil
}

// Load reads a graph snapshot from path.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: load %s: %w", path, err)
	}
	defer f.Close()

	return LoadFrom(f)
}

// LoadFrom reads a graph snapshot from r. The magic bytes are verified
// before anything else; any mismatch, short read, or out-of-bounds
// count fails without returning a partially built graph.
func LoadFrom(r io.Reader) (*Graph, error) {
	// 1) Magic, then flags.
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrTruncated, err)
	}
	if string(magic[:]) != MagicV2 {
		return nil, fmt.Errorf("%w: got %q", ErrBadMagic, magic[:])
	}
	var flags [1]byte
	if _, err := io.ReadFull(r, flags[:]); err != nil {
		return nil, fmt.Errorf("%w: reading flags: %v", ErrTruncated, err)
	}

	// 2) Unwrap the zstd body when flagged.
	body := r
	if flags[0]&flagZstd != 0 {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("core: create decompressor: %w", err)
		}
		defer dec.Close()
		body = dec
	}

	return readBody(bufio.NewReader(body))
}

func readBody(r io.Reader) (*Graph, error) {
	// Header.
	var nodeCap, edgeCap, nameCap, nodeCount int32
	for _, p := range []*int32{&nodeCap, &edgeCap, &nameCap, &nodeCount} {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return nil, fmt.Errorf("%w: reading header: %v", ErrTruncated, err)
		}
	}
	if nodeCap <= 0 || edgeCap <= 0 || nameCap <= 0 {
		return nil, fmt.Errorf("%w: non-positive capacity", ErrMalformed)
	}
	if nodeCount < 0 || nodeCount > nodeCap {
		return nil, fmt.Errorf("%w: node count %d exceeds capacity %d", ErrMalformed, nodeCount, nodeCap)
	}

	g := NewGraph(
		WithNodeCapacity(int(nodeCap)),
		WithEdgeCapacity(int(edgeCap)),
		WithMaxNameLength(int(nameCap)),
	)
	g.nodes = make([]Node, nodeCount)
	g.edges = make([][]Edge, nodeCount)

	// Node slots.
	for i := range g.nodes {
		n := &g.nodes[i]
		var id int32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		if int(id) != i {
			return nil, fmt.Errorf("%w: node slot %d carries id %d", ErrMalformed, i, id)
		}
		n.ID = NodeID(id)

		var nameLen uint16
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		if int(nameLen) > int(nameCap) {
			return nil, fmt.Errorf("%w: node %d name length %d", ErrMalformed, i, nameLen)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		n.Name = string(name)

		var x, y float64
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		n.Pos = orb.Point{x, y}

		active, err := readBool(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading node %d: %v", ErrTruncated, i, err)
		}
		n.Active = active
	}

	// Edge-slot counts.
	counts := make([]int32, nodeCount)
	for i := range counts {
		if err := binary.Read(r, binary.LittleEndian, &counts[i]); err != nil {
			return nil, fmt.Errorf("%w: reading edge counts: %v", ErrTruncated, err)
		}
		if counts[i] < 0 || counts[i] > edgeCap {
			return nil, fmt.Errorf("%w: edge count %d at node %d", ErrMalformed, counts[i], i)
		}
	}

	// Edge slots.
	for i := range g.edges {
		if counts[i] == 0 {
			continue
		}
		g.edges[i] = make([]Edge, counts[i])
		for j := range g.edges[i] {
			e := &g.edges[i][j]
			var from, to int32
			if err := binary.Read(r, binary.LittleEndian, &from); err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d: %v", ErrTruncated, i, j, err)
			}
			if err := binary.Read(r, binary.LittleEndian, &to); err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d: %v", ErrTruncated, i, j, err)
			}
			if int(from) != i || to < 0 || to >= nodeCount {
				return nil, fmt.Errorf("%w: edge %d/%d endpoints %d→%d", ErrMalformed, i, j, from, to)
			}
			e.From, e.To = NodeID(from), NodeID(to)
			if err := binary.Read(r, binary.LittleEndian, &e.Weight); err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d: %v", ErrTruncated, i, j, err)
			}
			active, err := readBool(r)
			if err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d: %v", ErrTruncated, i, j, err)
			}
			e.Active = active
		}
	}

	return g, nil
}

func writeBool(w io.Writer, b bool) error {
	v := byte(0)
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})

	return err
}

func readBool(r io.Reader) (bool, error) {
	var v [1]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return false, err
	}

	return v[0] != 0, nil
}
