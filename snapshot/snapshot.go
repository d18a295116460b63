// Package snapshot captures computed layout geometry as a compact
// CBOR document, for golden files and cross-backend comparison.
package snapshot

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	flexbridge "github.com/onebit/flexbridge"
	"github.com/onebit/flexbridge/bridge"
	flexerrors "github.com/onebit/flexbridge/errors"
)

// Node is one captured node: its layout rect and its children in tree
// order. Integer keys keep the wire form small.
type Node struct {
	Left     float32 `cbor:"1,keyasint,omitempty"`
	Top      float32 `cbor:"2,keyasint,omitempty"`
	Width    float32 `cbor:"3,keyasint,omitempty"`
	Height   float32 `cbor:"4,keyasint,omitempty"`
	Children []*Node `cbor:"5,keyasint,omitempty"`
}

// Rect returns the node's geometry as a flexbridge.Rect.
func (n *Node) Rect() flexbridge.Rect {
	return flexbridge.Rect{Left: n.Left, Top: n.Top, Width: n.Width, Height: n.Height}
}

// Count reports the number of nodes in the captured subtree.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Capture walks the tree below root through the session's public
// operations and records each node's layout rect. Call it after
// CalculateLayout; capturing an unlaid tree records zeros.
func Capture(s *bridge.Session, root bridge.Handle) (*Node, error) {
	if s == nil {
		return nil, flexerrors.InvalidInput(flexerrors.PhaseDecode, "nil session")
	}
	if root == bridge.None {
		return nil, flexerrors.InvalidInput(flexerrors.PhaseDecode, "invalid root handle")
	}
	return capture(s, root), nil
}

func capture(s *bridge.Session, h bridge.Handle) *Node {
	r := s.Layout(h)
	n := &Node{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
	count := s.ChildCount(h)
	for i := 0; i < count; i++ {
		child := s.Child(h, i)
		if child == bridge.None {
			continue
		}
		n.Children = append(n.Children, capture(s, child))
	}
	return n
}

// Marshal encodes the snapshot to CBOR bytes.
func Marshal(n *Node) ([]byte, error) {
	data, err := cbor.Marshal(n)
	if err != nil {
		return nil, flexerrors.Wrap(flexerrors.PhaseDecode, flexerrors.KindInvalidData, err, "encode snapshot")
	}
	return data, nil
}

// Unmarshal decodes CBOR bytes produced by Marshal.
func Unmarshal(data []byte) (*Node, error) {
	var n Node
	if err := cbor.Unmarshal(data, &n); err != nil {
		return nil, flexerrors.Wrap(flexerrors.PhaseDecode, flexerrors.KindInvalidData, err, "decode snapshot")
	}
	return &n, nil
}

// Write encodes the snapshot to a stream.
func Write(w io.Writer, n *Node) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read decodes a snapshot from a stream.
func Read(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, flexerrors.Wrap(flexerrors.PhaseDecode, flexerrors.KindInvalidData, err, "read snapshot")
	}
	return Unmarshal(data)
}

// Equal reports whether two snapshots describe identical geometry.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rect() != b.Rect() || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
