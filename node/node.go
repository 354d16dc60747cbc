// Package node defines the encoder's intermediate node tree (spec §2.3,
// §3): the representation built by value dispatch, rewritten in place by
// the optimizer pass, and finally linearized to bytes.
//
// This mirrors the shape of mebo's section headers (a small struct with a
// Bytes()-style serialization method) but generalized into a recursive tree
// since JKSN nodes nest arbitrarily, unlike mebo's fixed 32-byte header.
package node

import "math/big"

// Node is one wire-format element: control byte, length field, payload, and
// (for containers) children. Hash is set iff the node is a text/blob leaf
// carrying an inline payload (spec §3); Origin retains the original integer
// for delta computation by the optimizer.
type Node struct {
	Control     byte
	LengthField []byte
	Payload     []byte
	Children    []*Node

	Hash    *uint8
	HasHash bool
	Origin  *big.Int // set for absolute-integer nodes only
}

// New creates a leaf or container node with the given control byte.
func New(control byte) *Node {
	return &Node{Control: control}
}

// WithLengthField sets the length field and returns the node for chaining.
func (n *Node) WithLengthField(lf []byte) *Node {
	n.LengthField = lf
	return n
}

// WithPayload sets the payload and returns the node for chaining.
func (n *Node) WithPayload(p []byte) *Node {
	n.Payload = p
	return n
}

// WithHash records the DJB-8 hash of the node's own payload (text/blob
// leaves only) and returns the node for chaining.
func (n *Node) WithHash(h uint8) *Node {
	n.Hash = &h
	n.HasHash = true
	return n
}

// AddChild appends a child node and returns the parent for chaining.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// Size computes the exact recursive wire size: 1 (control) + length field +
// payload, summed over this node and all descendants.
func (n *Node) Size() int {
	total := 1 + len(n.LengthField) + len(n.Payload)
	for _, c := range n.Children {
		total += c.Size()
	}

	return total
}

// ownSize is this node's own contribution, excluding any children.
func (n *Node) ownSize() int {
	return 1 + len(n.LengthField) + len(n.Payload)
}

// MeasureDepth3 computes the bounded-depth size probe used to compare a
// straight array encoding against its transposed candidate (spec §4.2 step
// 6): this node's own size, plus its immediate children's own sizes, plus
// those children's immediate children's own sizes. It does not recurse past
// depth 3 — a cheap proxy that accounts for payload size without walking
// all the way to the leaves.
func (n *Node) MeasureDepth3() int {
	total := n.ownSize()
	for _, c := range n.Children {
		total += c.ownSize()
		for _, gc := range c.Children {
			total += gc.ownSize()
		}
	}

	return total
}

// Bytes linearizes the node and its children depth-first:
// control ++ length_field ++ payload ++ children.
func (n *Node) Bytes() []byte {
	buf := make([]byte, 0, n.Size())
	return n.appendTo(buf)
}

// AppendTo appends the linearized node to dst and returns the grown slice.
func (n *Node) AppendTo(dst []byte) []byte {
	return n.appendTo(dst)
}

func (n *Node) appendTo(dst []byte) []byte {
	dst = append(dst, n.Control)
	dst = append(dst, n.LengthField...)
	dst = append(dst, n.Payload...)
	for _, c := range n.Children {
		dst = c.appendTo(dst)
	}

	return dst
}
