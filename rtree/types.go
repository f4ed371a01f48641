// Package rtree: node type, sentinel errors, and child-slot primitives.
//
// This file declares Node, Side, ChildSlot, and the package's sentinel
// errors.
package rtree

import "errors"

// Sentinel errors for rooted-tree structure queries.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("rtree: node is nil")

	// ErrInvalidTree indicates structural corruption: a node is not reachable
	// as the left or the right child of its recorded parent.
	ErrInvalidTree = errors.New("rtree: tree is not consistent")
)

// Node is a vertex of a rooted binary tree.
//
// Left and Right are the owning links: both nil for a leaf, both set for an
// internal node. Parent is a non-owning back-reference, nil only at the root.
// The remaining fields are opaque payload for an external likelihood engine;
// sprout carries them along unchanged and never reads their meaning.
type Node struct {
	// Parent is the node above this one, nil at the root. Non-owning.
	Parent *Node

	// Left and Right are the owned children. Either both nil or both set,
	// except transiently inside a move.
	Left  *Node
	Right *Node

	// Label is an optional taxon or node name.
	Label string

	// Length is the branch length of the edge toward Parent.
	Length float64

	// NodeIndex, CLVIndex, ScalerIndex and PMatrixIndex are bookkeeping
	// indices owned by an external likelihood engine.
	NodeIndex    int
	CLVIndex     int
	ScalerIndex  int
	PMatrixIndex int

	// Data is an arbitrary user payload, never touched by sprout.
	Data any
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Side selects one of the two child-link fields of a Node.
type Side uint8

const (
	// SideLeft addresses Node.Left.
	SideLeft Side = iota
	// SideRight addresses Node.Right.
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}

	return "right"
}

// ChildSlot addresses one child-link field of one node: the storage location
// a rewire must overwrite to replace "the edge" below owner on the given
// side. The zero ChildSlot is invalid (no owner); see Valid.
//
// A ChildSlot is a value; copying it copies the address, not the link.
type ChildSlot struct {
	owner *Node
	side  Side
}

// Slot returns the slot addressing owner's child link on side s.
func Slot(owner *Node, s Side) ChildSlot {
	return ChildSlot{owner: owner, side: s}
}

// Valid reports whether the slot addresses an actual link field.
// Invalid slots are returned by SisterSlots for the root.
func (c ChildSlot) Valid() bool { return c.owner != nil }

// Owner returns the node whose child link this slot addresses.
func (c ChildSlot) Owner() *Node { return c.owner }

// Side returns which of the owner's child links this slot addresses.
func (c ChildSlot) Side() Side { return c.side }

// Get returns the child currently stored in the slot.
func (c ChildSlot) Get() *Node {
	if c.side == SideLeft {
		return c.owner.Left
	}

	return c.owner.Right
}

// Set overwrites the slot with child. Only the addressed link changes:
// child's Parent (and the previous occupant's) are left for the caller,
// mirroring how tree surgery sequences its rewires explicitly.
func (c ChildSlot) Set(child *Node) {
	if c.side == SideLeft {
		c.owner.Left = child
	} else {
		c.owner.Right = child
	}
}
