package rtree

// SisterSlots locates, inside n's parent, the child slot holding n (self)
// and the slot holding n's sibling (sister).
//
// For the root there is no parent to hold either slot: both results are
// invalid (Valid() == false) and the error is nil. Callers must treat that
// as the normal "root, no sister" outcome, not as a failure.
//
// If n is recorded under a parent whose children do not include n, the tree
// is corrupted and SisterSlots returns ErrInvalidTree.
func SisterSlots(n *Node) (self, sister ChildSlot, err error) {
	if n == nil {
		return ChildSlot{}, ChildSlot{}, ErrNilNode
	}

	p := n.Parent
	switch {
	case p == nil:
		// root: no sister node
		return ChildSlot{}, ChildSlot{}, nil
	case p.Left == n:
		return Slot(p, SideLeft), Slot(p, SideRight), nil
	case p.Right == n:
		return Slot(p, SideRight), Slot(p, SideLeft), nil
	default:
		return ChildSlot{}, ChildSlot{}, ErrInvalidTree
	}
}
