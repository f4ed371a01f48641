package spr

import (
	"fmt"

	"github.com/sprout-phylo/sprout/rtree"
)

// Regraft re-inserts node's dangling ex-parent at the position target
// occupies, making node and target siblings under it. node must be the
// result of a just-completed Prune: its parent exists and is itself
// parentless, otherwise Regraft fails with ErrInvalidNode.
//
// target may sit anywhere in the remaining tree. If target was the root, the
// ex-parent becomes the new root; otherwise it takes target's slot under
// target's old parent.
func Regraft(node, target *rtree.Node) error {
	if node == nil || target == nil {
		return ErrNilNode
	}
	// node must hang off a detached parent
	if node.Parent == nil || node.Parent.Parent != nil {
		return fmt.Errorf("%w: attempting to regraft a node without detached parent", ErrInvalidNode)
	}

	parentNode := node.Parent

	// slot holding target under its current parent, absent when target is root
	var targetSelf rtree.ChildSlot
	if target.Parent != nil {
		var err error
		targetSelf, _, err = rtree.SisterSlots(target)
		if err != nil {
			return err
		}
	}

	// the severed sister slot of node inside the dangling parent
	_, vacant, err := rtree.SisterSlots(node)
	if err != nil {
		return err
	}

	// set new parents
	parentNode.Parent = target.Parent
	target.Parent = parentNode
	// set new children
	if parentNode.Parent != nil {
		targetSelf.Set(parentNode)
	}
	vacant.Set(target)

	return nil
}
