package spr

import (
	"fmt"

	"github.com/sprout-phylo/sprout/rtree"
)

// Prune detaches the subtree rooted at node, splicing the remaining tree
// around the gap, and returns the connection point.
//
// With a grandparent present, the sister subtree takes the ex-parent's place
// under the grandparent and the grandparent is the connection point. When the
// ex-parent was the root, the sister subtree becomes the new free-standing
// root and is itself the connection point.
//
// Afterward node.Parent still references the detached ex-parent: a dangling
// degree-1 node whose only link is node. That dangling edge is the handle
// Regraft re-inserts. Pruning the root fails with ErrInvalidNode; a corrupt
// parent/child link fails with rtree.ErrInvalidTree.
func Prune(node *rtree.Node) (*rtree.Node, error) {
	if node == nil {
		return nil, ErrNilNode
	}
	if node.Parent == nil {
		return nil, fmt.Errorf("%w: attempting to prune the root node", ErrInvalidNode)
	}

	_, sister, err := rtree.SisterSlots(node)
	if err != nil {
		return nil, err
	}
	sis := sister.Get()

	if gp := node.Parent.Parent; gp != nil {
		// connect grandparent and sister around the ex-parent
		parentSelf, _, perr := rtree.SisterSlots(node.Parent)
		if perr != nil {
			return nil, perr
		}
		parentSelf.Set(sis)
		sis.Parent = gp

		// disconnect the pruned tree
		sister.Set(nil)
		node.Parent.Parent = nil

		return gp, nil
	}

	// ex-parent was the root: the sister subtree stands alone as the new root
	sis.Parent = nil
	sister.Set(nil)

	return sis, nil
}
