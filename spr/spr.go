package spr

import "github.com/sprout-phylo/sprout/rtree"

// SPR performs one subtree prune-and-regraft move: pruneNode's subtree is
// detached and re-inserted next to regraftTarget. root is the caller's
// current root reference, which the move may invalidate; SPR returns the
// re-derived root, reached by walking parent links upward from root.
//
// When WithRollback is supplied, the reversal record is captured before any
// mutation. On a sub-step failure the error surfaces immediately and the
// tree may already be partially mutated — see the package documentation for
// the recovery contract.
func SPR(pruneNode, regraftTarget, root *rtree.Node, opts ...Option) (*rtree.Node, error) {
	if pruneNode == nil || regraftTarget == nil || root == nil {
		return nil, ErrNilNode
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// locate the prune-time sister before anything moves
	_, sister, err := rtree.SisterSlots(pruneNode)
	if err != nil {
		return nil, err
	}

	// save rollback information
	if o.Rollback != nil && sister.Valid() {
		*o.Rollback = Rollback{
			Kind:        RearrangeSPR,
			Rooted:      true,
			PruneEdge:   pruneNode,
			RegraftEdge: sister.Get(),
		}
	}

	connection, err := Prune(pruneNode)
	if err != nil {
		return nil, err
	}
	o.OnPrune(pruneNode, connection)

	if err = Regraft(pruneNode, regraftTarget); err != nil {
		return nil, err
	}
	o.OnRegraft(pruneNode, regraftTarget)

	// reset the root in case it has changed
	return rtree.Root(root), nil
}
