// Package spr implements subtree prune-and-regraft surgery on rooted binary
// trees: the individual Prune and Regraft steps, and the composite SPR move
// with rollback capture and root re-derivation.
//
// What
//
//   - Prune(node): detach the subtree rooted at node, splicing the remaining
//     tree around the gap. The ex-parent stays attached above node as a
//     dangling, degree-1 handle for a later regraft. Returns the connection
//     point: the grandparent that received the sister subtree, or the sister
//     itself when the ex-parent was the root.
//   - Regraft(node, target): re-insert node's dangling ex-parent at the
//     position target occupies, making node and target siblings. target may
//     be any edge of the remaining tree, the root included.
//   - SPR(pruneNode, regraftTarget, root, opts...): capture a Rollback
//     (opt-in), prune, regraft, then re-derive and return the current root by
//     walking parent links from the possibly-stale root reference.
//
// Why
//
//	SPR is the elementary move of most phylogenetic tree-search strategies.
//	The engine only executes a requested move and keeps the pointer graph
//	consistent; scoring moves and recomputing likelihoods belong to the
//	caller.
//
// Failure semantics
//
//	The composite move is NOT transactional. If the prune succeeds and the
//	regraft fails, the error surfaces immediately and the tree is left
//	partially mutated; the caller owns recovery (discard and rebuild, or
//	apply the captured Rollback if mutation had not begun). No operation
//	retries or repairs internally.
//
// Complexity
//
//   - Prune, Regraft: O(1).  SPR: O(1) + O(depth) for root re-derivation.
//   - No heap allocation: moves only rewire existing links.
//
// Usage
//
//	var rb spr.Rollback
//	newRoot, err := spr.SPR(c, d, root, spr.WithRollback(&rb))
//	if err != nil {
//	    // handle ErrNilNode, ErrInvalidNode, or rtree.ErrInvalidTree
//	}
//	root = newRoot
//
// Errors
//
//   - ErrNilNode            if a required node is nil.
//   - ErrInvalidNode        if pruning the root, or regrafting a node whose
//     parent is not a dangling (just-pruned) edge.
//   - rtree.ErrInvalidTree  propagated from slot location on corrupt trees.
package spr
