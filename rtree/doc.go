// Package rtree defines the rooted-binary-tree node model used by the
// topology-rearrangement packages, and the slot primitives every move is
// built on.
//
// What
//
//   - Node: a binary tree vertex with an owning Left/Right pair, a non-owning
//     Parent back-reference, and opaque payload fields (label, branch length,
//     likelihood-engine indices) that are carried along unchanged and never
//     interpreted.
//   - ChildSlot: an addressable reference to one child-link field of a node,
//     identified as (owner, side). Rewiring a tree means rewriting slots, not
//     nodes; ChildSlot.Set rewrites exactly one link and nothing else.
//   - SisterSlots(n): locates the slot inside n's parent that holds n (the
//     "self" slot) and the slot holding n's sibling (the "sister" slot).
//     For the root both slots come back invalid with a nil error — a normal
//     outcome, distinct from failure.
//   - Construction helpers (NewLeaf, Join) and structural checks (Root,
//     Count, Validate) used by callers and tests to assemble and audit trees.
//
// Why
//
//	Subtree prune-and-regraft surgery rewrites individual parent→child links
//	under strict invariants. Handing out raw pointers to link fields makes
//	those rewrites unauditable; the ChildSlot value keeps the same rewire
//	semantics behind a setter.
//
// Invariants
//
//   - Every node is reachable from its parent through exactly one of the two
//     child slots; if not, the tree is corrupted and operations fail with
//     ErrInvalidTree.
//   - A node has either zero children (leaf) or two (internal). Degree-1
//     nodes exist only transiently inside a move.
//   - Ownership flows root→leaves through Left/Right; Parent is a weak
//     back-reference and never implies ownership.
//
// Complexity
//
//   - SisterSlots: O(1).  Root: O(depth).  Count, Validate: O(n).
//
// Errors
//
//   - ErrNilNode      if a nil node is passed where one is required.
//   - ErrInvalidTree  if a node is not a recorded child of its parent.
package rtree
