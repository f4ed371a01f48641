// Package radius enumerates candidate regraft edges: all nodes of a rooted
// binary tree whose topological distance from a reference node falls inside
// a closed range.
//
// What
//
//   - NodesWithin(ref, out, minDist, maxDist): walks upward from ref toward
//     the root and, at each ancestor, descends into the sister subtree the
//     path just left — the dual traversal that covers every direction away
//     from ref. Matching nodes are appended to the caller-owned buffer and
//     the count is returned.
//
// Why
//
//	SPR-based tree search bounds its move candidates to a radius around the
//	pruned edge. Enumerating the nodes in a distance band is what turns a
//	full O(n²) move sweep into a local search.
//
// Distance accounting
//
//	ref itself is at distance 0. Climbing to the ancestor at height h and
//	descending d levels into its sister subtree reaches distance h+d (the
//	sister root counts as h, the radius at which that subtree becomes
//	reachable once ref's edge is pruned). Ancestors on the climb itself are
//	reported only strictly beyond minDist: the nearest ancestors are the
//	edges the prune is about to dissolve, not regraft candidates.
//
// Buffer contract
//
//	out is caller-owned and caller-sized; NodesWithin writes sequentially
//	and never grows it. Capacity for the worst case (every node in range,
//	bounded by the tree size) is the caller's responsibility.
//
// Complexity
//
//   - Time: O(k) for k visited nodes (those within maxDist plus the climb).
//   - Memory: one reusable descent worklist; the output lives in the
//     caller's buffer.
//
// Errors
//
//   - ErrNilNode           if ref is nil.
//   - ErrInvalidRange      if maxDist < minDist (count is 0, out untouched).
//   - rtree.ErrInvalidTree propagated if the climb hits a corrupt link; the
//     count returned alongside covers what was appended before the failure.
package radius
