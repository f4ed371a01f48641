// Package sprout is an in-memory toolkit for rearranging rooted binary
// phylogenetic trees — the topology-surgery core of an SPR tree search.
//
// 🌱 What is sprout?
//
//	A small, allocation-conscious library that brings together:
//		• Core primitives: rooted binary tree nodes, addressable child slots,
//		  sister/self slot location, structural validation
//		• Topology moves: subtree prune, regraft onto an arbitrary edge, and
//		  the composite SPR move with rollback capture and root re-derivation
//		• Neighborhood queries: radius-bounded enumeration of candidate
//		  regraft edges around a reference node
//
// ✨ Why choose sprout?
//
//   - Search-loop friendly – moves rewire existing links in place; distance
//     queries write into a caller-owned buffer
//   - Explicit errors – every fallible operation returns a sentinel error,
//     matched with errors.Is; no ambient error state
//   - Extensible – observation hooks (OnPrune, OnRegraft) on the composite
//     move for instrumentation without embedded logging
//
// Everything is organized under three subpackages:
//
//	rtree/  — Node, ChildSlot, sister location, construction & validation
//	spr/    — Prune, Regraft, and the composite SPR move with Rollback
//	radius/ — NodesWithin: candidate edges within a topological distance range
//
// Quick ASCII example:
//
//	      R                        R
//	     / \                      / \
//	    A   B      SPR(C, A)     B'  D
//	       / \    ──────────►   / \
//	      C   D                C   A
//
//	pruning C detaches it together with its ex-parent B' as a dangling
//	edge and splices D into B's old place; regrafting onto A then
//	re-inserts B' at the position A occupied.
//
// The tree's node graph is owned by whoever built it; sprout only rewires
// parent/child links and never allocates or frees nodes during a move.
// Concurrent moves on the same tree are undefined behavior — serialize them.
//
//	go get github.com/sprout-phylo/sprout
package sprout
