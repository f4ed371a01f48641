package radius

import (
	"errors"
	"fmt"

	"github.com/sprout-phylo/sprout/rtree"
)

// Sentinel errors for distance queries.
var (
	// ErrNilNode indicates a nil reference node.
	ErrNilNode = errors.New("radius: reference node is nil")

	// ErrInvalidRange indicates maxDist < minDist.
	ErrInvalidRange = errors.New("radius: invalid distance range")
)

// frame is one pending step of the downward worklist.
type frame struct {
	node *rtree.Node
	dist int
}

// NodesWithin appends to out every node whose topological distance from ref
// lies in [minDist, maxDist], and returns how many were written. See the
// package documentation for the distance accounting and the buffer contract.
//
// A range with maxDist < minDist fails with ErrInvalidRange before touching
// out. A corrupt parent/child link fails with rtree.ErrInvalidTree; the
// returned count then covers the nodes appended before the failure.
func NodesWithin(ref *rtree.Node, out []*rtree.Node, minDist, maxDist int) (int, error) {
	if ref == nil {
		return 0, ErrNilNode
	}
	if maxDist < minDist {
		return 0, fmt.Errorf("%w: %d..%d (maxDist < minDist)", ErrInvalidRange, minDist, maxDist)
	}

	n := 0
	if minDist <= 0 && maxDist >= 0 {
		out[n] = ref
		n++
	}

	// one worklist reused across every sister subtree
	stack := make([]frame, 0, 64)

	height := 0
	cur := ref
	for cur.Parent != nil {
		_, sister, err := rtree.SisterSlots(cur)
		if err != nil {
			return n, err
		}
		sis := sister.Get()

		height++
		cur = cur.Parent
		if height > maxDist {
			// every remaining node lies beyond the radius
			break
		}
		if height > minDist {
			out[n] = cur
			n++
		}

		// descend into the sister subtree; its root sits at distance height
		stack = append(stack[:0], frame{node: sis, dist: height})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.dist > maxDist {
				continue
			}
			if f.dist >= minDist {
				out[n] = f.node
				n++
			}
			if f.node.Left == nil || f.node.Right == nil {
				continue
			}
			stack = append(stack,
				frame{node: f.node.Left, dist: f.dist + 1},
				frame{node: f.node.Right, dist: f.dist + 1},
			)
		}
	}

	return n, nil
}
