package rtree

import "fmt"

// Validate audits the subtree rooted at n against the structural invariants:
// every internal node owns exactly two children, every child records its
// owner as Parent, and no node occupies both child slots of its parent.
// The first violation found is returned wrapped around ErrInvalidTree;
// a nil n fails with ErrNilNode.
func Validate(n *Node) error {
	if n == nil {
		return ErrNilNode
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if (cur.Left == nil) != (cur.Right == nil) {
			return fmt.Errorf("%w: node %q has exactly one child", ErrInvalidTree, cur.Label)
		}
		if cur.Left == nil {
			continue
		}
		if cur.Left == cur.Right {
			return fmt.Errorf("%w: node %q holds the same child in both slots", ErrInvalidTree, cur.Label)
		}
		if cur.Left.Parent != cur || cur.Right.Parent != cur {
			return fmt.Errorf("%w: child of node %q does not point back to it", ErrInvalidTree, cur.Label)
		}

		stack = append(stack, cur.Left, cur.Right)
	}

	return nil
}
