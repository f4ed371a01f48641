package rtree

// NewLeaf returns an unattached leaf node carrying the given label.
func NewLeaf(label string) *Node {
	return &Node{Label: label}
}

// Join creates an internal node labeled label owning left and right, and
// wires both children's Parent links back to it. Either child may itself be
// a subtree root. Join does not detach the children from a previous parent;
// pass nodes that are free-standing.
func Join(label string, left, right *Node) *Node {
	n := &Node{Label: label, Left: left, Right: right}
	if left != nil {
		left.Parent = n
	}
	if right != nil {
		right.Parent = n
	}

	return n
}

// Root walks parent links upward from n and returns the root of its tree.
// After a topology move the previous root reference may be stale; Root
// re-derives the current one from any surviving node.
func Root(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}

	return n
}

// Count returns the number of nodes in the subtree rooted at n (including n
// itself), or 0 for nil. Traversal is iterative to keep very deep trees off
// the call stack.
func Count(n *Node) int {
	if n == nil {
		return 0
	}

	total := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}

	return total
}
