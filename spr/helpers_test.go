package spr_test

import "github.com/sprout-phylo/sprout/rtree"

// fourTaxa builds R(A, B(C, D)).
func fourTaxa() (r, a, b, c, d *rtree.Node) {
	a = rtree.NewLeaf("A")
	c = rtree.NewLeaf("C")
	d = rtree.NewLeaf("D")
	b = rtree.Join("B", c, d)
	r = rtree.Join("R", a, b)

	return r, a, b, c, d
}

// balanced builds R(X(a, b), Y(c, d)): two cherries under the root.
func balanced() (r, x, y, a, b, c, d *rtree.Node) {
	a = rtree.NewLeaf("a")
	b = rtree.NewLeaf("b")
	c = rtree.NewLeaf("c")
	d = rtree.NewLeaf("d")
	x = rtree.Join("X", a, b)
	y = rtree.Join("Y", c, d)
	r = rtree.Join("R", x, y)

	return r, x, y, a, b, c, d
}
