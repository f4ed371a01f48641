package radius_test

import (
	"fmt"
	"sort"

	"github.com/sprout-phylo/sprout/radius"
	"github.com/sprout-phylo/sprout/rtree"
)

// ExampleNodesWithin enumerates the candidate regraft edges in the radius
// band [1,2] around leaf a of R(X(a,b), Y(c,d)).
func ExampleNodesWithin() {
	a := rtree.NewLeaf("a")
	b := rtree.NewLeaf("b")
	c := rtree.NewLeaf("c")
	d := rtree.NewLeaf("d")
	x := rtree.Join("X", a, b)
	y := rtree.Join("Y", c, d)
	r := rtree.Join("R", x, y)

	buf := make([]*rtree.Node, rtree.Count(r))
	n, err := radius.NodesWithin(a, buf, 1, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	labels := make([]string, 0, n)
	for _, node := range buf[:n] {
		labels = append(labels, node.Label)
	}
	sort.Strings(labels)
	fmt.Println(labels)
	// Output:
	// [R Y b]
}
