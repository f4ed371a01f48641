package spr_test

import (
	"fmt"

	"github.com/sprout-phylo/sprout/rtree"
	"github.com/sprout-phylo/sprout/spr"
)

// newick prints the subtree under n in Newick-ish notation, for examples.
func newick(n *rtree.Node) string {
	if n.IsLeaf() {
		return n.Label
	}

	return fmt.Sprintf("(%s,%s)%s", newick(n.Left), newick(n.Right), n.Label)
}

// ExampleSPR demonstrates one move on R(A, B(C, D)): prune C, regraft next
// to A. The ex-parent B is re-inserted in A's old slot.
func ExampleSPR() {
	a := rtree.NewLeaf("A")
	c := rtree.NewLeaf("C")
	d := rtree.NewLeaf("D")
	b := rtree.Join("B", c, d)
	r := rtree.Join("R", a, b)

	root, err := spr.SPR(c, a, r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(newick(root))
	// Output:
	// ((C,A)B,D)R
}

// ExampleSPR_rollback captures the reversal record and replays it to restore
// the original topology.
func ExampleSPR_rollback() {
	a := rtree.NewLeaf("A")
	c := rtree.NewLeaf("C")
	d := rtree.NewLeaf("D")
	b := rtree.Join("B", c, d)
	r := rtree.Join("R", a, b)

	var rb spr.Rollback
	root, _ := spr.SPR(c, a, r, spr.WithRollback(&rb))
	fmt.Println("moved:   ", newick(root))

	root, _ = spr.SPR(rb.PruneEdge, rb.RegraftEdge, root)
	fmt.Println("restored:", newick(root))
	// Output:
	// moved:    ((C,A)B,D)R
	// restored: (A,(C,D)B)R
}
