package rtree_test

import (
	"fmt"

	"github.com/sprout-phylo/sprout/rtree"
)

// ExampleSisterSlots locates the self and sister slots of a leaf and shows
// the root's "no slots" outcome.
func ExampleSisterSlots() {
	c := rtree.NewLeaf("C")
	d := rtree.NewLeaf("D")
	b := rtree.Join("B", c, d)
	r := rtree.Join("R", rtree.NewLeaf("A"), b)

	self, sister, _ := rtree.SisterSlots(c)
	fmt.Printf("self: %s child of %s, holding %s\n", self.Side(), self.Owner().Label, self.Get().Label)
	fmt.Printf("sister: %s child of %s, holding %s\n", sister.Side(), sister.Owner().Label, sister.Get().Label)

	rootSelf, _, err := rtree.SisterSlots(r)
	fmt.Printf("root: valid=%v err=%v\n", rootSelf.Valid(), err)
	// Output:
	// self: left child of B, holding C
	// sister: right child of B, holding D
	// root: valid=false err=<nil>
}
