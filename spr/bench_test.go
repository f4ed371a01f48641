package spr_test

import (
	"fmt"
	"testing"

	"github.com/sprout-phylo/sprout/rtree"
	"github.com/sprout-phylo/sprout/spr"
)

// caterpillar builds a ladder tree of n leaves: ((((L0,L1)I1,L2)I2,...)
// and returns the root plus the deepest cherry's leaves.
func caterpillar(n int) (root, first, second *rtree.Node) {
	first = rtree.NewLeaf("L0")
	second = rtree.NewLeaf("L1")
	root = rtree.Join("I1", first, second)
	for i := 2; i < n; i++ {
		root = rtree.Join(fmt.Sprintf("I%d", i), root, rtree.NewLeaf(fmt.Sprintf("L%d", i)))
	}

	return root, first, second
}

// BenchmarkSPR_MoveAndUndo measures a full move plus its rollback replay on a
// 1000-leaf caterpillar; the pair leaves the tree unchanged between
// iterations.
func BenchmarkSPR_MoveAndUndo(b *testing.B) {
	root, first, _ := caterpillar(1000)
	target := root.Right // a shallow leaf far from the deep cherry

	b.ReportAllocs()
	b.ResetTimer()

	var rb spr.Rollback
	for i := 0; i < b.N; i++ {
		r1, err := spr.SPR(first, target, root, spr.WithRollback(&rb))
		if err != nil {
			b.Fatal(err)
		}
		root, err = spr.SPR(rb.PruneEdge, rb.RegraftEdge, r1)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrune_Regraft measures the two primitive steps with no rollback
// capture.
func BenchmarkPrune_Regraft(b *testing.B) {
	_, first, second := caterpillar(1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := spr.Prune(first); err != nil {
			b.Fatal(err)
		}
		if err := spr.Regraft(first, second); err != nil {
			b.Fatal(err)
		}
	}
}
