package sweep

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestRunSimplePolyline(t *testing.T) {
	// consecutive edges share vertices but never cross
	zs := NewSweepLine([]Point{{0.0, 0.0}, {10.0, 10.0}, {20.0, 0.0}, {30.0, 10.0}}).Run()
	test.T(t, len(zs), 0)
}

func TestRunClosedRing(t *testing.T) {
	zs := NewSweepLine([]Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}}).Run()
	test.T(t, len(zs), 0)
}

func TestRunCross(t *testing.T) {
	// A and B cross exactly once at (5,5)
	zs := NewSweepLine(
		[]Point{{0.0, 0.0}, {10.0, 10.0}},
		[]Point{{0.0, 10.0}, {10.0, 0.0}},
	).Run()
	test.T(t, len(zs), 1)
	test.T(t, pairOf(zs[0].A, zs[0].B), edgePair{0, 1})
	test.Float(t, zs[0].Point.X, 5.0)
	test.Float(t, zs[0].Point.Y, 5.0)
}

func TestRunCrossTwice(t *testing.T) {
	// the zigzag crosses the horizontal at (2,0) and (4,0)
	zs := NewSweepLine(
		[]Point{{0.0, 0.0}, {10.0, 0.0}},
		[]Point{{1.0, -1.0}, {3.0, 1.0}, {5.0, -1.0}},
	).Run()
	test.T(t, len(zs), 2)
	test.T(t, pairOf(zs[0].A, zs[0].B), edgePair{0, 1})
	test.Float(t, zs[0].Point.X, 2.0)
	test.Float(t, zs[0].Point.Y, 0.0)
	test.T(t, pairOf(zs[1].A, zs[1].B), edgePair{0, 2})
	test.Float(t, zs[1].Point.X, 4.0)
	test.Float(t, zs[1].Point.Y, 0.0)
}

func TestRunCollinearOverlap(t *testing.T) {
	zs := NewSweepLine(
		[]Point{{0.0, 0.0}, {10.0, 0.0}},
		[]Point{{5.0, 0.0}, {15.0, 0.0}},
	).Run()
	test.T(t, len(zs), 1)
	test.T(t, pairOf(zs[0].A, zs[0].B), edgePair{0, 1})
	test.Float(t, zs[0].Point.X, 5.0)
	test.Float(t, zs[0].Point.Y, 0.0)
}

func TestRunSelfIntersecting(t *testing.T) {
	// a polyline crossing itself: edge 0 and edge 2 cross at (5,5)
	zs := NewSweepLine([]Point{{0.0, 0.0}, {10.0, 10.0}, {10.0, 0.0}, {0.0, 10.0}}).Run()
	test.T(t, len(zs), 1)
	test.T(t, pairOf(zs[0].A, zs[0].B), edgePair{0, 2})
	test.Float(t, zs[0].Point.X, 5.0)
	test.Float(t, zs[0].Point.Y, 5.0)
}

func TestRunDivergingVertex(t *testing.T) {
	// consecutive edges form a V at (0,0); the first crosses the horizontal
	// at (1,1) even though its sibling stays below it
	zs := NewSweepLine(
		[]Point{{2.0, 2.0}, {0.0, 0.0}, {10.0, -10.0}},
		[]Point{{-5.0, 1.0}, {15.0, 1.0}},
	).Run()
	test.T(t, len(zs), 1)
	test.T(t, pairOf(zs[0].A, zs[0].B), edgePair{0, 2})
	test.Float(t, zs[0].Point.X, 1.0)
	test.Float(t, zs[0].Point.Y, 1.0)
}

func TestRunSharedVertexNotAdjacent(t *testing.T) {
	// two polylines touching in one point report that point
	zs := NewSweepLine(
		[]Point{{0.0, 0.0}, {10.0, 10.0}},
		[]Point{{5.0, 5.0}, {15.0, 0.0}},
	).Run()
	test.T(t, len(zs), 1)
	test.Float(t, zs[0].Point.X, 5.0)
	test.Float(t, zs[0].Point.Y, 5.0)
}

func TestRunDeterminism(t *testing.T) {
	seqs := [][]Point{
		{{0.0, 0.0}, {10.0, 10.0}},
		{{0.0, 10.0}, {10.0, 0.0}},
		{{1.0, -1.0}, {3.0, 1.0}, {5.0, -1.0}},
		{{0.0, 5.0}, {20.0, 5.0}},
	}
	first := NewSweepLine(seqs...).Run()
	test.That(t, 0 < len(first))
	for i := 0; i < 10; i++ {
		zs := NewSweepLine(seqs...).Run()
		test.T(t, len(zs), len(first))
		for j := range zs {
			test.T(t, zs[j], first[j])
		}
	}
}
