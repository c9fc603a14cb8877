package sweep

import "math"

// edgePair identifies an unordered pair of edges.
type edgePair struct {
	a, b int
}

func pairOf(a, b int) edgePair {
	if b < a {
		a, b = b, a
	}
	return edgePair{a, b}
}

// statusComparator orders active segments vertically at the tracked sweep
// position. It holds the per-run mutable state the ordering depends on: the
// tracked position and the pairs whose crossing has already been passed. A
// fresh comparator is constructed for each sweep run, runs share no state.
type statusComparator struct {
	precision PrecisionModel
	x         float64           // tracked sweep position
	passed    map[edgePair]bool // pairs that have crossed at or before x
}

func newStatusComparator(precision PrecisionModel) *statusComparator {
	return &statusComparator{
		precision: precision,
		x:         math.Inf(-1),
		passed:    map[edgePair]bool{},
	}
}

// advance moves the tracked sweep position right to x. The passed pairs are
// cleared as their swapped order is already reflected in the tree at x.
func (c *statusComparator) advance(x float64) {
	if c.x < x {
		c.x = x
		clear(c.passed)
	}
}

func (c *statusComparator) pass(a, b *ActiveSegment) {
	c.passed[pairOf(a.Edge, b.Edge)] = true
}

// hasPassed returns true if the crossing z between a and b lies strictly
// before the tracked sweep position.
func (c *statusComparator) hasPassed(a, b *ActiveSegment, z Point) bool {
	return c.passed[pairOf(a.Edge, b.Edge)] || z.X < c.x
}

// Compare orders two active segments vertically at the tracked sweep
// position. Both segments must straddle the sweep position; comparing
// segments with disjoint x-intervals is a programmer error.
func (c *statusComparator) Compare(a, b *ActiveSegment) int {
	if a.Edge == b.Edge {
		return 0
	} else if a.Right.X < b.Left.X-Epsilon || b.Right.X < a.Left.X-Epsilon {
		panic("comparing segments with disjoint x-intervals")
	}

	if zs := c.precision.Intersection(a.Left, a.Right, b.Left, b.Right); 0 < len(zs) {
		cmp := compareCrossing(a.Segment, b.Segment)
		if !c.hasPassed(a, b, zs[0]) && !atOverlapStart(a.Segment, b.Segment, zs[0]) {
			cmp = -cmp // crossing still ahead, roles are reversed
		}
		return cmp
	}

	// no intersection, extrapolate at the rightmost left endpoint
	if Equal(a.Left.X, b.Left.X) {
		if !Equal(a.Left.Y, b.Left.Y) {
			if a.Left.Y < b.Left.Y {
				return -1
			}
			return 1
		}
		return tieBreak(a.Segment, b.Segment)
	} else if b.Left.X < a.Left.X {
		return c.compareAt(a, b)
	}
	return -c.compareAt(b, a)
}

// compareAt compares a against b at a's left endpoint, where b straddles that
// position. A vertical probe is dropped at a.Left.X to find b's y there.
func (c *statusComparator) compareAt(a, b *ActiveSegment) int {
	lo := math.Min(b.Left.Y, b.Right.Y)
	hi := math.Max(b.Left.Y, b.Right.Y)
	p0 := Point{a.Left.X, lo - 1.0}
	p1 := Point{a.Left.X, hi + 1.0}
	if zs := c.precision.Intersection(b.Left, b.Right, p0, p1); 0 < len(zs) {
		if Equal(a.Left.Y, zs[0].Y) {
			return tieBreak(a.Segment, b.Segment)
		} else if a.Left.Y < zs[0].Y {
			return -1
		}
		return 1
	}

	// near-tangent, precision-degenerate: fall back to comparing a's midpoint
	// against b's left endpoint
	my := a.Midpoint().Y
	if Equal(my, b.Left.Y) {
		return tieBreak(a.Segment, b.Segment)
	} else if my < b.Left.Y {
		return -1
	}
	return 1
}

// atOverlapStart returns true if crossing z lies at the left end of the
// common x-overlap of a and b. Such a pair only diverges rightward of z,
// so its order at the sweep position is the crossed order already.
func atOverlapStart(a, b Segment, z Point) bool {
	left := math.Max(a.Left.X, b.Left.X)
	return z.X < left || Equal(z.X, left)
}

// compareCrossing orders two intersecting segments once their crossing has
// been passed: the segment with the larger slope ranks above. Before the
// crossing the segments converge and the order is the inverse.
func compareCrossing(a, b Segment) int {
	sa, sb := a.Slope(), b.Slope()
	if sa != sb && !Equal(sa, sb) {
		if sa < sb {
			return -1
		}
		return 1
	}
	return tieBreak(a, b)
}

// tieBreak gives a deterministic total order over any two distinct segments:
// by Left.X, then Left.Y descending, then Right.X, then Right.Y descending,
// and finally by edge descending.
func tieBreak(a, b Segment) int {
	if !Equal(a.Left.X, b.Left.X) {
		if a.Left.X < b.Left.X {
			return -1
		}
		return 1
	} else if !Equal(a.Left.Y, b.Left.Y) {
		if b.Left.Y < a.Left.Y {
			return -1
		}
		return 1
	} else if !Equal(a.Right.X, b.Right.X) {
		if a.Right.X < b.Right.X {
			return -1
		}
		return 1
	} else if !Equal(a.Right.Y, b.Right.Y) {
		if b.Right.Y < a.Right.Y {
			return -1
		}
		return 1
	} else if a.Edge != b.Edge {
		if b.Edge < a.Edge {
			return -1
		}
		return 1
	}
	return 0
}
