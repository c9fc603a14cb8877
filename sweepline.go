// Package sweep finds all intersections among sets of line segments using a
// plane sweep, avoiding the quadratic cost of exhaustive pairwise testing. A
// vertical line is conceptually swept left to right over the input; segments
// are kept in a balanced tree ordered by their vertical position at the sweep
// position, and only segments that become tree neighbors are tested against
// each other.
package sweep

// ring records the edge index range of one input sequence. A sequence whose
// first and last coordinate coincide is closed, which makes its first and
// last edge adjacent.
type ring struct {
	first, last int
	closed      bool
}

// SweepLine coordinates one sweep run. It owns the ordered set of active
// segments, the event queue, and the crossing bookkeeping; all of it is
// scoped to this run and none of it may be shared between runs.
type SweepLine struct {
	precision PrecisionModel
	segs      []Segment
	rings     []ring
	queue     EventQueue
	cmp       *statusComparator
	status    OrderedActiveSet
}

// NewSweepLine builds a sweep over one or more coordinate sequences using the
// default precision model. Each sequence becomes consecutively numbered
// edges; zero-length edges are dropped. Passing no sequences is a programmer
// error.
func NewSweepLine(seqs ...[]Point) *SweepLine {
	return NewSweepLinePrecision(Precision{}, seqs...)
}

// NewSweepLinePrecision is NewSweepLine with a custom precision model.
func NewSweepLinePrecision(precision PrecisionModel, seqs ...[]Point) *SweepLine {
	if len(seqs) == 0 {
		panic("sweep line needs at least one input sequence")
	}

	s := &SweepLine{precision: precision}
	for _, seq := range seqs {
		first := len(s.segs)
		for i := 1; i < len(seq); i++ {
			start, end := seq[i-1], seq[i]
			if start.Equals(end) {
				continue // drop zero-length edge
			}
			if end.LessH(start) {
				start, end = end, start
			}
			s.segs = append(s.segs, Segment{Edge: len(s.segs), Left: start, Right: end})
		}
		closed := first < len(s.segs) && seq[0].Equals(seq[len(seq)-1])
		s.rings = append(s.rings, ring{first: first, last: len(s.segs) - 1, closed: closed})
	}
	s.queue = NewEventQueue(s.segs)
	s.cmp = newStatusComparator(precision)
	s.status = newTreeSet(s.cmp.Compare)
	return s
}

// Queue returns the event queue of this run.
func (s *SweepLine) Queue() *EventQueue {
	return &s.queue
}

// Len returns the number of active segments.
func (s *SweepLine) Len() int {
	return s.status.Len()
}

// Add activates the edge of a left endpoint event and wires it up with its
// neighbors. It returns the new active segment so the caller can schedule
// candidate crossings against them. Adding an edge that is out of range or
// already active is a programmer error.
func (s *SweepLine) Add(e *Event) *ActiveSegment {
	if e.Edge < 0 || len(s.segs) <= e.Edge {
		panic("edge out of range")
	}
	seg := &ActiveSegment{Segment: s.segs[e.Edge]}
	if s.status.Find(seg) != nil {
		panic("edge already active")
	}
	s.status.Insert(seg)
	seg.below = s.status.Prev(seg)
	seg.above = s.status.Next(seg)
	if seg.below != nil {
		seg.below.above = seg
	}
	if seg.above != nil {
		seg.above.below = seg
	}
	return seg
}

// Search returns the active segment for the edge of an endpoint event, or nil
// when the edge is not active.
func (s *SweepLine) Search(e *Event) *ActiveSegment {
	if e.Edge < 0 || len(s.segs) <= e.Edge {
		panic("edge out of range")
	}
	return s.status.Find(&ActiveSegment{Segment: s.segs[e.Edge]})
}

// Remove deactivates an active segment and links its former neighbors
// directly to each other. Removing a segment that is not active is a no-op
// and returns false.
func (s *SweepLine) Remove(seg *ActiveSegment) bool {
	if !s.status.Remove(seg) {
		return false
	}
	if seg.below != nil {
		seg.below.above = seg.above
	}
	if seg.above != nil {
		seg.above.below = seg.below
	}
	seg.above, seg.below = nil, nil
	return true
}

// Intersect applies a discovered crossing between two active segments. It
// returns false without effect when the pair is no longer directly adjacent
// or when the crossing has already been passed; both occur routinely as
// swaps invalidate previously scheduled candidates, and duplicate candidates
// for the same crossing are absorbed the same way. On success both segments
// are re-inserted in swapped order and all four affected neighbor links are
// re-wired; a crossing at the left end of the pair's x-overlap, where the
// pair only diverges, is confirmed without a swap as the order reflects it
// already. Intersect panics when the segments do not geometrically
// intersect at all, the caller must check before scheduling.
func (s *SweepLine) Intersect(x, y *ActiveSegment) bool {
	var below, above *ActiveSegment
	if x.above == y {
		below, above = x, y
	} else if y.above == x {
		below, above = y, x
	} else {
		return false // no longer adjacent
	}

	zs := s.precision.Intersection(x.Left, x.Right, y.Left, y.Right)
	if len(zs) == 0 {
		panic("segments do not intersect")
	} else if s.cmp.hasPassed(x, y, zs[0]) {
		return false
	}

	if atOverlapStart(below.Segment, above.Segment, zs[0]) {
		// the pair only diverges from here on, no swap needed
		s.cmp.advance(zs[0].X)
		s.cmp.pass(below, above)
		return true
	}

	bb, aa := below.below, above.above
	if !s.status.Remove(below) || !s.status.Remove(above) {
		panic("active segment missing from status")
	}

	s.cmp.advance(zs[0].X)
	s.cmp.pass(below, above)

	s.status.Insert(below)
	s.status.Insert(above)

	// swapped, above now sits below
	above.below, above.above = bb, below
	below.below, below.above = above, aa
	if bb != nil {
		bb.above = above
	}
	if aa != nil {
		aa.below = below
	}
	return true
}

// IsAdjacent returns true if edges a and b are consecutive edges of the same
// sequence, or the first and last edge of the same closed sequence. Drivers
// use this to suppress spurious crossings at the shared vertices of
// consecutive edges.
func (s *SweepLine) IsAdjacent(a, b int) bool {
	for _, r := range s.rings {
		if r.first <= a && a <= r.last {
			if b < r.first || r.last < b {
				return false
			} else if d := a - b; d == 1 || d == -1 {
				return true
			}
			return r.closed && (a == r.first && b == r.last || b == r.first && a == r.last)
		}
	}
	return false
}
