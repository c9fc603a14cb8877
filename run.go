package sweep

// Crossing is a confirmed intersection between two non-adjacent edges, with A
// the edge that was below before the crossing was passed.
type Crossing struct {
	A, B  int
	Point Point
}

// Run executes a full sweep and returns the crossings between non-adjacent
// edges in order of discovery. It consumes the event queue; a SweepLine is
// good for one run only.
func (s *SweepLine) Run() []Crossing {
	var crossings []Crossing
	scheduled := map[edgePair]bool{}
	for {
		e, ok := s.queue.Pop()
		if !ok {
			break
		}
		switch e.Kind {
		case LeftEvent:
			seg := s.Add(e)
			s.schedule(scheduled, seg.Below(), seg)
			s.schedule(scheduled, seg, seg.Above())
		case RightEvent:
			seg := s.Search(e)
			if seg == nil {
				continue
			}
			below, above := seg.Below(), seg.Above()
			s.Remove(seg)
			s.schedule(scheduled, below, above)
		case IntersectionEvent:
			if s.Intersect(e.Below, e.Above) {
				crossings = append(crossings, Crossing{A: e.Below.Edge, B: e.Above.Edge, Point: e.Vertex})

				// the swap creates two new adjacencies on its outside
				s.schedule(scheduled, e.Above.Below(), e.Above)
				s.schedule(scheduled, e.Below, e.Below.Above())
			} else {
				// stale candidate, allow rescheduling if the pair becomes
				// adjacent again
				delete(scheduled, pairOf(e.Below.Edge, e.Above.Edge))
			}
		}
	}
	return crossings
}

// schedule pushes a candidate crossing between two directly adjacent active
// segments, unless the edges are consecutive in their sequence or the pair
// has a pending candidate already.
func (s *SweepLine) schedule(scheduled map[edgePair]bool, below, above *ActiveSegment) {
	if below == nil || above == nil || s.IsAdjacent(below.Edge, above.Edge) {
		return
	}
	pair := pairOf(below.Edge, above.Edge)
	if scheduled[pair] {
		return
	}
	zs := s.precision.Intersection(below.Left, below.Right, above.Left, above.Right)
	if len(zs) == 0 {
		return
	}
	scheduled[pair] = true

	close := zs[0].Equals(below.Left) || zs[0].Equals(below.Right) ||
		zs[0].Equals(above.Left) || zs[0].Equals(above.Right)
	s.queue.Push(&Event{Kind: IntersectionEvent, Vertex: zs[0], Below: below, Above: above, Close: close})
}
