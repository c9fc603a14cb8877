package sweep

import "fmt"

// Segment is a directed edge between two coordinates of an input sequence,
// normalized so that Left sorts before Right in horizontal order. Edge is the
// index of the edge over all input sequences.
type Segment struct {
	Edge  int
	Left  Point
	Right Point
}

// Slope returns the rise over run of the segment. Vertical segments return
// +Inf as Left sorts below Right.
func (s Segment) Slope() float64 {
	return s.Right.Sub(s.Left).Slope()
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point {
	return s.Left.Interpolate(s.Right, 0.5)
}

func (s Segment) String() string {
	return fmt.Sprintf("E%d(%v−%v)", s.Edge, s.Left, s.Right)
}

// ActiveSegment is the live record of an edge currently straddling the sweep
// position. It is created when its left endpoint is processed and destroyed
// on its right endpoint; a swap removes and re-inserts it but never destroys
// it. The above and below references mirror the current tree neighbors; they
// are non-owning and re-synchronized on every structural change.
type ActiveSegment struct {
	Segment
	above, below *ActiveSegment
}

// Above returns the active segment directly above, or nil.
func (s *ActiveSegment) Above() *ActiveSegment {
	return s.above
}

// Below returns the active segment directly below, or nil.
func (s *ActiveSegment) Below() *ActiveSegment {
	return s.below
}
