package sweep

import "math"

// PrecisionModel is the numeric policy for segment intersections. It decides
// when coordinates coincide and computes the intersection points between two
// line segments. Drivers may substitute their own tolerance policy; the
// default is Precision.
type PrecisionModel interface {
	// Intersection returns the intersection points between segments A0-A1 and
	// B0-B1. It returns no points when the segments do not touch, one point
	// for a crossing or tangent touch, and two points for collinear
	// overlapping segments (the two endpoints of the overlap).
	Intersection(a0, a1, b0, b1 Point) []Point

	// Intersects returns true if segments A0-A1 and B0-B1 touch at all.
	Intersects(a0, a1, b0, b1 Point) bool
}

// Precision is the default PrecisionModel using Epsilon as the coincidence
// tolerance.
type Precision struct{}

// Intersects returns true if segments A0-A1 and B0-B1 touch at all.
func (p Precision) Intersects(a0, a1, b0, b1 Point) bool {
	return len(p.Intersection(a0, a1, b0, b1)) != 0
}

// Intersection returns the intersection points between segments A0-A1 and B0-B1.
func (Precision) Intersection(a0, a1, b0, b1 Point) []Point {
	if a0.Equals(a1) || b0.Equals(b1) {
		return nil // zero-length segment
	}

	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if Equal(div, 0.0) {
		// parallel
		if !Equal(da.PerpDot(b0.Sub(a0)), 0.0) {
			return nil
		}

		// aligned, project B's endpoints onto A
		dd := da.Dot(da)
		t0 := da.Dot(b0.Sub(a0)) / dd
		t1 := da.Dot(b1.Sub(a0)) / dd
		if t1 < t0 {
			t0, t1 = t1, t0
		}
		t0 = math.Max(t0, 0.0)
		t1 = math.Min(t1, 1.0)
		if t1 < t0 && !Equal(t0, t1) {
			return nil
		} else if Equal(t0, t1) {
			return []Point{a0.Interpolate(a1, t0)}
		}
		return []Point{a0.Interpolate(a1, t0), a0.Interpolate(a1, t1)}
	} else if a1.Equals(b0) || a1.Equals(b1) {
		// handle common cases with endpoints to avoid numerical issues
		return []Point{a1}
	} else if a0.Equals(b0) || a0.Equals(b1) {
		return []Point{a0}
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		return []Point{a0.Interpolate(a1, ta)}
	}
	return nil
}
