package sweep

import (
	"fmt"
	"math"
)

// Epsilon is the coincidence tolerance used for coordinate comparisons.
const Epsilon = 1e-10

// Equal returns true if a and b are equal within tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Interval returns true if f is inside the closed interval [lower,upper],
// including tolerance.
func Interval(f, lower, upper float64) bool {
	return lower-Epsilon <= f && f <= upper+Epsilon
}

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Equals returns true if p and q are equal within tolerance.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the dot product between p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perpendicular dot product between p and q.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Slope returns the slope between OP, i.e. the rise over run.
func (p Point) Slope() float64 {
	return p.Y / p.X
}

// Interpolate returns a point on PQ that is linearly interpolated by t in [0,1],
// i.e. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// CompareH orders points horizontally: left to right, then bottom to top.
// Points that are equal within tolerance compare as 0.
func (p Point) CompareH(q Point) int {
	if !Equal(p.X, q.X) {
		if p.X < q.X {
			return -1
		}
		return 1
	} else if !Equal(p.Y, q.Y) {
		if p.Y < q.Y {
			return -1
		}
		return 1
	}
	return 0
}

// LessH returns true if p sorts strictly before q in horizontal order.
func (p Point) LessH(q Point) bool {
	return p.CompareH(q) < 0
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
