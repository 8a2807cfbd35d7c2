package advanced

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance used where float comparisons are allowed to be fuzzy. Note that the
// sweep ordering and the side tests below are exact, since they must agree with
// each other.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// CompareSweep orders points top to bottom, breaking ties on the same row left
// to right. This simulates a slightly rotated coordinate system where no two
// points share a y value.
func CompareSweep(a, b Point) int {
	switch {
	case a.Y > b.Y:
		return -1
	case a.Y < b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// Precedes reports whether a is swept strictly before b.
func Precedes(a, b Point) bool {
	return CompareSweep(a, b) < 0
}

// SignedArea of the triangle abc. Positive when counterclockwise.
func SignedArea(a, b, c Point) float64 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a))
}

// IsLeftOf checks which side of the line through a and b the point lies on. The
// line is always oriented upwards (a and b are swapped if needed), so "left" is
// independent of the order in which the endpoints are given. Points on the line
// count as left.
func IsLeftOf(p, a, b Point) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	return b.Sub(a).Cross(p.Sub(a)) >= 0
}

// SegmentsIntersect is the straddle test for two open segments. Both segments
// must strictly straddle the line through the other, so touching or collinear
// segments do not count as intersecting.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	ta := (b1.X-b2.X)*(a1.Y-b1.Y) + (b1.Y-b2.Y)*(b1.X-a1.X)
	tb := (b1.X-b2.X)*(a2.Y-b1.Y) + (b1.Y-b2.Y)*(b1.X-a2.X)
	tc := (a1.X-a2.X)*(b1.Y-a1.Y) + (a1.Y-a2.Y)*(a1.X-b1.X)
	td := (a1.X-a2.X)*(b2.Y-a1.Y) + (a1.Y-a2.Y)*(a1.X-b2.X)
	return tc*td < 0 && ta*tb < 0
}

// PolygonArea is the shoelace area of a closed polygon. Positive when the
// polygon winds counterclockwise.
func PolygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func IsCCW(points []Point) bool {
	return PolygonArea(points) > 0
}

func IsCW(points []Point) bool {
	return PolygonArea(points) < 0
}

// Departure angle of the directed segment from a to b, in (-π, π].
func departureAngle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
