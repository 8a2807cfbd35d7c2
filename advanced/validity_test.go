package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// and decomposition validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles, and every index refers to the input.
// 2. The set of points in the triangles must equal the set of points in the polygon.
// 3. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 4. Every triangle is counterclockwise, and none has zero area.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
// 6. No two triangle edges cross.
func AssertValidTriangulation(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()
	if !IsCCW(points) {
		t.Fatal("Polygon is not counterclockwise")
	}
	require.Len(t, triangles, len(points)-2, "a simple polygon with n vertices has n-2 triangles")

	used := make(map[int]struct{})
	areas := make([]float64, 0, len(triangles))
	segments := make(segmentSet)
	for _, tri := range triangles {
		for _, id := range tri {
			require.True(t, id >= 0 && id < len(points), "triangle %v refers to a point that doesn't exist", tri)
			used[id] = struct{}{}
		}
		area := SignedArea(points[tri[0]], points[tri[1]], points[tri[2]])
		require.Greater(t, area, 0.0, "clockwise or degenerate triangle: %v", tri)
		areas = append(areas, area)
		segments.add(tri[0], tri[1])
		segments.add(tri[1], tri[2])
		segments.add(tri[2], tri[0])
	}
	require.Len(t, used, len(points), "set of points in the triangles must equal the set of points in the polygon")

	// Check every segment in the polygon is in the set
	for i := range points {
		j := CircularIndex(i+1, len(points))
		require.True(t, segments.contains(i, j), "segment %d-%d of the polygon is not in the set of segments in the triangles", i, j)
	}

	// Check that the sum of the areas of all triangles is equal to the area of the polygon
	polygonArea := PolygonArea(points)
	require.InDelta(t, polygonArea, floats.Sum(areas), 1e-9*math.Max(1, polygonArea), "sum of the areas of all triangles is equal to the area of the polygon")

	all := segments.list()
	for i, s1 := range all {
		for _, s2 := range all[i+1:] {
			assert.False(t,
				SegmentsIntersect(points[s1.a], points[s1.b], points[s2.a], points[s2.b]),
				"triangle edges %d-%d and %d-%d cross", s1.a, s1.b, s2.a, s2.b,
			)
		}
	}
}

// Used in the helper above, this is a "normalized" segment between two input
// indices, where the smaller index is always first
type segment struct {
	a, b int
}

func newSegment(a, b int) segment {
	if a < b {
		return segment{a, b}
	}
	return segment{b, a}
}

type segmentSet map[segment]struct{}

func (set segmentSet) add(a, b int) {
	set[newSegment(a, b)] = struct{}{}
}

func (set segmentSet) contains(a, b int) bool {
	_, ok := set[newSegment(a, b)]
	return ok
}

func (set segmentSet) list() []segment {
	result := make([]segment, 0, len(set))
	for s := range set {
		result = append(result, s)
	}
	return result
}

// Helper to check that a set of pieces is a valid monotone decomposition of the
// polygon. Every piece must be counterclockwise and y-monotone, the piece areas
// must add up to the polygon's area, and every input index must appear on some
// piece.
func AssertValidDecomposition(t *testing.T, points []Point, pieces []*Mesh) {
	t.Helper()
	require.NotEmpty(t, pieces)

	used := make(map[int]struct{})
	areas := make([]float64, 0, len(pieces))
	for _, piece := range pieces {
		area := piece.Area()
		require.Greater(t, area, 0.0, "piece %s is not counterclockwise", piece)
		areas = append(areas, area)
		for _, id := range piece.IDs() {
			require.Equal(t, points[id], piece.Position(piece.Find(id)), "piece %s moved point %d", piece, id)
			used[id] = struct{}{}
		}
		assertMonotone(t, piece)
	}
	require.Len(t, used, len(points), "every input point must be on some piece")

	polygonArea := PolygonArea(points)
	require.InDelta(t, polygonArea, floats.Sum(areas), 1e-9*math.Max(1, polygonArea), "piece areas must add up to the polygon's area")
}

// A piece is y-monotone when, starting from its top vertex in sweep order, the
// boundary only ever descends until it reaches the bottom vertex, and then only
// ever ascends back to the top.
func assertMonotone(t *testing.T, piece *Mesh) {
	t.Helper()
	points := piece.Points()
	n := len(points)
	top := 0
	for i, p := range points {
		if Precedes(p, points[top]) {
			top = i
		}
	}

	i := 0
	for ; i < n && Precedes(points[CircularIndex(top+i, n)], points[CircularIndex(top+i+1, n)]); i++ {
	}
	for ; i < n && Precedes(points[CircularIndex(top+i+1, n)], points[CircularIndex(top+i, n)]); i++ {
	}
	assert.Equal(t, n, i, "piece %s is not y-monotone", piece)
}
