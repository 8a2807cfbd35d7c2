package advanced

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulateMonotonePolygon(t *testing.T, points []Point) []Triangle {
	t.Helper()
	mesh, err := NewMesh(points)
	require.NoError(t, err)
	triangles, err := TriangulateMonotone(mesh)
	require.NoError(t, err)
	return triangles
}

func TestTriangulateMonotone(t *testing.T) {
	t.Run("simple triangle", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	t.Run("wacky triangle", func(t *testing.T) {
		points := []Point{{X: -10, Y: 0}, {X: 43, Y: 2}, {X: 0, Y: 2}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	t.Run("triangle with horizontal", func(t *testing.T) {
		// A horizontal segment is always acceptable in a triangle. It will only
		// affect which chain the segment is considered to be part of
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	// Quadrilaterals.
	t.Run("square", func(t *testing.T) {
		// A square has horizontal segments, but it is still strictly y-monotone
		// because of the lexiographic ordering.
		points := UnitSquare()
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
		assert.Equal(t, []Triangle{{0, 2, 3}, {1, 2, 0}}, triangles)
	})

	t.Run("diamond", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: -1, Y: 1}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	t.Run("quad chevron", func(t *testing.T) {
		// Our first non-convex quadrilateral, shaped like this:
		/*
			 C
			 \ \
			  \  \
			  D   B
			 /  /
			/ /
			A
		*/
		points := []Point{
			{X: 0, Y: 0},
			{X: 10, Y: 10},
			{X: 0, Y: 20},
			{X: 5, Y: 10},
		}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	t.Run("collinear run on one chain", func(t *testing.T) {
		// The piece cut off the notched square has three collinear points on its
		// left chain, so the middle one can't see past itself
		points := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	t.Run("sawtooth chain", func(t *testing.T) {
		// Straight left wall, zigzag right chain
		points := []Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 3}, {X: 1, Y: 4}, {X: 3, Y: 5}, {X: 0, Y: 6}}
		triangles := triangulateMonotonePolygon(t, points)
		AssertValidTriangulation(t, points, triangles)
	})

	// Fixtures
	fixtureNames := []string{
		"monotone_asteroid",
		"monotone_c",
		"monotone_diamond",
	}
	for _, fixtureName := range fixtureNames {
		t.Run(fixtureName+" (original)", func(t *testing.T) {
			points := LoadFixture(fixtureName)
			triangles := triangulateMonotonePolygon(t, points)
			AssertValidTriangulation(t, points, triangles)
		})
		t.Run(fixtureName+" (x reflected)", func(t *testing.T) {
			points := reflectX(LoadFixture(fixtureName))
			triangles := triangulateMonotonePolygon(t, points)
			AssertValidTriangulation(t, points, triangles)
		})

		t.Run(fixtureName+" (y reflected)", func(t *testing.T) {
			points := reflectY(LoadFixture(fixtureName))
			triangles := triangulateMonotonePolygon(t, points)
			AssertValidTriangulation(t, points, triangles)
		})

		t.Run(fixtureName+" (xy reflected)", func(t *testing.T) {
			points := reflectX(reflectY(LoadFixture(fixtureName)))
			triangles := triangulateMonotonePolygon(t, points)
			AssertValidTriangulation(t, points, triangles)
		})
	}
}

func TestTriangulateMonotonePieces(t *testing.T) {
	// Triangulating the pieces of a decomposition covers the whole polygon
	for name, points := range map[string][]Point{
		"notched square": NotchedSquare(),
		"letter M":       LetterM(),
		"star":           SimpleStar(),
		"sampled blob":   SampledBlob(60),
	} {
		t.Run(name, func(t *testing.T) {
			pieces, _ := decompose(t, points)
			var triangles []Triangle
			for _, piece := range pieces {
				pieceTriangles, err := TriangulateMonotone(piece)
				require.NoError(t, err)
				assert.Len(t, pieceTriangles, piece.Len()-2)
				triangles = append(triangles, pieceTriangles...)
			}
			AssertValidTriangulation(t, points, triangles)
		})
	}
}

func TestTriangulateMonotoneDegeneratePiece(t *testing.T) {
	// Partition never produces one, so build a two-vertex cycle by hand
	arena := newArena(4)
	a := arena.newVertex(0, Point{X: 0, Y: 0})
	b := arena.newVertex(1, Point{X: 1, Y: 1})
	ab := arena.newEdge(a)
	ba := arena.newEdge(b)
	arena.setNext(ab, ba)
	arena.setNext(ba, ab)
	outB := arena.newEdge(arena.newVertex(1, Point{X: 1, Y: 1}))
	outA := arena.newEdge(arena.newVertex(0, Point{X: 0, Y: 0}))
	arena.pair(ab, outB)
	arena.pair(ba, outA)
	arena.setNext(outB, outA)
	arena.setNext(outA, outB)

	triangles, err := TriangulateMonotone(&Mesh{Arena: arena, root: ab})
	assert.Nil(t, triangles)
	var degenerate *DegenerateMonotonePieceError
	require.True(t, errors.As(err, &degenerate), "got %v", err)
	assert.Equal(t, 2, degenerate.Count)
}
