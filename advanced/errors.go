package advanced

import "fmt"

// None of these are transient. They all indicate either input that breaks the
// contract (too few points, wrong winding, self intersection) or a broken
// invariant inside the sweep. Callers should discard the whole result.

// DegenerateInputError is returned when the input cannot form a polygon: fewer
// than three points, coincident consecutive points, or zero area.
type DegenerateInputError struct {
	Count  int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input polygon with %d points: %s", e.Count, e.Reason)
}

// InvalidDiagonalError means a diagonal was requested between adjacent
// vertices, or between vertices that do not share a mesh. In correct operation
// this is unreachable.
type InvalidDiagonalError struct {
	Diagonal Diagonal
	Reason   string
}

func (e *InvalidDiagonalError) Error() string {
	return fmt.Sprintf("invalid diagonal %s: %s", e.Diagonal, e.Reason)
}

// NoVisibleHelperError means the sweep could not find an active edge to the left
// of a vertex. This usually means the input is clockwise or self-intersecting.
type NoVisibleHelperError struct {
	Vertex   int
	Position Point
}

func (e *NoVisibleHelperError) Error() string {
	return fmt.Sprintf("no active edge left of vertex %d at %v (is the polygon counterclockwise and simple?)", e.Vertex, e.Position)
}

// DegenerateMonotonePieceError is raised when the triangulator receives a piece
// with fewer than three vertices.
type DegenerateMonotonePieceError struct {
	Count int
}

func (e *DegenerateMonotonePieceError) Error() string {
	return fmt.Sprintf("cannot triangulate degenerate monotone piece with point count: %d", e.Count)
}
