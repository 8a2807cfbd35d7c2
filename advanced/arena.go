package advanced

import "fmt"

// The half-edge structure is a web of cyclic references. Rather than pointers,
// all records live in an arena and refer to each other by index. The arena owns
// every record; a mesh is just a root edge plus whatever is reachable from it.

type VertexRef int

type EdgeRef int

const (
	NoVertex VertexRef = -1
	NoEdge   EdgeRef   = -1
)

// Vertex is a corner of one face boundary. The interior and the exterior
// traversal of a polygon each have their own vertex records, so one input point
// is represented by several records over the life of an arena.
type Vertex struct {
	// Index of the point in the input sequence
	ID       int
	Position Point
	// Outgoing half-edge on the face this record belongs to
	Edge EdgeRef
}

// HalfEdge runs from Start to the start of Next.
type HalfEdge struct {
	Start    VertexRef
	Next     EdgeRef
	Opposite EdgeRef
}

type Arena struct {
	vertices []Vertex
	edges    []HalfEdge
}

func newArena(capacity int) *Arena {
	return &Arena{
		vertices: make([]Vertex, 0, capacity),
		edges:    make([]HalfEdge, 0, capacity),
	}
}

func (a *Arena) newVertex(id int, position Point) VertexRef {
	a.vertices = append(a.vertices, Vertex{ID: id, Position: position, Edge: NoEdge})
	return VertexRef(len(a.vertices) - 1)
}

// Allocate a half-edge leaving v, and make it v's incident edge.
func (a *Arena) newEdge(v VertexRef) EdgeRef {
	a.edges = append(a.edges, HalfEdge{Start: v, Next: NoEdge, Opposite: NoEdge})
	e := EdgeRef(len(a.edges) - 1)
	a.vertices[v].Edge = e
	return e
}

func (a *Arena) setNext(e, next EdgeRef) {
	a.edges[e].Next = next
}

func (a *Arena) pair(e, opposite EdgeRef) {
	a.edges[e].Opposite = opposite
	a.edges[opposite].Opposite = e
}

func (a *Arena) NumVertices() int { return len(a.vertices) }
func (a *Arena) NumEdges() int    { return len(a.edges) }

func (a *Arena) Vertex(v VertexRef) Vertex {
	return a.vertices[v]
}

func (a *Arena) HalfEdge(e EdgeRef) HalfEdge {
	return a.edges[e]
}

func (a *Arena) Start(e EdgeRef) VertexRef {
	return a.edges[e].Start
}

// End is the start vertex of the next edge on the same face.
func (a *Arena) End(e EdgeRef) VertexRef {
	return a.Start(a.Next(e))
}

func (a *Arena) Next(e EdgeRef) EdgeRef {
	return a.edges[e].Next
}

func (a *Arena) Opposite(e EdgeRef) EdgeRef {
	return a.edges[e].Opposite
}

// Prev is derived by stepping across to the neighboring face and back.
func (a *Arena) Prev(e EdgeRef) EdgeRef {
	return a.Opposite(a.Next(a.Opposite(e)))
}

func (a *Arena) ID(v VertexRef) int {
	return a.vertices[v].ID
}

func (a *Arena) Position(v VertexRef) Point {
	return a.vertices[v].Position
}

func (a *Arena) IncidentEdge(v VertexRef) EdgeRef {
	return a.vertices[v].Edge
}

// Predecessor is the vertex before v along its face.
func (a *Arena) Predecessor(v VertexRef) VertexRef {
	return a.Start(a.Prev(a.IncidentEdge(v)))
}

// Successor is the vertex after v along its face.
func (a *Arena) Successor(v VertexRef) VertexRef {
	return a.End(a.IncidentEdge(v))
}

// SegmentIntersects checks whether the edge properly crosses the open segment
// p1-p2. Touching and collinear configurations do not count.
func (a *Arena) SegmentIntersects(e EdgeRef, p1, p2 Point) bool {
	return SegmentsIntersect(a.Position(a.Start(e)), a.Position(a.End(e)), p1, p2)
}

// IsReflex reports whether the interior angle at v exceeds 180 degrees. This
// assumes the face is counterclockwise.
func (a *Arena) IsReflex(v VertexRef) bool {
	return SignedArea(a.Position(a.Predecessor(v)), a.Position(v), a.Position(a.Successor(v))) < 0
}

// IsLeftHandSideOfPolygon reports whether v sits on the left chain of the
// polygon, i.e. the boundary comes down through v: the predecessor is swept
// before v and the successor after it. This assumes a counterclockwise face.
func (a *Arena) IsLeftHandSideOfPolygon(v VertexRef) bool {
	return Precedes(a.Position(a.Predecessor(v)), a.Position(v)) &&
		Precedes(a.Position(v), a.Position(a.Successor(v)))
}

// IsLeftOfEdge is IsLeftOf against the line through the edge.
func (a *Arena) IsLeftOfEdge(p Point, e EdgeRef) bool {
	return IsLeftOf(p, a.Position(a.Start(e)), a.Position(a.End(e)))
}

// InCone reports whether the direction from v towards p lies strictly inside
// the interior wedge at v.
func (a *Arena) InCone(v VertexRef, p Point) bool {
	prev := a.Position(a.Predecessor(v))
	next := a.Position(a.Successor(v))
	here := a.Position(v)
	if SignedArea(here, next, prev) >= 0 {
		// Convex corner: p must be strictly inside both half planes
		return SignedArea(here, p, prev) > 0 && SignedArea(p, here, next) > 0
	}
	// Reflex corner: p must not be in the exterior wedge
	return !(SignedArea(here, p, next) >= 0 && SignedArea(p, here, prev) >= 0)
}

func (a *Arena) EdgeString(e EdgeRef) string {
	return fmt.Sprintf("%d -> %d", a.ID(a.Start(e)), a.ID(a.End(e)))
}
