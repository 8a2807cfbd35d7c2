package advanced

import (
	"fmt"
	"iter"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshtri/dbg"
)

// Mesh is a simple polygon expressed as a closed cycle of half-edges. Walking
// Next from the root visits the interior boundary counterclockwise; walking from
// the root's opposite visits the exterior boundary the other way around.
//
// Several meshes can share one arena. After a partition, the parent mesh is
// dead and the two children own disjoint parts of the arena.
type Mesh struct {
	*Arena
	root EdgeRef
}

// NewMesh builds the half-edge representation of a polygon. Points must be
// given counterclockwise, without repeating the first point at the end.
func NewMesh(points []Point) (*Mesh, error) {
	n := len(points)
	if n < 3 {
		return nil, &DegenerateInputError{Count: n, Reason: "fewer than 3 points"}
	}
	for i, p := range points {
		if p == points[CircularIndex(i+1, n)] {
			return nil, &DegenerateInputError{Count: n, Reason: fmt.Sprintf("points %d and %d coincide", i, CircularIndex(i+1, n))}
		}
	}
	if Equal(PolygonArea(points), 0) {
		return nil, &DegenerateInputError{Count: n, Reason: "points are collinear"}
	}

	arena := newArena(2 * n)

	// Interior cycle. Vertex and edge i both sit at index i of the arena.
	for i, p := range points {
		arena.newEdge(arena.newVertex(i, p))
	}
	for i := 0; i < n; i++ {
		arena.setNext(EdgeRef(i), EdgeRef(CircularIndex(i+1, n)))
	}

	// Exterior cycle. Opposite edge n+i runs from point i+1 back to point i, and
	// continues to the opposite of edge i-1.
	for i := 0; i < n; i++ {
		next := CircularIndex(i+1, n)
		opposite := arena.newEdge(arena.newVertex(next, points[next]))
		arena.pair(EdgeRef(i), opposite)
	}
	for i := 0; i < n; i++ {
		arena.setNext(EdgeRef(n+i), EdgeRef(n+CircularIndex(i-1, n)))
	}

	return &Mesh{Arena: arena, root: 0}, nil
}

func (m *Mesh) Root() EdgeRef {
	return m.root
}

// Traverse yields the interior half-edges, starting at the root, until the
// root comes around again.
func (m *Mesh) Traverse() iter.Seq[EdgeRef] {
	return m.walk(m.root)
}

// Reverse yields the exterior half-edges, starting at the root's opposite.
func (m *Mesh) Reverse() iter.Seq[EdgeRef] {
	if m.root == NoEdge {
		return m.walk(NoEdge)
	}
	return m.walk(m.Opposite(m.root))
}

func (m *Mesh) walk(root EdgeRef) iter.Seq[EdgeRef] {
	return func(yield func(EdgeRef) bool) {
		if root == NoEdge {
			fatalf("traversing a mesh that has been partitioned")
		}
		// A well formed cycle can't be longer than the arena
		limit := m.NumEdges()
		e := root
		for steps := 0; ; steps++ {
			if steps >= limit {
				fatalf("half-edge cycle starting at %s does not close", m.EdgeString(root))
			}
			if !yield(e) {
				return
			}
			e = m.Next(e)
			if e == root {
				return
			}
		}
	}
}

// Len is the number of vertices (and edges) on the boundary.
func (m *Mesh) Len() int {
	n := 0
	for range m.Traverse() {
		n++
	}
	return n
}

func (m *Mesh) Edges() []EdgeRef {
	var edges []EdgeRef
	for e := range m.Traverse() {
		edges = append(edges, e)
	}
	return edges
}

// Vertices returns the interior vertex records in traversal order.
func (m *Mesh) Vertices() []VertexRef {
	var vertices []VertexRef
	for e := range m.Traverse() {
		vertices = append(vertices, m.Start(e))
	}
	return vertices
}

// IDs returns the input indices of the boundary in traversal order.
func (m *Mesh) IDs() []int {
	var ids []int
	for e := range m.Traverse() {
		ids = append(ids, m.ID(m.Start(e)))
	}
	return ids
}

func (m *Mesh) Points() []Point {
	var points []Point
	for e := range m.Traverse() {
		points = append(points, m.Position(m.Start(e)))
	}
	return points
}

// Find the interior vertex record for an input index, or NoVertex.
func (m *Mesh) Find(id int) VertexRef {
	for e := range m.Traverse() {
		if v := m.Start(e); m.ID(v) == id {
			return v
		}
	}
	return NoVertex
}

// Contains reports whether the half-edge is on this mesh's interior cycle.
func (m *Mesh) Contains(edge EdgeRef) bool {
	for e := range m.Traverse() {
		if e == edge {
			return true
		}
	}
	return false
}

// Area is the signed shoelace area of the boundary.
func (m *Mesh) Area() float64 {
	return PolygonArea(m.Points())
}

func (m *Mesh) String() string {
	if m.root == NoEdge {
		return "Mesh[partitioned]"
	}
	var parts []string
	for _, id := range m.IDs() {
		parts = append(parts, fmt.Sprint(id))
	}
	return fmt.Sprintf("Mesh[%s]", strings.Join(parts, " "))
}

// DbgName is a readable, colored name for the mesh. Consumed meshes are red,
// triangles cyan, and everything else green.
func (m *Mesh) DbgName() string {
	name := dbg.Name(m)
	if m.root == NoEdge {
		return aurora.Red(name).String()
	}
	if m.Len() == 3 {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

// Partition splits the mesh along the diagonal between a and b, which must be
// non-adjacent interior vertices of this mesh. The first result walks from a
// to b along a's original chain, the second from b to a. Each is closed by its
// own fresh pair of half-edges along the diagonal, and each gets a fresh copy
// of the far diagonal endpoint. The boundary edges themselves are reused.
//
// The receiver is consumed: it must not be used afterwards.
func (m *Mesh) Partition(a, b VertexRef) (first, second *Mesh, err error) {
	if a == NoVertex || b == NoVertex {
		return nil, nil, &InvalidDiagonalError{Reason: "missing endpoint"}
	}
	diagonal := Diagonal{m.ID(a), m.ID(b)}
	if a == b {
		return nil, nil, &InvalidDiagonalError{Diagonal: diagonal, Reason: "endpoints coincide"}
	}
	ea := m.IncidentEdge(a)
	eb := m.IncidentEdge(b)
	if m.Start(ea) != a || m.Start(eb) != b || !m.Contains(ea) || !m.Contains(eb) {
		return nil, nil, &InvalidDiagonalError{Diagonal: diagonal, Reason: "endpoints are not on the same mesh"}
	}
	if m.End(ea) == b || m.End(eb) == a {
		return nil, nil, &InvalidDiagonalError{Diagonal: diagonal, Reason: "endpoints are adjacent"}
	}

	// Capture the neighborhood before anything is rewired
	prevA := m.Prev(ea)
	prevB := m.Prev(eb)
	outA := m.Opposite(ea)
	outB := m.Opposite(eb)
	outPrevA := m.Opposite(prevA)
	outPrevB := m.Opposite(prevB)
	positionA := m.Position(a)
	positionB := m.Position(b)

	/*
		First child: a → … → b ⇢ a, where ⇢ is the new edge leaving a copy of b.
		On the exterior, a ⇢ b is spliced between (a's successor → a) and (b → b's
		predecessor).
	*/
	closeFirst := m.newEdge(m.newVertex(diagonal.B, positionB))
	outFirst := m.newEdge(m.newVertex(diagonal.A, positionA))
	m.pair(closeFirst, outFirst)
	m.setNext(prevB, closeFirst)
	m.setNext(closeFirst, ea)
	m.setNext(outA, outFirst)
	m.setNext(outFirst, outPrevB)

	// Second child: b → … → a ⇢ b, mirrored.
	closeSecond := m.newEdge(m.newVertex(diagonal.A, positionA))
	outSecond := m.newEdge(m.newVertex(diagonal.B, positionB))
	m.pair(closeSecond, outSecond)
	m.setNext(prevA, closeSecond)
	m.setNext(closeSecond, eb)
	m.setNext(outB, outSecond)
	m.setNext(outSecond, outPrevA)

	first = &Mesh{Arena: m.Arena, root: ea}
	second = &Mesh{Arena: m.Arena, root: eb}
	m.root = NoEdge

	if debugEnabled() {
		Logger().Debug("partition",
			"diagonal", diagonal.String(),
			"first", dbg.Name(first),
			"firstLen", first.Len(),
			"second", dbg.Name(second),
			"secondLen", second.Len(),
		)
	}
	return first, second, nil
}
