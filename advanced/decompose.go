package advanced

import (
	"slices"
)

// Decomposer splits a simple counterclockwise polygon into y-monotone pieces
// with a top-to-bottom sweep. Vertices are classified as start, end, split,
// merge or regular; split and merge vertices (and regular vertices whose helper
// is a merge vertex) produce diagonals, which are applied to the mesh once the
// sweep is complete.
//
// A Decomposer is not safe for concurrent use, but it can be reused.
type Decomposer struct {
	// Tie threshold for ordering active edges
	Epsilon float64

	mesh      *Mesh
	active    *activeEdges
	types     map[VertexRef]VertexType
	diagonals []Diagonal
	recorded  map[Diagonal]struct{}
}

func NewDecomposer() *Decomposer {
	return &Decomposer{Epsilon: DefaultEpsilon}
}

// Decompose runs the sweep over the mesh and partitions it along every
// diagonal found. The mesh is consumed. If no diagonals are needed, the result
// is the mesh itself.
func (d *Decomposer) Decompose(mesh *Mesh) (pieces []*Mesh, err error) {
	err = Catch(func() {
		pieces = d.decompose(mesh)
	})
	if err != nil {
		return nil, err
	}
	return pieces, nil
}

// Diagonals found by the most recent Decompose call, in the order the sweep
// recorded them.
func (d *Decomposer) Diagonals() []Diagonal {
	return slices.Clone(d.diagonals)
}

func (d *Decomposer) reset(mesh *Mesh) {
	epsilon := d.Epsilon
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	d.mesh = mesh
	d.active = newActiveEdges(mesh.Arena, epsilon)
	d.types = make(map[VertexRef]VertexType)
	d.diagonals = nil
	d.recorded = make(map[Diagonal]struct{})
}

func (d *Decomposer) decompose(mesh *Mesh) []*Mesh {
	d.reset(mesh)
	logger := Logger()

	vertices := mesh.Vertices()
	for _, v := range vertices {
		d.types[v] = Classify(mesh.Arena, v)
	}
	slices.SortFunc(vertices, func(a, b VertexRef) int {
		return CompareSweep(mesh.Position(a), mesh.Position(b))
	})

	for _, v := range vertices {
		d.active.advance(mesh.Position(v))
		vertexType := d.types[v]
		if debugEnabled() {
			logger.Debug("sweep", "vertex", mesh.ID(v), "type", vertexType.String(), "active", d.active.len())
		}
		switch vertexType {
		case Start:
			d.handleStart(v)
		case End:
			d.handleEnd(v)
		case Split:
			d.handleSplit(v)
		case Merge:
			d.handleMerge(v)
		default:
			d.handleRegular(v)
		}
	}

	pieces := d.applyDiagonals(mesh)
	if debugEnabled() {
		logger.Debug("decomposed", "vertices", len(vertices), "diagonals", len(d.diagonals), "pieces", len(pieces))
	}
	return pieces
}

// Classify a vertex by comparing it against its neighbors in sweep order, and
// by whether its interior angle is reflex.
func Classify(arena *Arena, v VertexRef) VertexType {
	p := arena.Position(v)
	prev := arena.Position(arena.Predecessor(v))
	next := arena.Position(arena.Successor(v))

	if Precedes(p, prev) && Precedes(p, next) {
		if arena.IsReflex(v) {
			return Split
		}
		return Start
	}
	if Precedes(prev, p) && Precedes(next, p) {
		if arena.IsReflex(v) {
			return Merge
		}
		return End
	}
	return Regular
}

func (d *Decomposer) handleStart(v VertexRef) {
	d.active.insert(d.mesh.IncidentEdge(v), v)
}

func (d *Decomposer) handleEnd(v VertexRef) {
	prevEdge := d.mesh.Prev(d.mesh.IncidentEdge(v))
	d.connectMergeHelper(v, prevEdge)
	d.active.remove(prevEdge)
}

func (d *Decomposer) handleSplit(v VertexRef) {
	edge := d.leftEdge(v)
	d.addDiagonal(v, d.helperOf(edge, v))
	d.active.setHelper(edge, v)
	d.active.insert(d.mesh.IncidentEdge(v), v)
}

func (d *Decomposer) handleMerge(v VertexRef) {
	prevEdge := d.mesh.Prev(d.mesh.IncidentEdge(v))
	d.connectMergeHelper(v, prevEdge)
	d.active.remove(prevEdge)

	edge := d.leftEdge(v)
	d.connectMergeHelper(v, edge)
	d.active.setHelper(edge, v)
}

func (d *Decomposer) handleRegular(v VertexRef) {
	if d.mesh.IsLeftHandSideOfPolygon(v) {
		// The interior is to the right: the left boundary continues through v
		prevEdge := d.mesh.Prev(d.mesh.IncidentEdge(v))
		d.connectMergeHelper(v, prevEdge)
		d.active.remove(prevEdge)
		d.active.insert(d.mesh.IncidentEdge(v), v)
		return
	}
	edge := d.leftEdge(v)
	d.connectMergeHelper(v, edge)
	d.active.setHelper(edge, v)
}

// If the edge's helper is a merge vertex, it needs a diagonal down to v.
func (d *Decomposer) connectMergeHelper(v VertexRef, edge EdgeRef) {
	helper := d.helperOf(edge, v)
	if d.types[helper] == Merge {
		d.addDiagonal(v, helper)
	}
}

func (d *Decomposer) helperOf(edge EdgeRef, v VertexRef) VertexRef {
	helper, ok := d.active.helper(edge)
	if !ok {
		// The edge was never made active, so the sweep has lost track of the
		// boundary. This happens with clockwise input.
		throw(&NoVisibleHelperError{Vertex: d.mesh.ID(v), Position: d.mesh.Position(v)})
	}
	return helper
}

func (d *Decomposer) leftEdge(v VertexRef) EdgeRef {
	edge := d.active.nearestLeftOf(d.mesh.Position(v))
	if edge == NoEdge {
		throw(&NoVisibleHelperError{Vertex: d.mesh.ID(v), Position: d.mesh.Position(v)})
	}
	return edge
}

func (d *Decomposer) addDiagonal(a, b VertexRef) {
	diagonal := Diagonal{d.mesh.ID(a), d.mesh.ID(b)}
	key := diagonal.normalized()
	if _, ok := d.recorded[key]; ok {
		return
	}
	d.recorded[key] = struct{}{}
	d.diagonals = append(d.diagonals, diagonal)
	if debugEnabled() {
		Logger().Debug("diagonal", "from", diagonal.A, "to", diagonal.B)
	}
}

// Apply the recorded diagonals one at a time from a worklist. Each diagonal is
// applied to the piece that currently holds the chord, and the piece is
// replaced by its two halves.
func (d *Decomposer) applyDiagonals(mesh *Mesh) []*Mesh {
	pieces := []*Mesh{mesh}
	pending := slices.Clone(d.diagonals)
	for len(pending) > 0 {
		diagonal := pending[0]
		pending = pending[1:]

		i, a, b := hostPiece(pieces, diagonal)
		if i < 0 {
			throw(&InvalidDiagonalError{Diagonal: diagonal, Reason: "no piece holds both endpoints"})
		}
		first, second, err := pieces[i].Partition(a, b)
		if err != nil {
			throw(err)
		}
		pieces[i] = first
		pieces = append(pieces, second)
	}
	return collectPieces(pieces)
}

// Find the piece in which the diagonal is a chord. A piece qualifies when both
// endpoints are on it, they aren't adjacent, and the chord leaves each endpoint
// into the interior. If no piece passes the cone test (which can happen when
// the chord is nearly collinear with a boundary edge) the first piece holding
// both endpoints non-adjacently is used.
func hostPiece(pieces []*Mesh, diagonal Diagonal) (int, VertexRef, VertexRef) {
	fallback, fallbackA, fallbackB := -1, NoVertex, NoVertex
	for i, piece := range pieces {
		a := piece.Find(diagonal.A)
		if a == NoVertex {
			continue
		}
		b := piece.Find(diagonal.B)
		if b == NoVertex {
			continue
		}
		if piece.Successor(a) == b || piece.Successor(b) == a {
			continue
		}
		if piece.InCone(a, piece.Position(b)) && piece.InCone(b, piece.Position(a)) {
			return i, a, b
		}
		if fallback < 0 {
			fallback, fallbackA, fallbackB = i, a, b
		}
	}
	return fallback, fallbackA, fallbackB
}

// Keep a piece only if its root isn't already on a piece we kept. This guards
// against the same boundary being reported twice.
func collectPieces(pieces []*Mesh) []*Mesh {
	result := make([]*Mesh, 0, len(pieces))
	for _, piece := range pieces {
		seen := slices.ContainsFunc(result, func(kept *Mesh) bool {
			return kept.Contains(piece.Root())
		})
		if !seen {
			result = append(result, piece)
		}
	}
	return result
}
