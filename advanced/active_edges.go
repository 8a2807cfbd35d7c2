package advanced

import (
	"math"
	"slices"
)

// DefaultEpsilon is the distance below which two active edges are considered to
// cross the sweep line at the same x, and are ordered by direction instead.
const DefaultEpsilon = 1e-4

// Departure angles closer than this are treated as the same direction.
const angleEpsilon = 1e-3

// activeEdges is the set of left-boundary edges crossed by the sweep line,
// ordered left to right by where they cross it. Each edge carries a helper
// vertex.
//
// The ordering depends on the sweep position, so the comparator is only
// consistent for one position at a time. Every time the sweep advances, the set
// is re-keyed at the new position before anything is inserted.
type activeEdges struct {
	arena   *Arena
	epsilon float64
	sweep   Point
	edges   []EdgeRef
	helpers map[EdgeRef]VertexRef
}

func newActiveEdges(arena *Arena, epsilon float64) *activeEdges {
	return &activeEdges{
		arena:   arena,
		epsilon: epsilon,
		edges:   make([]EdgeRef, 0, 16),
		helpers: make(map[EdgeRef]VertexRef),
	}
}

// Move the sweep line to p and re-sort at the new position.
func (s *activeEdges) advance(p Point) {
	s.sweep = p
	slices.SortStableFunc(s.edges, s.compare)
}

// Where the edge crosses the sweep line. Horizontal edges have no single
// crossing, so the sweep x is clamped into their span.
func (s *activeEdges) xAt(e EdgeRef) float64 {
	a := s.arena.Position(s.arena.Start(e))
	b := s.arena.Position(s.arena.End(e))
	if a.Y == b.Y {
		return math.Max(math.Min(a.X, b.X), math.Min(s.sweep.X, math.Max(a.X, b.X)))
	}
	t := (s.sweep.Y - a.Y) / (b.Y - a.Y)
	return a.X + (b.X-a.X)*t
}

// Order two edges left to right at the current sweep position. Edges crossing
// at (nearly) the same point are ordered by direction: both run downwards, so
// the one with the smaller angle heads further left.
func (s *activeEdges) compare(e1, e2 EdgeRef) int {
	if e1 == e2 {
		return 0
	}
	x1 := s.xAt(e1)
	x2 := s.xAt(e2)
	if math.Abs(x1-x2) < s.epsilon {
		th1 := s.angle(e1)
		th2 := s.angle(e2)
		if math.Abs(th1-th2) < angleEpsilon {
			return 0
		}
		if th1 < th2 {
			return -1
		}
		return 1
	}
	if x1 < x2 {
		return -1
	}
	return 1
}

func (s *activeEdges) angle(e EdgeRef) float64 {
	return departureAngle(s.arena.Position(s.arena.Start(e)), s.arena.Position(s.arena.End(e)))
}

func (s *activeEdges) insert(e EdgeRef, helper VertexRef) {
	i, _ := slices.BinarySearchFunc(s.edges, e, s.compare)
	s.edges = slices.Insert(s.edges, i, e)
	s.helpers[e] = helper
}

func (s *activeEdges) remove(e EdgeRef) {
	if i := slices.Index(s.edges, e); i >= 0 {
		s.edges = slices.Delete(s.edges, i, i+1)
	}
	delete(s.helpers, e)
}

func (s *activeEdges) contains(e EdgeRef) bool {
	_, ok := s.helpers[e]
	return ok
}

func (s *activeEdges) helper(e EdgeRef) (VertexRef, bool) {
	v, ok := s.helpers[e]
	return v, ok
}

func (s *activeEdges) setHelper(e EdgeRef, v VertexRef) {
	s.helpers[e] = v
}

// nearestLeftOf scans from the right end of the set and returns the first edge
// that p is not left of, which is the closest active edge strictly to the left
// of p. This is linear in the size of the set.
func (s *activeEdges) nearestLeftOf(p Point) EdgeRef {
	for i := len(s.edges) - 1; i >= 0; i-- {
		if !s.arena.IsLeftOfEdge(p, s.edges[i]) {
			return s.edges[i]
		}
	}
	return NoEdge
}

func (s *activeEdges) len() int {
	return len(s.edges)
}
