package advanced

import "slices"

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// CompareSweep is used to simulate a slightly rotated coordinate system that
// eliminates horizontal segments. On the left chain a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain it must sit
// _below_. The decomposer uses the same convention, so its pieces always obey
// this.
//
// Note that the polygon must be counterclockwise.

// TriangulateMonotone triangulates one monotone piece, returning triangles as
// triples of input indices.
func TriangulateMonotone(piece *Mesh) (triangles []Triangle, err error) {
	err = Catch(func() {
		triangles = triangulateMonotone(piece)
	})
	if err != nil {
		return nil, err
	}
	return triangles, nil
}

func triangulateMonotone(piece *Mesh) []Triangle {
	// Each half-edge stands for the vertex it leaves
	edges := piece.Edges()
	n := len(edges)
	if n < 3 {
		throw(&DegenerateMonotonePieceError{Count: n})
	}

	position := func(e EdgeRef) Point {
		return piece.Position(piece.Start(e))
	}
	isLeft := func(e EdgeRef) bool {
		return piece.IsLeftHandSideOfPolygon(piece.Start(e))
	}

	triangles := make([]Triangle, 0, n-2)
	emit := func(a, b, c EdgeRef) {
		triangles = append(triangles, orientTriangle(piece, a, b, c))
	}

	sorted := slices.Clone(edges)
	slices.SortFunc(sorted, func(a, b EdgeRef) int {
		return CompareSweep(position(a), position(b))
	})

	// Create the stack and populate it with the first two points
	stack := make(EdgeStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	// The bottom point is left for the very end
	for i := 2; i < n-1; i++ {
		v := sorted[i]
		if isLeft(v) != isLeft(stack.Peek()) {
			// Switched to the opposite chain. Monotonicity guarantees that every
			// point on the stack is visible from v, so the whole stack is fanned
			// out.
			for stack.Len() > 1 {
				top := stack.Pop()
				emit(v, top, stack.Peek())
			}
			stack.Pop()
			stack.Push(sorted[i-1])
			stack.Push(v)
			continue
		}

		// Same chain. Always pop the last point off. If we don't create any
		// triangles this time, we'll put it back
		last := stack.Pop()
		for !stack.Empty() && isVisible(piece, v, last, stack.Peek(), isLeft(v)) {
			next := stack.Pop()
			emit(v, last, next)
			last = next
		}
		stack.Push(last)
		stack.Push(v)
	}

	// Finally, fan out the remaining stack from the bottom point. Note that if
	// we were just creating diagonals, we would stop at the last point, but we
	// need the final triangle too.
	bottom := sorted[n-1]
	last := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		emit(bottom, last, p)
		last = p
	}
	return triangles
}

// Can v see candidate across last, the point between them on the same chain?
// The triangle (v, last, candidate) has to turn the right way for its chain,
// and the diagonal has to pass the boundary scan.
func isVisible(piece *Mesh, v, last, candidate EdgeRef, left bool) bool {
	p := piece.Position(piece.Start(v))
	q := piece.Position(piece.Start(last))
	c := piece.Position(piece.Start(candidate))
	if left {
		/*
			c
			|\
			q \
			  \\ <- diagonal
			    \
			     p
		*/
		if SignedArea(p, c, q) <= 0 {
			return false
		}
	} else {
		/*
			               c
			              /|
			             / q
			            / /
			diagonal-> //
			          /
			         p
		*/
		if SignedArea(p, q, c) <= 0 {
			return false
		}
	}
	return isInnerDiagonal(piece, piece.Start(v), piece.Start(candidate))
}

// Conservative check that the segment between a and b is a diagonal of the
// piece: it is not a boundary edge, crosses no boundary edge, and there are
// boundary points on both sides of it. This is linear in the size of the piece.
func isInnerDiagonal(piece *Mesh, a, b VertexRef) bool {
	idA := piece.ID(a)
	idB := piece.ID(b)
	if piece.ID(piece.Successor(a)) == idB || piece.ID(piece.Successor(b)) == idA {
		return false
	}

	pa := piece.Position(a)
	pb := piece.Position(b)
	leftExists := false
	rightExists := false
	for e := range piece.Traverse() {
		start := piece.Start(e)
		if id := piece.ID(start); id == idA || id == idB {
			continue
		}
		if piece.SegmentIntersects(e, pa, pb) {
			return false
		}
		if IsLeftOf(piece.Position(start), pa, pb) {
			leftExists = true
		} else {
			rightExists = true
		}
	}
	return leftExists && rightExists
}

// All triangles come out counterclockwise, which is the winding required of the
// input polygon.
func orientTriangle(piece *Mesh, a, b, c EdgeRef) Triangle {
	va, vb, vc := piece.Start(a), piece.Start(b), piece.Start(c)
	if SignedArea(piece.Position(va), piece.Position(vb), piece.Position(vc)) < 0 {
		vb, vc = vc, vb
	}
	return Triangle{piece.ID(va), piece.ID(vb), piece.ID(vc)}
}
