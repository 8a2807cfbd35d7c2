package advanced

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Point is a position in the plane. Input polygons are given as ordered slices of
// points, and everything downstream refers back to them by index.
type Point = r2.Point

// Triangle holds three indices into the original input point sequence. Emitted
// triangles are always counterclockwise.
type Triangle [3]int

// Diagonal is an internal chord between two non-adjacent polygon vertices,
// identified by their input indices.
type Diagonal struct {
	A, B int
}

func (d Diagonal) normalized() Diagonal {
	if d.A > d.B {
		return Diagonal{d.B, d.A}
	}
	return d
}

func (d Diagonal) String() string {
	return fmt.Sprintf("%d-%d", d.A, d.B)
}

// VertexType is the sweep classification of a polygon vertex.
type VertexType int

const (
	Regular VertexType = iota
	Start
	End
	Split
	Merge
)

func (t VertexType) String() string {
	switch t {
	case Regular:
		return "regular"
	case Start:
		return "start"
	case End:
		return "end"
	case Split:
		return "split"
	case Merge:
		return "merge"
	}
	return fmt.Sprintf("VertexType(%d)", int(t))
}
