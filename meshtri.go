// Planar polygon triangulation for mesh generation.
//
// This package takes the boundary of a simple polygon, such as a sampled curve
// outline, and converts it into triangles containing only the original points.
// The polygon is split into y-monotone pieces with a sweep line, and each piece
// is then triangulated with a stack walk down its two chains.
package meshtri

import (
	"context"
	"log/slog"
	"slices"

	"github.com/osuushi/meshtri/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Diagonal = advanced.Diagonal

type DegenerateInputError = advanced.DegenerateInputError
type InvalidDiagonalError = advanced.InvalidDiagonalError
type NoVisibleHelperError = advanced.NoVisibleHelperError
type DegenerateMonotonePieceError = advanced.DegenerateMonotonePieceError

type Options struct {
	// Tie threshold used when ordering edges along the sweep line
	Epsilon float64
	// Accept clockwise input by reversing it internally
	WindingCorrection bool
}

type Option func(*Options)

func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("WithEpsilon: eps must be positive")
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithWindingCorrection makes clockwise input acceptable. The polygon is
// reversed before triangulation, and every index in the result still refers to
// the caller's original order.
func WithWindingCorrection() Option {
	return func(o *Options) {
		o.WindingCorrection = true
	}
}

// SetLogger configures debug logging for the whole pipeline. Pass nil to
// silence it again.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

// Triangulate converts a simple polygon into triangles.
//
// Points must be given counterclockwise (unless WithWindingCorrection is
// used), without repeating the first point at the end. Each triangle holds
// three indices into points, and is counterclockwise. A polygon with n points
// always produces n-2 triangles.
func Triangulate(points []Point, opts ...Option) ([]Triangle, error) {
	return TriangulateContext(context.Background(), points, opts...)
}

// TriangulateContext is Triangulate with cancellation. The context is checked
// between stages, not inside the sweep.
func TriangulateContext(ctx context.Context, points []Point, opts ...Option) ([]Triangle, error) {
	decomposition, err := decompose(ctx, points, opts...)
	if err != nil {
		return nil, err
	}
	return decomposition.triangulate(ctx)
}

// Decomposition is the intermediate result of the pipeline: the monotone
// pieces, and the diagonals that cut them apart.
type Decomposition struct {
	Points []Point
	// Each piece is a counterclockwise cycle of indices into Points
	Pieces    [][]int
	// Smaller index first
	Diagonals []Diagonal

	meshes []*advanced.Mesh
	// Maps internal indices back to the caller's
	index func(int) int
}

// Decompose splits a simple polygon into y-monotone pieces without
// triangulating them.
func Decompose(points []Point, opts ...Option) (*Decomposition, error) {
	return decompose(context.Background(), points, opts...)
}

func decompose(ctx context.Context, points []Point, opts ...Option) (*Decomposition, error) {
	options := Options{Epsilon: advanced.DefaultEpsilon}
	for _, set := range opts {
		set(&options)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	d := &Decomposition{Points: points, index: func(i int) int { return i }}
	working := points
	if options.WindingCorrection && advanced.IsCW(points) {
		n := len(points)
		working = make([]Point, n)
		for i, p := range points {
			working[n-1-i] = p
		}
		d.index = func(i int) int { return n - 1 - i }
	}

	mesh, err := advanced.NewMesh(working)
	if err != nil {
		return nil, err
	}
	decomposer := advanced.NewDecomposer()
	decomposer.Epsilon = options.Epsilon
	d.meshes, err = decomposer.Decompose(mesh)
	if err != nil {
		return nil, err
	}

	for _, piece := range d.meshes {
		ids := piece.IDs()
		for i, id := range ids {
			ids[i] = d.index(id)
		}
		d.Pieces = append(d.Pieces, ids)
	}
	for _, diagonal := range decomposer.Diagonals() {
		a, b := d.index(diagonal.A), d.index(diagonal.B)
		d.Diagonals = append(d.Diagonals, Diagonal{A: min(a, b), B: max(a, b)})
	}
	return d, nil
}

// Meshes returns the pieces as half-edge meshes. Their vertex ids are internal
// and differ from Pieces when the winding was corrected.
func (d *Decomposition) Meshes() []*advanced.Mesh {
	return slices.Clone(d.meshes)
}

// Triangulate the pieces of the decomposition.
func (d *Decomposition) Triangulate() ([]Triangle, error) {
	return d.triangulate(context.Background())
}

func (d *Decomposition) triangulate(ctx context.Context) ([]Triangle, error) {
	triangles := make([]Triangle, 0, len(d.Points)-2)
	for _, piece := range d.meshes {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}
		pieceTriangles, err := advanced.TriangulateMonotone(piece)
		if err != nil {
			return nil, err
		}
		for _, tri := range pieceTriangles {
			triangles = append(triangles, Triangle{d.index(tri[0]), d.index(tri[1]), d.index(tri[2])})
		}
	}

	advanced.Logger().Debug("triangulated",
		"points", len(d.Points),
		"pieces", len(d.meshes),
		"triangles", len(triangles),
	)
	return triangles, nil
}
