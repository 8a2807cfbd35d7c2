// Package render draws triangulations for inspection: SVG through svgo, PNG
// through gg, and an inline terminal preview of the PNG (iTerm only).
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const Padding = 20

// Scene is everything that can be drawn for one polygon. Pieces, diagonals and
// triangles all refer to Points by index.
type Scene struct {
	Points    []r2.Point
	Pieces    [][]int
	Diagonals [][2]int
	Triangles [][3]int
}

// Piece outline colors, cycled
var palette = []color.RGBA{
	{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff},
	{R: 0x3c, G: 0xb4, B: 0x4b, A: 0xff},
	{R: 0xff, G: 0xe1, B: 0x19, A: 0xff},
	{R: 0x43, G: 0x63, B: 0xd8, A: 0xff},
	{R: 0xf5, G: 0x82, B: 0x31, A: 0xff},
	{R: 0x91, G: 0x1e, B: 0xb4, A: 0xff},
	{R: 0x42, G: 0xd4, B: 0xf4, A: 0xff},
	{R: 0xf0, G: 0x32, B: 0xe6, A: 0xff},
}

func pieceColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

// Transform maps polygon space into image space.
type Transform func(r2.Point) r2.Point

// Fit scales and centers the bounds of points inside target, keeping the aspect
// ratio. Both rectangles have y pointing up.
func Fit(points []r2.Point, target r2.Rect) Transform {
	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()
	targetSize := target.Size()

	scale := math.Inf(1)
	if size.X > 0 {
		scale = targetSize.X / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, targetSize.Y/size.Y)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	center := bounds.Center()
	targetCenter := target.Center()
	return func(p r2.Point) r2.Point {
		return p.Sub(center).Mul(scale).Add(targetCenter)
	}
}

// Screen fits the scene into an image of the given size, flipping y so the
// origin is at the bottom left.
func (s *Scene) Screen(width, height int) Transform {
	target := r2.RectFromPoints(
		r2.Point{X: Padding, Y: Padding},
		r2.Point{X: float64(width - Padding), Y: float64(height - Padding)},
	)
	fit := Fit(s.Points, target)
	return func(p r2.Point) r2.Point {
		q := fit(p)
		return r2.Point{X: q.X, Y: float64(height) - q.Y}
	}
}

func (s *Scene) check() error {
	if len(s.Points) == 0 {
		return errors.New("nothing to draw")
	}
	for _, tri := range s.Triangles {
		for _, i := range tri {
			if i < 0 || i >= len(s.Points) {
				return errors.Errorf("triangle %v refers to a missing point", tri)
			}
		}
	}
	for _, piece := range s.Pieces {
		for _, i := range piece {
			if i < 0 || i >= len(s.Points) {
				return errors.Errorf("piece %v refers to a missing point", piece)
			}
		}
	}
	for _, d := range s.Diagonals {
		if d[0] < 0 || d[0] >= len(s.Points) || d[1] < 0 || d[1] >= len(s.Points) {
			return errors.Errorf("diagonal %v refers to a missing point", d)
		}
	}
	return nil
}

const (
	triangleStyle = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1"
	diagonalStyle = "stroke:rgb(0,0,0);stroke-width:1;stroke-dasharray:4,3"
	vertexStyle   = "fill:rgb(0,0,255)"
	labelStyle    = "font-family:monospace;font-size:10px;fill:rgb(80,80,80)"
)

// SVG writes the scene as an SVG document: triangles, then piece outlines,
// then diagonals and vertices. Vertex labels are included when labels is set.
func SVG(w io.Writer, s *Scene, width, height int, labels bool) error {
	if err := s.check(); err != nil {
		return err
	}
	screen := s.Screen(width, height)
	xy := func(i int) (int, int) {
		p := screen(s.Points[i])
		return int(math.Round(p.X)), int(math.Round(p.Y))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(250,250,250)")

	for _, tri := range s.Triangles {
		xs := make([]int, 3)
		ys := make([]int, 3)
		for j, i := range tri {
			xs[j], ys[j] = xy(i)
		}
		canvas.Polygon(xs, ys, triangleStyle)
	}

	for n, piece := range s.Pieces {
		xs := make([]int, len(piece))
		ys := make([]int, len(piece))
		for j, i := range piece {
			xs[j], ys[j] = xy(i)
		}
		c := pieceColor(n)
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:2", c.R, c.G, c.B))
	}

	for _, d := range s.Diagonals {
		x1, y1 := xy(d[0])
		x2, y2 := xy(d[1])
		canvas.Line(x1, y1, x2, y2, diagonalStyle)
	}

	for i := range s.Points {
		x, y := xy(i)
		canvas.Circle(x, y, 2, vertexStyle)
		if labels {
			canvas.Text(x+3, y-3, fmt.Sprint(i), labelStyle)
		}
	}
	canvas.End()
	return nil
}

// Context draws the scene into a new gg context.
func Context(s *Scene, width, height int) (*gg.Context, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	screen := s.Screen(width, height)
	path := func(c *gg.Context, indices []int) {
		for j, i := range indices {
			p := screen(s.Points[i])
			if j == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Triangles
	c.SetLineWidth(1)
	for _, tri := range s.Triangles {
		path(c, tri[:])
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Piece outlines
	c.SetLineWidth(3)
	for n, piece := range s.Pieces {
		path(c, piece)
		c.SetColor(pieceColor(n))
		c.Stroke()
	}

	// Diagonals
	c.SetLineWidth(1)
	c.SetDash(6, 4)
	c.SetRGB(1, 1, 1)
	for _, d := range s.Diagonals {
		a := screen(s.Points[d[0]])
		b := screen(s.Points[d[1]])
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}
	c.SetDash()

	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		q := screen(p)
		c.DrawCircle(q.X, q.Y, 2)
		c.Fill()
	}
	return c, nil
}

func PNG(w io.Writer, s *Scene, width, height int) error {
	c, err := Context(s, width, height)
	if err != nil {
		return err
	}
	return errors.WithStack(c.EncodePNG(w))
}

func SavePNG(path string, s *Scene, width, height int) error {
	c, err := Context(s, width, height)
	if err != nil {
		return err
	}
	return errors.WithStack(c.SavePNG(path))
}

// Preview prints a saved PNG inline in the terminal (iTerm only).
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
