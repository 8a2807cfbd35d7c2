package advanced

import (
	"embed"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point lists. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW point list. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	// Ensure that the polygon is CCW
	if IsCW(points) {
		slices.Reverse(points)
	}
	return points
}

// Some ad hoc code specified fixtures

func UnitSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// Square with a notch pushed down from the top edge. The notch vertex (index 3)
// has both neighbors above it.
func NotchedSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 2}}
}

// An "M" with two split vertices (the inner tops of the legs) and one merge
// vertex (the V between the peaks).
func LetterM() []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 2},
		{X: 2, Y: 1},
		{X: 3, Y: 2},
		{X: 3, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 2, Y: 2},
		{X: 0, Y: 4},
	}
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A star with many points, offset so no two tips share a row.
func SpikyStar(tips int) []Point {
	var points []Point
	for i := 0; i < 2*tips; i++ {
		radius := 10.0
		if i%2 == 1 {
			radius = 3
		}
		angle := 2*math.Pi*float64(i)/float64(2*tips) + 0.1
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A closed curve sampled the way a spline outline would be: a blob whose radius
// wobbles with the angle.
func SampledBlob(samples int) []Point {
	points := make([]Point, 0, samples)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		radius := 4 + math.Sin(5*angle) + 0.5*math.Cos(3*angle)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A comb whose teeth hang down from a solid bar. Every tooth gap creates a
// split vertex.
func Comb(teeth int) []Point {
	width := float64(teeth) * 2
	points := []Point{{X: 0, Y: 10}}
	for i := 0; i < teeth; i++ {
		x := float64(i) * 2
		points = append(points,
			Point{X: x + 0.1*float64(i%3), Y: 0.013 * float64(i)},
			Point{X: x + 1, Y: 0.05 + 0.007*float64(i)},
			Point{X: x + 1.5, Y: 6 + 0.1*float64(i%4) + 0.003*float64(i)},
		)
	}
	return append(points, Point{X: width, Y: 0.5}, Point{X: width, Y: 10.5})
}

// A band wound into a spiral. Each turn the band moves out by 1 and it is 0.4
// wide, so neighbouring arms never touch.
func Spiral(turns, samplesPerTurn int) []Point {
	steps := turns * samplesPerTurn
	arm := func(i int, offset float64) Point {
		angle := 2*math.Pi*float64(i)/float64(samplesPerTurn) + 0.05
		radius := 2 + angle/(2*math.Pi) + offset
		return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	points := make([]Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		points = append(points, arm(i, 0.4))
	}
	for i := steps; i >= 0; i-- {
		points = append(points, arm(i, 0))
	}
	return points
}

func reflectX(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = Point{X: -p.X, Y: p.Y}
	}
	return result
}

func reflectY(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = Point{X: p.X, Y: -p.Y}
	}
	return result
}
