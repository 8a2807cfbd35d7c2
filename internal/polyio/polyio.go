// Package polyio reads polygons from the formats the command line accepts, and
// writes triangulation results back out.
package polyio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/ghodss/yaml"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
	SVG  Format = "svg"
)

var Formats = []Format{Text, YAML, JSON, SVG}

// FormatFromPath guesses the format from a file extension. Anything unknown is
// read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	case ".svg":
		return SVG
	}
	return Text
}

// Document is the YAML/JSON shape of a polygon, and of a triangulation result.
//
//	points:
//	  - [0, 0]
//	  - [1, 0]
//	  - [0, 1]
type Document struct {
	Name      string       `json:"name,omitempty"`
	Points    [][2]float64 `json:"points"`
	Triangles [][3]int     `json:"triangles,omitempty"`
}

func Read(r io.Reader, format Format) ([]r2.Point, error) {
	switch format {
	case Text:
		return readText(r)
	case YAML, JSON:
		return readDocument(r)
	case SVG:
		return readSVG(r)
	}
	return nil, errors.Errorf("unknown polygon format %q", format)
}

// Newline separated points in the form "x y". Blank lines and lines starting
// with # are skipped.
func readText(r io.Reader) ([]r2.Point, error) {
	var points []r2.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return points, nil
}

func parsePoint(parts []string) (r2.Point, error) {
	if len(parts) != 2 {
		return r2.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return r2.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return r2.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return r2.Point{X: x, Y: y}, nil
}

func readDocument(r io.Reader) ([]r2.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing polygon document")
	}
	points := make([]r2.Point, len(doc.Points))
	for i, p := range doc.Points {
		points[i] = r2.Point{X: p[0], Y: p[1]}
	}
	return points, nil
}

// The first <polygon> element in the document. SVG's y axis points down, so
// the points are flipped to put the origin at the bottom left. This keeps the
// winding the polygon appears to have on screen.
func readSVG(r io.Reader) ([]r2.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no <polygon> element found")
	}

	var points []r2.Point
	for _, pair := range strings.Fields(strings.ReplaceAll(polygons[0].Attributes["points"], ", ", ",")) {
		point, err := parsePoint(strings.Split(pair, ","))
		if err != nil {
			return nil, errors.Wrapf(err, "svg point %q", pair)
		}
		points = append(points, r2.Point{X: point.X, Y: -point.Y})
	}
	return points, nil
}

// Write a triangulation result. Text output is one triangle per line, as three
// indices into the input.
func Write(w io.Writer, format Format, points []r2.Point, triangles [][3]int) error {
	switch format {
	case Text:
		buf := bufio.NewWriter(w)
		for _, tri := range triangles {
			fmt.Fprintf(buf, "%d %d %d\n", tri[0], tri[1], tri[2])
		}
		return errors.WithStack(buf.Flush())
	case YAML, JSON:
		doc := Document{Points: make([][2]float64, len(points)), Triangles: triangles}
		for i, p := range points {
			doc.Points[i] = [2]float64{p.X, p.Y}
		}
		var (
			data []byte
			err  error
		)
		if format == YAML {
			data, err = yaml.Marshal(doc)
		} else {
			data, err = json.MarshalIndent(doc, "", "  ")
			data = append(data, '\n')
		}
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = io.Copy(w, bytes.NewReader(data))
		return errors.WithStack(err)
	}
	return errors.Errorf("cannot write format %q", format)
}
