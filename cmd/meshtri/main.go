// Command meshtri triangulates a polygon read from a file or stdin.
//
// Input is newline separated points in the form "x y", a YAML or JSON document
// with a points list, or the first <polygon> of an SVG file. Triangles are
// written to stdout as indices into the input points. The decomposition can
// also be drawn to SVG or PNG for inspection.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mitchellh/go-homedir"
	"github.com/osuushi/meshtri"
	"github.com/osuushi/meshtri/internal/polyio"
	"github.com/osuushi/meshtri/internal/render"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input        string
	format       string
	outputFormat string
	svgPath      string
	pngPath      string
	width        int
	height       int
	labels       bool
	preview      bool
	epsilon      float64
	noFixWinding bool
	profile      string
	verbose      bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("meshtri", "Triangulate a simple polygon.")
	app.Arg("input", "Polygon file, or - for stdin.").Default("-").StringVar(&cfg.input)
	app.Flag("format", "Input format. Guessed from the file extension when omitted.").
		Short('f').EnumVar(&cfg.format, "text", "yaml", "json", "svg")
	app.Flag("output-format", "Format for the triangles written to stdout.").
		Short('o').Default("text").EnumVar(&cfg.outputFormat, "text", "yaml", "json", "none")
	app.Flag("svg", "Draw the result to an SVG file.").StringVar(&cfg.svgPath)
	app.Flag("png", "Draw the result to a PNG file.").StringVar(&cfg.pngPath)
	app.Flag("width", "Drawing width in pixels.").Default("800").IntVar(&cfg.width)
	app.Flag("height", "Drawing height in pixels.").Default("800").IntVar(&cfg.height)
	app.Flag("labels", "Label vertices with their index in SVG drawings.").BoolVar(&cfg.labels)
	app.Flag("preview", "Show the PNG drawing inline (iTerm only).").BoolVar(&cfg.preview)
	app.Flag("epsilon", "Tie threshold for the sweep line.").Float64Var(&cfg.epsilon)
	app.Flag("no-fix-winding", "Reject clockwise input instead of reversing it.").BoolVar(&cfg.noFixWinding)
	app.Flag("profile", "Write a CPU profile to this directory.").StringVar(&cfg.profile)
	app.Flag("verbose", "Log the sweep to stderr.").Short('v').BoolVar(&cfg.verbose)
	return app
}

func main() {
	cfg := &config{}
	app := newApp(cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

func run(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.profile != "" {
		dir, err := homedir.Expand(cfg.profile)
		if err != nil {
			return errors.Wrap(err, "profile path")
		}
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	}

	if cfg.verbose {
		meshtri.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer meshtri.SetLogger(nil)
	}

	points, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	var opts []meshtri.Option
	if !cfg.noFixWinding {
		opts = append(opts, meshtri.WithWindingCorrection())
	}
	if cfg.epsilon > 0 {
		opts = append(opts, meshtri.WithEpsilon(cfg.epsilon))
	}

	decomposition, err := meshtri.Decompose(points, opts...)
	if err != nil {
		return errors.Wrap(err, "decomposing")
	}
	triangles, err := decomposition.Triangulate()
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}

	fmt.Fprintf(stderr, "%d vertices, %d pieces, %d diagonals, %d triangles\n",
		aurora.Bold(len(points)),
		aurora.Bold(len(decomposition.Pieces)),
		aurora.Bold(len(decomposition.Diagonals)),
		aurora.Bold(len(triangles)),
	)
	if cfg.verbose {
		for i, mesh := range decomposition.Meshes() {
			fmt.Fprintf(stderr, "  %s %v\n", mesh.DbgName(), decomposition.Pieces[i])
		}
	}

	scene := newScene(decomposition, triangles)
	if cfg.outputFormat != "none" {
		if err := polyio.Write(stdout, polyio.Format(cfg.outputFormat), points, scene.Triangles); err != nil {
			return err
		}
	}
	return draw(cfg, scene, stderr)
}

func readInput(cfg *config, stdin io.Reader) ([]meshtri.Point, error) {
	format := polyio.Format(cfg.format)
	if cfg.input == "-" {
		if format == "" {
			format = polyio.Text
		}
		return polyio.Read(stdin, format)
	}

	path, err := homedir.Expand(cfg.input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if format == "" {
		format = polyio.FormatFromPath(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()
	points, err := polyio.Read(file, format)
	return points, errors.Wrapf(err, "reading %s", path)
}

func newScene(d *meshtri.Decomposition, triangles []meshtri.Triangle) *render.Scene {
	scene := &render.Scene{Points: d.Points, Pieces: d.Pieces}
	for _, diagonal := range d.Diagonals {
		scene.Diagonals = append(scene.Diagonals, [2]int{diagonal.A, diagonal.B})
	}
	for _, tri := range triangles {
		scene.Triangles = append(scene.Triangles, [3]int(tri))
	}
	return scene
}

func draw(cfg *config, scene *render.Scene, stderr io.Writer) error {
	if cfg.svgPath != "" {
		path, err := homedir.Expand(cfg.svgPath)
		if err != nil {
			return errors.WithStack(err)
		}
		file, err := os.Create(path)
		if err != nil {
			return errors.WithStack(err)
		}
		defer file.Close()
		if err := render.SVG(file, scene, cfg.width, cfg.height, cfg.labels); err != nil {
			return err
		}
		fmt.Fprintln(stderr, "Wrote", aurora.Cyan(path))
	}

	if cfg.pngPath != "" {
		path, err := homedir.Expand(cfg.pngPath)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := render.SavePNG(path, scene, cfg.width, cfg.height); err != nil {
			return err
		}
		fmt.Fprintln(stderr, "Wrote", aurora.Cyan(path))
		if cfg.preview {
			render.Preview(path, stderr)
		}
	} else if cfg.preview {
		return errors.New("--preview needs --png")
	}
	return nil
}
