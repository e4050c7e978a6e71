package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/osuushi/calipers/internal/pointio"
	"github.com/osuushi/calipers/render"
	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
)

// Read the input points from path, or from stdin if path is empty.
func (e env) read(path string) ([]vec.Point, error) {
	var r io.Reader = e.stdin
	name := "stdin"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
		name = path
	}

	read := pointio.ReadText
	if e.svg {
		read = pointio.ReadSVG
	}
	points, err := read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return points, nil
}

func (e env) hull(path string) error {
	points, err := e.read(path)
	if err != nil {
		return err
	}
	hull := e.config.ConvexHull(points)

	switch e.format {
	case "yaml":
		return pointio.WriteYAML(e.stdout, hullReport{
			Count: len(hull),
			Hull:  pairs(hull),
		})
	case "wkt":
		return pointio.WriteWKT(e.stdout, pointio.Geometry(hull))
	}
	return pointio.WriteText(e.stdout, hull)
}

func (e env) rect(path string) error {
	points, err := e.read(path)
	if err != nil {
		return err
	}
	rect := e.config.MinAreaRectInPlace(points, len(points))

	switch e.format {
	case "yaml":
		return pointio.WriteYAML(e.stdout, newRectReport(rect))
	case "wkt":
		corners := rect.Corners()
		return pointio.WriteWKT(e.stdout, pointio.Geometry(corners[:]))
	}
	return writeRectText(e.stdout, rect)
}

func (e env) contains(path string, x, y float64) error {
	points, err := e.read(path)
	if err != nil {
		return err
	}
	query := vec.Point{X: x, Y: y}
	hull := e.config.ConvexHull(points)
	inside := e.config.ConvexHullContains(hull, len(hull), query)

	switch e.format {
	case "yaml":
		return pointio.WriteYAML(e.stdout, containsReport{
			Query:  pair(query),
			Inside: inside,
		})
	case "wkt":
		return errors.New("wkt output is not supported for contains")
	}
	_, err = fmt.Fprintln(e.stdout, inside)
	return errors.Wrap(err, "writing result")
}

func (e env) draw(path, out string, size float64, inline, labels bool) error {
	points, err := e.read(path)
	if err != nil {
		return err
	}
	hull := e.config.ConvexHull(points)
	scratch := append([]vec.Point(nil), points...)
	rect := e.config.MinAreaRectInPlace(scratch, len(scratch))

	scene := render.Scene{
		Points: points,
		Hull:   hull,
		Rect:   &rect,
		Labels: labels,
	}
	if err := render.SavePNG(scene, drawScale(points, size), out); err != nil {
		return err
	}
	if inline {
		return render.Cat(out, e.stdout)
	}
	_, err = fmt.Fprintf(e.stdout, "wrote %s\n", out)
	return errors.Wrap(err, "writing result")
}

// Pixels per unit so that the longer side of the bounding box is size pixels.
func drawScale(points []vec.Point, size float64) float64 {
	if len(points) == 0 {
		return 1
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	extent := hi.Sub(lo).MaxElement()
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		return 1
	}
	return size / extent
}

func (e env) sample(shape string, count int, radius float64, seed uint64) error {
	if count < 0 {
		return errors.Errorf("negative count %d", count)
	}
	if radius <= 0 {
		return errors.Errorf("radius must be positive, got %g", radius)
	}

	rng := vec.NewRand(seed)
	points := make([]vec.Point, count)
	for i := range points {
		switch shape {
		case "box":
			points[i] = vec.RandomBox(rng, -radius, radius)
		case "ring":
			points[i] = vec.RandomDir(rng, radius)
		default:
			// Uniform in the disc, by rejection.
			p := vec.RandomBox(rng, -radius, radius)
			for p.LengthSq() > radius*radius {
				p = vec.RandomBox(rng, -radius, radius)
			}
			points[i] = p
		}
	}

	switch e.format {
	case "yaml":
		return pointio.WriteYAML(e.stdout, sampleReport{Points: pairs(points)})
	case "wkt":
		return pointio.WriteWKT(e.stdout, pointio.MultiPoint(points))
	}
	return pointio.WriteText(e.stdout, points)
}
