package pointio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gopkg.in/yaml.v3"
)

// WriteText writes one "x y" line per point, in the format ReadText reads.
func WriteText(w io.Writer, points []vec.Point) error {
	for _, p := range points {
		_, err := fmt.Fprintf(w, "%s %s\n", FormatFloat(p.X), FormatFloat(p.Y))
		if err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return nil
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml")
}

// WriteWKT writes g as a single line of well known text.
func WriteWKT(w io.Writer, g geom.T) error {
	text, err := wkt.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "encoding wkt")
	}
	_, err = fmt.Fprintln(w, text)
	return errors.Wrap(err, "writing wkt")
}

// Geometry converts an open counterclockwise ring to the geometry it
// describes. Rings of three or more points become polygons, closed by
// repeating the first point. Two points are a line string, one point is a
// point, and no points is an empty geometry collection.
func Geometry(ring []vec.Point) geom.T {
	coords := Coords(ring)
	switch len(ring) {
	case 0:
		return geom.NewGeometryCollection()
	case 1:
		return geom.NewPoint(geom.XY).MustSetCoords(coords[0])
	case 2:
		return geom.NewLineString(geom.XY).MustSetCoords(coords)
	}
	closed := append(coords, coords[0])
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{closed})
}

// MultiPoint converts a point set to a geometry, keeping every point.
func MultiPoint(points []vec.Point) geom.T {
	return geom.NewMultiPoint(geom.XY).MustSetCoords(Coords(points))
}

// Coords converts points to go-geom coordinates.
func Coords(points []vec.Point) []geom.Coord {
	coords := make([]geom.Coord, len(points))
	for i, p := range points {
		coords[i] = geom.Coord{p.X, p.Y}
	}
	return coords
}

// Points converts go-geom coordinates back to points. Any dimensions past the
// second are dropped.
func Points(coords []geom.Coord) []vec.Point {
	points := make([]vec.Point, len(coords))
	for i, c := range coords {
		points[i] = vec.Point{X: c.X(), Y: c.Y()}
	}
	return points
}

// FormatFloat formats f in the shortest form that parses back exactly, with
// negative zero written as 0.
func FormatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
