// Package pointio reads point sets for the command line tool and the tests,
// and writes results back out in a few formats.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
)

// ReadText reads one point per line, as "x y" or "x,y". Blank lines and lines
// starting with # are skipped.
func ReadText(r io.Reader) ([]vec.Point, error) {
	var points []vec.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePair(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// ReadSVG collects the vertices of every <polygon> and <polyline>, and the
// center of every <circle>, in document order. Coordinates are taken as they
// are, without applying any transform.
func ReadSVG(r io.Reader) ([]vec.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []vec.Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon", "polyline":
			parsed, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "<%s points>", el.Name)
			}
			points = append(points, parsed...)
		case "circle":
			point, err := parseCoords(el.Attributes["cx"], el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "<circle>")
			}
			points = append(points, point)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

// Parse an SVG points attribute. Pairs are separated by whitespace, and the
// coordinates within a pair by a comma.
func parsePointList(list string) ([]vec.Point, error) {
	fields := strings.Fields(list)
	points := make([]vec.Point, 0, len(fields))
	for _, field := range fields {
		point, err := parsePair(field)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePair(s string) (vec.Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return vec.Point{}, errors.Errorf("expected two coordinates in %q", s)
	}
	return parseCoords(parts[0], parts[1])
}

func parseCoords(xString, yString string) (vec.Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return vec.Point{}, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return vec.Point{}, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return vec.Point{X: x, Y: y}, nil
}
