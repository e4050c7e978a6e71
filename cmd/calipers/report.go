package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/osuushi/calipers/advanced"
	"github.com/osuushi/calipers/internal/pointio"
	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
)

// YAML documents for each command.

type hullReport struct {
	Count int         `yaml:"count"`
	Hull  [][]float64 `yaml:"hull,flow"`
}

type rectReport struct {
	Area   float64   `yaml:"area"`
	Center []float64 `yaml:"center,flow"`
	U      []float64 `yaml:"u,flow"`
	V      []float64 `yaml:"v,flow"`
	MinU   float64   `yaml:"min_u"`
	MaxU   float64   `yaml:"max_u"`
	MinV   float64   `yaml:"min_v"`
	MaxV   float64   `yaml:"max_v"`

	// Counterclockwise
	Corners [][]float64 `yaml:"corners,flow"`
}

type containsReport struct {
	Query  []float64 `yaml:"query,flow"`
	Inside bool      `yaml:"inside"`
}

type sampleReport struct {
	Points [][]float64 `yaml:"points,flow"`
}

func newRectReport(rect advanced.Rectangle) rectReport {
	corners := rect.Corners()
	return rectReport{
		Area:    rect.Area,
		Center:  pair(rect.Center),
		U:       pair(rect.U),
		V:       pair(rect.V),
		MinU:    rect.MinU,
		MaxU:    rect.MaxU,
		MinV:    rect.MinV,
		MaxV:    rect.MaxV,
		Corners: pairs(corners[:]),
	}
}

func pair(p vec.Point) []float64 {
	return []float64{p.X, p.Y}
}

func pairs(points []vec.Point) [][]float64 {
	result := make([][]float64, len(points))
	for i, p := range points {
		result[i] = pair(p)
	}
	return result
}

func writeRectText(w io.Writer, rect advanced.Rectangle) error {
	f := pointio.FormatFloat
	lines := [][]string{
		{"area", f(rect.Area)},
		{"center", f(rect.Center.X), f(rect.Center.Y)},
		{"u", f(rect.U.X), f(rect.U.Y)},
		{"v", f(rect.V.X), f(rect.V.Y)},
		{"u-range", f(rect.MinU), f(rect.MaxU)},
		{"v-range", f(rect.MinV), f(rect.MaxV)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.Join(line, " ")); err != nil {
			return errors.Wrap(err, "writing rectangle")
		}
	}
	return nil
}
