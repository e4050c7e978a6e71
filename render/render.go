// Package render draws point sets with their hulls and rectangles, for
// debugging and for the draw command.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/calipers/advanced"
	"github.com/osuushi/calipers/dbg"
	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
)

// Padding in pixels around the drawing.
const Padding = 20

// Scene is everything that gets drawn. Any part may be left empty.
type Scene struct {
	Points []vec.Point
	Hull   []vec.Point
	Rect   *advanced.Rectangle
	Query  *vec.Point
	// Whether the query point is contained, which picks its color.
	QueryInside bool
	// Label hull vertices with their dbg names.
	Labels bool
}

func (s Scene) bounds() (lo, hi vec.Point) {
	lo = vec.Inf
	hi = vec.Inf.Neg()
	include := func(p vec.Point) {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	for _, p := range s.Points {
		include(p)
	}
	for _, p := range s.Hull {
		include(p)
	}
	if s.Rect != nil {
		for _, p := range s.Rect.Corners() {
			include(p)
		}
	}
	if s.Query != nil {
		include(*s.Query)
	}
	if !lo.IsFinite() || !hi.IsFinite() {
		return vec.Zero, vec.Zero
	}
	return lo, hi
}

// Draw renders the scene at scale pixels per unit, with Y pointing up.
func Draw(s Scene, scale float64) *gg.Context {
	lo, hi := s.bounds()

	width := int(scale*(hi.X-lo.X)) + Padding*2
	height := int(scale*(hi.Y-lo.Y)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(Padding, Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	if len(s.Hull) > 0 {
		drawPolygon(c, s.Hull)
		c.SetRGB(0, 0.3, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if s.Rect != nil {
		corners := s.Rect.Corners()
		drawPolygon(c, corners[:])
		c.SetRGB(1, 0, 1)
		c.Stroke()
	}

	// Dots are a fixed size on screen.
	radius := 2 / scale
	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}

	if s.Query != nil {
		if s.QueryInside {
			c.SetRGB(1, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(s.Query.X, s.Query.Y, 2*radius)
		c.Fill()
	}

	if s.Labels {
		c.SetRGB(0.8, 0.8, 0.8)
		for _, p := range s.Hull {
			label(c, p, dbg.Name(p))
		}
	}
	return c
}

func drawPolygon(c *gg.Context, points []vec.Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Text has to be drawn in device space, or it would come out upside down.
func label(c *gg.Context, p vec.Point, text string) {
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.DrawString(text, math.Round(x)+4, math.Round(y)-4)
	c.Pop()
}

// SavePNG draws the scene and writes it to path.
func SavePNG(s Scene, scale float64, path string) error {
	c := Draw(s, scale)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Cat shows a PNG inline in terminals that support it (iTerm only).
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
