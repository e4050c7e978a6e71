package advanced

import (
	"math"

	"github.com/osuushi/calipers/vec"
)

// A Rectangle is an oriented rectangle described in its own basis. V is the
// direction of the edge the rectangle was found flush against, and U is V
// rotated 90° counterclockwise. Every point q inside the rectangle satisfies
//
//	MinU <= U·q <= MaxU  and  MinV <= V·q <= MaxV
//
// Note that (U, V) is a clockwise basis, so the extents along V run the
// opposite way to what you might expect for an axis aligned box: the default
// basis has V pointing down.
type Rectangle struct {
	Area       float64
	Center     vec.Point
	U, V       vec.Point
	MinU, MaxU float64
	MinV, MaxV float64
}

// Extent along U.
func (r Rectangle) Width() float64 {
	return r.MaxU - r.MinU
}

// Extent along V.
func (r Rectangle) Height() float64 {
	return r.MaxV - r.MinV
}

func (r Rectangle) point(u, v float64) vec.Point {
	return r.U.Mul(u).Add(r.V.Mul(v))
}

// Corners returns the four corners counterclockwise.
func (r Rectangle) Corners() [4]vec.Point {
	return [4]vec.Point{
		r.point(r.MinU, r.MinV),
		r.point(r.MinU, r.MaxV),
		r.point(r.MaxU, r.MaxV),
		r.point(r.MaxU, r.MinV),
	}
}

// Contains reports whether q is inside the rectangle, growing it by epsilon on
// every side.
func (r Rectangle) Contains(q vec.Point, epsilon float64) bool {
	u := r.U.Dot(q)
	v := r.V.Dot(q)
	return u >= r.MinU-epsilon && u <= r.MaxU+epsilon &&
		v >= r.MinV-epsilon && v <= r.MaxV+epsilon
}

// MinAreaRectInPlace finds the minimum area rectangle enclosing p[:n] by
// rotating calipers. It builds the hull of p[:n] in place first, so the
// caller's ordering is lost. Uses DefaultConfig.
func MinAreaRectInPlace(p []vec.Point, n int) Rectangle {
	return DefaultConfig().MinAreaRectInPlace(p, n)
}

func (c Config) MinAreaRectInPlace(p []vec.Point, n int) Rectangle {
	if !validCount(n, len(p)) || n == 0 {
		return Rectangle{}
	}
	n = c.ConvexHullInPlace(p, n)
	// The calipers normalize every hull edge, so none may have zero length.
	// The builder already guarantees that; welding again is cheap and makes
	// the solver safe against hulls built with a looser tolerance.
	n = c.weld(p, n)
	return c.minAreaRectOfHull(p[:n])
}

// weld drops hull vertices equal to their predecessor, including the last
// vertex when it matches the first, and returns the new count.
func (c Config) weld(p []vec.Point, n int) int {
	if n < 2 {
		return n
	}
	n = compactAdjacent(p, n, c.EqualEpsilon)
	for n > 1 && p[n-1].Equals(p[0], c.EqualEpsilon) {
		n--
	}
	return n
}

// Caliper indexes. Each caliper is a supporting line of the hull, and they are
// kept at right angles to each other, in counterclockwise order.
const (
	caliperMinU = iota // starts at the leftmost point, pointing down
	caliperMinV        // starts at the lowest point, pointing right
	caliperMaxU        // starts at the rightmost point, pointing up
	caliperMaxV        // starts at the highest point, pointing left
)

// minAreaRectOfHull runs the calipers over a counterclockwise hull with no
// zero length edges.
func (c Config) minAreaRectOfHull(hull []vec.Point) Rectangle {
	n := len(hull)
	if n == 0 {
		return Rectangle{}
	}
	trace := c.tracer()

	// Support point of each caliper. These only ever advance, one hull vertex
	// at a time, and stay in [0, n).
	var support [4]int
	for i := 1; i < n; i++ {
		if hull[i].X < hull[support[caliperMinU]].X {
			support[caliperMinU] = i
		} else if hull[i].X > hull[support[caliperMaxU]].X {
			support[caliperMaxU] = i
		}
		if hull[i].Y < hull[support[caliperMinV]].Y {
			support[caliperMinV] = i
		} else if hull[i].Y > hull[support[caliperMaxV]].Y {
			support[caliperMaxV] = i
		}
	}

	// The reference direction is the direction of the first caliper. The
	// others are it rotated by multiples of 90°. The starting guess is the
	// axis aligned bounding box.
	ref := vec.Point{X: 0, Y: -1}
	best := candidateRect(hull, support, ref)
	if n == 1 {
		return best.finish()
	}

	// Direction of the hull edge leaving each support point, which is what
	// the caliper will rotate onto next.
	var edge [4]vec.Point
	for k := range support {
		edge[k] = edgeDirection(hull, support[k])
	}

	// Each step makes exactly one hull edge flush with a caliper. After n
	// steps the calipers have swept through 90°, which covers every
	// orientation a minimal rectangle can have, since one of its sides is
	// always flush with a hull edge.
	for step := 0; step < n; step++ {
		// Cosine of the angle each caliper must turn through to reach its next
		// edge. Pick the smallest turn; ties go to the lowest caliper.
		cos := [4]float64{
			ref.Dot(edge[caliperMinU]),
			ref.PerpDot(edge[caliperMinV]),
			-ref.Dot(edge[caliperMaxU]),
			-ref.PerpDot(edge[caliperMaxV]),
		}
		k := 0
		for j := 1; j < 4; j++ {
			if cos[j] > cos[k] {
				k = j
			}
		}

		// Turn every caliper so that caliper k lies along its edge.
		switch k {
		case caliperMinU:
			ref = edge[k]
		case caliperMinV:
			ref = edge[k].Rotated90CW()
		case caliperMaxU:
			ref = edge[k].Neg()
		case caliperMaxV:
			ref = edge[k].Rotated90CCW()
		}
		support[k] = CircularIndex(support[k]+1, n)
		edge[k] = edgeDirection(hull, support[k])

		candidate := candidateRect(hull, support, ref)
		improved := candidate.Area < best.Area
		if improved {
			best = candidate
		}
		trace.caliper(step, k, hull[support[k]], candidate.Area, improved)
	}
	return best.finish()
}

// candidateRect measures the rectangle with V along ref touching the four
// support points. Center is filled in by finish.
func candidateRect(hull []vec.Point, support [4]int, ref vec.Point) Rectangle {
	// ref.PerpDot(q) is the projection of q onto ref rotated 90°
	// counterclockwise, which is U.
	u0 := ref.PerpDot(hull[support[caliperMinU]])
	u1 := ref.PerpDot(hull[support[caliperMaxU]])
	v0 := ref.Dot(hull[support[caliperMinV]])
	v1 := ref.Dot(hull[support[caliperMaxV]])
	return Rectangle{
		Area: math.Abs(u1-u0) * math.Abs(v1-v0),
		V:    ref,
		MinU: math.Min(u0, u1),
		MaxU: math.Max(u0, u1),
		MinV: math.Min(v0, v1),
		MaxV: math.Max(v0, v1),
	}
}

func (r Rectangle) finish() Rectangle {
	r.U = r.V.Rotated90CCW()
	r.Center = r.point((r.MinU+r.MaxU)/2, (r.MinV+r.MaxV)/2)
	return r
}

// edgeDirection is the unit direction from hull[i] to the next hull vertex.
func edgeDirection(hull []vec.Point, i int) vec.Point {
	edge := hull[CircularIndex(i+1, len(hull))].Sub(hull[i])
	length := edge.Length()
	if !assume(length > 0, "zero length hull edge at %d: %s", i, hull[i]) {
		// Only reachable for a hull the builder did not produce. Any unit
		// vector keeps the arithmetic finite.
		return vec.UnitX
	}
	return edge.Div(length)
}
