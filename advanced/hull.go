package advanced

import (
	"math"
	"sort"

	"github.com/osuushi/calipers/vec"
)

// Convex hulls by Graham's scan, with the Akl-Toussaint heuristic in front of
// it for larger inputs. The running time is O(n log n).
//
// The hull is built in place. The caller's buffer is reordered so that the
// hull occupies a prefix of it, counterclockwise, starting from the lowest
// point. Hull points are always copied unmodified from the input. Points that
// are equal within EqualEpsilon are collapsed, and the middle point of a
// collinear triple is dropped when it is within TurnEpsilon of the line
// through the other two. Both tolerances are distances, so the result does not
// depend on the scale of the input beyond them.

// ConvexHullInPlace reduces p[:n] to its convex hull and returns the hull size
// h. Afterwards p[:h] is the hull; the rest of p[:n] is scratch. Uses
// DefaultConfig.
func ConvexHullInPlace(p []vec.Point, n int) int {
	return DefaultConfig().ConvexHullInPlace(p, n)
}

// ConvexHull returns the hull of points as a new slice, leaving points alone.
// Uses DefaultConfig.
func ConvexHull(points []vec.Point) []vec.Point {
	return DefaultConfig().ConvexHull(points)
}

func (c Config) ConvexHull(points []vec.Point) []vec.Point {
	hull := make([]vec.Point, len(points))
	copy(hull, points)
	h := c.ConvexHullInPlace(hull, len(hull))
	return hull[:h:h]
}

func (c Config) ConvexHullInPlace(p []vec.Point, n int) int {
	if !validCount(n, len(p)) {
		return 0
	}
	// A point or a segment is its own hull.
	if n <= 2 {
		return n
	}

	trace := c.tracer()
	if c.shouldPrune(n) {
		before := n
		n = c.prune(p, n)
		trace.pruned(before, n)
	}

	// The lowest point (leftmost among ties) is always on the hull, and every
	// other point is above it or level and to its right, so polar angles
	// around it lie in [0, π).
	lowest := 0
	for i := 1; i < n; i++ {
		if p[i].Y < p[lowest].Y || (p[i].Y == p[lowest].Y && p[i].X < p[lowest].X) {
			lowest = i
		}
	}
	p[0], p[lowest] = p[lowest], p[0]
	trace.pivot(p[0])

	// Duplicates of the pivot have no angle, which would make the sort
	// nontransitive, so they go before sorting.
	n = compactEqualTo(p, n, p[0], c.EqualEpsilon)

	// Points on the same ray out of the pivot go nearest first, which also
	// puts exact duplicates next to each other.
	pivot := p[0]
	less := ByPolarAngle(pivot)
	rest := p[1:n]
	sort.Slice(rest, func(i, j int) bool {
		if less(rest[i], rest[j]) {
			return true
		}
		if less(rest[j], rest[i]) {
			return false
		}
		return rest[i].DistanceSq(pivot) < rest[j].DistanceSq(pivot)
	})

	n = compactAdjacent(p, n, c.EqualEpsilon)
	if n <= 2 {
		return n
	}

	return c.grahamScan(p, n)
}

// prune discards points that lie strictly inside the quadrilateral spanned by
// the four extreme points, since none of them can be on the hull. It is an
// in-place partition: kept points are packed to the front, discarded points
// are swapped behind them, and the new count is returned.
func (c Config) prune(p []vec.Point, n int) int {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for i := 1; i < n; i++ {
		if p[i].X < p[minX].X {
			minX = i
		} else if p[i].X > p[maxX].X {
			maxX = i
		}
		if p[i].Y < p[minY].Y {
			minY = i
		} else if p[i].Y > p[maxY].Y {
			maxY = i
		}
	}

	// Inward normals of the quadrilateral minY -> maxX -> maxY -> minX, and
	// the offset of each edge along its normal. A point is inside when it is
	// past all four offsets.
	corners := [4]vec.Point{p[minY], p[maxX], p[maxY], p[minX]}
	var normals [4]vec.Point
	var offsets [4]float64
	for k := range corners {
		next := corners[(k+1)%4]
		normals[k] = next.Sub(corners[k]).Rotated90CCW()
		offsets[k] = normals[k].Dot(corners[k]) + c.PruneEpsilon
	}
	inside := func(q vec.Point) bool {
		for k := range normals {
			if normals[k].Dot(q) <= offsets[k] {
				return false
			}
		}
		return true
	}

	kept := 0
	for i := 0; i < n; i++ {
		if !inside(p[i]) {
			p[kept], p[i] = p[i], p[kept]
			kept++
		}
	}
	return kept
}

// compactEqualTo removes every point in p[1:n] equal to pivot, keeping the
// order of the rest, and returns the new count.
func compactEqualTo(p []vec.Point, n int, pivot vec.Point, epsilon float64) int {
	d := 0
	for i := 1; i < n; i++ {
		if !p[i].Equals(pivot, epsilon) {
			d++
			p[d] = p[i]
		}
	}
	return d + 1
}

// compactAdjacent removes each point equal to the last point kept before it,
// and returns the new count.
func compactAdjacent(p []vec.Point, n int, epsilon float64) int {
	d := 0
	for i := 1; i < n; i++ {
		if !p[i].Equals(p[d], epsilon) {
			d++
			p[d] = p[i]
		}
	}
	return d + 1
}

// grahamScan runs over points already sorted by angle around p[0], growing the
// hull in the prefix p[:h+1]. n must be at least 3.
func (c Config) grahamScan(p []vec.Point, n int) int {
	trace := c.tracer()

	// h is the index of the last point on the hull so far. The pivot and the
	// first point by angle start out on it.
	h := 1
	a := p[1].Sub(p[0])
	trace.push(p[1], 2)
	for i := 2; i < n; i++ {
		// The last hull edge a runs from p[h-1] to p[h]. Pop p[h] until
		// p[h-1] -> p[h] -> p[i] is a left turn. When p[h] is within
		// TurnEpsilon of the line from p[h-1] to p[i], keep whichever of p[h]
		// and p[i] is farther from p[h-1].
		if p[i].Equals(p[h], c.EqualEpsilon) {
			// A duplicate the compaction missed, because something sorted
			// between the two.
			trace.skip(p[i])
			continue
		}
		d := p[i].Sub(p[h-1])
		onEdge := false
		for h >= 1 {
			if c.onEdge(a, d) {
				onEdge = true
				break
			}
			if !c.shouldPop(a, d) {
				break
			}
			trace.pop(p[h], a.PerpDot(d))
			h--
			if h >= 1 {
				a = p[h].Sub(p[h-1])
				d = p[i].Sub(p[h-1])
			}
		}
		if onEdge {
			// Between p[h-1] and p[h], so never a hull vertex.
			trace.skip(p[i])
			continue
		}
		h++
		p[h] = p[i]
		a = p[h].Sub(p[h-1])
		trace.push(p[h], h+1)
	}

	// The closing edge back to the pivot gets the same treatment, for points
	// that are on the last ray only within tolerance.
	for h >= 2 {
		a = p[h].Sub(p[h-1])
		d := p[0].Sub(p[h-1])
		if !c.shouldPop(a, d) {
			break
		}
		trace.pop(p[h], a.PerpDot(d))
		h--
	}
	return h + 1
}

// shouldPop decides whether the last hull point goes, given the last hull edge
// a and the vector d from the start of that edge to the next candidate. It
// goes on any right turn. It also goes when it is within TurnEpsilon of the
// line along d, unless it is farther away than the candidate.
func (c Config) shouldPop(a, d vec.Point) bool {
	turn := a.PerpDot(d)
	if turn < 0 {
		return true
	}
	lengthSq := d.LengthSq()
	return turn < c.TurnEpsilon*math.Sqrt(lengthSq) && lengthSq >= a.LengthSq()
}

// onEdge reports whether the candidate at d lies strictly inside the edge a,
// within TurnEpsilon of its line.
func (c Config) onEdge(a, d vec.Point) bool {
	lengthSq := a.LengthSq()
	return math.Abs(a.PerpDot(d)) < c.TurnEpsilon*math.Sqrt(lengthSq) &&
		a.Dot(d) > 0 && d.LengthSq() < lengthSq
}
