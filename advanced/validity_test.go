package advanced

// This contains no actual tests. It is just a helper for checking hulls and
// rectangles.

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/osuushi/calipers/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for its input. The rules are:
// 1. Every hull point is bitwise equal to some input point.
// 2. No two hull points are equal within EqualEpsilon.
// 3. Every turn, circularly, is a left turn or collinear within TurnEpsilon,
// measured as a distance.
// 4. A hull of three or more points has positive area (so it is counterclockwise).
// 5. Every input point is contained by the hull.
func assertValidHull(t *testing.T, input, hull []vec.Point) {
	t.Helper()
	n := len(hull)

	for _, p := range hull {
		require.True(t, containsBitwise(input, p), "hull point %s is not an input point", p)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.False(t, hull[i].Equals(hull[j], EqualEpsilon), "hull points %d and %d coincide: %s", i, j, hull[i])
		}
	}

	if n >= 3 {
		for i, p := range hull {
			prev := hull[CircularIndex(i-1, n)]
			next := hull[CircularIndex(i+1, n)]
			// Signed distance of p outside the line from prev to next.
			outside := p.Sub(prev).PerpDot(next.Sub(p)) / next.Distance(prev)
			require.GreaterOrEqual(t, outside, -TurnEpsilon, "right turn at %s\n%s", p, spew.Sdump(hull))
		}
		require.Greater(t, signedArea(hull), 0.0, "hull is not counterclockwise")
	}

	for _, p := range input {
		require.True(t, ConvexHullContains(hull, n, p), "input point %s is outside the hull\n%s", p, spew.Sdump(hull))
	}
}

// Helper to check that a rectangle encloses its input. The rules are:
// 1. U and V are perpendicular unit vectors, with U = V rotated 90° CCW.
// 2. The area is nonnegative and matches the extents.
// 3. The center is the middle of the extents.
// 4. Every input point projects inside the extents.
func assertEnclosingRect(t *testing.T, input []vec.Point, rect Rectangle) {
	t.Helper()
	if len(input) == 0 {
		assert.Equal(t, Rectangle{}, rect)
		return
	}

	require.InDelta(t, 1, rect.V.Length(), 1e-9, "V is not a unit vector")
	require.True(t, rect.U.BitEquals(rect.V.Rotated90CCW()), "U is not V rotated 90°")

	require.GreaterOrEqual(t, rect.Area, 0.0)
	require.InDelta(t, rect.Width()*rect.Height(), rect.Area, 1e-9*math.Max(1, rect.Area))

	require.InDelta(t, (rect.MinU+rect.MaxU)/2, rect.U.Dot(rect.Center), 1e-9*scaleOf(input))
	require.InDelta(t, (rect.MinV+rect.MaxV)/2, rect.V.Dot(rect.Center), 1e-9*scaleOf(input))

	tolerance := 1e-9 * scaleOf(input)
	for _, p := range input {
		require.True(t, rect.Contains(p, tolerance), "input point %s is outside the rectangle\n%s", p, spew.Sdump(rect))
	}
}

// The smallest rectangle flush with some hull edge, by trying every edge.
func bruteForceMinArea(hull []vec.Point) float64 {
	n := len(hull)
	if n < 3 {
		return 0
	}
	best := math.Inf(1)
	for i := range hull {
		v, _ := hull[CircularIndex(i+1, n)].Sub(hull[i]).Normalized()
		u := v.Rotated90CCW()
		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			minU = math.Min(minU, u.Dot(p))
			maxU = math.Max(maxU, u.Dot(p))
			minV = math.Min(minV, v.Dot(p))
			maxV = math.Max(maxV, v.Dot(p))
		}
		best = math.Min(best, (maxU-minU)*(maxV-minV))
	}
	return best
}

// Asserts that b traces the same cycle as a, possibly from a different start.
func assertSameCycle(t *testing.T, a, b []vec.Point) {
	t.Helper()
	require.Len(t, b, len(a))
	if len(a) == 0 {
		return
	}
	offset := -1
	for i := range b {
		if b[i].BitEquals(a[0]) {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "%s is missing from %v", a[0], b)
	for i := range a {
		require.True(t, a[i].BitEquals(b[(i+offset)%len(b)]), "cycles differ at %d: %v vs %v", i, a, b)
	}
}

func containsBitwise(points []vec.Point, q vec.Point) bool {
	for _, p := range points {
		if p.BitEquals(q) {
			return true
		}
	}
	return false
}

func signedArea(polygon []vec.Point) float64 {
	var sum float64
	for i, p := range polygon {
		sum += p.PerpDot(polygon[CircularIndex(i+1, len(polygon))])
	}
	return sum / 2
}

// Largest coordinate magnitude, for scaling tolerances.
func scaleOf(points []vec.Point) float64 {
	scale := 1.0
	for _, p := range points {
		scale = math.Max(scale, p.Abs().MaxElement())
	}
	return scale
}

func boundingBoxArea(points []vec.Point) float64 {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	size := hi.Sub(lo)
	return size.X * size.Y
}
