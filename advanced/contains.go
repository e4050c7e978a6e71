package advanced

import "github.com/osuushi/calipers/vec"

// ConvexHullContains reports whether q is inside or on the boundary (within
// EqualEpsilon) of the convex polygon hull[:n]. The polygon must be convex and
// counterclockwise, as ConvexHullInPlace produces; the result for anything
// else is meaningless.
// Uses DefaultConfig.
func ConvexHullContains(hull []vec.Point, n int, q vec.Point) bool {
	return DefaultConfig().ConvexHullContains(hull, n, q)
}

func (c Config) ConvexHullContains(hull []vec.Point, n int, q vec.Point) bool {
	if !validCount(n, len(hull)) {
		return false
	}

	// Degenerate hulls have no inside, so membership means lying on them.
	switch n {
	case 0:
		return false
	case 1:
		return q.Equals(hull[0], c.EqualEpsilon)
	case 2:
		return onSegment(hull[0], hull[1], q, c.EqualEpsilon)
	}

	// q must be on the inner side of every edge, or within EqualEpsilon of it.
	j := n - 1
	for i := 0; i < n; i++ {
		edge := hull[i].Sub(hull[j])
		distance := edge.PerpDot(q.Sub(hull[j])) / edge.Length()
		if distance < -c.EqualEpsilon {
			// Duplicates the builder collapsed into a vertex can sit just
			// outside both of its edges.
			return c.nearVertex(hull[:n], q)
		}
		j = i
	}
	return true
}

func (c Config) nearVertex(hull []vec.Point, q vec.Point) bool {
	for _, v := range hull {
		if q.Equals(v, c.EqualEpsilon) {
			return true
		}
	}
	return false
}

// onSegment reports whether q is within epsilon of the closed segment a-b.
func onSegment(a, b, q vec.Point, epsilon float64) bool {
	if q.Equals(a, epsilon) || q.Equals(b, epsilon) {
		return true
	}
	ab := b.Sub(a)
	lengthSq := ab.LengthSq()
	if lengthSq == 0 {
		return false
	}
	t := q.Sub(a).Dot(ab) / lengthSq
	if t < 0 || t > 1 {
		return false
	}
	return a.Add(ab.Mul(t)).Equals(q, epsilon)
}
