package vec

import "math"

// Polar angles are measured counterclockwise from the positive X axis.

func FromPolar(theta, length float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{cos * length, sin * length}
}

// Polar returns (theta, radius). Points too close to the origin to have an
// angle give Zero.
func (p Point) Polar() Point {
	radius := p.Length()
	if radius > 1e-4 {
		return Point{math.Atan2(p.Y, p.X), radius}
	}
	return Zero
}

func (p Point) AimedAngle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleBetween returns the unsigned angle between p and q. Neither needs to be
// normalized, but neither may be zero.
func (p Point) AngleBetween(q Point) float64 {
	cos := p.Dot(q) / math.Sqrt(p.LengthSq()*q.LengthSq())
	return math.Acos(clamp(cos, -1, 1))
}

// ProjectTo projects p onto the line through the origin along direction.
func (p Point) ProjectTo(direction Point) Point {
	return direction.Mul(p.Dot(direction) / direction.LengthSq())
}

// ProjectToNorm is ProjectTo for a direction already known to be unit length.
func (p Point) ProjectToNorm(direction Point) Point {
	return direction.Mul(p.Dot(direction))
}

// Reflect mirrors p about the line with the given unit normal.
func (p Point) Reflect(normal Point) Point {
	return p.ProjectToNorm(normal).Mul(2).Sub(p)
}

// Refract bends the unit direction p as it crosses a surface with the given
// unit normal, where the normal faces back against p. Total internal
// reflection bounces p off the surface instead.
func (p Point) Refract(normal Point, negativeSideIndex, positiveSideIndex float64) Point {
	n := negativeSideIndex / positiveSideIndex
	cosI := -p.Dot(normal)
	sinT2 := n * n * (1 - cosI*cosI)
	if sinT2 > 1 {
		return p.Neg().Reflect(normal)
	}
	return p.Mul(n).Add(normal.Mul(n*cosI - math.Sqrt(1-sinT2)))
}

// Decompose splits p into parts parallel and perpendicular to a unit
// direction.
func (p Point) Decompose(direction Point) (parallel, perpendicular Point) {
	parallel = direction.Mul(p.Dot(direction))
	return parallel, p.Sub(parallel)
}

// Orthogonalize returns b with its component along a removed.
func Orthogonalize(a, b Point) Point {
	return b.Sub(a.Mul(a.Dot(b) / a.LengthSq()))
}

// Orthonormalize returns a normalized and b made perpendicular to it. b is
// not normalized.
func Orthonormalize(a, b Point) (Point, Point) {
	a, _ = a.Normalized()
	return a, b.Sub(a.Mul(a.Dot(b)))
}

func AreOrthogonal(a, b Point, epsilonSq float64) bool {
	return a.IsPerpendicular(b, epsilonSq)
}

// OrientedCCW reports whether the triangle a, b, c winds counterclockwise.
// Degenerate triangles count as counterclockwise.
func OrientedCCW(a, b, c Point) bool {
	return (a.X-c.X)*(b.Y-c.Y)-(a.Y-c.Y)*(b.X-c.X) >= 0
}
