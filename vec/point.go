// Package vec is a small 2D vector package used by the hull and rectangle
// code. Points are values; nothing in here allocates.
package vec

import "math"

// Tolerances used by the comparison helpers when the caller has no better
// idea of the scale of their data.
const (
	// Per-component absolute tolerance for Equals.
	DefaultEpsilon = 1e-4
	// Squared-length tolerance for IsZero, IsNormalized and IsPerpendicular.
	DefaultEpsilonSq = 1e-6
)

// A Point is a two dimensional point, or a vector from the origin to it.
type Point struct {
	X float64
	Y float64
}

var (
	Zero  = Point{0, 0}
	One   = Point{1, 1}
	UnitX = Point{1, 0}
	UnitY = Point{0, 1}
	NaN   = Point{math.NaN(), math.NaN()}
	Inf   = Point{math.Inf(1), math.Inf(1)}
)

func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns a point with both components set to s.
func Splat(s float64) Point {
	return Point{s, s}
}

// At returns component i (0 for X, 1 for Y). Out of range indices give NaN.
func (p Point) At(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	return math.NaN()
}

// With returns p with component i replaced by v. Out of range indices leave p
// as it is.
func (p Point) With(i int, v float64) Point {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	}
	return p
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Div(s float64) Point {
	inv := 1 / s
	return Point{p.X * inv, p.Y * inv}
}

// MulElem and DivElem are the component-wise products.
func (p Point) MulElem(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

func (p Point) DivElem(q Point) Point {
	return Point{p.X / q.X, p.Y / q.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot is the 2D cross product p.X*q.Y - p.Y*q.X. It is positive when q is
// counterclockwise from p.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Perp is the same as Rotated90CCW.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSq())
}

func (p Point) DistanceSq(q Point) float64 {
	return p.Sub(q).LengthSq()
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// Normalized returns the unit vector in the direction of p, and the length p
// had. If p is too short to normalize reliably, the result is UnitX and the
// length is 0, so the result is always a unit vector and the caller can still
// tell that the direction is arbitrary.
func (p Point) Normalized() (Point, float64) {
	lengthSq := p.LengthSq()
	if lengthSq > DefaultEpsilonSq {
		length := math.Sqrt(lengthSq)
		return p.Mul(1 / length), length
	}
	return UnitX, 0
}

// ScaledToLength returns p rescaled to the given length, and the length p had.
// Vectors too short to have a direction come back unchanged with length 0.
func (p Point) ScaledToLength(length float64) (Point, float64) {
	lengthSq := p.LengthSq()
	if lengthSq < DefaultEpsilonSq {
		return p, 0
	}
	old := math.Sqrt(lengthSq)
	return p.Mul(length / old), old
}

func (p Point) IsNormalized(epsilonSq float64) bool {
	return math.Abs(p.LengthSq()-1) <= epsilonSq
}

func (p Point) IsZero(epsilonSq float64) bool {
	return p.LengthSq() <= epsilonSq
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) IsPerpendicular(q Point, epsilonSq float64) bool {
	dot := p.Dot(q)
	return dot*dot <= epsilonSq*p.LengthSq()*q.LengthSq()
}

// Equals compares component-wise with an absolute tolerance. This is the
// comparison all of the geometry uses.
func (p Point) Equals(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// BitEquals is exact equality of the IEEE representations, so 0 and -0 differ
// and a NaN equals itself.
func (p Point) BitEquals(q Point) bool {
	return math.Float64bits(p.X) == math.Float64bits(q.X) &&
		math.Float64bits(p.Y) == math.Float64bits(q.Y)
}

func (p Point) Rotated90CW() Point {
	return Point{p.Y, -p.X}
}

func (p Point) Rotated90CCW() Point {
	return Point{-p.Y, p.X}
}

func (p Point) Abs() Point {
	return Point{math.Abs(p.X), math.Abs(p.Y)}
}

func (p Point) Recip() Point {
	return Point{1 / p.X, 1 / p.Y}
}

// Min, Max and Clamp work per component.
func (p Point) Min(floor Point) Point {
	return Point{math.Min(p.X, floor.X), math.Min(p.Y, floor.Y)}
}

func (p Point) Max(ceil Point) Point {
	return Point{math.Max(p.X, ceil.X), math.Max(p.Y, ceil.Y)}
}

func (p Point) MinScalar(floor float64) Point {
	return p.Min(Splat(floor))
}

func (p Point) MaxScalar(ceil float64) Point {
	return p.Max(Splat(ceil))
}

func (p Point) Clamp(floor, ceil Point) Point {
	return Point{clamp(p.X, floor.X, ceil.X), clamp(p.Y, floor.Y, ceil.Y)}
}

func (p Point) ClampScalar(floor, ceil float64) Point {
	return p.Clamp(Splat(floor), Splat(ceil))
}

func (p Point) Clamp01() Point {
	return p.ClampScalar(0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p Point) SumOfElements() float64     { return p.X + p.Y }
func (p Point) ProductOfElements() float64 { return p.X * p.Y }
func (p Point) AverageOfElements() float64 { return (p.X + p.Y) / 2 }
func (p Point) MinElement() float64        { return math.Min(p.X, p.Y) }
func (p Point) MaxElement() float64        { return math.Max(p.X, p.Y) }

func (p Point) MinElementIndex() int {
	if p.X <= p.Y {
		return 0
	}
	return 1
}

func (p Point) MaxElementIndex() int {
	if p.X > p.Y {
		return 0
	}
	return 1
}

// Lerp interpolates linearly from p (t = 0) to q (t = 1).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Mul(1 - t).Add(q.Mul(t))
}
