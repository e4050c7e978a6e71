package advanced

import "github.com/osuushi/calipers/vec"

// ByPolarAngle returns a less function ordering points counterclockwise by
// their angle around pivot. No angles are computed; only the sign of the cross
// product of the two offsets from the pivot is used.
//
// Points collinear with the pivot compare equal, whatever their distance. The
// hull builder breaks those ties by distance itself.
//
// The order is only meaningful for points in the half plane above the pivot
// (or level with it and to its right), which is where the hull builder's
// pivot choice puts every other point.
func ByPolarAngle(pivot vec.Point) func(a, b vec.Point) bool {
	return func(a, b vec.Point) bool {
		return a.Sub(pivot).PerpDot(b.Sub(pivot)) > 0
	}
}
