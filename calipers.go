// Convex hulls and minimum area bounding rectangles for 2D point sets.
//
// This package is the checked entry point. It validates its arguments and
// returns errors, and otherwise defers to the advanced package, which has the
// same algorithms with tunable tolerances and no error handling at all.
package calipers

import (
	"github.com/osuushi/calipers/advanced"
	"github.com/osuushi/calipers/vec"
	"github.com/pkg/errors"
)

type Point = vec.Point
type Rectangle = advanced.Rectangle

// ErrInvalidCount is returned, wrapped, when a count is negative or larger
// than the buffer it counts into.
var ErrInvalidCount = errors.New("invalid count")

func checkCount(count, length int) error {
	if count < 0 || count > length {
		return errors.Wrapf(ErrInvalidCount, "count %d for a buffer of %d points", count, length)
	}
	return nil
}

// Recover an assertion failure from the advanced package into err. This only
// ever fires in builds tagged calipersdebug.
func recoverInto(err *error) {
	recoveredErr := advanced.HandlePanicRecover(recover())
	if recoveredErr != nil {
		*err = recoveredErr
	}
}

// Reduce points[:count] to its convex hull in place, and return the size of
// the hull. Afterwards, points[:h] is the hull, counterclockwise from its
// lowest point. The rest of points[:count] is left in an unspecified order.
func ComputeConvexHull(points []Point, count int) (h int, err error) {
	if err := checkCount(count, len(points)); err != nil {
		return 0, err
	}
	defer recoverInto(&err)
	return advanced.ConvexHullInPlace(points, count), nil
}

// Like ComputeConvexHull, but returns the hull as a new slice and leaves
// points alone.
func ConvexHullToList(points []Point, count int) (hull []Point, err error) {
	if err := checkCount(count, len(points)); err != nil {
		return nil, err
	}
	defer recoverInto(&err)
	return advanced.ConvexHull(points[:count]), nil
}

// Find the minimum area rectangle enclosing points[:count]. The hull is built
// in place first, so this reorders points just as ComputeConvexHull does.
func MinimumAreaRectangle(points []Point, count int) (rect Rectangle, err error) {
	if err := checkCount(count, len(points)); err != nil {
		return Rectangle{}, err
	}
	defer recoverInto(&err)
	return advanced.MinAreaRectInPlace(points, count), nil
}

// Report whether query is inside (or on the boundary of) the convex polygon
// hull[:count]. The hull must be counterclockwise, as ComputeConvexHull
// produces it.
func HullContains(hull []Point, count int, query Point) (contained bool, err error) {
	if err := checkCount(count, len(hull)); err != nil {
		return false, err
	}
	defer recoverInto(&err)
	return advanced.ConvexHullContains(hull, count, query), nil
}
