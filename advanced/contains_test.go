package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/osuushi/calipers/vec"
	"github.com/stretchr/testify/assert"
)

func TestConvexHullContains_Triangle(t *testing.T) {
	hull := ConvexHull([]vec.Point{{0, 0}, {4, 0}, {0, 3}})
	contains := func(x, y float64) bool {
		return ConvexHullContains(hull, len(hull), vec.Point{X: x, Y: y})
	}

	assert.True(t, contains(1, 1))
	assert.False(t, contains(5, 5))

	for _, p := range hull {
		assert.True(t, contains(p.X, p.Y), "vertex %s", p)
	}
	assert.True(t, contains(2, 1.5), "on the hypotenuse")
	assert.True(t, contains(2, 0), "on the bottom edge")
	assert.True(t, contains(2, -EqualEpsilon/2), "just outside, within tolerance")
	assert.False(t, contains(2, -1e-3), "just outside")
	assert.False(t, contains(-1, 1))
	assert.False(t, contains(4, 3))
}

func TestConvexHullContains_Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.False(t, ConvexHullContains(nil, 0, vec.Zero))
	})

	t.Run("point", func(t *testing.T) {
		hull := []vec.Point{{1, 2}}
		assert.True(t, ConvexHullContains(hull, 1, vec.Point{X: 1, Y: 2}))
		assert.True(t, ConvexHullContains(hull, 1, vec.Point{X: 1.00001, Y: 2}))
		assert.False(t, ConvexHullContains(hull, 1, vec.Point{X: 1.1, Y: 2}))
	})

	t.Run("segment", func(t *testing.T) {
		hull := []vec.Point{{0, 0}, {2, 2}}
		assert.True(t, ConvexHullContains(hull, 2, vec.Point{X: 0, Y: 0}))
		assert.True(t, ConvexHullContains(hull, 2, vec.Point{X: 1, Y: 1}))
		assert.True(t, ConvexHullContains(hull, 2, vec.Point{X: 2, Y: 2}))
		assert.False(t, ConvexHullContains(hull, 2, vec.Point{X: 1, Y: 1.1}))
		assert.False(t, ConvexHullContains(hull, 2, vec.Point{X: 3, Y: 3}))
		assert.False(t, ConvexHullContains(hull, 2, vec.Point{X: -1, Y: -1}))
	})

	t.Run("count smaller than buffer", func(t *testing.T) {
		// Only the first point counts.
		hull := []vec.Point{{0, 0}, {10, 0}, {0, 10}}
		assert.False(t, ConvexHullContains(hull, 1, vec.Point{X: 1, Y: 1}))
		assert.True(t, ConvexHullContains(hull, 3, vec.Point{X: 1, Y: 1}))
	})

	t.Run("invalid count", func(t *testing.T) {
		hull := []vec.Point{{0, 0}}
		if assertionsEnabled {
			assert.Panics(t, func() { ConvexHullContains(hull, 2, vec.Zero) })
		} else {
			assert.False(t, ConvexHullContains(hull, 2, vec.Zero))
		}
	})
}

func TestConvexHullContains_Closure(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			input := randomCloud(seed, 100)
			hull := ConvexHull(input)
			for _, p := range input {
				assert.True(t, ConvexHullContains(hull, len(hull), p), "input point %s", p)
			}

			// The cloud lives in [-100, 100)², so nothing out here can be in it.
			rng := vec.NewRand(seed)
			for i := 0; i < 100; i++ {
				q := vec.RandomDir(rng, 150)
				assert.False(t, ConvexHullContains(hull, len(hull), q), "outside point %s", q)
			}
		})
	}
}

func TestOnSegment(t *testing.T) {
	a, b := vec.Point{X: 0, Y: 0}, vec.Point{X: 4, Y: 0}
	assert.True(t, onSegment(a, b, vec.Point{X: 3, Y: 0}, EqualEpsilon))
	assert.True(t, onSegment(a, b, vec.Point{X: 3, Y: 0.00001}, EqualEpsilon))
	assert.False(t, onSegment(a, b, vec.Point{X: 3, Y: 0.1}, EqualEpsilon))
	assert.False(t, onSegment(a, b, vec.Point{X: 5, Y: 0}, EqualEpsilon))

	// A zero length segment is just a point.
	assert.True(t, onSegment(a, a, a, EqualEpsilon))
	assert.False(t, onSegment(a, a, b, EqualEpsilon))
}

// crossings counts the polygon edges that a ray from q toward +x crosses.
func crossings(polygon []vec.Point, q vec.Point) int {
	count := 0
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > q.X {
			count++
		}
	}
	return count
}

func TestConvexHullContains_EvenOdd(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			hull := ConvexHull(randomCloud(seed, 50))
			rng := vec.NewRand(seed + 100)
			for i := 0; i < 200; i++ {
				q := vec.RandomBox(rng, -120, 120)
				expected := crossings(hull, q)%2 == 1
				if !expected && distanceToBoundary(hull, q) <= EqualEpsilon {
					// Boundary points count as inside here but are ambiguous
					// for the crossing rule.
					expected = true
				}
				assert.Equal(t, expected, ConvexHullContains(hull, len(hull), q), "query %s", q)
			}
		})
	}
}

func distanceToBoundary(polygon []vec.Point, q vec.Point) float64 {
	best := math.Inf(1)
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		ab := b.Sub(a)
		t := math.Max(0, math.Min(1, q.Sub(a).Dot(ab)/ab.LengthSq()))
		best = math.Min(best, a.Add(ab.Mul(t)).Distance(q))
	}
	return best
}
