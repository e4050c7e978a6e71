package advanced

import (
	"embed"
	"log"
	"math"

	"github.com/osuushi/calipers/internal/pointio"
	"github.com/osuushi/calipers/vec"
)

// Fixtures are SVG files in the fixtures/ directory, loaded by name sans
// extension. Every polygon vertex and circle center in the file is a point. If
// anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []vec.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := pointio.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

var fixtureNames = []string{"ring", "grid", "blob"}

// Some ad hoc fixtures

func unitSquareWithCenter() []vec.Point {
	return []vec.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
}

// Corners of a 2x2 square with the midpoint of each side.
func squareWithMidpoints() []vec.Point {
	return []vec.Point{{1, 0}, {2, 1}, {0, 0}, {2, 0}, {1, 2}, {2, 2}, {0, 2}, {0, 1}}
}

// Points evenly spaced around a circle, followed by a few points well inside
// it.
func ringWithInterior(count int, radius float64) []vec.Point {
	var points []vec.Point
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points = append(points, vec.FromPolar(angle, radius))
	}
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, vec.FromPolar(angle, radius*float64(i)/20))
	}
	return points
}

func randomCloud(seed uint64, count int) []vec.Point {
	rng := vec.NewRand(seed)
	points := make([]vec.Point, count)
	for i := range points {
		points[i] = vec.RandomBox(rng, -100, 100)
	}
	return points
}

// Random points on a circle, with some of them duplicated. Nearly every point
// is a hull vertex.
func randomRing(seed uint64, count int) []vec.Point {
	rng := vec.NewRand(seed)
	points := make([]vec.Point, 0, count)
	for len(points) < count {
		p := vec.RandomDir(rng, 50)
		points = append(points, p)
		if len(points)%7 == 0 {
			points = append(points, p)
		}
	}
	return points[:count]
}

func clone(points []vec.Point) []vec.Point {
	result := make([]vec.Point, len(points))
	copy(result, points)
	return result
}
