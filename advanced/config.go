package advanced

import (
	"io"

	"github.com/osuushi/calipers/vec"
)

// Tolerances. None of these are semantic guarantees; they trade robustness
// against precision for inputs of roughly unit scale, and can be tuned per
// call through Config.
const (
	// Points closer than this in both coordinates are duplicates.
	EqualEpsilon = vec.DefaultEpsilon
	// A point within this distance of the line through its hull neighbours is
	// collinear with them, and is dropped from the hull.
	TurnEpsilon = 1e-5
	// Margin a point must clear inside the extreme quadrilateral before the
	// pruning pass discards it. This keeps the four extremes themselves from
	// being pruned by their own rounding error.
	PruneEpsilon = 1e-6
	// Inputs smaller than this skip pruning, since the extra linear pass costs
	// more than the sort it saves.
	PruneThreshold = 50
)

// Config holds the tunables for the hull builder, the rectangle solver and the
// containment test. The zero value is not useful; start from DefaultConfig.
type Config struct {
	EqualEpsilon float64
	TurnEpsilon  float64
	PruneEpsilon float64
	// Pruning runs when the input has at least this many points. Zero or less
	// disables pruning entirely.
	PruneThreshold int

	// If set, a line is written here for each step of the algorithms.
	Trace io.Writer
}

func DefaultConfig() Config {
	return Config{
		EqualEpsilon:   EqualEpsilon,
		TurnEpsilon:    TurnEpsilon,
		PruneEpsilon:   PruneEpsilon,
		PruneThreshold: PruneThreshold,
	}
}

func (c Config) shouldPrune(n int) bool {
	return c.PruneThreshold > 0 && n >= c.PruneThreshold
}
