package advanced

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/calipers/dbg"
	"github.com/osuushi/calipers/vec"
)

// Tracing is for debugging only. Everything here is a no-op unless
// Config.Trace is set, and callers must not compute anything expensive for a
// trace line without checking enabled() first.

type tracer struct {
	w io.Writer
}

func (c Config) tracer() tracer {
	return tracer{c.Trace}
}

func (t tracer) enabled() bool {
	return t.w != nil
}

func (t tracer) printf(format string, args ...interface{}) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, format+"\n", args...)
}

// Colored, readable name for a point, so the same point is easy to follow
// through a trace.
func pointName(p vec.Point) string {
	return fmt.Sprintf("%s %s", aurora.Cyan(dbg.Name(p)), p)
}

func (t tracer) pruned(before, after int) {
	if !t.enabled() {
		return
	}
	t.printf("%s %d of %d points inside the extreme quadrilateral", aurora.Yellow("prune"), before-after, before)
}

func (t tracer) pivot(p vec.Point) {
	if !t.enabled() {
		return
	}
	t.printf("%s %s", aurora.Magenta("pivot"), pointName(p))
}

func (t tracer) push(p vec.Point, h int) {
	if !t.enabled() {
		return
	}
	t.printf("%s %s (hull size %d)", aurora.Green("push"), pointName(p), h)
}

func (t tracer) pop(p vec.Point, turn float64) {
	if !t.enabled() {
		return
	}
	t.printf("%s %s (turn %g)", aurora.Red("pop"), pointName(p), turn)
}

func (t tracer) skip(p vec.Point) {
	if !t.enabled() {
		return
	}
	t.printf("%s %s", aurora.Faint("skip"), pointName(p))
}

func (t tracer) caliper(step, k int, support vec.Point, area float64, improved bool) {
	if !t.enabled() {
		return
	}
	label := aurora.Blue("caliper")
	if improved {
		label = aurora.Green("caliper")
	}
	t.printf("%s step %d: caliper %d advances to %s, area %g", label, step, k, pointName(support), area)
}
