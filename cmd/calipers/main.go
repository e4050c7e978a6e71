// Command line front end for the calipers package. Input is a point set, one
// "x y" point per line (or an SVG file with --svg), read from FILE or stdin.
//
//	calipers hull points.txt
//	calipers rect --format yaml points.txt
//	calipers contains 1.5 2 points.txt
//	calipers draw --out hull.png --inline points.txt
//	calipers sample --count 500 | calipers hull
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/osuushi/calipers/advanced"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "calipers: error: %v\n", err)
		os.Exit(1)
	}
}

// Everything a command needs, gathered from the flags.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	config advanced.Config
	format string
	svg    bool
}

func formatDefault(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("calipers", "Convex hulls and minimum area rectangles of 2D point sets.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	format := app.Flag("format", "Output format.").Short('f').Default("text").Envar("CALIPERS_FORMAT").Enum("text", "yaml", "wkt")
	svg := app.Flag("svg", "Read input as SVG: polygon vertices and circle centers.").Envar("CALIPERS_SVG").Bool()
	trace := app.Flag("trace", "Trace every step of the algorithms to stderr.").Envar("CALIPERS_TRACE").Bool()
	profileMode := app.Flag("profile", "Write a cpu or mem profile to the current directory.").Envar("CALIPERS_PROFILE").Enum("cpu", "mem")

	equalEpsilon := app.Flag("equal-epsilon", "Points closer than this in both coordinates are duplicates.").
		Default(formatDefault(advanced.EqualEpsilon)).Envar("CALIPERS_EQUAL_EPSILON").Float64()
	turnEpsilon := app.Flag("turn-epsilon", "Points within this distance of the line through their hull neighbours are collinear.").
		Default(formatDefault(advanced.TurnEpsilon)).Envar("CALIPERS_TURN_EPSILON").Float64()
	pruneEpsilon := app.Flag("prune-epsilon", "Margin a point must clear to be pruned.").
		Default(formatDefault(advanced.PruneEpsilon)).Envar("CALIPERS_PRUNE_EPSILON").Float64()
	pruneThreshold := app.Flag("prune-threshold", "Prune inputs of at least this many points; 0 disables pruning.").
		Default(strconv.Itoa(advanced.PruneThreshold)).Envar("CALIPERS_PRUNE_THRESHOLD").Int()

	hullCmd := app.Command("hull", "Print the convex hull, counterclockwise from the lowest point.")
	hullFile := hullCmd.Arg("file", "Input file; stdin if omitted.").ExistingFile()

	rectCmd := app.Command("rect", "Print the minimum area enclosing rectangle.")
	rectFile := rectCmd.Arg("file", "Input file; stdin if omitted.").ExistingFile()

	containsCmd := app.Command("contains", "Report whether a point is inside the convex hull.")
	containsX := containsCmd.Arg("x", "X coordinate of the query point.").Required().Float64()
	containsY := containsCmd.Arg("y", "Y coordinate of the query point.").Required().Float64()
	containsFile := containsCmd.Arg("file", "Input file; stdin if omitted.").ExistingFile()

	drawCmd := app.Command("draw", "Draw the points, hull and rectangle to a PNG.")
	drawFile := drawCmd.Arg("file", "Input file; stdin if omitted.").ExistingFile()
	drawOut := drawCmd.Flag("out", "Output PNG.").Short('o').Default("calipers.png").String()
	drawSize := drawCmd.Flag("size", "Size of the longer side of the drawing, in pixels.").Default("800").Float64()
	drawInline := drawCmd.Flag("inline", "Also show the drawing in the terminal (iTerm only).").Bool()
	drawLabels := drawCmd.Flag("labels", "Label hull vertices.").Bool()

	sampleCmd := app.Command("sample", "Print random points.")
	sampleCount := sampleCmd.Flag("count", "Number of points.").Short('n').Default("100").Int()
	sampleRadius := sampleCmd.Flag("radius", "Radius of the shape.").Short('r').Default("100").Float64()
	sampleSeed := sampleCmd.Flag("seed", "Random seed.").Short('s').Default("1").Uint64()
	sampleShape := sampleCmd.Flag("shape", "Shape to sample.").Default("disc").Enum("disc", "box", "ring")

	selected, err := app.Parse(args)
	if err != nil {
		return err
	}

	if *profileMode != "" {
		mode := profile.CPUProfile
		if *profileMode == "mem" {
			mode = profile.MemProfile
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	e := env{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		config: advanced.Config{
			EqualEpsilon:   *equalEpsilon,
			TurnEpsilon:    *turnEpsilon,
			PruneEpsilon:   *pruneEpsilon,
			PruneThreshold: *pruneThreshold,
		},
		format: *format,
		svg:    *svg,
	}
	if *trace {
		e.config.Trace = stderr
	}

	switch selected {
	case hullCmd.FullCommand():
		return e.hull(*hullFile)
	case rectCmd.FullCommand():
		return e.rect(*rectFile)
	case containsCmd.FullCommand():
		return e.contains(*containsFile, *containsX, *containsY)
	case drawCmd.FullCommand():
		return e.draw(*drawFile, *drawOut, *drawSize, *drawInline, *drawLabels)
	case sampleCmd.FullCommand():
		return e.sample(*sampleShape, *sampleCount, *sampleRadius, *sampleSeed)
	}
	return nil
}
