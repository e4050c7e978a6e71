package vec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// String gives a human readable form, e.g. "(1.5, -2)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

// SerializeToString gives the compact "x,y" form. Parse reads it back exactly.
func (p Point) SerializeToString() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

// SerializeToCodeString gives a Go expression for the point, which is handy
// when turning a failing input into a test case.
func (p Point) SerializeToCodeString() string {
	return fmt.Sprintf("vec.Point{X: %s, Y: %s}", formatFloat(p.X), formatFloat(p.Y))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Prefixes Parse will skip. "float2" is accepted so that dumps from older
// tools can still be read.
var parsePrefixes = []string{"vec.Point", "Point", "float2"}

// Parse reads one point from the start of s and returns it along with the
// unconsumed remainder. It accepts every format this package writes, and a
// few looser variants:
//
//	1,2   1 2   (1, 2)   {1 2}   vec.Point{X: 1, Y: 2}   float2(1,2)
//
// A single trailing comma after the point is consumed, so a list of points
// can be read by calling Parse repeatedly on the remainder.
func Parse(s string) (p Point, rest string, err error) {
	s = strings.TrimLeft(s, " \t\r\n")
	for _, prefix := range parsePrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.TrimLeft(s, " \t")

	var closer byte
	if len(s) > 0 && (s[0] == '(' || s[0] == '{') {
		if s[0] == '(' {
			closer = ')'
		} else {
			closer = '}'
		}
		s = s[1:]
	}

	if p.X, s, err = parseComponent(s, "X"); err != nil {
		return Point{}, s, err
	}
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, ",") {
		s = s[1:]
	}
	if p.Y, s, err = parseComponent(s, "Y"); err != nil {
		return Point{}, s, err
	}

	s = strings.TrimLeft(s, " \t")
	if closer != 0 {
		if len(s) == 0 || s[0] != closer {
			return Point{}, s, errors.Errorf("expected %q after point", closer)
		}
		s = s[1:]
	}
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, ",") {
		s = s[1:]
	}
	return p, s, nil
}

// MustParse is Parse for literals in tests and examples. Trailing text is an
// error.
func MustParse(s string) Point {
	p, rest, err := Parse(s)
	if err == nil && strings.TrimSpace(rest) != "" {
		err = errors.Errorf("unexpected trailing text %q", rest)
	}
	if err != nil {
		panic(errors.Wrapf(err, "vec: cannot parse %q", s))
	}
	return p
}

func parseComponent(s string, label string) (float64, string, error) {
	s = strings.TrimLeft(s, " \t")
	for _, l := range []string{label, strings.ToLower(label)} {
		if strings.HasPrefix(s, l+":") {
			s = strings.TrimLeft(s[len(l)+1:], " \t")
			break
		}
	}
	end := 0
	for end < len(s) && strings.IndexByte("+-.0123456789eEinfINFaN", s[end]) >= 0 {
		end++
	}
	if end == 0 {
		return 0, s, errors.Errorf("missing %s component", label)
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, s, errors.Wrapf(err, "invalid %s component", label)
	}
	return f, s[end:], nil
}
