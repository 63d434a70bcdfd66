package features

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval is a closed range of feature values on the model's native scale.
// Bounds are ordered, Lo <= Hi; a zero-width interval (Lo == Hi) is legal.
type Interval struct {
	Lo float64
	Hi float64
}

// Overlap returns the length of the intersection of two intervals,
// or 0 when they do not intersect.
func (i Interval) Overlap(o Interval) float64 {
	return math.Max(0, math.Min(i.Hi, o.Hi)-math.Max(i.Lo, o.Lo))
}

// Overlaps reports whether two intervals share a range of non-zero length.
// Ranges produced by different models differ slightly due to per-model
// min-max normalization, so overlapping ranges are treated as the same
// feature value. Note a zero-width interval never overlaps anything,
// itself included.
func (i Interval) Overlaps(o Interval) bool {
	return i.Overlap(o) > 0
}

// Union returns the smallest interval covering both inputs.
func (i Interval) Union(o Interval) Interval {
	return Interval{
		Lo: math.Min(i.Lo, o.Lo),
		Hi: math.Max(i.Hi, o.Hi),
	}
}

// Width returns Hi - Lo.
func (i Interval) Width() float64 {
	return i.Hi - i.Lo
}

func (i Interval) String() string {
	return fmt.Sprintf("(%v;%v)", i.Lo, i.Hi)
}

// ParseInterval parses the report form of an interval, e.g. "(0.125;0.5)".
// Surrounding whitespace is ignored.
func ParseInterval(s string) (Interval, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ";")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: interval %q must have two bounds", ErrFormat, s)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: interval lower bound %q: %v", ErrFormat, parts[0], err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: interval upper bound %q: %v", ErrFormat, parts[1], err)
	}

	if lo > hi {
		return Interval{}, fmt.Errorf("%w: interval %q has reversed bounds", ErrFormat, s)
	}

	return Interval{Lo: lo, Hi: hi}, nil
}
