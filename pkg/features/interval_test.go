package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"partial overlap", Interval{1.0, 2.0}, Interval{1.5, 2.5}, true},
		{"containment", Interval{0.0, 10.0}, Interval{2.0, 3.0}, true},
		{"identical", Interval{1.0, 2.0}, Interval{1.0, 2.0}, true},
		{"disjoint", Interval{1.0, 2.0}, Interval{5.0, 6.0}, false},
		{"touching endpoints", Interval{1.0, 2.0}, Interval{2.0, 3.0}, false},
		{"negative range", Interval{-2.0, -1.0}, Interval{-1.5, 0.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalOverlaps_Reflexive(t *testing.T) {
	a := Interval{0.25, 0.75}
	assert.True(t, a.Overlaps(a))
}

func TestIntervalOverlaps_ZeroWidth(t *testing.T) {
	// A zero-width interval has no length to share, so the overlap
	// formula rejects it everywhere, even against itself.
	point := Interval{1.5, 1.5}

	assert.False(t, point.Overlaps(point))
	assert.False(t, point.Overlaps(Interval{1.0, 2.0}))
	assert.False(t, Interval{1.0, 2.0}.Overlaps(point))
	assert.False(t, point.Overlaps(Interval{1.5, 1.5}))
}

func TestIntervalOverlap_Length(t *testing.T) {
	assert.InDelta(t, 0.5, Interval{1.0, 2.0}.Overlap(Interval{1.5, 2.5}), 1e-12)
	assert.Zero(t, Interval{1.0, 2.0}.Overlap(Interval{3.0, 4.0}))
}

func TestIntervalUnion(t *testing.T) {
	u := Interval{1.0, 2.0}.Union(Interval{1.5, 2.5})
	assert.Equal(t, Interval{1.0, 2.5}, u)

	u = Interval{-1.0, 0.0}.Union(Interval{-3.0, -2.0})
	assert.Equal(t, Interval{-3.0, 0.0}, u)
}

func TestIntervalWidth(t *testing.T) {
	assert.InDelta(t, 1.5, Interval{1.0, 2.5}.Width(), 1e-12)
	assert.Zero(t, Interval{2.0, 2.0}.Width())
}

func TestParseInterval(t *testing.T) {
	got, err := ParseInterval("(1.0;2.5)")
	require.NoError(t, err)
	assert.Equal(t, Interval{1.0, 2.5}, got)
}

func TestParseInterval_Whitespace(t *testing.T) {
	got, err := ParseInterval("  (0.125;0.5)\n")
	require.NoError(t, err)
	assert.Equal(t, Interval{0.125, 0.5}, got)
}

func TestParseInterval_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single bound", "(1.0)"},
		{"three bounds", "(1.0;2.0;3.0)"},
		{"bad lower", "(x;2.0)"},
		{"bad upper", "(1.0;y)"},
		{"reversed bounds", "(2.0;1.0)"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInterval(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
