package orrery

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"orrery-api/internal/catalog"
	"orrery-api/internal/geodesy"
	"orrery-api/internal/models"
	"orrery-api/internal/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nullIsland = models.GeoPoint{Latitude: 0, Longitude: 0}
	oneNorth   = models.GeoPoint{Latitude: 1, Longitude: 0}
)

// answerFor renders a scale answer that resolves to the given number of miles.
func answerFor(miles float64) string {
	km := miles / scale.KilometersToMiles
	return fmt.Sprintf("Result:\nvalue%s kilometers\n", strings.TrimSpace(fmt.Sprintf("%.17g", km)))
}

func TestMapper_Map_InnerBodies(t *testing.T) {
	m := NewMapper()
	catalogText := "\"Sun\" \"100\"\n\"Mercury\" \"40\"\n\"Venus\" \"70\""

	report, err := m.Map(nullIsland, oneNorth, answerFor(50), catalogText)
	require.NoError(t, err)

	// Due north is outside [60,120], so the heading points at the anchor instead.
	assert.InDelta(t, 310.136735131964, report.Heading, 1e-9)
	assert.Equal(t, 69.0452, report.Distance)
	assert.InDelta(t, 50, report.ScaleDistance, 1e-9)
	assert.InDelta(t, 1.3809045041779135, report.ScaleFactor, 1e-9)
	assert.Equal(t, nullIsland, report.Origin)

	require.Len(t, report.Placements, 3)

	sun := report.Placements[0]
	assert.Equal(t, "sun", sun.Name)
	assert.InDelta(t, 138.0905, sun.ScaledDistance, 1e-9)
	assert.Equal(t, nullIsland, sun.Position)
	assert.False(t, sun.Clamped)

	mercury := report.Placements[1]
	assert.Equal(t, "mercury", mercury.Name)
	assert.InDelta(t, 55.2362, mercury.ScaledDistance, 1e-9)
	assert.InDelta(t, 82.8542702506748, mercury.OffsetDistance, 1e-6)
	assert.InDelta(t, 0.7735036561017626, mercury.Position.Latitude, 1e-6)
	assert.InDelta(t, -0.9174656575588783, mercury.Position.Longitude, 1e-6)

	venus := report.Placements[2]
	assert.Equal(t, "venus", venus.Name)
	assert.InDelta(t, 41.4271351253374, venus.OffsetDistance, 1e-6)
	expected := geodesy.Destination(nullIsland, report.Heading, venus.OffsetDistance)
	assert.Equal(t, expected, venus.Position)
}

func TestMapper_Map_OuterBodies(t *testing.T) {
	m := NewMapper()
	catalogText := "\"sun\" 100\n\"mercury\" 40\n\"venus\" 70\n\"earth\" 100\n\"mars\" 150"

	report, err := m.Map(nullIsland, oneNorth, answerFor(50), catalogText)
	require.NoError(t, err)
	require.Len(t, report.Placements, 5)

	sunDist := report.Placements[0].OffsetDistance
	for _, p := range report.Placements[3:] {
		scaled := p.OffsetDistance - sunDist
		assert.InDelta(t, p.ScaledDistance, scaled, 1e-4, p.Name)
		assert.Equal(t, geodesy.Destination(nullIsland, report.Heading, p.OffsetDistance), p.Position, p.Name)
	}
}

func TestMapper_Map_KeepsHeadingInsideWindow(t *testing.T) {
	m := NewMapper()
	loc1 := models.GeoPoint{Latitude: 40, Longitude: -100}
	loc2 := models.GeoPoint{Latitude: 40, Longitude: -90}

	report, err := m.Map(loc1, loc2, answerFor(1000), "\"sun\" 1")
	require.NoError(t, err)
	assert.InDelta(t, geodesy.Bearing(loc1, loc2), report.Heading, 1e-12)
}

func TestMapper_Map_Clamp(t *testing.T) {
	// dist/scale == 1 makes every scaled distance equal its catalog value.
	loc2 := oneNorth
	miles := geodesy.Distance(nullIsland, loc2)

	tests := []struct {
		name    string
		catalog string
		clamped bool
	}{
		{name: "inner body beyond the reference body", catalog: "\"sun\" 10\n\"comet\" 20", clamped: true},
		{name: "offset just under the ceiling", catalog: "\"sun\" 5000\n\"rock\" 5000\n\"dust\" 0\n\"far\" 4999.999", clamped: false},
		{name: "offset past the ceiling", catalog: "\"sun\" 5000\n\"rock\" 5000\n\"dust\" 0\n\"far\" 6000", clamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper()
			report, err := m.Map(nullIsland, loc2, answerFor(miles), tt.catalog)
			require.NoError(t, err)

			last := report.Placements[len(report.Placements)-1]
			assert.Equal(t, tt.clamped, last.Clamped)
			if tt.clamped {
				assert.Equal(t, nullIsland, last.Position)
			} else {
				assert.NotEqual(t, nullIsland, last.Position)
			}
		})
	}
}

func TestMapper_OutOfRange(t *testing.T) {
	// The ceiling is checked directly to avoid rounding noise from the scale factor.
	m := NewMapper()

	assert.True(t, m.outOfRange(10000.0))
	assert.False(t, m.outOfRange(9999.999))
	assert.True(t, m.outOfRange(-0.001))
	assert.False(t, m.outOfRange(0))
}

func TestMapper_Map_Errors(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		catalog string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "no scale in answer",
			answer:  "no distance here",
			catalog: "\"sun\" 1",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, scale.ErrNoScaleFound)
			},
		},
		{
			name:    "zero scale distance",
			answer:  "xxxxx0 kilometers",
			catalog: "\"sun\" 1",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDivideByZero)
			},
		},
		{
			name:    "empty catalog",
			answer:  answerFor(10),
			catalog: "\n\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyCatalog)
			},
		},
		{
			name:    "malformed catalog",
			answer:  answerFor(10),
			catalog: "\"sun\" 1\nnot a record",
			check: func(t *testing.T, err error) {
				var perr *catalog.ParseError
				assert.True(t, errors.As(err, &perr))
				assert.ErrorIs(t, err, catalog.ErrMalformedLine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewMapper().Map(nullIsland, oneNorth, tt.answer, tt.catalog)
			assert.Nil(t, report)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMapper_Map_NeverEmitsNonFinitePositions(t *testing.T) {
	report, err := NewMapper().Map(nullIsland, oneNorth, answerFor(1e-300), "\"sun\" 1e300\n\"mercury\" 1")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidScale)

	report, err = NewMapper().Map(nullIsland, oneNorth, answerFor(1e-3), "\"sun\" 1e6\n\"mercury\" 1\n\"venus\" 2\n\"earth\" 3")
	require.NoError(t, err)
	for _, p := range report.Placements {
		assert.False(t, math.IsNaN(p.Position.Latitude) || math.IsInf(p.Position.Latitude, 0), p.Name)
		assert.False(t, math.IsNaN(p.Position.Longitude) || math.IsInf(p.Position.Longitude, 0), p.Name)
	}
}

func TestMapper_Map_RejectsUnusableScale(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
	}{
		{name: "nan", answer: "Result: nan kilometers", err: scale.ErrNoScaleFound},
		{name: "infinity", answer: "Result: Infinity kilometers", err: scale.ErrNoScaleFound},
		{name: "negative", answer: "Result: -50 kilometers", err: scale.ErrNoScaleFound},
		{name: "subnormal scale overflows the factor", answer: "Result: 1e-320 kilometers", err: ErrInvalidScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewMapper().Map(nullIsland, oneNorth, tt.answer, "\"sun\" 1\n\"mercury\" 1")
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRound4(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 69.04522520889567, expected: 69.0452},
		{in: 0.00005, expected: 0.0001},
		{in: 0.00015, expected: 0.0001},
		{in: 0.12345, expected: 0.1235},
		{in: 2.67125, expected: 2.6713},
		{in: 1.00005, expected: 1.0001},
		{in: -3.14159, expected: -3.1416},
		{in: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.expected, round4(tt.in))
		})
	}
}
