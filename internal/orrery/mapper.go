// Package orrery scales a catalog of celestial distances onto a real-world heading.
package orrery

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"orrery-api/internal/catalog"
	"orrery-api/internal/geodesy"
	"orrery-api/internal/models"
	"orrery-api/internal/scale"
)

var (
	ErrEmptyCatalog = errors.New("orrery: catalog has no entries")
	ErrDivideByZero = errors.New("orrery: scale distance is zero")
	ErrInvalidScale = errors.New("orrery: scale factor is not finite and positive")
)

// Mapper holds the placement policy. The zero value is not usable; start from NewMapper.
type Mapper struct {
	// Anchor is the point the heading is redirected toward when the direct heading
	// between the two locations falls outside [MinHeading, MaxHeading].
	Anchor     models.GeoPoint
	MinHeading float64
	MaxHeading float64

	// MaxOffset is the exclusive ceiling, in miles, for a projected offset.
	MaxOffset float64

	// InnerBodies counts the reference body plus the bodies placed between it and the origin.
	InnerBodies int
}

// NewMapper returns a Mapper anchored near the geographic center of the contiguous United States.
func NewMapper() *Mapper {
	return &Mapper{
		Anchor:      models.GeoPoint{Latitude: 39.82, Longitude: -98.57},
		MinHeading:  60,
		MaxHeading:  120,
		MaxOffset:   10000,
		InnerBodies: 3,
	}
}

// Heading returns the bearing from loc1 to loc2, redirected toward the anchor when it runs
// too close to north-south.
func (m *Mapper) Heading(loc1, loc2 models.GeoPoint) float64 {
	head := geodesy.Bearing(loc1, loc2)
	if head < m.MinHeading || head > m.MaxHeading {
		head = geodesy.Bearing(loc1, m.Anchor)
	}
	return head
}

// Map places every catalog body along the heading from loc1. scaleAnswer is the raw text
// of the scale query answer and catalogText the raw catalog.
func (m *Mapper) Map(loc1, loc2 models.GeoPoint, scaleAnswer, catalogText string) (*models.Report, error) {
	dist := geodesy.Distance(loc1, loc2)
	head := m.Heading(loc1, loc2)

	scaleDistance, err := scale.Resolve(scaleAnswer)
	if err != nil {
		return nil, fmt.Errorf("orrery: %w", err)
	}

	bodies, err := catalog.Parse(catalogText)
	if err != nil {
		return nil, fmt.Errorf("orrery: %w", err)
	}
	if len(bodies) == 0 {
		return nil, ErrEmptyCatalog
	}

	if scaleDistance == 0 {
		return nil, ErrDivideByZero
	}
	factor := dist / scaleDistance
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, ErrInvalidScale
	}

	report := &models.Report{
		Distance:      round4(dist),
		ScaleDistance: scaleDistance,
		ScaleFactor:   factor,
		Heading:       head,
		Origin:        loc1,
		Placements:    make([]models.ScaledPlacement, 0, len(bodies)),
	}

	var sunDist float64
	for i, body := range bodies {
		scaled := body.Distance * factor
		if math.IsInf(scaled, 0) {
			return nil, fmt.Errorf("%w: %s overflows at factor %g", ErrInvalidScale, body.Name, factor)
		}
		placement := models.ScaledPlacement{
			Name:           body.Name,
			ScaledDistance: round4(scaled),
		}

		if i == 0 {
			// The reference body is reported at the origin itself, not projected.
			sunDist = scaled
			placement.OffsetDistance = scaled
			placement.Position = loc1
			report.Placements = append(report.Placements, placement)
			continue
		}

		corrected := sunDist + scaled
		if i < m.InnerBodies {
			corrected = sunDist - scaled
		}
		placement.OffsetDistance = corrected

		if m.outOfRange(corrected) {
			placement.Position = loc1
			placement.Clamped = true
		} else {
			placement.Position = geodesy.Destination(loc1, head, corrected)
		}

		report.Placements = append(report.Placements, placement)
	}

	return report, nil
}

// outOfRange reports whether a corrected offset cannot be projected and must fall back to the origin.
func (m *Mapper) outOfRange(corrected float64) bool {
	return corrected < 0 || corrected >= m.MaxOffset
}

// round4 rounds half to even at four decimals, correctly rounded from the decimal expansion.
func round4(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	return r
}
