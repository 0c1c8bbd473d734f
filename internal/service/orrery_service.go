package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orrery-api/internal/metrics"
	"orrery-api/internal/models"
	"orrery-api/internal/orrery"

	"github.com/rs/zerolog/log"
)

// ErrInvalidInput is returned when a required request value is missing.
var ErrInvalidInput = errors.New("service: invalid input")

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.GeoPoint, error)
}

// ScaleAnswerer returns the free-text answer to a scale query
type ScaleAnswerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// CatalogSource returns the raw body catalog
type CatalogSource interface {
	Catalog(ctx context.Context) (string, error)
}

// OrreryService resolves the mapper's inputs from its collaborators and runs the mapping
type OrreryService struct {
	geocoder Geocoder
	answers  ScaleAnswerer
	catalog  CatalogSource
	mapper   *orrery.Mapper
}

// NewOrreryService creates a new orrery service
func NewOrreryService(geocoder Geocoder, answers ScaleAnswerer, catalog CatalogSource, mapper *orrery.Mapper) *OrreryService {
	return &OrreryService{
		geocoder: geocoder,
		answers:  answers,
		catalog:  catalog,
		mapper:   mapper,
	}
}

// Build geocodes both addresses, resolves the scale query and catalog, and maps the catalog
// between the two locations. Nothing is returned unless every step succeeds.
func (s *OrreryService) Build(ctx context.Context, addr1, addr2, scaleQuery string) (*models.Report, error) {
	report, err := s.build(ctx, addr1, addr2, scaleQuery)
	if err != nil {
		metrics.MappingsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}
	metrics.MappingsTotal.WithLabelValues("ok").Inc()
	return report, nil
}

func (s *OrreryService) build(ctx context.Context, addr1, addr2, scaleQuery string) (*models.Report, error) {
	switch {
	case addr1 == "":
		return nil, fmt.Errorf("%w: addr1 cannot be empty", ErrInvalidInput)
	case addr2 == "":
		return nil, fmt.Errorf("%w: addr2 cannot be empty", ErrInvalidInput)
	case scaleQuery == "":
		return nil, fmt.Errorf("%w: scale cannot be empty", ErrInvalidInput)
	}

	loc1, err := s.geocode(ctx, addr1)
	if err != nil {
		return nil, err
	}
	loc2, err := s.geocode(ctx, addr2)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	answer, err := s.answers.Answer(ctx, scaleQuery)
	metrics.ObserveUpstream("scale", start)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve scale query: %w", err)
	}

	start = time.Now()
	catalogText, err := s.catalog.Catalog(ctx)
	metrics.ObserveUpstream("catalog", start)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}

	report, err := s.mapper.Map(loc1, loc2, answer, catalogText)
	if err != nil {
		return nil, fmt.Errorf("service: failed to map catalog: %w", err)
	}

	clamped := 0
	for _, p := range report.Placements {
		if p.Clamped {
			clamped++
		}
	}
	metrics.PlacementsClamped.Add(float64(clamped))

	log.Debug().
		Float64("distance", report.Distance).
		Float64("scale_distance", report.ScaleDistance).
		Float64("heading", report.Heading).
		Int("bodies", len(report.Placements)).
		Int("clamped", clamped).
		Msg("Catalog mapped")

	return report, nil
}

func (s *OrreryService) geocode(ctx context.Context, address string) (models.GeoPoint, error) {
	start := time.Now()
	p, err := s.geocoder.Geocode(ctx, address)
	metrics.ObserveUpstream("geocode", start)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("service: failed to geocode %q: %w", address, err)
	}
	return p, nil
}

// outcome labels a failed mapping for metrics.
func outcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
