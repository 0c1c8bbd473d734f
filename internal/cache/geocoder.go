package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"orrery-api/internal/metrics"
	"orrery-api/internal/models"

	"github.com/rs/zerolog/log"
)

const keyPrefix = "orrery:geocode:"

// Store is the key/value backend used by CachedGeocoder.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Geocoder resolves an address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.GeoPoint, error)
}

// CachedGeocoder is a read-through cache in front of another Geocoder.
// Store failures are logged and bypassed; they never fail a lookup.
type CachedGeocoder struct {
	next  Geocoder
	store Store
	ttl   time.Duration
}

// NewCachedGeocoder wraps next with a cache kept in store for ttl
func NewCachedGeocoder(next Geocoder, store Store, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{next: next, store: store, ttl: ttl}
}

// Geocode returns the cached coordinates for address, falling back to the wrapped geocoder.
func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (models.GeoPoint, error) {
	key := Key(address)

	data, err := g.store.Get(ctx, key)
	switch {
	case err == nil:
		var p models.GeoPoint
		if err := json.Unmarshal(data, &p); err == nil {
			metrics.CacheHits.WithLabelValues("geocode").Inc()
			return p, nil
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable geocode cache entry")
	case errors.Is(err, ErrMiss):
	default:
		log.Warn().Err(err).Str("key", key).Msg("Geocode cache read failed")
	}
	metrics.CacheMisses.WithLabelValues("geocode").Inc()

	p, err := g.next.Geocode(ctx, address)
	if err != nil {
		return models.GeoPoint{}, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := g.store.Set(ctx, key, data, g.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Geocode cache write failed")
		}
	}

	return p, nil
}

// Key normalizes an address into its cache key.
func Key(address string) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}
