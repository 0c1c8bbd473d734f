package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"orrery-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (models.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.GeoPoint), args.Error(1)
}

func TestCachedGeocoder_Geocode(t *testing.T) {
	boston := models.GeoPoint{Latitude: 42.3600825, Longitude: -71.0588801}
	encoded, err := json.Marshal(boston)
	require.NoError(t, err)

	const key = "orrery:geocode:boston, ma"

	tests := []struct {
		name        string
		setup       func(store *MockStore, next *MockGeocoder)
		expected    models.GeoPoint
		expectError bool
	}{
		{
			name: "hit skips the wrapped geocoder",
			setup: func(store *MockStore, next *MockGeocoder) {
				store.On("Get", mock.Anything, key).Return(encoded, nil)
			},
			expected: boston,
		},
		{
			name: "miss fills the cache",
			setup: func(store *MockStore, next *MockGeocoder) {
				store.On("Get", mock.Anything, key).Return(nil, ErrMiss)
				next.On("Geocode", mock.Anything, "  Boston,   MA ").Return(boston, nil)
				store.On("Set", mock.Anything, key, encoded, time.Hour).Return(nil)
			},
			expected: boston,
		},
		{
			name: "store outage is bypassed",
			setup: func(store *MockStore, next *MockGeocoder) {
				store.On("Get", mock.Anything, key).Return(nil, assert.AnError)
				next.On("Geocode", mock.Anything, "  Boston,   MA ").Return(boston, nil)
				store.On("Set", mock.Anything, key, encoded, time.Hour).Return(assert.AnError)
			},
			expected: boston,
		},
		{
			name: "corrupt entry is refreshed",
			setup: func(store *MockStore, next *MockGeocoder) {
				store.On("Get", mock.Anything, key).Return([]byte("{"), nil)
				next.On("Geocode", mock.Anything, "  Boston,   MA ").Return(boston, nil)
				store.On("Set", mock.Anything, key, encoded, time.Hour).Return(nil)
			},
			expected: boston,
		},
		{
			name: "geocoder error is not cached",
			setup: func(store *MockStore, next *MockGeocoder) {
				store.On("Get", mock.Anything, key).Return(nil, ErrMiss)
				next.On("Geocode", mock.Anything, "  Boston,   MA ").Return(models.GeoPoint{}, assert.AnError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			next := new(MockGeocoder)
			tt.setup(store, next)

			g := NewCachedGeocoder(next, store, time.Hour)
			got, err := g.Geocode(context.Background(), "  Boston,   MA ")

			if tt.expectError {
				assert.Error(t, err)
				store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}

			store.AssertExpectations(t)
			next.AssertExpectations(t)
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "orrery:geocode:1600 amphitheatre pkwy", Key(" 1600  Amphitheatre\tPkwy "))
}
