package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"orrery-api/internal/models"
)

// Internal structures for JSON parsing
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleGeocoder resolves addresses with the Google Maps geocoding API.
type GoogleGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGoogleGeocoder creates a geocoder for the given endpoint and API key
func NewGoogleGeocoder(client *http.Client, baseURL, apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Geocode returns the coordinates of the best match for address.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (models.GeoPoint, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	body, err := get(ctx, g.client, g.baseURL, params)
	if err != nil {
		return models.GeoPoint{}, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: failed to decode geocode response: %w", ErrUpstream, err)
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return models.GeoPoint{}, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	default:
		return models.GeoPoint{}, fmt.Errorf("%w: geocode status %s: %s", ErrUpstream, resp.Status, resp.ErrorMessage)
	}

	if len(resp.Results) == 0 {
		return models.GeoPoint{}, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}

	loc := resp.Results[0].Geometry.Location
	return models.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
