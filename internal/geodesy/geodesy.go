// Package geodesy implements great-circle math on a spherical Earth.
package geodesy

import (
	"math"

	"orrery-api/internal/models"
)

// EarthRadiusMiles is the sphere radius used by every function in this package.
const EarthRadiusMiles = 3956.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Distance returns the haversine great-circle distance between p1 and p2 in miles.
func Distance(p1, p2 models.GeoPoint) float64 {
	lat1, lat2 := toRadians(p1.Latitude), toRadians(p2.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(p2.Longitude - p1.Longitude)

	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))
	return EarthRadiusMiles * c
}

// Bearing returns the initial compass bearing from p1 toward p2, normalized to [0,360).
func Bearing(p1, p2 models.GeoPoint) float64 {
	lat1, lat2 := toRadians(p1.Latitude), toRadians(p2.Latitude)
	dLon := toRadians(p2.Longitude - p1.Longitude)

	theta := math.Atan2(
		math.Sin(dLon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon),
	)
	return normalize(toDegrees(theta))
}

// normalize folds an atan2 result in degrees into [0,360).
func normalize(deg float64) float64 {
	return math.Mod(deg+360, 360)
}

// Destination projects dist miles from origin along bearing (degrees).
func Destination(origin models.GeoPoint, bearing, dist float64) models.GeoPoint {
	if dist == 0 {
		return origin
	}

	delta := dist / EarthRadiusMiles
	theta := toRadians(bearing)
	lat := toRadians(origin.Latitude)
	lon := toRadians(origin.Longitude)

	destLat := math.Asin(math.Sin(lat)*math.Cos(delta) + math.Cos(lat)*math.Sin(delta)*math.Cos(theta))
	destLon := lon + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat),
		math.Cos(delta)-math.Sin(lat)*math.Sin(destLat),
	)

	return models.GeoPoint{
		Latitude:  toDegrees(destLat),
		Longitude: toDegrees(destLon),
	}
}
