package utils

import (
	"math"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EarthRadiusMeters is the mean Earth radius used for spherical distance
const EarthRadiusMeters = 6371000.0

// GeohashPrecision is the cell precision stored on location records
const GeohashPrecision = 9

// ValidPoint reports whether a point is a valid WGS-84 coordinate pair
func ValidPoint(p models.GeoPoint) bool {
	return p.Longitude >= -180 && p.Longitude <= 180 &&
		p.Latitude >= -90 && p.Latitude <= 90
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula. The arcsine input is clamped to [-1, 1]
// so near-antipodal inputs cannot overshoot into NaN.
func DistanceMeters(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	root := math.Sqrt(h)
	if root > 1 {
		root = 1
	} else if root < -1 {
		root = -1
	}

	return 2 * EarthRadiusMeters * math.Asin(root)
}

// EncodeLocation converts a point to its geohash cell string
func EncodeLocation(p models.GeoPoint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) models.GeoPoint {
	lat, lng := geohash.Decode(hash)
	return models.GeoPoint{Latitude: lat, Longitude: lng}
}
