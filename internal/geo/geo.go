// Package geo computes great-circle distances between airports.
package geo

import (
	"math"

	"github.com/pcloudair/airports/internal/domain"
)

const (
	earthRadiusMiles = 3958.8
	milesToKm        = 1.60934
)

// HaversineMiles returns the great-circle distance in miles between two
// points given in decimal degrees.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMiles * 2 * math.Asin(math.Sqrt(a))
}

// DistanceMiles returns the distance between two airports in miles.
func DistanceMiles(a, b domain.Airport) float64 {
	return HaversineMiles(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// MilesToKilometers converts miles to kilometers.
func MilesToKilometers(miles float64) float64 {
	return miles * milesToKm
}
