// Package geo holds the great-circle math behind check-in admission.
package geo

import (
	"math"
	"strconv"
)

const (
	EarthRadiusKm = 6371.0

	// FarThresholdKm is the fixed distance above which a check-in is flagged as far
	// from the client. It is not configurable per client.
	FarThresholdKm = 0.5
)

// Distance returns the haversine distance in kilometers between two points given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// IsFar reports whether km exceeds FarThresholdKm. Exactly 0.5 km is not far.
func IsFar(km float64) bool {
	return km > FarThresholdKm
}

// FormatKm renders km with two decimals for display.
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 2, 64)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ValidLatitude(v float64) bool {
	return !math.IsNaN(v) && v >= -90 && v <= 90
}

func ValidLongitude(v float64) bool {
	return !math.IsNaN(v) && v >= -180 && v <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
