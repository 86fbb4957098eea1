// Package geo contains the great-circle math behind tournament discovery.
package geo

import "math"

// EarthRadiusKm — средний радиус Земли для формулы гаверсинуса.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in decimal degrees, computed with the haversine formula.
// Inputs are not validated; any finite coordinates yield a finite,
// non-negative result.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}
