package utils

import "math"

const earthRadiusKm = 6371.0

// ValidLatLng reports whether a latitude/longitude pair is usable for
// distance math: both finite, latitude in [-90,90], longitude in [-180,180].
func ValidLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// HaversineKm returns the great-circle distance in kilometers between two
// points given in degrees. Malformed coordinates yield ErrInvalidCoordinate
// and a zero distance; the function never returns NaN or Inf. Callers that
// accumulate distances over externally supplied data are expected to skip
// segments that error rather than abort.
func HaversineKm(lat1, lng1, lat2, lng2 float64) (float64, error) {
	if !ValidLatLng(lat1, lng1) || !ValidLatLng(lat2, lng2) {
		return 0, ErrInvalidCoordinate
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	d := earthRadiusKm * c
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrInvalidCoordinate
	}
	return d, nil
}
