package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for distance computation.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between
// two points given in decimal degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
