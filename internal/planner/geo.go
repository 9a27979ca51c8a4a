package planner

import "math"

const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b using the
// Haversine formula. Inputs are not range checked.
func DistanceKm(a, b Coordinate) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RouteKm sums the leg distances of points in the given order.
func RouteKm(points []PointOfInterest) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1].Location, points[i].Location)
	}
	return total
}

// Centroid is the arithmetic mean coordinate of points. Zero value for no points.
func Centroid(points []PointOfInterest) Coordinate {
	if len(points) == 0 {
		return Coordinate{}
	}
	var lat, lng float64
	for _, p := range points {
		lat += p.Location.Lat
		lng += p.Location.Lng
	}
	n := float64(len(points))
	return Coordinate{Lat: lat / n, Lng: lng / n}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
