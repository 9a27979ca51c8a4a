package planner

import "math"

// MinutesPerKm is the flat urban speed proxy (about 20 km/h door to door).
const MinutesPerKm = 3

// TravelMinutes estimates the time to get from a to b.
func TravelMinutes(a, b PointOfInterest) int {
	return roundHalfUp(DistanceKm(a.Location, b.Location) * MinutesPerKm)
}

// RouteTravelMinutes sums TravelMinutes over consecutive stops.
func RouteTravelMinutes(points []PointOfInterest) int {
	total := 0
	for i := 1; i < len(points); i++ {
		total += TravelMinutes(points[i-1], points[i])
	}
	return total
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
