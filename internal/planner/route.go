package planner

// OrderRoute sequences one day's points with a nearest-neighbor walk that
// starts at the point closest to the group's centroid. The result is a
// permutation of points; ties go to the earliest candidate.
func OrderRoute(points []PointOfInterest) []PointOfInterest {
	if len(points) <= 1 {
		return append([]PointOfInterest(nil), points...)
	}

	center := Centroid(points)
	start := 0
	startDist := DistanceKm(points[0].Location, center)
	for i := 1; i < len(points); i++ {
		if d := DistanceKm(points[i].Location, center); d < startDist {
			start, startDist = i, d
		}
	}

	remaining := make([]PointOfInterest, 0, len(points)-1)
	remaining = append(remaining, points[:start]...)
	remaining = append(remaining, points[start+1:]...)

	return nearestNeighborWalk(points[start], remaining)
}

// nearestNeighborWalk appends, one at a time, the remaining point closest to
// the last appended one. remaining is consumed.
func nearestNeighborWalk(first PointOfInterest, remaining []PointOfInterest) []PointOfInterest {
	ordered := make([]PointOfInterest, 0, len(remaining)+1)
	ordered = append(ordered, first)

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1].Location
		next := 0
		nextDist := DistanceKm(last, remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			if d := DistanceKm(last, remaining[i].Location); d < nextDist {
				next, nextDist = i, d
			}
		}
		ordered = append(ordered, remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}
	return ordered
}
