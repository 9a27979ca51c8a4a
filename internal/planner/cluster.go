package planner

import "math"

// ClusterByDay partitions points into dayCount geographic groups.
//
// Centers are seeded along the diagonal of the points' bounding box, every
// point joins its nearest center, and a balancing pass then fills empty days
// from the largest one and drains days holding more than
// ceil(n/dayCount)+2 points into the smallest one. Balancing is best effort:
// a day can stay empty when there is no donor with more than one point.
//
// The returned slice always has dayCount entries. Within a group points keep
// their input order; callers sequence them with OrderRoute.
func ClusterByDay(points []PointOfInterest, dayCount int) [][]PointOfInterest {
	if dayCount < 1 {
		return [][]PointOfInterest{}
	}
	if dayCount == 1 {
		return [][]PointOfInterest{append([]PointOfInterest(nil), points...)}
	}

	clusters := make([][]PointOfInterest, dayCount)
	if len(points) == 0 {
		return clusters
	}

	centers := seedCenters(points, dayCount)
	for _, p := range points {
		idx := nearestCenter(p.Location, centers)
		clusters[idx] = append(clusters[idx], p)
	}

	balance(clusters, len(points))
	return clusters
}

func seedCenters(points []PointOfInterest, dayCount int) []Coordinate {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minLat = math.Min(minLat, p.Location.Lat)
		maxLat = math.Max(maxLat, p.Location.Lat)
		minLng = math.Min(minLng, p.Location.Lng)
		maxLng = math.Max(maxLng, p.Location.Lng)
	}

	centers := make([]Coordinate, dayCount)
	for i := range centers {
		frac := float64(i) / float64(dayCount-1)
		centers[i] = Coordinate{
			Lat: minLat + (maxLat-minLat)*frac,
			Lng: minLng + (maxLng-minLng)*frac,
		}
	}
	return centers
}

// nearestCenter keeps the first center found at the minimum distance.
func nearestCenter(c Coordinate, centers []Coordinate) int {
	best := 0
	bestDist := DistanceKm(c, centers[0])
	for i := 1; i < len(centers); i++ {
		if d := DistanceKm(c, centers[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func balance(clusters [][]PointOfInterest, total int) {
	maxPerDay := int(math.Ceil(float64(total)/float64(len(clusters)))) + 2

	for i := range clusters {
		if len(clusters[i]) > 0 {
			continue
		}
		donor := largest(clusters)
		if len(clusters[donor]) <= 1 {
			continue
		}
		moveLast(clusters, donor, i)
	}

	for i := range clusters {
		for len(clusters[i]) > maxPerDay {
			target := smallest(clusters)
			if target == i {
				break
			}
			moveLast(clusters, i, target)
		}
	}
}

func moveLast(clusters [][]PointOfInterest, from, to int) {
	last := len(clusters[from]) - 1
	p := clusters[from][last]
	clusters[from] = clusters[from][:last]
	clusters[to] = append(clusters[to], p)
}

func largest(clusters [][]PointOfInterest) int {
	idx := 0
	for i := 1; i < len(clusters); i++ {
		if len(clusters[i]) > len(clusters[idx]) {
			idx = i
		}
	}
	return idx
}

func smallest(clusters [][]PointOfInterest) int {
	idx := 0
	for i := 1; i < len(clusters); i++ {
		if len(clusters[i]) < len(clusters[idx]) {
			idx = i
		}
	}
	return idx
}
