package planner

import "math"

const (
	// MinReoptimizeStops is the smallest day Reoptimize will reorder.
	MinReoptimizeStops = 3

	EfficiencyFloor   = 5.0
	EfficiencyCeiling = 95.0
)

type Reoptimization struct {
	Points            []PointOfInterest
	OriginalKm        float64
	OptimizedKm       float64
	KmSaved           float64
	MinutesSaved      int
	EfficiencyPercent float64
}

// Reoptimize reorders an existing day with a nearest-neighbor walk seeded at
// its first stop. It does not compare against the input order, so KmSaved
// may be zero or negative. Days shorter than MinReoptimizeStops come back
// unchanged with no savings.
func Reoptimize(points []PointOfInterest) Reoptimization {
	originalKm := RouteKm(points)
	if len(points) < MinReoptimizeStops {
		return Reoptimization{
			Points:      append([]PointOfInterest(nil), points...),
			OriginalKm:  originalKm,
			OptimizedKm: originalKm,
		}
	}

	remaining := append([]PointOfInterest(nil), points[1:]...)
	ordered := nearestNeighborWalk(points[0], remaining)

	optimizedKm := RouteKm(ordered)
	saved := originalKm - optimizedKm

	result := Reoptimization{
		Points:       ordered,
		OriginalKm:   originalKm,
		OptimizedKm:  optimizedKm,
		KmSaved:      saved,
		MinutesSaved: roundHalfUp(saved * MinutesPerKm),
	}
	if originalKm > 0 {
		result.EfficiencyPercent = math.Min(EfficiencyCeiling, math.Max(EfficiencyFloor, saved/originalKm*100))
	}
	return result
}
