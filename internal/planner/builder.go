package planner

import (
	"math"
	"time"
)

const (
	MaxAttractionsPerDay = 6

	// A preference filter keeping fewer than TopUpFloor points is topped up
	// with other candidates until TopUpTarget points are reached.
	TopUpFloor  = 5
	TopUpTarget = 10
)

// Build turns a trip request and its candidate points into one DayPlan per
// calendar day between req.Start and req.End inclusive. It never fails: with
// no usable candidates every day comes back empty and the caller decides how
// to surface that.
func Build(req TripRequest, candidates []PointOfInterest) Itinerary {
	days := DayCount(req.Start, req.End)
	if days < 1 {
		return Itinerary{}
	}

	filtered := FilterByPreference(candidates, req.Preferences)
	allowed := len(filtered)
	if limit := days * MaxAttractionsPerDay; allowed > limit {
		allowed = limit
	}

	clusters := ClusterByDay(filtered[:allowed], days)

	itinerary := make(Itinerary, days)
	for i := 0; i < days; i++ {
		date := req.Start.AddDate(0, 0, i).Format(DateLayout)
		itinerary[i] = NewDayPlan(date, OrderRoute(clusters[i]))
	}
	return itinerary
}

// FilterByPreference keeps candidates whose category is one of preferences.
// With no preferences every candidate is kept. Narrow filters are topped up
// from the remaining candidates, in input order.
func FilterByPreference(candidates []PointOfInterest, preferences []string) []PointOfInterest {
	if len(preferences) == 0 {
		return append([]PointOfInterest(nil), candidates...)
	}

	wanted := make(map[string]struct{}, len(preferences))
	for _, p := range preferences {
		wanted[p] = struct{}{}
	}

	filtered := make([]PointOfInterest, 0, len(candidates))
	included := make(map[int]struct{}, len(candidates))
	for i, c := range candidates {
		if _, ok := wanted[c.Category]; ok {
			filtered = append(filtered, c)
			included[i] = struct{}{}
		}
	}

	// Top-up only runs below TopUpFloor. Six matching museums among ten
	// candidates come back as exactly those six, not topped up to ten.
	if len(filtered) >= TopUpFloor {
		return filtered
	}
	for i, c := range candidates {
		if len(filtered) >= TopUpTarget {
			break
		}
		if _, ok := included[i]; ok {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// DayCount is the number of calendar days from start to end, both included.
// A partial trailing day counts as a whole one. It is zero or negative when
// end precedes start.
func DayCount(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// NewDayPlan derives travel and total minutes for points visited in the given
// order. Use it after any manual edit so totals stay consistent with Build.
func NewDayPlan(date string, ordered []PointOfInterest) DayPlan {
	if ordered == nil {
		ordered = []PointOfInterest{}
	}
	plan := DayPlan{
		Date:          date,
		Points:        ordered,
		TravelMinutes: RouteTravelMinutes(ordered),
	}
	plan.TotalMinutes = plan.VisitMinutes() + plan.TravelMinutes
	return plan
}
