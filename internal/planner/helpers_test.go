package planner_test

import (
	"fmt"

	"tripplanner/internal/planner"
)

func poi(id string, lat, lng float64) planner.PointOfInterest {
	return planner.PointOfInterest{
		ID:           id,
		Name:         "Place " + id,
		Category:     planner.CategoryParks,
		Location:     planner.Coordinate{Lat: lat, Lng: lng},
		VisitMinutes: 60,
	}
}

func withCategory(p planner.PointOfInterest, category string) planner.PointOfInterest {
	p.Category = category
	return p
}

// grid lays out n points on a rough square around Hanoi's old quarter.
func grid(n int) []planner.PointOfInterest {
	out := make([]planner.PointOfInterest, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, poi(fmt.Sprintf("p%02d", i), 21.02+float64(i%5)*0.01, 105.84+float64(i/5)*0.01))
	}
	return out
}

func ids(points []planner.PointOfInterest) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.ID)
	}
	return out
}
