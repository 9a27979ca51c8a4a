package planner

import "time"

// DateLayout is the ISO calendar date format used for day plans and trip requests.
const DateLayout = "2006-01-02"

type Coordinate struct {
	Lat float64
	Lng float64
}

// PointOfInterest is a visitable place supplied by a candidate source.
// The planner never mutates one, it only selects, groups and orders copies.
type PointOfInterest struct {
	ID           string
	Name         string
	Category     string
	Location     Coordinate
	VisitMinutes int
	Rating       float64
	Address      string
}

type DayPlan struct {
	Date          string
	Points        []PointOfInterest
	TravelMinutes int
	TotalMinutes  int
}

// VisitMinutes sums the dwell time of every stop in the day.
func (d DayPlan) VisitMinutes() int {
	total := 0
	for _, p := range d.Points {
		total += p.VisitMinutes
	}
	return total
}

// Itinerary holds one DayPlan per calendar day, start and end inclusive.
type Itinerary []DayPlan

// IsEmpty reports whether no day has a single stop.
func (it Itinerary) IsEmpty() bool {
	for _, d := range it {
		if len(d.Points) > 0 {
			return false
		}
	}
	return true
}

// PointCount returns the number of stops across all days.
func (it Itinerary) PointCount() int {
	n := 0
	for _, d := range it {
		n += len(d.Points)
	}
	return n
}

type TripRequest struct {
	Destination string
	Start       time.Time
	End         time.Time
	Preferences []string
}
