package services

import (
	"sort"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

func poiResponse(p *db_models.POI) response_models.POI {
	return response_models.POI{
		ID:           p.ID.String(),
		Name:         p.Name,
		Category:     p.Category,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		VisitMinutes: p.VisitMinutes,
		Rating:       p.Rating,
		Address:      p.Address,
		Description:  p.Description,
		OpeningHours: p.OpeningHours,
	}
}

// dayPlanResponse renders a planned day; every stop but the last carries the
// travel estimate to the stop after it.
func dayPlanResponse(dayNumber int, plan planner.DayPlan) response_models.DayPlanResponse {
	stops := make([]response_models.POI, 0, len(plan.Points))
	for i, p := range plan.Points {
		stop := response_models.POI{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Latitude:     p.Location.Lat,
			Longitude:    p.Location.Lng,
			VisitMinutes: p.VisitMinutes,
			Rating:       p.Rating,
			Address:      p.Address,
		}
		if i+1 < len(plan.Points) {
			minutes := planner.TravelMinutes(p, plan.Points[i+1])
			stop.TravelMinutesToNext = &minutes
		}
		stops = append(stops, stop)
	}
	return response_models.DayPlanResponse{
		DayNumber:     dayNumber,
		Date:          plan.Date,
		TravelMinutes: plan.TravelMinutes,
		TotalMinutes:  plan.TotalMinutes,
		Stops:         stops,
	}
}

func itineraryResponse(trip planner.TripRequest, it planner.Itinerary) response_models.ItineraryResponse {
	days := make([]response_models.DayPlanResponse, 0, len(it))
	for i, plan := range it {
		days = append(days, dayPlanResponse(i+1, plan))
	}
	prefs := trip.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return response_models.ItineraryResponse{
		Destination: trip.Destination,
		StartDate:   utils.FormatISODate(trip.Start),
		EndDate:     utils.FormatISODate(trip.End),
		Preferences: prefs,
		TotalDays:   len(it),
		TotalStops:  it.PointCount(),
		Days:        days,
	}
}

// storedDayPoints returns a persisted day's stops in visiting order.
func storedDayPoints(day *db_models.JourneyDay) []planner.PointOfInterest {
	acts := make([]db_models.JourneyActivity, len(day.Activities))
	copy(acts, day.Activities)
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].Position < acts[j].Position })

	points := make([]planner.PointOfInterest, 0, len(acts))
	for i := range acts {
		points = append(points, acts[i].SelectedPOI.ToPlanner())
	}
	return points
}

func storedDayPlan(day *db_models.JourneyDay) planner.DayPlan {
	return planner.DayPlan{
		Date:          utils.FormatISODate(day.Date),
		Points:        storedDayPoints(day),
		TravelMinutes: day.TravelMinutes,
		TotalMinutes:  day.TotalMinutes,
	}
}

func journeyItineraryResponse(j *db_models.Journey) response_models.ItineraryResponse {
	days := make([]db_models.JourneyDay, len(j.Days))
	copy(days, j.Days)
	sort.SliceStable(days, func(a, b int) bool { return days[a].DayNumber < days[b].DayNumber })

	out := make([]response_models.DayPlanResponse, 0, len(days))
	stops := 0
	for i := range days {
		plan := storedDayPlan(&days[i])
		stops += len(plan.Points)
		out = append(out, dayPlanResponse(days[i].DayNumber, plan))
	}

	prefs := []string(j.Preferences)
	if prefs == nil {
		prefs = []string{}
	}
	return response_models.ItineraryResponse{
		JourneyID:   j.ID.String(),
		Title:       j.Title,
		Destination: j.Destination,
		StartDate:   utils.FormatISODate(j.StartDate),
		EndDate:     utils.FormatISODate(j.EndDate),
		Preferences: prefs,
		TotalDays:   len(days),
		TotalStops:  stops,
		Days:        out,
	}
}

func journeySummary(j *db_models.Journey) response_models.JourneyResponse {
	return response_models.JourneyResponse{
		ID:          j.ID.String(),
		Title:       j.Title,
		Destination: j.Destination,
		StartDate:   utils.FormatISODate(j.StartDate),
		EndDate:     utils.FormatISODate(j.EndDate),
		TotalDays:   len(j.Days),
	}
}
