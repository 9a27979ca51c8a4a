package response_models

// ItineraryResponse is a generated or stored plan. JourneyID is empty for previews.
type ItineraryResponse struct {
	JourneyID   string            `json:"journey_id,omitempty"`
	Title       string            `json:"title,omitempty"`
	Destination string            `json:"destination"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Preferences []string          `json:"preferences"`
	TotalDays   int               `json:"total_days"`
	TotalStops  int               `json:"total_stops"`
	Days        []DayPlanResponse `json:"days"`
}

type DayPlanResponse struct {
	DayNumber     int    `json:"day_number"`
	Date          string `json:"date"`
	TravelMinutes int    `json:"travel_minutes"`
	TotalMinutes  int    `json:"total_minutes"`
	Stops         []POI  `json:"stops"`
}

type ReoptimizeResponse struct {
	DayNumber         int             `json:"day_number"`
	Applied           bool            `json:"applied"`
	KmSaved           float64         `json:"km_saved"`
	MinutesSaved      int             `json:"minutes_saved"`
	EfficiencyPercent float64         `json:"efficiency_percent"`
	Day               DayPlanResponse `json:"day"`
}

type JourneyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalDays   int    `json:"total_days"`
}
