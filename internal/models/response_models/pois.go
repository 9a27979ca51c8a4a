package response_models

type POI struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	VisitMinutes int     `json:"visit_minutes"`
	Rating       float64 `json:"rating"`
	Address      string  `json:"address,omitempty"`
	Description  string  `json:"description,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`

	TravelMinutesToNext *int `json:"travel_minutes_to_next,omitempty"`
}
