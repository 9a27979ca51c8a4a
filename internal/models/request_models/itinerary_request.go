package request_models

type GenerateItineraryRequest struct {
	Title       string   `json:"title"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string   `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Preferences []string `json:"preferences"`
}

type ReorderDayRequest struct {
	PoiIDs []string `json:"poi_ids" binding:"required"`
}

type AddPoiToDayRequest struct {
	PoiID string `json:"poi_id" binding:"required,uuid"`
	// Position is the 0-based slot to insert at; omitted appends.
	Position *int `json:"position"`
}
