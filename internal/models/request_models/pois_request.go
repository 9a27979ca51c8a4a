package request_models

type CreatePoiRequest struct {
	Name         string  `json:"name" binding:"required"`
	Destination  string  `json:"destination" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	VisitMinutes int     `json:"visit_minutes" binding:"required,min=1"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Address      string  `json:"address"`
	Description  string  `json:"description"`
	OpeningHours string  `json:"opening_hours"`
}
