package db_models

import (
	"tripplanner/internal/planner"
)

const (
	SourceCatalog    = "catalog"
	SourceSuggestion = "suggestion"
)

type POI struct {
	BaseModel
	Name         string `gorm:"not null"`
	Destination  string `gorm:"index;not null"` // lower-cased, single spaced
	Category     string `gorm:"index;not null"`
	Latitude     float64
	Longitude    float64
	VisitMinutes int `gorm:"not null;check:visit_minutes > 0"`
	Rating       float64
	Address      string
	Description  string
	OpeningHours string
	Source       string `gorm:"default:catalog"`
}

func (p *POI) ToPlanner() planner.PointOfInterest {
	return planner.PointOfInterest{
		ID:           p.ID.String(),
		Name:         p.Name,
		Category:     p.Category,
		Location:     planner.Coordinate{Lat: p.Latitude, Lng: p.Longitude},
		VisitMinutes: p.VisitMinutes,
		Rating:       p.Rating,
		Address:      p.Address,
	}
}
