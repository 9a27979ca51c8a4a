package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Journey struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Preferences pq.StringArray `gorm:"type:text[]"`

	Days []JourneyDay `gorm:"constraint:OnDelete:CASCADE"`
}

type JourneyDay struct {
	BaseModel
	JourneyID     uuid.UUID `gorm:"type:uuid;index"`
	DayNumber     int
	Date          time.Time
	TravelMinutes int
	TotalMinutes  int

	Activities []JourneyActivity `gorm:"constraint:OnDelete:CASCADE"`
}

// JourneyActivity is one stop of a day; Position is its 0-based visiting order.
type JourneyActivity struct {
	BaseModel
	JourneyDayID  uuid.UUID `gorm:"type:uuid;index"`
	Position      int
	SelectedPOIID uuid.UUID `gorm:"type:uuid"`
	SelectedPOI   POI       `gorm:"foreignKey:SelectedPOIID"`
	Notes         string
}

// Day returns the day with the given 1-based number.
func (j *Journey) Day(dayNumber int) *JourneyDay {
	for i := range j.Days {
		if j.Days[i].DayNumber == dayNumber {
			return &j.Days[i]
		}
	}
	return nil
}
