package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

type JourneyRepository interface {
	// SaveMaterializedPlan inserts a journey with its days and their activities.
	SaveMaterializedPlan(ctx context.Context, journey *dbm.Journey) (uuid.UUID, error)

	GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Journey, error)
	GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error)
	// ReplaceDayActivities rewrites a day's stops in the given order and its totals.
	ReplaceDayActivities(ctx context.Context, dayID uuid.UUID, poiIDs []uuid.UUID, travelMinutes, totalMinutes int) error
	DeleteJourney(ctx context.Context, journeyId string) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) SaveMaterializedPlan(ctx context.Context, journey *dbm.Journey) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Days").Create(journey).Error; err != nil {
			return err
		}

		for i := range journey.Days {
			day := &journey.Days[i]
			day.JourneyID = journey.ID
			if err := tx.Omit("Activities").Create(day).Error; err != nil {
				return err
			}

			if len(day.Activities) == 0 {
				continue
			}
			for j := range day.Activities {
				day.Activities[j].JourneyDayID = day.ID
				day.Activities[j].Position = j
			}
			if err := tx.Omit("SelectedPOI").Create(&day.Activities).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return journey.ID, nil
}

func (r *journeyRepository) GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Journey, error) {

	var journeys []dbm.Journey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("start_date DESC").
		Offset((page - 1) * pagesize).
		Limit(pagesize).
		Find(&journeys).Error

	if err != nil {
		return nil, err
	}

	return journeys, nil
}

func (r *journeyRepository) GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {

	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyId).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Days.Activities.SelectedPOI").
		First(&journey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &journey, nil
}

func (r *journeyRepository) ReplaceDayActivities(
	ctx context.Context,
	dayID uuid.UUID,
	poiIDs []uuid.UUID,
	travelMinutes, totalMinutes int,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// hard delete so positions never collide with soft-deleted rows
		if err := tx.Unscoped().
			Where("journey_day_id = ?", dayID).
			Delete(&dbm.JourneyActivity{}).Error; err != nil {
			return err
		}

		if len(poiIDs) > 0 {
			acts := make([]dbm.JourneyActivity, 0, len(poiIDs))
			for i, id := range poiIDs {
				acts = append(acts, dbm.JourneyActivity{
					JourneyDayID:  dayID,
					Position:      i,
					SelectedPOIID: id,
				})
			}
			if err := tx.Omit("SelectedPOI").Create(&acts).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&dbm.JourneyDay{}).
			Where("id = ?", dayID).
			Updates(map[string]interface{}{
				"travel_minutes": travelMinutes,
				"total_minutes":  totalMinutes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *journeyRepository) DeleteJourney(ctx context.Context, journeyId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subDayIDs := tx.Model(&dbm.JourneyDay{}).
			Select("id").
			Where("journey_id = ?", journeyId)

		if err := tx.Where("journey_day_id IN (?)", subDayIDs).
			Delete(&dbm.JourneyActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("journey_id = ?", journeyId).
			Delete(&dbm.JourneyDay{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.Journey{}, "id = ?", journeyId).Error
	})
}
