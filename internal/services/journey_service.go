package services

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type JourneyServiceInterface interface {
	GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]response_models.JourneyResponse, error)
	GetDetailsInfoOfJourneyById(ctx context.Context, userId, journeyId string) (*response_models.ItineraryResponse, error)
	DeleteJourney(ctx context.Context, userId, journeyId string) error
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
}

func NewJourneyService(journeyRepo repositories.JourneyRepository) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo: journeyRepo,
	}
}

func (j *JourneyService) GetListOfJourneyByUserId(
	ctx context.Context, page, pagesize int, userId string,
) ([]response_models.JourneyResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pagesize < 1 || pagesize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	journeys, err := j.journeyRepo.GetListOfJourneyByUserId(ctx, page, pagesize, userId)
	if err != nil {
		log.WithError(err).Error("listing journeys")
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for i := range journeys {
		out = append(out, journeySummary(&journeys[i]))
	}
	return out, nil
}

func (j *JourneyService) GetDetailsInfoOfJourneyById(ctx context.Context, userId, journeyId string) (*response_models.ItineraryResponse, error) {
	journey, err := loadOwnedJourney(ctx, j.journeyRepo, userId, journeyId)
	if err != nil {
		return nil, err
	}
	resp := journeyItineraryResponse(journey)
	return &resp, nil
}

func (j *JourneyService) DeleteJourney(ctx context.Context, userId, journeyId string) error {
	if _, err := loadOwnedJourney(ctx, j.journeyRepo, userId, journeyId); err != nil {
		return err
	}
	if err := j.journeyRepo.DeleteJourney(ctx, journeyId); err != nil {
		log.WithError(err).WithField("journey_id", journeyId).Error("deleting journey")
		return utils.ErrDatabaseError
	}
	return nil
}

// loadOwnedJourney fetches a journey and checks it belongs to userId.
func loadOwnedJourney(ctx context.Context, repo repositories.JourneyRepository, userId, journeyId string) (*db_models.Journey, error) {
	if _, err := uuid.Parse(journeyId); err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := repo.GetDetailsOfJourneyById(ctx, journeyId)
	if err != nil {
		log.WithError(err).WithField("journey_id", journeyId).Error("loading journey")
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}
	if journey.UserID.String() != userId {
		return nil, utils.ErrForbidden
	}
	return journey, nil
}
