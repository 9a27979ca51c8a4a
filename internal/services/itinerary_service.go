package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// MaxTripDays bounds the number of planned days a single request may produce.
const MaxTripDays = 30

type ItineraryServiceInterface interface {
	Preview(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	Generate(ctx context.Context, userId string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)

	ReorderDay(ctx context.Context, userId, journeyId string, dayNumber int, poiIds []string) (*response_models.DayPlanResponse, error)
	AddPoiToDay(ctx context.Context, userId, journeyId string, dayNumber int, poiId string, position *int) (*response_models.DayPlanResponse, error)
	RemovePoiFromDay(ctx context.Context, userId, journeyId string, dayNumber int, poiId string) (*response_models.DayPlanResponse, error)
	ReoptimizeDay(ctx context.Context, userId, journeyId string, dayNumber int, apply bool) (*response_models.ReoptimizeResponse, error)
}

type ItineraryService struct {
	candidates  CandidateSourceInterface
	poiRepo     repositories.POIRepository
	journeyRepo repositories.JourneyRepository
}

func NewItineraryService(
	candidates CandidateSourceInterface,
	poiRepo repositories.POIRepository,
	journeyRepo repositories.JourneyRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		candidates:  candidates,
		poiRepo:     poiRepo,
		journeyRepo: journeyRepo,
	}
}

func (s *ItineraryService) Preview(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	trip, it, err := s.plan(ctx, request)
	if err != nil {
		return nil, err
	}
	resp := itineraryResponse(trip, it)
	return &resp, nil
}

func (s *ItineraryService) Generate(ctx context.Context, userId string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	owner, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	trip, it, err := s.plan(ctx, request)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = "Trip to " + trip.Destination
	}
	journey := &db_models.Journey{
		UserID:      owner,
		Title:       title,
		Destination: trip.Destination,
		StartDate:   trip.Start,
		EndDate:     trip.End,
		Preferences: pq.StringArray(trip.Preferences),
		Days:        make([]db_models.JourneyDay, 0, len(it)),
	}
	for i, plan := range it {
		date, err := utils.ParseISODate(plan.Date)
		if err != nil {
			return nil, err
		}
		day := db_models.JourneyDay{
			DayNumber:     i + 1,
			Date:          date,
			TravelMinutes: plan.TravelMinutes,
			TotalMinutes:  plan.TotalMinutes,
			Activities:    make([]db_models.JourneyActivity, 0, len(plan.Points)),
		}
		for pos, p := range plan.Points {
			poiID, err := uuid.Parse(p.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: candidate id %q", utils.ErrInvalidInput, p.ID)
			}
			day.Activities = append(day.Activities, db_models.JourneyActivity{
				Position:      pos,
				SelectedPOIID: poiID,
			})
		}
		journey.Days = append(journey.Days, day)
	}

	id, err := s.journeyRepo.SaveMaterializedPlan(ctx, journey)
	if err != nil {
		log.WithError(err).Error("saving generated journey")
		return nil, utils.ErrDatabaseError
	}

	resp := itineraryResponse(trip, it)
	resp.JourneyID = id.String()
	resp.Title = title
	return &resp, nil
}

// plan validates the request, gathers candidates and runs the planner.
func (s *ItineraryService) plan(ctx context.Context, request request_models.GenerateItineraryRequest) (planner.TripRequest, planner.Itinerary, error) {
	destination := strings.TrimSpace(request.Destination)
	if destination == "" {
		return planner.TripRequest{}, nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	start, end, err := utils.ParseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return planner.TripRequest{}, nil, err
	}
	if planner.DayCount(start, end) > MaxTripDays {
		return planner.TripRequest{}, nil, utils.ErrTripTooLong
	}

	prefs, err := normalizePreferences(request.Preferences)
	if err != nil {
		return planner.TripRequest{}, nil, err
	}

	candidates, err := s.candidates.FindCandidates(ctx, destination)
	if err != nil {
		return planner.TripRequest{}, nil, err
	}

	trip := planner.TripRequest{
		Destination: destination,
		Start:       start,
		End:         end,
		Preferences: prefs,
	}
	it := planner.Build(trip, candidates)

	log.WithFields(log.Fields{
		"destination": destination,
		"candidates":  len(candidates),
		"days":        len(it),
		"stops":       it.PointCount(),
	}).Info("itinerary planned")

	if it.IsEmpty() {
		return planner.TripRequest{}, nil, utils.ErrNoCandidates
	}
	return trip, it, nil
}

// normalizePreferences trims, de-duplicates and checks each category.
func normalizePreferences(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		c := strings.TrimSpace(raw)
		if c == "" || seen[c] {
			continue
		}
		if !planner.IsCategory(c) {
			return nil, fmt.Errorf("%w: %q", utils.ErrUnknownCategory, raw)
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

func (s *ItineraryService) ReorderDay(ctx context.Context, userId, journeyId string, dayNumber int, poiIds []string) (*response_models.DayPlanResponse, error) {
	day, err := s.loadDay(ctx, userId, journeyId, dayNumber)
	if err != nil {
		return nil, err
	}

	current := storedDayPoints(day)
	if len(poiIds) != len(current) {
		return nil, fmt.Errorf("%w: order must list every stop of the day exactly once", utils.ErrInvalidInput)
	}
	pool := make(map[string][]planner.PointOfInterest, len(current))
	for _, p := range current {
		pool[p.ID] = append(pool[p.ID], p)
	}
	ordered := make([]planner.PointOfInterest, 0, len(poiIds))
	for _, id := range poiIds {
		left := pool[id]
		if len(left) == 0 {
			return nil, fmt.Errorf("%w: poi %s is not on day %d", utils.ErrInvalidInput, id, dayNumber)
		}
		ordered = append(ordered, left[0])
		pool[id] = left[1:]
	}

	return s.saveDay(ctx, day, ordered)
}

func (s *ItineraryService) AddPoiToDay(ctx context.Context, userId, journeyId string, dayNumber int, poiId string, position *int) (*response_models.DayPlanResponse, error) {
	if _, err := uuid.Parse(poiId); err != nil {
		return nil, utils.ErrInvalidInput
	}
	day, err := s.loadDay(ctx, userId, journeyId, dayNumber)
	if err != nil {
		return nil, err
	}

	poi, err := s.poiRepo.GetByID(ctx, poiId)
	if err != nil {
		log.WithError(err).WithField("poi_id", poiId).Error("loading poi")
		return nil, utils.ErrDatabaseError
	}
	if poi == nil {
		return nil, utils.ErrPOINotFound
	}

	current := storedDayPoints(day)
	at := len(current)
	if position != nil {
		if *position < 0 || *position > len(current) {
			return nil, fmt.Errorf("%w: position %d out of range", utils.ErrInvalidInput, *position)
		}
		at = *position
	}

	points := make([]planner.PointOfInterest, 0, len(current)+1)
	points = append(points, current[:at]...)
	points = append(points, poi.ToPlanner())
	points = append(points, current[at:]...)

	return s.saveDay(ctx, day, points)
}

func (s *ItineraryService) RemovePoiFromDay(ctx context.Context, userId, journeyId string, dayNumber int, poiId string) (*response_models.DayPlanResponse, error) {
	day, err := s.loadDay(ctx, userId, journeyId, dayNumber)
	if err != nil {
		return nil, err
	}

	current := storedDayPoints(day)
	for i, p := range current {
		if p.ID == poiId {
			points := append(current[:i:i], current[i+1:]...)
			return s.saveDay(ctx, day, points)
		}
	}
	return nil, utils.ErrPOINotFound
}

// ReoptimizeDay proposes a shorter visiting order for one day. With apply the
// proposal replaces the stored order.
func (s *ItineraryService) ReoptimizeDay(ctx context.Context, userId, journeyId string, dayNumber int, apply bool) (*response_models.ReoptimizeResponse, error) {
	day, err := s.loadDay(ctx, userId, journeyId, dayNumber)
	if err != nil {
		return nil, err
	}

	res := planner.Reoptimize(storedDayPoints(day))
	applied := apply && len(res.Points) >= planner.MinReoptimizeStops

	var dayResp *response_models.DayPlanResponse
	if applied {
		dayResp, err = s.saveDay(ctx, day, res.Points)
		if err != nil {
			return nil, err
		}
	} else {
		r := dayPlanResponse(day.DayNumber, planner.NewDayPlan(utils.FormatISODate(day.Date), res.Points))
		dayResp = &r
	}

	log.WithFields(log.Fields{
		"journey_id":    journeyId,
		"day":           dayNumber,
		"km_saved":      res.KmSaved,
		"minutes_saved": res.MinutesSaved,
		"applied":       applied,
	}).Info("day reoptimized")

	return &response_models.ReoptimizeResponse{
		DayNumber:         day.DayNumber,
		Applied:           applied,
		KmSaved:           res.KmSaved,
		MinutesSaved:      res.MinutesSaved,
		EfficiencyPercent: res.EfficiencyPercent,
		Day:               *dayResp,
	}, nil
}

func (s *ItineraryService) loadDay(ctx context.Context, userId, journeyId string, dayNumber int) (*db_models.JourneyDay, error) {
	journey, err := loadOwnedJourney(ctx, s.journeyRepo, userId, journeyId)
	if err != nil {
		return nil, err
	}
	day := journey.Day(dayNumber)
	if day == nil {
		return nil, utils.ErrDayNotFound
	}
	return day, nil
}

// saveDay re-derives the day's totals for the given order and stores it.
func (s *ItineraryService) saveDay(ctx context.Context, day *db_models.JourneyDay, points []planner.PointOfInterest) (*response_models.DayPlanResponse, error) {
	plan := planner.NewDayPlan(utils.FormatISODate(day.Date), points)

	ids := make([]uuid.UUID, 0, len(plan.Points))
	for _, p := range plan.Points {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: poi id %q", utils.ErrInvalidInput, p.ID)
		}
		ids = append(ids, id)
	}

	if err := s.journeyRepo.ReplaceDayActivities(ctx, day.ID, ids, plan.TravelMinutes, plan.TotalMinutes); err != nil {
		log.WithError(err).WithField("day_id", day.ID).Error("replacing day activities")
		return nil, utils.ErrDatabaseError
	}

	resp := dayPlanResponse(day.DayNumber, plan)
	return &resp, nil
}
