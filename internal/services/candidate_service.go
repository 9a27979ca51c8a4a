package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

// CandidateLimit caps how many points a destination search returns; it covers
// the longest trip at the planner's per-day maximum.
const CandidateLimit = MaxTripDays * planner.MaxAttractionsPerDay

// CandidateSourceInterface finds the raw points of interest an itinerary is built from.
type CandidateSourceInterface interface {
	FindCandidates(ctx context.Context, destination string) ([]planner.PointOfInterest, error)
}

type CandidateService struct {
	poiRepo   repositories.POIRepository
	cache     memcache.CandidateCache
	suggester utils.POISuggestionClientInterface
}

// NewCandidateService wires the lookup chain. suggester may be nil, in which
// case a destination missing from the catalog yields no candidates.
func NewCandidateService(
	poiRepo repositories.POIRepository,
	cache memcache.CandidateCache,
	suggester utils.POISuggestionClientInterface,
) CandidateSourceInterface {
	return &CandidateService{
		poiRepo:   poiRepo,
		cache:     cache,
		suggester: suggester,
	}
}

func (s *CandidateService) FindCandidates(ctx context.Context, destination string) ([]planner.PointOfInterest, error) {
	key := memcache.NormalizeKey(destination)
	if key == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	logger := log.WithField("destination", key)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		logger.WithError(err).Warn("candidate cache read failed")
	} else if ok {
		logger.WithField("count", len(cached)).Debug("candidate cache hit")
		return cached, nil
	}

	pois, err := s.poiRepo.FindCandidates(ctx, key, CandidateLimit)
	if err != nil {
		logger.WithError(err).Error("loading catalog candidates")
		return nil, utils.ErrDatabaseError
	}
	candidates := s.accept(logger, pois)

	if len(candidates) == 0 && s.suggester != nil {
		candidates, err = s.suggest(ctx, logger, destination, key)
		if err != nil {
			return nil, err
		}
	}

	if len(candidates) > 0 {
		if err := s.cache.Set(ctx, key, candidates); err != nil {
			logger.WithError(err).Warn("candidate cache write failed")
		}
	}
	return candidates, nil
}

// accept converts catalog rows and drops those the planner would reject.
func (s *CandidateService) accept(logger *log.Entry, pois []db_models.POI) []planner.PointOfInterest {
	points := make([]planner.PointOfInterest, 0, len(pois))
	for i := range pois {
		points = append(points, pois[i].ToPlanner())
	}
	valid, errs := planner.Validate(points)
	for _, err := range errs {
		logger.WithError(err).Warn("dropping invalid point of interest")
	}
	return valid
}

// suggest asks the language model for attractions and stores the usable ones
// in the catalog so they get stable ids and are found directly next time.
func (s *CandidateService) suggest(ctx context.Context, logger *log.Entry, destination, key string) ([]planner.PointOfInterest, error) {
	suggestions, err := s.suggester.SuggestPOIs(ctx, destination, planner.Categories, CandidateLimit)
	if err != nil {
		logger.WithError(err).Error("poi suggestion failed")
		return nil, fmt.Errorf("%w: %v", utils.ErrSuggestionFailed, err)
	}

	rows := make([]*db_models.POI, 0, len(suggestions))
	for _, sg := range suggestions {
		row := &db_models.POI{
			Name:         sg.Name,
			Destination:  key,
			Category:     sg.Category,
			Latitude:     sg.Latitude,
			Longitude:    sg.Longitude,
			VisitMinutes: sg.VisitMinutes,
			Rating:       sg.Rating,
			Address:      sg.Address,
			Source:       db_models.SourceSuggestion,
		}
		if sg.Name == "" || !planner.IsCategory(sg.Category) {
			logger.WithField("name", sg.Name).Warnf("dropping suggestion with category %q", sg.Category)
			continue
		}
		if err := planner.CheckPoint(row.ToPlanner()); err != nil {
			logger.WithError(err).WithField("name", sg.Name).Warn("dropping invalid suggestion")
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		logger.Info("suggestion provider returned nothing usable")
		return []planner.PointOfInterest{}, nil
	}

	if err := s.poiRepo.CreatePois(ctx, rows); err != nil {
		logger.WithError(err).Error("storing suggested pois")
		return nil, utils.ErrDatabaseError
	}
	logger.WithField("count", len(rows)).Info("stored suggested pois")

	points := make([]planner.PointOfInterest, 0, len(rows))
	for _, row := range rows {
		points = append(points, row.ToPlanner())
	}
	return points, nil
}
