package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type POIServiceInterface interface {
	GetPOIById(id string, ctx context.Context) (response_models.POI, error)
	GetPoisByDestination(destination string, page, pageSize int, ctx context.Context) ([]response_models.POI, error)
	CreatePoi(request request_models.CreatePoiRequest, ctx context.Context) (uuid.UUID, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
	cache         memcache.CandidateCache
}

func NewPoiService(poiRepository repositories.POIRepository, cache memcache.CandidateCache) POIServiceInterface {
	return &PoiService{
		poiRepository: poiRepository,
		cache:         cache,
	}
}

func (p *PoiService) GetPOIById(id string, ctx context.Context) (response_models.POI, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.POI{}, utils.ErrInvalidInput
	}

	poi, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching POI %s: %v", id, err)
		return response_models.POI{}, utils.ErrDatabaseError
	}
	if poi == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}

	return poiResponse(poi), nil
}

func (p *PoiService) GetPoisByDestination(destination string, page, pageSize int, ctx context.Context) ([]response_models.POI, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	key := memcache.NormalizeKey(destination)
	if key == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	pois, err := p.poiRepository.ListByDestination(ctx, key, page, pageSize)
	if err != nil {
		log.Printf("Error listing POIs: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.POI, 0, len(pois))
	for i := range pois {
		out = append(out, poiResponse(&pois[i]))
	}
	return out, nil
}

// CreatePoi adds a catalog entry and drops the destination's cached
// candidates so the next plan sees it.
func (p *PoiService) CreatePoi(request request_models.CreatePoiRequest, ctx context.Context) (uuid.UUID, error) {
	if !planner.IsCategory(request.Category) {
		return uuid.Nil, fmt.Errorf("%w: %q", utils.ErrUnknownCategory, request.Category)
	}
	key := memcache.NormalizeKey(request.Destination)
	if key == "" {
		return uuid.Nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	poi := &db_models.POI{
		Name:         request.Name,
		Destination:  key,
		Category:     request.Category,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		VisitMinutes: request.VisitMinutes,
		Rating:       request.Rating,
		Address:      request.Address,
		Description:  request.Description,
		OpeningHours: request.OpeningHours,
		Source:       db_models.SourceCatalog,
	}
	if err := planner.CheckPoint(poi.ToPlanner()); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	id, err := p.poiRepository.CreatePoi(ctx, poi)
	if err != nil {
		log.Printf("Error creating POI: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	if err := p.cache.Invalidate(ctx, key); err != nil {
		log.WithError(err).WithField("destination", key).Warn("candidate cache invalidation failed")
	}
	return id, nil
}
