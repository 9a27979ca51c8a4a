package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

type POIRepository interface {
	CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error)
	CreatePois(ctx context.Context, pois []*db_models.POI) error

	GetByID(ctx context.Context, id string) (*db_models.POI, error)
	ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]db_models.POI, error)
	// FindCandidates returns up to limit POIs for a destination, best rated first.
	FindCandidates(ctx context.Context, destination string, limit int) ([]db_models.POI, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return uuid.Nil, err
	}
	return poi.ID, nil
}

func (r *poiRepository) CreatePois(ctx context.Context, pois []*db_models.POI) error {
	if len(pois) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(pois, 100).Error
	})
}

// ────────────────────────────────────────────────────────────────
// Read helpers return (nil, nil) when no row is found.
// ────────────────────────────────────────────────────────────────

func (r *poiRepository) GetByID(ctx context.Context, id string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).First(&poi, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]db_models.POI, error) {
	var pois []db_models.POI
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) FindCandidates(ctx context.Context, destination string, limit int) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Order("rating DESC").
		Order("name ASC").
		Limit(limit).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}
