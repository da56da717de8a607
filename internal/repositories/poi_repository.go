package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"vivuconnect/internal/models/db_models"
)

// CatalogRepository reads places and events. It never writes.
type CatalogRepository interface {
	GetPoiByID(ctx context.Context, id string) (*db_models.POI, error)
	GetEventByID(ctx context.Context, id string) (*db_models.Event, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetPoiByID(ctx context.Context, id string) (*db_models.POI, error) {
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

func (r *catalogRepository) GetEventByID(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}
