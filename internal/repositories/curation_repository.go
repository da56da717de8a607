package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"vivuconnect/internal/models/db_models"
)

type CurationRepository interface {
	FindByPinID(ctx context.Context, pinID string) (*db_models.ConnectCurationItem, error)
	Create(ctx context.Context, item *db_models.ConnectCurationItem) error
	Save(ctx context.Context, item *db_models.ConnectCurationItem) error
	ListActive(ctx context.Context, limit int) ([]db_models.ConnectCurationItem, error)
	ListAll(ctx context.Context, limit int) ([]db_models.ConnectCurationItem, error)
}

type curationRepository struct {
	db *gorm.DB
}

func NewCurationRepository(db *gorm.DB) CurationRepository {
	return &curationRepository{db: db}
}

func (r *curationRepository) FindByPinID(ctx context.Context, pinID string) (*db_models.ConnectCurationItem, error) {
	var item db_models.ConnectCurationItem
	err := r.db.WithContext(ctx).First(&item, "pin_id = ?", pinID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *curationRepository) Create(ctx context.Context, item *db_models.ConnectCurationItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *curationRepository) Save(ctx context.Context, item *db_models.ConnectCurationItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// ListActive filters on the active flag only; the time window is applied by the caller.
func (r *curationRepository) ListActive(ctx context.Context, limit int) ([]db_models.ConnectCurationItem, error) {
	var items []db_models.ConnectCurationItem
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("priority DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *curationRepository) ListAll(ctx context.Context, limit int) ([]db_models.ConnectCurationItem, error) {
	var items []db_models.ConnectCurationItem
	err := r.db.WithContext(ctx).
		Order("priority DESC").
		Order("updated_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
