package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"vivuconnect/internal/models/db_models"
)

type JoinRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Join, error)
	Create(ctx context.Context, join *db_models.Join) error
	Save(ctx context.Context, join *db_models.Join) error
	ListJoinedByEvent(ctx context.Context, eventID string, limit int) ([]db_models.Join, error)
}

type joinRepository struct {
	db *gorm.DB
}

func NewJoinRepository(db *gorm.DB) JoinRepository {
	return &joinRepository{db: db}
}

func (r *joinRepository) FindByID(ctx context.Context, id string) (*db_models.Join, error) {
	var join db_models.Join
	err := r.db.WithContext(ctx).First(&join, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &join, nil
}

func (r *joinRepository) Create(ctx context.Context, join *db_models.Join) error {
	return r.db.WithContext(ctx).Create(join).Error
}

func (r *joinRepository) Save(ctx context.Context, join *db_models.Join) error {
	return r.db.WithContext(ctx).Save(join).Error
}

func (r *joinRepository) ListJoinedByEvent(ctx context.Context, eventID string, limit int) ([]db_models.Join, error) {
	var joins []db_models.Join
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, db_models.JoinStatusJoined).
		Order("updated_at DESC").
		Limit(limit).
		Find(&joins).Error
	if err != nil {
		return nil, err
	}
	return joins, nil
}
