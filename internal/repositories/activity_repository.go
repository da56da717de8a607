package repositories

import (
	"context"

	"gorm.io/gorm"
	"vivuconnect/internal/models/db_models"
)

// ActivityRepository is append-only: there is no update or delete.
type ActivityRepository interface {
	Append(ctx context.Context, activity *db_models.UserActivity) error
	ListRecent(ctx context.Context, region *string, limit int) ([]db_models.UserActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, activity *db_models.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) ListRecent(ctx context.Context, region *string, limit int) ([]db_models.UserActivity, error) {
	var rows []db_models.UserActivity
	q := r.db.WithContext(ctx)
	if region != nil {
		q = q.Where("region = ?", *region)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
