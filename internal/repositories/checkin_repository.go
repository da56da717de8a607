package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"vivuconnect/internal/models/db_models"
)

type CheckInRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.CheckIn, error)
	Create(ctx context.Context, checkIn *db_models.CheckIn) error
	Save(ctx context.Context, checkIn *db_models.CheckIn) error

	// ListActive returns records with expires_at > now, in store order.
	ListActive(ctx context.Context, now time.Time, region *string, limit int) ([]db_models.CheckIn, error)
	ListActiveByUser(ctx context.Context, userID string, now time.Time) ([]db_models.CheckIn, error)

	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) FindByID(ctx context.Context, id string) (*db_models.CheckIn, error) {
	var checkIn db_models.CheckIn
	err := r.db.WithContext(ctx).First(&checkIn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *db_models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) Save(ctx context.Context, checkIn *db_models.CheckIn) error {
	return r.db.WithContext(ctx).Save(checkIn).Error
}

func (r *checkInRepository) ListActive(ctx context.Context, now time.Time, region *string, limit int) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	q := r.db.WithContext(ctx).Where("expires_at > ?", now)
	if region != nil {
		q = q.Where("region = ?", *region)
	}
	if err := q.Limit(limit).Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) ListActiveByUser(ctx context.Context, userID string, now time.Time) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("updated_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", cutoff).
		Delete(&db_models.CheckIn{})
	return result.RowsAffected, result.Error
}
