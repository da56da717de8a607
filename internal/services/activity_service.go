package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/repositories"
	"vivuconnect/pkg/utils"
)

const (
	DefaultFeedLimit = 50
	MaxFeedLimit     = 100
)

type ActivityServiceInterface interface {
	// Record appends a feed row. Failures are logged, never returned.
	Record(ctx context.Context, activity *db_models.UserActivity)
	GetActiveFeed(ctx context.Context, region *string, limit int) ([]db_models.UserActivity, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	clock        utils.Clock
	logger       *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, clock utils.Clock, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (s *ActivityService) Record(ctx context.Context, activity *db_models.UserActivity) {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = s.clock.Now()
	}
	if err := s.activityRepo.Append(ctx, activity); err != nil {
		s.logger.Error("failed to append activity",
			zap.String("type", string(activity.Type)),
			zap.String("user_id", activity.UserID),
			zap.String("ref_id", activity.RefID),
			zap.Error(err))
	}
}

func (s *ActivityService) GetActiveFeed(ctx context.Context, region *string, limit int) ([]db_models.UserActivity, error) {
	limit = clampLimit(limit, DefaultFeedLimit, MaxFeedLimit)

	// Over-fetch so that dropping expired check-in rows still fills the page.
	rows, err := s.activityRepo.ListRecent(ctx, normalizeRegion(region), limit*2)
	if err != nil {
		return nil, dbError("list activity", err)
	}

	now := s.clock.Now()
	feed := make([]db_models.UserActivity, 0, limit)
	for i := range rows {
		if !rows[i].VisibleAt(now) {
			continue
		}
		feed = append(feed, rows[i])
		if len(feed) == limit {
			break
		}
	}
	return feed, nil
}

func checkInActivity(c *db_models.CheckIn) *db_models.UserActivity {
	pinID := c.PinID
	pinType := c.PinType
	expiresAt := c.ExpiresAt
	return &db_models.UserActivity{
		Type:      db_models.ActivityCheckIn,
		UserID:    c.UserID,
		UserName:  c.UserName,
		UserPhoto: c.UserPhoto,
		PinID:     &pinID,
		PinType:   &pinType,
		PinTitle:  c.PinTitle,
		Region:    c.Region,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		RefID:     c.ID,
		ExpiresAt: &expiresAt,
		CreatedAt: c.CreatedAt,
	}
}

func joinActivity(kind db_models.ActivityType, j *db_models.Join, lat, lng *float64, at time.Time) *db_models.UserActivity {
	eventID := j.EventID
	pinType := db_models.PinTypeEvent
	return &db_models.UserActivity{
		Type:      kind,
		UserID:    j.UserID,
		UserName:  j.UserName,
		UserPhoto: j.UserPhoto,
		PinID:     &eventID,
		PinType:   &pinType,
		PinTitle:  j.EventTitle,
		Region:    j.Region,
		Latitude:  lat,
		Longitude: lng,
		RefID:     j.ID,
		CreatedAt: at,
	}
}
