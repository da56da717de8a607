package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/response_models"
	"vivuconnect/internal/repositories"
	"vivuconnect/pkg/utils"
)

const (
	// CheckInTTL is how long a check-in counts as presence after its last write.
	CheckInTTL = 4 * time.Hour

	// ActiveCheckInHardCap bounds every active-set read, including aggregation.
	ActiveCheckInHardCap = 500
)

type CheckInServiceInterface interface {
	CheckIn(ctx context.Context, userID, pinID string, pinType db_models.PinType) (*db_models.CheckIn, error)
	GetActiveCheckIns(ctx context.Context, region *string, limit int) ([]db_models.CheckIn, error)
	GetUserActiveCheckIns(ctx context.Context, userID string) ([]db_models.CheckIn, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type CheckInService struct {
	checkInRepo repositories.CheckInRepository
	activity    ActivityServiceInterface
	snapshots   snapshotResolver
	clock       utils.Clock
	logger      *zap.Logger
}

func NewCheckInService(
	checkInRepo repositories.CheckInRepository,
	activity ActivityServiceInterface,
	pins PinLookup,
	users UserLookup,
	clock utils.Clock,
	logger *zap.Logger,
) CheckInServiceInterface {
	return &CheckInService{
		checkInRepo: checkInRepo,
		activity:    activity,
		snapshots:   snapshotResolver{pins: pins, users: users, logger: logger},
		clock:       clock,
		logger:      logger,
	}
}

// CheckIn creates the (user, pin) presence record or refreshes its expiry.
// Only the first arrival is written to the feed.
func (s *CheckInService) CheckIn(ctx context.Context, userID, pinID string, pinType db_models.PinType) (*db_models.CheckIn, error) {
	userID, err := requireID("userId", userID)
	if err != nil {
		return nil, err
	}
	pinID, err = requireID("pinId", pinID)
	if err != nil {
		return nil, err
	}
	if !pinType.Valid() {
		return nil, invalid("pinType must be one of place, activity, event")
	}

	key := db_models.CheckInKey(userID, pinType, pinID)
	existing, err := s.checkInRepo.FindByID(ctx, key)
	if err != nil {
		return nil, dbError("load check-in", err)
	}

	pin := s.snapshots.pin(ctx, pinID, pinType)
	user := s.snapshots.user(ctx, userID)

	now := s.clock.Now()
	expiresAt := now.Add(CheckInTTL)

	if existing != nil {
		return s.refresh(ctx, existing, pin, user, now, expiresAt)
	}

	checkIn := &db_models.CheckIn{
		ID:        key,
		UserID:    userID,
		PinID:     pinID,
		PinType:   pinType,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCheckInSnapshots(checkIn, pin, user)

	if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		// A concurrent first check-in may have won the insert; fall back to
		// refreshing it so the caller still gets a presence record.
		if winner, findErr := s.checkInRepo.FindByID(ctx, key); findErr == nil && winner != nil {
			s.logger.Warn("check-in insert lost race, refreshing existing record",
				zap.String("check_in_id", key),
				zap.Error(err))
			return s.refresh(ctx, winner, pin, user, now, expiresAt)
		}
		return nil, dbError("create check-in", err)
	}

	s.activity.Record(ctx, checkInActivity(checkIn))
	return checkIn, nil
}

func (s *CheckInService) refresh(
	ctx context.Context,
	checkIn *db_models.CheckIn,
	pin *response_models.PinSnapshot,
	user *response_models.UserSnapshot,
	now, expiresAt time.Time,
) (*db_models.CheckIn, error) {
	checkIn.ExpiresAt = expiresAt
	checkIn.UpdatedAt = now
	applyCheckInSnapshots(checkIn, pin, user)

	if err := s.checkInRepo.Save(ctx, checkIn); err != nil {
		return nil, dbError("refresh check-in", err)
	}
	return checkIn, nil
}

func (s *CheckInService) GetActiveCheckIns(ctx context.Context, region *string, limit int) ([]db_models.CheckIn, error) {
	limit = clampLimit(limit, ActiveCheckInHardCap, ActiveCheckInHardCap)

	checkIns, err := s.checkInRepo.ListActive(ctx, s.clock.Now(), normalizeRegion(region), limit)
	if err != nil {
		return nil, dbError("list active check-ins", err)
	}
	return checkIns, nil
}

func (s *CheckInService) GetUserActiveCheckIns(ctx context.Context, userID string) ([]db_models.CheckIn, error) {
	userID, err := requireID("userId", userID)
	if err != nil {
		return nil, err
	}

	checkIns, err := s.checkInRepo.ListActiveByUser(ctx, userID, s.clock.Now())
	if err != nil {
		return nil, dbError("list user check-ins", err)
	}
	return checkIns, nil
}

// PurgeExpired deletes check-ins that expired more than retention ago. Reads
// already exclude them; this only reclaims storage.
func (s *CheckInService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 0 {
		return 0, invalid("retention must not be negative")
	}
	cutoff := s.clock.Now().Add(-retention)

	n, err := s.checkInRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, dbError("purge expired check-ins", err)
	}
	return n, nil
}

// applyCheckInSnapshots overwrites every denormalized field, clearing the
// ones whose lookup came back empty.
func applyCheckInSnapshots(c *db_models.CheckIn, pin *response_models.PinSnapshot, user *response_models.UserSnapshot) {
	c.PinTitle, c.Region, c.Latitude, c.Longitude = nil, nil, nil, nil
	if pin != nil {
		c.PinTitle = pin.Title
		c.Region = pin.Region
		c.Latitude = pin.Latitude
		c.Longitude = pin.Longitude
	}
	c.UserName, c.UserPhoto = nil, nil
	if user != nil {
		c.UserName = user.DisplayName
		c.UserPhoto = user.PhotoURL
	}
}
