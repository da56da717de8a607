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
	DefaultParticipantsLimit = 50
	MaxParticipantsLimit     = 200
)

type JoinServiceInterface interface {
	JoinEvent(ctx context.Context, userID, eventID string) (*db_models.Join, error)
	LeaveEvent(ctx context.Context, userID, eventID string) (*db_models.Join, error)
	IsJoined(ctx context.Context, userID, eventID string) (bool, error)
	ListParticipants(ctx context.Context, eventID string, limit int) ([]db_models.Join, error)
}

type JoinService struct {
	joinRepo  repositories.JoinRepository
	activity  ActivityServiceInterface
	snapshots snapshotResolver
	clock     utils.Clock
}

func NewJoinService(
	joinRepo repositories.JoinRepository,
	activity ActivityServiceInterface,
	pins PinLookup,
	users UserLookup,
	clock utils.Clock,
	logger *zap.Logger,
) JoinServiceInterface {
	return &JoinService{
		joinRepo:  joinRepo,
		activity:  activity,
		snapshots: snapshotResolver{pins: pins, users: users, logger: logger},
		clock:     clock,
	}
}

func (s *JoinService) load(ctx context.Context, userID, eventID string) (string, string, *db_models.Join, error) {
	userID, err := requireID("userId", userID)
	if err != nil {
		return "", "", nil, err
	}
	eventID, err = requireID("eventId", eventID)
	if err != nil {
		return "", "", nil, err
	}

	existing, err := s.joinRepo.FindByID(ctx, db_models.JoinKey(userID, eventID))
	if err != nil {
		return "", "", nil, dbError("load join", err)
	}
	return userID, eventID, existing, nil
}

// JoinEvent moves the pair to joined. Already joined is a no-op.
func (s *JoinService) JoinEvent(ctx context.Context, userID, eventID string) (*db_models.Join, error) {
	userID, eventID, existing, err := s.load(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if existing.IsJoined() {
		return existing, nil
	}

	event := s.snapshots.pin(ctx, eventID, db_models.PinTypeEvent)
	user := s.snapshots.user(ctx, userID)
	now := s.clock.Now()

	join := existing
	if join != nil {
		join.Status = db_models.JoinStatusJoined
		join.UpdatedAt = now
		applyJoinSnapshots(join, event, user)
		if err := s.joinRepo.Save(ctx, join); err != nil {
			return nil, dbError("rejoin event", err)
		}
	} else {
		join = s.newJoin(userID, eventID, db_models.JoinStatusJoined, now)
		applyJoinSnapshots(join, event, user)
		if err := s.joinRepo.Create(ctx, join); err != nil {
			return nil, dbError("join event", err)
		}
	}

	lat, lng := snapshotCoordinates(event)
	s.activity.Record(ctx, joinActivity(db_models.ActivityJoin, join, lat, lng, now))
	return join, nil
}

// LeaveEvent moves the pair to left. With no prior record it creates one
// directly in left so a missing row is never read as joined.
func (s *JoinService) LeaveEvent(ctx context.Context, userID, eventID string) (*db_models.Join, error) {
	userID, eventID, existing, err := s.load(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == db_models.JoinStatusLeft {
		return existing, nil
	}

	now := s.clock.Now()

	if existing != nil {
		existing.Status = db_models.JoinStatusLeft
		existing.UpdatedAt = now
		if err := s.joinRepo.Save(ctx, existing); err != nil {
			return nil, dbError("leave event", err)
		}
		s.activity.Record(ctx, joinActivity(db_models.ActivityLeave, existing, nil, nil, now))
		return existing, nil
	}

	event := s.snapshots.pin(ctx, eventID, db_models.PinTypeEvent)
	user := s.snapshots.user(ctx, userID)

	join := s.newJoin(userID, eventID, db_models.JoinStatusLeft, now)
	applyJoinSnapshots(join, event, user)
	if err := s.joinRepo.Create(ctx, join); err != nil {
		return nil, dbError("leave event", err)
	}

	lat, lng := snapshotCoordinates(event)
	s.activity.Record(ctx, joinActivity(db_models.ActivityLeave, join, lat, lng, now))
	return join, nil
}

func (s *JoinService) IsJoined(ctx context.Context, userID, eventID string) (bool, error) {
	_, _, existing, err := s.load(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return existing.IsJoined(), nil
}

func (s *JoinService) ListParticipants(ctx context.Context, eventID string, limit int) ([]db_models.Join, error) {
	eventID, err := requireID("eventId", eventID)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit, DefaultParticipantsLimit, MaxParticipantsLimit)

	joins, err := s.joinRepo.ListJoinedByEvent(ctx, eventID, limit)
	if err != nil {
		return nil, dbError("list participants", err)
	}
	return joins, nil
}

func (s *JoinService) newJoin(userID, eventID string, status db_models.JoinStatus, now time.Time) *db_models.Join {
	return &db_models.Join{
		ID:        db_models.JoinKey(userID, eventID),
		UserID:    userID,
		EventID:   eventID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func applyJoinSnapshots(j *db_models.Join, event *response_models.PinSnapshot, user *response_models.UserSnapshot) {
	j.EventTitle, j.Region = nil, nil
	if event != nil {
		j.EventTitle = event.Title
		j.Region = event.Region
	}
	j.UserName, j.UserPhoto = nil, nil
	if user != nil {
		j.UserName = user.DisplayName
		j.UserPhoto = user.PhotoURL
	}
}

func snapshotCoordinates(snap *response_models.PinSnapshot) (*float64, *float64) {
	if snap == nil {
		return nil, nil
	}
	return snap.Latitude, snap.Longitude
}
