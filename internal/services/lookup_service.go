package services

import (
	"context"

	"go.uber.org/zap"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/response_models"
	"vivuconnect/internal/repositories"
	mem "vivuconnect/pkg/memcache"
)

// PinLookup resolves a place, activity or event to its display snapshot.
// A nil snapshot with a nil error means the pin does not exist.
type PinLookup interface {
	LookupPin(ctx context.Context, pinID string, pinType db_models.PinType) (*response_models.PinSnapshot, error)
}

// UserLookup resolves a user to its display snapshot.
type UserLookup interface {
	LookupUser(ctx context.Context, userID string) (*response_models.UserSnapshot, error)
}

type catalogPinLookup struct {
	catalogRepo repositories.CatalogRepository
	cache       mem.SnapshotCache
}

func NewCatalogPinLookup(catalogRepo repositories.CatalogRepository, cache mem.SnapshotCache) PinLookup {
	return &catalogPinLookup{catalogRepo: catalogRepo, cache: cache}
}

func (l *catalogPinLookup) LookupPin(ctx context.Context, pinID string, pinType db_models.PinType) (*response_models.PinSnapshot, error) {
	key := "pin:" + string(pinType) + ":" + pinID
	if v, ok := l.cache.Get(key); ok {
		return v.(*response_models.PinSnapshot), nil
	}

	var snap *response_models.PinSnapshot
	if pinType == db_models.PinTypeEvent {
		event, err := l.catalogRepo.GetEventByID(ctx, pinID)
		if err != nil || event == nil {
			return nil, err
		}
		snap = &response_models.PinSnapshot{
			Title:     nonEmpty(event.Title),
			Region:    nonEmpty(event.Region),
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
		}
	} else {
		poi, err := l.catalogRepo.GetPoiByID(ctx, pinID)
		if err != nil || poi == nil {
			return nil, err
		}
		lat, lng := poi.Latitude, poi.Longitude
		snap = &response_models.PinSnapshot{
			Title:     nonEmpty(poi.Name),
			Region:    nonEmpty(poi.Region),
			Latitude:  &lat,
			Longitude: &lng,
		}
	}

	l.cache.Set(key, snap)
	return snap, nil
}

type accountUserLookup struct {
	accountRepo repositories.AccountRepository
	cache       mem.SnapshotCache
}

func NewAccountUserLookup(accountRepo repositories.AccountRepository, cache mem.SnapshotCache) UserLookup {
	return &accountUserLookup{accountRepo: accountRepo, cache: cache}
}

func (l *accountUserLookup) LookupUser(ctx context.Context, userID string) (*response_models.UserSnapshot, error) {
	key := "user:" + userID
	if v, ok := l.cache.Get(key); ok {
		return v.(*response_models.UserSnapshot), nil
	}

	account, err := l.accountRepo.FindById(ctx, userID)
	if err != nil || account == nil {
		return nil, err
	}
	snap := &response_models.UserSnapshot{
		DisplayName: nonEmpty(account.Name),
		PhotoURL:    account.AvatarURL,
	}

	l.cache.Set(key, snap)
	return snap, nil
}

// snapshotResolver wraps both lookups so that a failure degrades to nil
// instead of failing the write that asked for it.
type snapshotResolver struct {
	pins   PinLookup
	users  UserLookup
	logger *zap.Logger
}

func (r snapshotResolver) pin(ctx context.Context, pinID string, pinType db_models.PinType) *response_models.PinSnapshot {
	snap, err := r.pins.LookupPin(ctx, pinID, pinType)
	if err != nil {
		r.logger.Warn("pin lookup failed",
			zap.String("pin_id", pinID),
			zap.String("pin_type", string(pinType)),
			zap.Error(err))
		return nil
	}
	return snap
}

func (r snapshotResolver) user(ctx context.Context, userID string) *response_models.UserSnapshot {
	snap, err := r.users.LookupUser(ctx, userID)
	if err != nil {
		r.logger.Warn("user lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return snap
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
