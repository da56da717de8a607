package services

import (
	"context"

	"go.uber.org/zap"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/request_models"
	"vivuconnect/internal/models/response_models"
	"vivuconnect/internal/repositories"
	"vivuconnect/pkg/utils"
)

// CurationListCap bounds every curation read.
const CurationListCap = 100

type CurationServiceInterface interface {
	UpsertCurationItem(ctx context.Context, adminID string, req request_models.UpsertCurationRequest) (*db_models.ConnectCurationItem, error)
	GetActiveCurationItems(ctx context.Context) ([]db_models.ConnectCurationItem, error)
	ListAllCurationItems(ctx context.Context) ([]db_models.ConnectCurationItem, error)
}

type CurationService struct {
	curationRepo repositories.CurationRepository
	snapshots    snapshotResolver
	clock        utils.Clock
}

func NewCurationService(
	curationRepo repositories.CurationRepository,
	pins PinLookup,
	clock utils.Clock,
	logger *zap.Logger,
) CurationServiceInterface {
	return &CurationService{
		curationRepo: curationRepo,
		snapshots:    snapshotResolver{pins: pins, logger: logger},
		clock:        clock,
	}
}

// UpsertCurationItem patches the item for req.PinID, creating it when absent.
// Only fields present in req are changed on update.
func (s *CurationService) UpsertCurationItem(ctx context.Context, adminID string, req request_models.UpsertCurationRequest) (*db_models.ConnectCurationItem, error) {
	adminID, err := requireID("adminId", adminID)
	if err != nil {
		return nil, err
	}
	pinID, err := requireID("pinId", req.PinID)
	if err != nil {
		return nil, err
	}
	if req.PinType != nil && !db_models.PinType(*req.PinType).Valid() {
		return nil, invalid("pinType must be one of place, activity, event")
	}

	existing, err := s.curationRepo.FindByPinID(ctx, pinID)
	if err != nil {
		return nil, dbError("load curation item", err)
	}

	now := s.clock.Now()

	if existing != nil {
		patchCurationItem(existing, req)
		applyCurationSnapshot(existing, s.snapshots.pin(ctx, pinID, existing.PinType))
		if err := validateWindow(existing); err != nil {
			return nil, err
		}
		existing.UpdatedAt = now
		if err := s.curationRepo.Save(ctx, existing); err != nil {
			return nil, dbError("update curation item", err)
		}
		return existing, nil
	}

	item := &db_models.ConnectCurationItem{
		PinID:     pinID,
		PinType:   db_models.PinTypePlace,
		Active:    true,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patchCurationItem(item, req)
	applyCurationSnapshot(item, s.snapshots.pin(ctx, pinID, item.PinType))
	if err := validateWindow(item); err != nil {
		return nil, err
	}
	if err := s.curationRepo.Create(ctx, item); err != nil {
		return nil, dbError("create curation item", err)
	}
	return item, nil
}

// GetActiveCurationItems returns active items inside their time window,
// highest priority first. The window is filtered after the store query.
func (s *CurationService) GetActiveCurationItems(ctx context.Context) ([]db_models.ConnectCurationItem, error) {
	items, err := s.curationRepo.ListActive(ctx, CurationListCap)
	if err != nil {
		return nil, dbError("list curation items", err)
	}

	now := s.clock.Now()
	out := make([]db_models.ConnectCurationItem, 0, len(items))
	for i := range items {
		if items[i].WithinWindow(now) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

func (s *CurationService) ListAllCurationItems(ctx context.Context) ([]db_models.ConnectCurationItem, error) {
	items, err := s.curationRepo.ListAll(ctx, CurationListCap)
	if err != nil {
		return nil, dbError("list curation items", err)
	}
	return items, nil
}

func patchCurationItem(item *db_models.ConnectCurationItem, req request_models.UpsertCurationRequest) {
	if req.PinType != nil {
		item.PinType = db_models.PinType(*req.PinType)
	}
	if req.Priority != nil {
		item.Priority = *req.Priority
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if req.StartsAt != nil {
		t := req.StartsAt.UTC()
		item.StartsAt = &t
	}
	if req.EndsAt != nil {
		t := req.EndsAt.UTC()
		item.EndsAt = &t
	}
}

// applyCurationSnapshot keeps the stored snapshot when the lookup is empty.
func applyCurationSnapshot(item *db_models.ConnectCurationItem, snap *response_models.PinSnapshot) {
	if snap == nil {
		return
	}
	item.Title = snap.Title
	item.Region = snap.Region
	item.Latitude = snap.Latitude
	item.Longitude = snap.Longitude
}

func validateWindow(item *db_models.ConnectCurationItem) error {
	if item.StartsAt != nil && item.EndsAt != nil && item.EndsAt.Before(*item.StartsAt) {
		return invalid("endsAt must not be before startsAt")
	}
	return nil
}
