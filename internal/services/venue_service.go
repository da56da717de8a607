package services

import (
	"context"
	"sort"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/response_models"
)

const (
	DefaultLiveVenueLimit = 50
	MaxLiveVenueLimit     = 100
)

type VenueServiceInterface interface {
	GetLiveVenues(ctx context.Context, region *string, limit int) ([]response_models.LiveVenue, error)
}

type VenueService struct {
	checkIns CheckInServiceInterface
}

func NewVenueService(checkIns CheckInServiceInterface) VenueServiceInterface {
	return &VenueService{checkIns: checkIns}
}

func (s *VenueService) GetLiveVenues(ctx context.Context, region *string, limit int) ([]response_models.LiveVenue, error) {
	limit = clampLimit(limit, DefaultLiveVenueLimit, MaxLiveVenueLimit)

	active, err := s.checkIns.GetActiveCheckIns(ctx, region, ActiveCheckInHardCap)
	if err != nil {
		return nil, err
	}
	return aggregateLiveVenues(active, limit), nil
}

// aggregateLiveVenues groups check-ins by pin, keeping the first-seen
// snapshot, and returns the limit busiest pins. Ties keep input order.
func aggregateLiveVenues(checkIns []db_models.CheckIn, limit int) []response_models.LiveVenue {
	index := make(map[string]int, len(checkIns))
	venues := make([]response_models.LiveVenue, 0)

	for i := range checkIns {
		c := &checkIns[i]
		if pos, ok := index[c.PinID]; ok {
			venues[pos].ActiveCount++
			continue
		}
		index[c.PinID] = len(venues)
		venues = append(venues, response_models.LiveVenue{
			PinID:       c.PinID,
			PinType:     c.PinType,
			PinTitle:    c.PinTitle,
			Region:      c.Region,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			ActiveCount: 1,
		})
	}

	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].ActiveCount > venues[j].ActiveCount
	})

	if len(venues) > limit {
		venues = venues[:limit]
	}
	return venues
}
