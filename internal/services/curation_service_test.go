package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/request_models"
	"vivuconnect/pkg/utils"
)

func intPtr(i int) *int              { return &i }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestUpsertCurationItem_CreateDefaults(t *testing.T) {
	h := newHarness(t)
	h.lookups.addPin("pin1", "Dragon Bridge", "dn", 16.06, 108.23)

	item, err := h.curation.UpsertCurationItem(context.Background(), "admin1",
		request_models.UpsertCurationRequest{PinID: "pin1"})
	require.NoError(t, err)

	assert.Equal(t, db_models.PinTypePlace, item.PinType)
	assert.True(t, item.Active)
	assert.Equal(t, 0, item.Priority)
	assert.Equal(t, "admin1", item.CreatedBy)
	require.NotNil(t, item.Title)
	assert.Equal(t, "Dragon Bridge", *item.Title)
	assert.True(t, item.CreatedAt.Equal(t0))
}

func TestUpsertCurationItem_PatchesOnlyProvidedFields(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{
		PinID:    "pin1",
		Priority: intPtr(5),
		StartsAt: timePtr(t0.Add(-time.Hour)),
	})
	require.NoError(t, err)

	h.clock.Advance(time.Minute)
	updated, err := h.curation.UpsertCurationItem(ctx, "admin2", request_models.UpsertCurationRequest{
		PinID:  "pin1",
		Active: boolPtr(false),
	})
	require.NoError(t, err)

	assert.False(t, updated.Active)
	assert.Equal(t, 5, updated.Priority)
	require.NotNil(t, updated.StartsAt)
	assert.True(t, updated.StartsAt.Equal(t0.Add(-time.Hour)))
	assert.Equal(t, "admin1", updated.CreatedBy)
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Minute)))

	var count int64
	require.NoError(t, h.db.Model(&db_models.ConnectCurationItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertCurationItem_KeepsSnapshotWhenLookupFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.lookups.addPin("pin1", "Hue Citadel", "hue", 16.47, 107.58)

	_, err := h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{PinID: "pin1"})
	require.NoError(t, err)

	h.lookups.failPins = true
	item, err := h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{
		PinID:    "pin1",
		Priority: intPtr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, item.Title)
	assert.Equal(t, "Hue Citadel", *item.Title)
}

func TestUpsertCurationItem_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{PinID: ""})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{
		PinID:   "pin1",
		PinType: strPtr("venue"),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = h.curation.UpsertCurationItem(ctx, "admin1", request_models.UpsertCurationRequest{
		PinID:    "pin1",
		StartsAt: timePtr(t0.Add(2 * time.Hour)),
		EndsAt:   timePtr(t0.Add(time.Hour)),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	var count int64
	require.NoError(t, h.db.Model(&db_models.ConnectCurationItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetActiveCurationItems_WindowAndPriority(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	upsert := func(req request_models.UpsertCurationRequest) {
		t.Helper()
		_, err := h.curation.UpsertCurationItem(ctx, "admin1", req)
		require.NoError(t, err)
	}
	upsert(request_models.UpsertCurationRequest{PinID: "always", Priority: intPtr(1)})
	upsert(request_models.UpsertCurationRequest{PinID: "top", Priority: intPtr(9)})
	upsert(request_models.UpsertCurationRequest{
		PinID:    "window",
		Priority: intPtr(5),
		StartsAt: timePtr(t0.Add(time.Hour)),
		EndsAt:   timePtr(t0.Add(3 * time.Hour)),
	})
	upsert(request_models.UpsertCurationRequest{PinID: "off", Priority: intPtr(20), Active: boolPtr(false)})

	ids := func() []string {
		items, err := h.curation.GetActiveCurationItems(ctx)
		require.NoError(t, err)
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.PinID)
		}
		return out
	}

	assert.Equal(t, []string{"top", "always"}, ids())

	h.clock.Advance(2 * time.Hour)
	assert.Equal(t, []string{"top", "window", "always"}, ids())

	h.clock.Advance(2 * time.Hour)
	assert.Equal(t, []string{"top", "always"}, ids())

	all, err := h.curation.ListAllCurationItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "off", all[0].PinID)
}
