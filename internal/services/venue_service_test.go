package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivuconnect/internal/models/db_models"
)

func TestGetLiveVenues_RanksByActiveCount(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.lookups.addPin("pinA", "Cho Lon", "hcm", 10.75, 106.65)
	h.lookups.addPin("pinB", "Bitexco", "hcm", 10.77, 106.70)

	for _, step := range []struct{ user, pin string }{
		{"u1", "pinB"},
		{"u1", "pinA"},
		{"u2", "pinA"},
	} {
		_, err := h.checkIns.CheckIn(ctx, step.user, step.pin, db_models.PinTypePlace)
		require.NoError(t, err)
	}

	venues, err := h.venues.GetLiveVenues(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "pinA", venues[0].PinID)
	assert.Equal(t, 2, venues[0].ActiveCount)
	require.NotNil(t, venues[0].PinTitle)
	assert.Equal(t, "Cho Lon", *venues[0].PinTitle)
	assert.Equal(t, "pinB", venues[1].PinID)
	assert.Equal(t, 1, venues[1].ActiveCount)
}

func TestGetLiveVenues_IgnoresExpiredAndRepeatCheckIns(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.checkIns.CheckIn(ctx, "gone", "pinA", db_models.PinTypePlace)
	require.NoError(t, err)
	h.clock.Advance(CheckInTTL + time.Minute)

	_, err = h.checkIns.CheckIn(ctx, "u1", "pinA", db_models.PinTypePlace)
	require.NoError(t, err)
	_, err = h.checkIns.CheckIn(ctx, "u1", "pinA", db_models.PinTypePlace)
	require.NoError(t, err)

	venues, err := h.venues.GetLiveVenues(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, 1, venues[0].ActiveCount)
}

func TestGetLiveVenues_EmptyWhenNobodyPresent(t *testing.T) {
	h := newHarness(t)

	venues, err := h.venues.GetLiveVenues(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestAggregateLiveVenues_StableTiesAndLimit(t *testing.T) {
	checkIns := []db_models.CheckIn{
		{UserID: "u1", PinID: "x", PinType: db_models.PinTypePlace, PinTitle: strPtr("first")},
		{UserID: "u2", PinID: "y", PinType: db_models.PinTypeEvent},
		{UserID: "u3", PinID: "z", PinType: db_models.PinTypePlace},
		{UserID: "u4", PinID: "x", PinType: db_models.PinTypePlace, PinTitle: strPtr("second")},
		{UserID: "u5", PinID: "z", PinType: db_models.PinTypePlace},
	}

	venues := aggregateLiveVenues(checkIns, 10)
	require.Len(t, venues, 3)
	assert.Equal(t, []string{"x", "z", "y"}, []string{venues[0].PinID, venues[1].PinID, venues[2].PinID})
	assert.Equal(t, "first", *venues[0].PinTitle)
	assert.Equal(t, db_models.PinTypeEvent, venues[2].PinType)

	top := aggregateLiveVenues(checkIns, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "x", top[0].PinID)
}
