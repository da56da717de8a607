package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/repositories"
	mem "vivuconnect/pkg/memcache"
)

func TestCatalogPinLookup_PlacesAndEvents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	poi := db_models.POI{Name: "Ba Na Hills", Latitude: 15.99, Longitude: 107.99, Region: "dn"}
	require.NoError(t, db.Create(&poi).Error)
	lat := 21.02
	event := db_models.Event{Title: "Tet Fair", Latitude: &lat, Region: "hn"}
	require.NoError(t, db.Create(&event).Error)

	lookup := NewCatalogPinLookup(repositories.NewCatalogRepository(db), mem.NewSnapshotCache(time.Minute))

	place, err := lookup.LookupPin(ctx, poi.ID.String(), db_models.PinTypePlace)
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Ba Na Hills", *place.Title)
	assert.Equal(t, "dn", *place.Region)
	assert.InDelta(t, 107.99, *place.Longitude, 1e-9)

	ev, err := lookup.LookupPin(ctx, event.ID.String(), db_models.PinTypeEvent)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "Tet Fair", *ev.Title)
	assert.Nil(t, ev.Longitude)

	// An event id looked up as a place is a miss.
	miss, err := lookup.LookupPin(ctx, event.ID.String(), db_models.PinTypePlace)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCatalogPinLookup_CachesHitsNotMisses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	poi := db_models.POI{Name: "Cu Chi Tunnels", Region: "hcm"}
	require.NoError(t, db.Create(&poi).Error)

	lookup := NewCatalogPinLookup(repositories.NewCatalogRepository(db), mem.NewSnapshotCache(time.Minute))

	_, err := lookup.LookupPin(ctx, poi.ID.String(), db_models.PinTypeActivity)
	require.NoError(t, err)
	require.NoError(t, db.Model(&poi).Update("name", "Renamed").Error)

	cached, err := lookup.LookupPin(ctx, poi.ID.String(), db_models.PinTypeActivity)
	require.NoError(t, err)
	assert.Equal(t, "Cu Chi Tunnels", *cached.Title)

	missing := "b8f2c7d0-0000-4000-8000-000000000001"
	miss, err := lookup.LookupPin(ctx, missing, db_models.PinTypePlace)
	require.NoError(t, err)
	assert.Nil(t, miss)

	later := db_models.POI{Name: "Late Arrival"}
	later.ID = mustParseUUID(t, missing)
	require.NoError(t, db.Create(&later).Error)

	hit, err := lookup.LookupPin(ctx, missing, db_models.PinTypePlace)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Late Arrival", *hit.Title)
	assert.Nil(t, hit.Region)
}

func TestAccountUserLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	photo := "https://cdn.example.com/a.png"
	account := db_models.Account{Name: "Huong", Email: "huong@example.com", AvatarURL: &photo, Role: "user"}
	require.NoError(t, db.Create(&account).Error)

	lookup := NewAccountUserLookup(repositories.NewAccountRepository(db), mem.NewSnapshotCache(0))

	snap, err := lookup.LookupUser(ctx, account.ID.String())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "Huong", *snap.DisplayName)
	assert.Equal(t, photo, *snap.PhotoURL)

	none, err := lookup.LookupUser(ctx, "b8f2c7d0-0000-4000-8000-00000000beef")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCheckIn_ResolvesThroughCatalog(t *testing.T) {
	db := newTestDB(t)
	poi := db_models.POI{Name: "Long Bien Bridge", Latitude: 21.04, Longitude: 105.86, Region: "hn"}
	require.NoError(t, db.Create(&poi).Error)
	account := db_models.Account{Name: "Quan", Email: "quan@example.com"}
	require.NoError(t, db.Create(&account).Error)

	cache := mem.NewSnapshotCache(time.Minute)
	clock := newFixedClock()
	activity := NewActivityService(repositories.NewActivityRepository(db), clock, nopLogger())
	svc := NewCheckInService(
		repositories.NewCheckInRepository(db),
		activity,
		NewCatalogPinLookup(repositories.NewCatalogRepository(db), cache),
		NewAccountUserLookup(repositories.NewAccountRepository(db), cache),
		clock,
		nopLogger(),
	)

	c, err := svc.CheckIn(context.Background(), account.ID.String(), poi.ID.String(), db_models.PinTypePlace)
	require.NoError(t, err)
	require.NotNil(t, c.PinTitle)
	assert.Equal(t, "Long Bien Bridge", *c.PinTitle)
	require.NotNil(t, c.Region)
	assert.Equal(t, "hn", *c.Region)
	require.NotNil(t, c.UserName)
	assert.Equal(t, "Quan", *c.UserName)
	assert.Nil(t, c.UserPhoto)
}
