package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vivuconnect/internal/infra"
	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/response_models"
	"vivuconnect/internal/repositories"
	"vivuconnect/pkg/utils"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "connect.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	require.NoError(t, db.AutoMigrate(&db_models.POI{}, &db_models.Event{}, &db_models.Account{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func strPtr(s string) *string { return &s }

// fakeLookups serves snapshots from maps and can be told to fail.
type fakeLookups struct {
	mu       sync.Mutex
	pins     map[string]*response_models.PinSnapshot
	users    map[string]*response_models.UserSnapshot
	failPins bool
	failUser bool
	pinCalls int
}

func newFakeLookups() *fakeLookups {
	return &fakeLookups{
		pins:  map[string]*response_models.PinSnapshot{},
		users: map[string]*response_models.UserSnapshot{},
	}
}

func (f *fakeLookups) LookupPin(_ context.Context, pinID string, _ db_models.PinType) (*response_models.PinSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinCalls++
	if f.failPins {
		return nil, errors.New("catalog unavailable")
	}
	return f.pins[pinID], nil
}

func (f *fakeLookups) LookupUser(_ context.Context, userID string) (*response_models.UserSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUser {
		return nil, errors.New("identity unavailable")
	}
	return f.users[userID], nil
}

func (f *fakeLookups) addPin(id, title, region string, lat, lng float64) {
	f.pins[id] = &response_models.PinSnapshot{
		Title:     strPtr(title),
		Region:    strPtr(region),
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func (f *fakeLookups) addUser(id, name string) {
	f.users[id] = &response_models.UserSnapshot{DisplayName: strPtr(name)}
}

// harness wires every service over one SQLite database and a fixed clock.
type harness struct {
	db       *gorm.DB
	clock    *utils.FixedClock
	lookups  *fakeLookups
	activity ActivityServiceInterface
	checkIns CheckInServiceInterface
	joins    JoinServiceInterface
	venues   VenueServiceInterface
	curation CurationServiceInterface
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := newTestDB(t)
	clock := &utils.FixedClock{T: t0}
	lookups := newFakeLookups()
	log := zap.NewNop()

	activity := NewActivityService(repositories.NewActivityRepository(db), clock, log)
	checkIns := NewCheckInService(repositories.NewCheckInRepository(db), activity, lookups, lookups, clock, log)

	return &harness{
		db:       db,
		clock:    clock,
		lookups:  lookups,
		activity: activity,
		checkIns: checkIns,
		joins:    NewJoinService(repositories.NewJoinRepository(db), activity, lookups, lookups, clock, log),
		venues:   NewVenueService(checkIns),
		curation: NewCurationService(repositories.NewCurationRepository(db), lookups, clock, log),
	}
}

func (h *harness) countActivities(t *testing.T, kind db_models.ActivityType, refID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Model(&db_models.UserActivity{}).
		Where("type = ? AND ref_id = ?", kind, refID).
		Count(&n).Error)
	return n
}

func newFixedClock() *utils.FixedClock { return &utils.FixedClock{T: t0} }

func nopLogger() *zap.Logger { return zap.NewNop() }

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
