package services_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/services"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.GameSession{}, &models.SeasonArchive{}))
	return db
}

func testSessionService(t *testing.T) *services.SessionService {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return services.NewSessionService(testDB(t), log)
}

func TestCreateSession_StartsAtLowA(t *testing.T) {
	svc := testSessionService(t)

	session, err := svc.CreateSession("user-1", "River City Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, session.Status)
	assert.Equal(t, 1, session.Season)
	assert.Equal(t, "River City Rascals", session.FranchiseName)

	state, err := session.DecodeState()
	require.NoError(t, err)
	assert.Equal(t, models.TierLowA, state.Franchise.Tier)
	assert.Equal(t, 100000, state.Franchise.Budget)
	assert.Equal(t, 50000, state.Franchise.Reserves)
	assert.Equal(t, 2500, state.Franchise.StadiumCapacity)
	assert.Equal(t, "River City", state.City.Name)
	assert.Empty(t, state.Roster)
}

func TestSessionRoundTrip(t *testing.T) {
	svc := testSessionService(t)

	created, err := svc.CreateSession("user-1", "River City Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)

	state, err := created.DecodeState()
	require.NoError(t, err)
	state.Franchise.Reserves = 75000
	state.Record = models.SeasonRecord{Wins: 80, Losses: 60}
	require.NoError(t, created.EncodeState(state))
	require.NoError(t, svc.SaveSession(created))

	loaded, err := svc.GetSession(created.ID)
	require.NoError(t, err)
	loadedState, err := loaded.DecodeState()
	require.NoError(t, err)

	assert.Equal(t, 75000, loadedState.Franchise.Reserves)
	assert.Equal(t, 80, loaded.Wins)
	assert.Equal(t, 60, loaded.Losses)
}

func TestListSessions_ScopedToUser(t *testing.T) {
	svc := testSessionService(t)

	_, err := svc.CreateSession("user-1", "Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)
	_, err = svc.CreateSession("user-1", "Hounds", "Harbor Town", gamedata.DefaultTiers())
	require.NoError(t, err)
	_, err = svc.CreateSession("user-2", "Climbers", "Summit Ridge", gamedata.DefaultTiers())
	require.NoError(t, err)

	mine, err := svc.ListSessions("user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.ListSessions("user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestDeleteSession_RemovesArchives(t *testing.T) {
	db := testDB(t)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := services.NewSessionService(db, log)

	session, err := svc.CreateSession("user-1", "Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)

	state, err := session.DecodeState()
	require.NoError(t, err)
	require.NoError(t, svc.ArchiveSeason(session, state, services.SeasonFinancials{Revenue: 100, Expenses: 80, NetIncome: 20}, false))

	require.NoError(t, svc.DeleteSession(session.ID))

	_, err = svc.GetSession(session.ID)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)

	var count int64
	require.NoError(t, db.Model(&models.SeasonArchive{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteSession_MissingFails(t *testing.T) {
	svc := testSessionService(t)
	created, err := svc.CreateSession("user-1", "Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSession(created.ID))

	err = svc.DeleteSession(created.ID)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestGetSeasonHistory_OrderedByYear(t *testing.T) {
	svc := testSessionService(t)
	session, err := svc.CreateSession("user-1", "Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)

	state, err := session.DecodeState()
	require.NoError(t, err)

	for year := 3; year >= 1; year-- {
		session.Season = year
		require.NoError(t, svc.ArchiveSeason(session, state, services.SeasonFinancials{}, false))
	}

	history, err := svc.GetSeasonHistory(session.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, archive := range history {
		assert.Equal(t, i+1, archive.Year)
	}
}

func TestCleanupStaleSessions(t *testing.T) {
	db := testDB(t)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := services.NewSessionService(db, log)

	fresh, err := svc.CreateSession("user-1", "Rascals", "River City", gamedata.DefaultTiers())
	require.NoError(t, err)
	stale, err := svc.CreateSession("user-1", "Hounds", "Harbor Town", gamedata.DefaultTiers())
	require.NoError(t, err)

	// Age the stale session past the cutoff directly
	require.NoError(t, db.Model(&models.GameSession{}).
		Where("id = ?", stale.ID).
		Update("last_played_at", time.Now().UTC().Add(-48*time.Hour)).Error)

	removed, err := svc.CleanupStaleSessions(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = svc.GetSession(fresh.ID)
	assert.NoError(t, err)
	_, err = svc.GetSession(stale.ID)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}
