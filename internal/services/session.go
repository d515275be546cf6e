package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// ErrSessionNotFound is returned when a session ID has no row
var ErrSessionNotFound = fmt.Errorf("session not found")

// SessionService owns the persistence of save games. Each session is a
// single row holding JSON snapshots of franchise, city, roster and
// prospects; the engine never touches the database.
type SessionService struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewSessionService(db *gorm.DB, logger *logrus.Logger) *SessionService {
	return &SessionService{db: db, logger: logger}
}

// CreateSession starts a new franchise at LOW_A with the standard
// starting configuration
func (s *SessionService) CreateSession(userID, franchiseName, cityName string, tiers gamedata.TierTable) (*models.GameSession, error) {
	cfg, err := tiers.Get(models.TierLowA)
	if err != nil {
		return nil, err
	}

	state := &models.SessionState{
		Franchise: models.Franchise{
			Name:             franchiseName,
			Tier:             models.TierLowA,
			Budget:           cfg.AnnualBudget,
			Reserves:         cfg.AnnualBudget / 2,
			StadiumCapacity:  cfg.StadiumCapacity,
			StadiumQuality:   40,
			TicketPrice:      cfg.BaseTicketPrice,
			CoachingSalaries: cfg.AnnualBudget / 10,
			FacilityLevel:    0,
		},
		City: models.CityState{
			Name:                cityName,
			Population:          75000,
			Pride:               40,
			NationalRecognition: 5,
		},
	}

	session := &models.GameSession{
		ID:           uuid.New(),
		UserID:       userID,
		Season:       1,
		Status:       models.StatusActive,
		LastPlayedAt: time.Now().UTC(),
	}
	if err := session.EncodeState(state); err != nil {
		return nil, err
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"user_id":    userID,
		"franchise":  franchiseName,
	}).Info("Created new franchise session")
	return session, nil
}

// GetSession loads one session by ID
func (s *SessionService) GetSession(id uuid.UUID) (*models.GameSession, error) {
	var session models.GameSession
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// ListSessions returns a user's save games, most recently played first
func (s *SessionService) ListSessions(userID string) ([]models.GameSession, error) {
	var sessions []models.GameSession
	err := s.db.
		Where("user_id = ?", userID).
		Order("last_played_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// SaveSession persists updated session state and bumps the played-at stamp
func (s *SessionService) SaveSession(session *models.GameSession) error {
	session.LastPlayedAt = time.Now().UTC()
	if err := s.db.Save(session).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// DeleteSession removes a save game and its season archives
func (s *SessionService) DeleteSession(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SeasonArchive{}, "session_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete season archives: %w", err)
		}
		result := tx.Delete(&models.GameSession{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
}

// ArchiveSeason writes the immutable history row for a completed season
func (s *SessionService) ArchiveSeason(session *models.GameSession, state *models.SessionState, summary SeasonFinancials, promoted bool) error {
	roster, err := json.Marshal(state.Roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster snapshot: %w", err)
	}

	archive := &models.SeasonArchive{
		SessionID:       session.ID,
		Year:            session.Season,
		Tier:            state.Franchise.Tier,
		Wins:            state.Record.Wins,
		Losses:          state.Record.Losses,
		Revenue:         summary.Revenue,
		Expenses:        summary.Expenses,
		NetIncome:       summary.NetIncome,
		EndingReserves:  state.Franchise.Reserves,
		Pride:           state.City.Pride,
		WonDivision:     session.WonDivision,
		WonChampionship: session.WonChampionship,
		Promoted:        promoted,
		RosterSnapshot:  datatypes.JSON(roster),
	}
	if err := s.db.Create(archive).Error; err != nil {
		return fmt.Errorf("failed to archive season: %w", err)
	}
	return nil
}

// SeasonFinancials is the slice of the financial result the archive keeps
type SeasonFinancials struct {
	Revenue   int
	Expenses  int
	NetIncome int
}

// GetSeasonHistory returns a session's archived seasons, oldest first
func (s *SessionService) GetSeasonHistory(sessionID uuid.UUID) ([]models.SeasonArchive, error) {
	var archives []models.SeasonArchive
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("year ASC").
		Find(&archives).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load season history: %w", err)
	}
	return archives, nil
}

// CleanupStaleSessions deletes sessions idle for longer than maxIdleAge
// and returns how many were removed. Runs from the scheduler.
func (s *SessionService) CleanupStaleSessions(maxIdleAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxIdleAge)

	var stale []models.GameSession
	if err := s.db.Select("id").Where("last_played_at < ?", cutoff).Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("failed to find stale sessions: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(stale))
	for i, sess := range stale {
		ids[i] = sess.ID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SeasonArchive{}, "session_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GameSession{}, "id IN ?", ids).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale sessions: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"count":  len(ids),
		"cutoff": cutoff,
	}).Info("Cleaned up stale sessions")
	return int64(len(ids)), nil
}
