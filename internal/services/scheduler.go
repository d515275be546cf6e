package services

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/pkg/config"
)

// SchedulerService runs the background maintenance jobs: stale save-game
// cleanup and orphaned archive pruning
type SchedulerService struct {
	cron     *cron.Cron
	sessions *SessionService
	db       *gorm.DB
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewSchedulerService(sessions *SessionService, db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *SchedulerService {
	return &SchedulerService{
		cron:     cron.New(),
		sessions: sessions,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the cron entries and begins scheduling
func (s *SchedulerService) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CleanupSchedule, s.runCleanup); err != nil {
		return fmt.Errorf("failed to schedule session cleanup: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.ArchiveSchedule, s.runArchivePrune); err != nil {
		return fmt.Errorf("failed to schedule archive prune: %w", err)
	}

	s.cron.Start()
	s.logger.WithFields(logrus.Fields{
		"cleanup_schedule": s.cfg.CleanupSchedule,
		"archive_schedule": s.cfg.ArchiveSchedule,
	}).Info("Scheduler started")
	return nil
}

// Stop halts scheduling; running jobs finish first
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *SchedulerService) runCleanup() {
	removed, err := s.sessions.CleanupStaleSessions(s.cfg.SessionMaxIdleAge)
	if err != nil {
		s.logger.WithError(err).Error("Stale session cleanup failed")
		return
	}
	s.logger.WithField("removed", removed).Info("Stale session cleanup complete")
}

// runArchivePrune deletes season archives whose session no longer exists
func (s *SchedulerService) runArchivePrune() {
	result := s.db.
		Where("session_id NOT IN (?)", s.db.Model(&models.GameSession{}).Select("id")).
		Delete(&models.SeasonArchive{})
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Orphaned archive prune failed")
		return
	}
	s.logger.WithField("removed", result.RowsAffected).Info("Orphaned archive prune complete")
}
