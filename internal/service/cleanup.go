package service

import (
	"time"

	"sixcities/internal/repository"

	"go.uber.org/zap"
)

// SessionPool holds the live sessions of the running bot
type SessionPool interface {
	Sweep(idle time.Duration) (active []int64, evicted int)
}

// CleanupService removes sessions of users who went idle
type CleanupService struct {
	sessionRepo   repository.SessionRepository
	pool          SessionPool
	retentionDays int
	logger        *zap.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessionRepo repository.SessionRepository, pool SessionPool, retentionDays int, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		sessionRepo:   sessionRepo,
		pool:          pool,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupStaleSessions removes sessions idle for longer than the retention period.
// Users still active in memory are touched first so their rows survive.
func (s *CleanupService) CleanupStaleSessions() error {
	s.logger.Info("Starting cleanup of stale sessions", zap.Int("retention_days", s.retentionDays))

	retention := time.Duration(s.retentionDays) * 24 * time.Hour
	active, evicted := s.pool.Sweep(retention)

	if err := s.sessionRepo.TouchSessions(active); err != nil {
		s.logger.Error("Failed to touch active sessions", zap.Int("active", len(active)), zap.Error(err))
		return err
	}

	removed, err := s.sessionRepo.CleanStaleSessions(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup stale sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully",
		zap.Int("evicted", evicted),
		zap.Int("active", len(active)),
		zap.Int64("removed", removed),
	)
	return nil
}
