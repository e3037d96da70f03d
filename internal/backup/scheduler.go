package backup

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	BackupInterval time.Duration

	db     *gorm.DB
	logger zerolog.Logger
}

// NewScheduler creates a daily backup scheduler.
func NewScheduler(manager *BackupManager, database *gorm.DB, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Manager:        manager,
		BackupInterval: 24 * time.Hour,
		db:             database,
		logger:         logger,
	}
}

// Run takes a backup immediately and then every BackupInterval until ctx
// is done. Failed backups are logged and retried on the next tick.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.BackupInterval)
	defer ticker.Stop()

	s.runBackup("initial")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.runBackup("scheduled")
		}
	}
}

func (s *Scheduler) runBackup(kind string) {
	name, err := s.Manager.CreateBackup(s.db)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", kind).Msg("backup failed")
		return
	}
	s.logger.Info().Str("kind", kind).Str("file", name).Msg("backup written")
}
