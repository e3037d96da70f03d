// Package backup snapshots stored visitor selections to JSON files and
// restores them.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thatcatcamp/folio/internal/db"
	"github.com/thatcatcamp/folio/internal/engine"
	"gorm.io/gorm"
)

const (
	filePrefix = "preferences-"
	fileSuffix = ".json"
	timeLayout = "20060102-150405"
)

// Snapshot is the on-disk backup format.
type Snapshot struct {
	CreatedAt time.Time             `json:"created_at"`
	Visitors  []db.VisitorSelection `json:"visitors"`
}

// BackupInfo describes one backup file.
type BackupInfo struct {
	Name      string
	Size      int64
	CreatedAt time.Time
}

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string // /var/lib/folio/backups
	// Keep is how many backups survive pruning. Zero keeps everything.
	Keep int

	now func() time.Time
}

// NewBackupManager creates a new backup manager
func NewBackupManager(backupPath string, keep int) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Keep:       keep,
		now:        time.Now,
	}
}

// CreateBackup writes every stored selection to a new snapshot file, prunes
// old ones and returns the new file's name.
func (m *BackupManager) CreateBackup(database *gorm.DB) (string, error) {
	visitors, err := db.ListVisitors(database)
	if err != nil {
		return "", err
	}

	snap := Snapshot{CreatedAt: m.now().UTC(), Visitors: visitors}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := filePrefix + snap.CreatedAt.Format(timeLayout) + fileSuffix
	if err := os.WriteFile(filepath.Join(m.BackupPath, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if _, err := m.Prune(); err != nil {
		return name, err
	}
	return name, nil
}

// ListBackups returns backups oldest first.
func (m *BackupManager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		created, err := time.Parse(timeLayout, stamp)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		backups = append(backups, BackupInfo{Name: name, Size: info.Size(), CreatedAt: created})
	}

	slices.SortFunc(backups, func(a, b BackupInfo) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return backups, nil
}

// Prune deletes the oldest backups beyond Keep and returns how many.
func (m *BackupManager) Prune() (int, error) {
	if m.Keep <= 0 {
		return 0, nil
	}
	backups, err := m.ListBackups()
	if err != nil {
		return 0, err
	}
	if len(backups) <= m.Keep {
		return 0, nil
	}

	stale := backups[:len(backups)-m.Keep]
	for _, b := range stale {
		if err := os.Remove(filepath.Join(m.BackupPath, b.Name)); err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", b.Name, err)
		}
	}
	return len(stale), nil
}

// RestoreBackup writes every selection in the named snapshot back to the
// database, overwriting current values. It returns the visitor count.
func (m *BackupManager) RestoreBackup(database *gorm.DB, name string) (int, error) {
	if name != filepath.Base(name) {
		return 0, fmt.Errorf("invalid backup name: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(m.BackupPath, name))
	if err != nil {
		return 0, fmt.Errorf("failed to read backup: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("failed to decode backup: %w", err)
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		for _, v := range snap.Visitors {
			store := db.NewPreferenceStore(tx, v.VisitorID)
			if v.Theme != "" {
				if err := store.Set(engine.KeyThemeName, v.Theme); err != nil {
					return err
				}
			}
			if v.Mode != "" {
				if err := store.Set(engine.KeyColorMode, v.Mode); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("restore failed: %w", err)
	}
	return len(snap.Visitors), nil
}
