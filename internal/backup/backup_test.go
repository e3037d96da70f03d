package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thatcatcamp/folio/internal/db"
	"github.com/thatcatcamp/folio/internal/engine"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "folio.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return testDB
}

// steppingClock returns a clock that advances one minute per call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestNewBackupManager(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", 5)
	if manager.BackupPath != "/tmp/backups" {
		t.Errorf("expected /tmp/backups, got %s", manager.BackupPath)
	}
	if manager.Keep != 5 {
		t.Errorf("expected keep 5, got %d", manager.Keep)
	}
}

func TestCreateAndRestoreBackup(t *testing.T) {
	source := setupTestDB(t)
	store := db.NewPreferenceStore(source, "visitor-1")
	if err := store.Set(engine.KeyThemeName, "harbor"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(engine.KeyColorMode, "dark"); err != nil {
		t.Fatal(err)
	}

	manager := NewBackupManager(t.TempDir(), 0)
	manager.now = steppingClock()

	name, err := manager.CreateBackup(source)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(manager.BackupPath, name)); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	target := setupTestDB(t)
	n, err := manager.RestoreBackup(target, name)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 visitor restored, got %d", n)
	}

	restored := db.NewPreferenceStore(target, "visitor-1")
	if v, _ := restored.Get(engine.KeyThemeName); v != "harbor" {
		t.Errorf("expected harbor, got %q", v)
	}
	if v, _ := restored.Get(engine.KeyColorMode); v != "dark" {
		t.Errorf("expected dark, got %q", v)
	}
}

func TestRestoreRejectsPaths(t *testing.T) {
	manager := NewBackupManager(t.TempDir(), 0)
	if _, err := manager.RestoreBackup(setupTestDB(t), "../secrets.json"); err == nil {
		t.Fatal("expected error for path outside the backup directory")
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	database := setupTestDB(t)
	manager := NewBackupManager(t.TempDir(), 2)
	manager.now = steppingClock()

	var names []string
	for i := 0; i < 4; i++ {
		name, err := manager.CreateBackup(database)
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		names = append(names, name)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Name != names[2] || backups[1].Name != names[3] {
		t.Errorf("expected newest backups kept, got %v", backups)
	}
}

func TestListBackupsMissingDir(t *testing.T) {
	manager := NewBackupManager(filepath.Join(t.TempDir(), "nope"), 0)
	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}
