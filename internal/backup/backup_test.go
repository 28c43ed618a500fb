package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJSONStore(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "mantcal.json")
	if err := os.WriteFile(path, []byte(`{"tasks": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}
	base := filepath.Base(backupPath)
	if !strings.HasPrefix(base, BackupFilePrefix) || !strings.HasSuffix(base, ".json") {
		t.Errorf("backup name %q should keep prefix and source extension", base)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup size = 0")
	}
}

func TestRotationKeepsRetentionCount(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir)
	mgr := NewManager(path)

	backupDir := mgr.GetBackupDir()
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		t.Fatal(err)
	}
	// Pre-seed more backups than the retention limit, oldest first.
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("%s2024%02d%02d-0900.json", BackupFilePrefix, 1+i/28, 1+i%28)
		if err := os.WriteFile(filepath.Join(backupDir, name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("got %d backups after rotation, want at most %d", len(backups), MaxBackups)
	}
	// The newest survivor must be the one just created.
	if backups[0].Timestamp.Year() == 2024 {
		t.Error("rotation kept only pre-seeded backups, fresh one missing")
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backup of a missing store should fail")
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Mutate the live store, then restore the snapshot.
	if err := os.WriteFile(path, []byte(`{"tasks": [{"id": 1}]}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"tasks": []}` {
		t.Errorf("restored content = %s", raw)
	}

	// The restore itself snapshots the pre-restore state.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want the original plus the pre-restore snapshot", len(backups))
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir)
	mgr := NewManager(path)

	bad := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("restore from invalid JSON should fail")
	}

	raw, _ := os.ReadFile(path)
	if string(raw) != `{"tasks": []}` {
		t.Error("live store should be untouched after a rejected restore")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(writeJSONStore(t, dir))
	if err := mgr.RestoreBackup(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("restore from a missing file should fail")
	}
}
