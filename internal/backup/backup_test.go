package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "trackly.db")
	if err := os.WriteFile(dbPath, []byte("original contents"), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(dbPath), dbPath
}

func TestCreateAndList(t *testing.T) {
	mgr, _ := newTestManager(t)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path = %q, want %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("backup has zero size")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("Create should fail when the database does not exist")
	}
}

func TestCreateUniqueNamesWithinSecond(t *testing.T) {
	mgr, _ := newTestManager(t)

	first, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("two backups share the same path: %s", first)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	mgr, _ := newTestManager(t)

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestRestore(t *testing.T) {
	mgr, dbPath := newTestManager(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(dbPath, []byte("corrupted"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	data, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original contents" {
		t.Errorf("restored contents = %q", data)
	}

	// The pre-restore snapshot of the corrupted database exists too.
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups, want at least 2 (original + pre-restore snapshot)", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr, _ := newTestManager(t)
	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), "nope.db")); err == nil {
		t.Error("Restore should fail for a missing backup file")
	}
}
