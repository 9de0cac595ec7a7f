package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var testFS = fstest.MapFS{
	"001_init.sql": &fstest.MapFile{
		Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);"),
	},
	"002_add_name.sql": &fstest.MapFile{
		Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;"),
	},
	"README.md": &fstest.MapFile{
		Data: []byte("not a migration"),
	},
}

func TestReadMigrationFilesSortedAndFiltered(t *testing.T) {
	runner := NewRunner(nil, testFS)

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("got %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Errorf("migrations[0] = %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "add_name" {
		t.Errorf("migrations[1] = %+v", migrations[1])
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	bad := fstest.MapFS{
		"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	runner := NewRunner(nil, bad)
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected error for filename without version prefix")
	}

	dup := fstest.MapFS{
		"001_a.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"001_b.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	runner = NewRunner(nil, dup)
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected error for duplicate versions")
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// The migrated schema is usable.
	if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("migrated schema rejected insert: %v", err)
	}

	// Re-running is a no-op.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 {
		t.Errorf("second run applied %d migrations, want 0", applied)
	}
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS)

	// Fresh database is behind.
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for out-of-date schema")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion after migrating: %v", err)
	}

	// A newer-than-supported schema is rejected.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for too-new schema")
	}
}
