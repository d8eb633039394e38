package migrations_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/msomdec/account-service/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrations.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash) VALUES (?, ?, ?, ?)",
		"id-1", "Test User", "test@example.com", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}

	var active bool
	if err := db.QueryRowContext(ctx, "SELECT is_active FROM users WHERE id = ?", "id-1").Scan(&active); err != nil {
		t.Fatalf("select is_active: %v", err)
	}
	if !active {
		t.Fatal("expected is_active to default to true")
	}

	applied, err := migrations.Applied(ctx, db)
	if err != nil {
		t.Fatalf("Applied: %v", err)
	}
	if len(applied) == 0 || applied[0] != "001_create_users.sql" {
		t.Fatalf("unexpected applied versions: %v", applied)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := migrations.Applied(ctx, db)

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := migrations.Applied(ctx, db)

	if len(first) != len(second) {
		t.Fatalf("second run changed applied set: %v -> %v", first, second)
	}
}

func TestRunFS_FailedMigrationIsNotRecorded(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABL b (id INTEGER);")},
	}

	if err := migrations.RunFS(ctx, db, fsys); err == nil {
		t.Fatal("expected error from broken migration")
	}

	applied, err := migrations.Applied(ctx, db)
	if err != nil {
		t.Fatalf("Applied: %v", err)
	}
	if len(applied) != 1 || applied[0] != "001_ok.sql" {
		t.Fatalf("expected only 001_ok.sql recorded, got %v", applied)
	}
}
