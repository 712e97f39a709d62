package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const testMigrationsPath = "../../migrations"

// openTestDB creates a migrated SQLite database in a temp directory
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.RunMigrations(testMigrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	tables := []string{"guests", "rsvps", "user_roles", "migrations"}
	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		if err := db.QueryRowContext(ctx, query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// A second run applies nothing
	applied, err := db.RunMigrations(testMigrationsPath)
	if err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("Expected no migrations on second run, got %v", applied)
	}
}

// TestDatabaseTransactions tests WithTx commit and rollback
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	insert := "INSERT INTO guests (id, party_id, name, created_at) VALUES (?, ?, ?, ?)"

	err := db.WithTx(func(tx *Tx) error {
		_, err := tx.Exec(insert, "g-1", "p-1", "Jane Doe", time.Now().UTC())
		return err
	})
	if err != nil {
		t.Fatalf("Committed transaction failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM guests WHERE id = ?", "g-1").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 guest, got %d", count)
	}

	// The second insert reuses the primary key, so the whole batch must roll back
	err = db.WithTx(func(tx *Tx) error {
		if _, err := tx.Exec(insert, "g-2", "p-1", "John Doe", time.Now().UTC()); err != nil {
			return err
		}
		_, err := tx.Exec(insert, "g-1", "p-1", "Duplicate", time.Now().UTC())
		return err
	})
	if err == nil {
		t.Fatal("Expected duplicate key error")
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM guests WHERE id = ?", "g-2").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 guests after rollback, got %d", count)
	}
}

// TestGrantRoleIdempotent checks the dialect's insert-or-ignore role grant
func TestGrantRoleIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	for i := 0; i < 2; i++ {
		if _, err := db.Exec(db.Dialect.GrantRoleQuery(), "user-1", "admin"); err != nil {
			t.Fatalf("Grant %d failed: %v", i, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM user_roles WHERE user_id = ?", "user-1").Scan(&count); err != nil {
		t.Fatalf("Failed to count roles: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 role row, got %d", count)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO guests (id, party_id, name, created_at) VALUES (?, ?, ?, ?)",
		"g-concurrent", "p-1", "Concurrent Guest", time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test guest: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var name string
			if err := db.QueryRowContext(ctx, "SELECT name FROM guests WHERE id = ?", "g-concurrent").Scan(&name); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent read failed: %v", err)
	}
}
