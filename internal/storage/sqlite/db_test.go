package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/martijn/postboard/internal/core/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWithSessionCommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.WithSession(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO author (username, email, password, created_at, updated_at)
			VALUES ('alice', 'alice@example.com', 'pw', datetime('now'), datetime('now'))
		`)
		return err
	})
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM author`); err != nil {
		t.Fatalf("failed to count authors: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 author after commit, got %d", count)
	}
}

func TestWithSessionRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := db.WithSession(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO author (username, email, password, created_at, updated_at)
			VALUES ('alice', 'alice@example.com', 'pw', datetime('now'), datetime('now'))
		`); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM author`); err != nil {
		t.Fatalf("failed to count authors: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no authors after rollback, got %d", count)
	}
}

func TestSchemaCreationIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/postboard.sqlite3"

	db1, err := New(path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db1.Close()

	db2, err := New(path)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	db2.Close()
}

func TestFindConflictingExcludesGivenID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAuthorRepository(db)

	alice := domain.NewAuthor("alice", "alice@example.com", "pw")
	if err := repo.Create(ctx, alice); err != nil {
		t.Fatalf("failed to create author: %v", err)
	}

	// Searching without exclusion finds the record
	conflict, err := repo.FindConflicting(ctx, "alice", "none@example.com", 0)
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if conflict == nil {
		t.Fatal("expected a conflict on username")
	}

	// Excluding the record itself finds nothing
	conflict, err = repo.FindConflicting(ctx, "alice", "alice@example.com", alice.ID)
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if conflict != nil {
		t.Errorf("expected no conflict when excluding id %d, got author %d", alice.ID, conflict.ID)
	}
}
