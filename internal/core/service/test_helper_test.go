package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/storage/sqlite"
)

// testEnv holds the services under test backed by an in-memory store
type testEnv struct {
	db      *sqlite.DB
	authors *service.AuthorService
	posts   *service.PostService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authorRepo := sqlite.NewAuthorRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	return &testEnv{
		db:      db,
		authors: service.NewAuthorService(authorRepo, logger),
		posts:   service.NewPostService(postRepo, authorRepo, logger),
	}
}

func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}
