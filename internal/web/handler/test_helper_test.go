package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/postboard/internal/core/domain"
	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/storage/sqlite"
	"github.com/martijn/postboard/internal/web/templates"
)

// testEnv holds all test dependencies
type testEnv struct {
	db      *sqlite.DB
	router  *gin.Engine
	authors *service.AuthorService
	posts   *service.PostService
}

// setupTestEnv creates a test environment with an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authorRepo := sqlite.NewAuthorRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	authorService := service.NewAuthorService(authorRepo, logger)
	postService := service.NewPostService(postRepo, authorRepo, logger)

	authorHandler := NewAuthorHandler(authorService)
	postHandler := NewPostHandler(postService, authorService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(templates.New())

	router.GET("/users/", authorHandler.List)
	router.GET("/users/create/", authorHandler.CreateForm)
	router.POST("/users/create/", authorHandler.Create)
	router.GET("/users/edit/:id/", authorHandler.EditForm)
	router.POST("/users/edit/:id/", authorHandler.Edit)
	router.POST("/users/delete/:id/", authorHandler.Delete)

	router.GET("/posts/", postHandler.List)
	router.GET("/posts/create/", postHandler.CreateForm)
	router.POST("/posts/create/", postHandler.Create)
	router.GET("/posts/edit/:id/", postHandler.EditForm)
	router.POST("/posts/edit/:id/", postHandler.Edit)
	router.POST("/posts/delete/:id/", postHandler.Delete)

	return &testEnv{
		db:      db,
		router:  router,
		authors: authorService,
		posts:   postService,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// seedAuthor creates an author directly through the service
func (env *testEnv) seedAuthor(t *testing.T, username, email, password string) *domain.Author {
	t.Helper()

	author, err := env.authors.CreateAuthor(context.Background(), username, email, password)
	if err != nil {
		t.Fatalf("failed to seed author %s: %v", username, err)
	}
	return author
}

// seedPost creates a post directly through the service
func (env *testEnv) seedPost(t *testing.T, title, content string, authorID int64) *domain.Post {
	t.Helper()

	post, err := env.posts.CreatePost(context.Background(), title, content, authorID)
	if err != nil {
		t.Fatalf("failed to seed post %s: %v", title, err)
	}
	return post
}

// get performs a GET request against the test router
func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// itoa formats a record id for use in request paths
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// postForm performs a form-encoded POST request against the test router
func (env *testEnv) postForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
