package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/web/handler"
	"github.com/martijn/postboard/internal/web/middleware"
	"github.com/martijn/postboard/internal/web/templates"
	"github.com/martijn/postboard/pkg/config"
)

//go:embed static
var staticFiles embed.FS

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	logger *slog.Logger
}

// NewServer wires the HTML routes onto the record services.
func NewServer(
	cfg *config.Config,
	authorService *service.AuthorService,
	postService *service.PostService,
	logger *slog.Logger,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates.New())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	authorHandler := handler.NewAuthorHandler(authorService)
	postHandler := handler.NewPostHandler(postService, authorService)

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home", gin.H{"Title": "Home"})
	})

	users := router.Group("/users")
	{
		users.GET("/", authorHandler.List)
		users.GET("/create/", authorHandler.CreateForm)
		users.POST("/create/", authorHandler.Create)
		users.GET("/edit/:id/", authorHandler.EditForm)
		users.POST("/edit/:id/", authorHandler.Edit)
		users.POST("/delete/:id/", authorHandler.Delete)
	}

	posts := router.Group("/posts")
	{
		posts.GET("/", postHandler.List)
		posts.GET("/create/", postHandler.CreateForm)
		posts.POST("/create/", postHandler.Create)
		posts.GET("/edit/:id/", postHandler.EditForm)
		posts.POST("/edit/:id/", postHandler.Edit)
		posts.POST("/delete/:id/", postHandler.Delete)
	}

	return &Server{
		router: router,
		config: cfg,
		logger: logger,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.HTTPHost, s.config.HTTPPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	s.logger.Info("starting http server", "addr", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
