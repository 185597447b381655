package cli

import (
	"fmt"
	"log/slog"

	"github.com/martijn/postboard/internal/core/repository"
	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/logger"
	"github.com/martijn/postboard/internal/storage/sqlite"
	"github.com/martijn/postboard/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "postboard",
	Short: "Postboard - author and post record management",
	Long: `Postboard is a small record-management web application.

It provides:
- Server-rendered CRUD pages for authors and their posts
- An embedded sqlite store created on first start
- Admin commands for managing authors from the terminal`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/postboard/config.yml)")
}

// initServices initializes the store, repositories and record services
func initServices() (*Services, error) {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	authorRepo := sqlite.NewAuthorRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	authorService := service.NewAuthorService(authorRepo, log)
	postService := service.NewPostService(postRepo, authorRepo, log)

	return &Services{
		DB:            db,
		Logger:        log,
		AuthorRepo:    authorRepo,
		PostRepo:      postRepo,
		AuthorService: authorService,
		PostService:   postService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB            *sqlite.DB
	Logger        *slog.Logger
	AuthorRepo    repository.AuthorRepository
	PostRepo      repository.PostRepository
	AuthorService *service.AuthorService
	PostService   *service.PostService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
