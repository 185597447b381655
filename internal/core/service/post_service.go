package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/martijn/postboard/internal/core/domain"
	"github.com/martijn/postboard/internal/core/repository"
)

type PostService struct {
	postRepo   repository.PostRepository
	authorRepo repository.AuthorRepository
	logger     *slog.Logger
}

func NewPostService(postRepo repository.PostRepository, authorRepo repository.AuthorRepository, logger *slog.Logger) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
		logger:     logger,
	}
}

// CreatePost inserts a new post owned by an existing author.
func (s *PostService) CreatePost(ctx context.Context, title, content string, authorID int64) (*domain.Post, error) {
	if err := s.checkAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	post := domain.NewPost(title, content, authorID)
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "id", post.ID, "author_id", post.AuthorID)
	return post, nil
}

// GetPost retrieves a post by ID.
func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// UpdatePost overwrites title, content and owner. The new owner is
// re-validated against existing authors.
func (s *PostService) UpdatePost(ctx context.Context, id int64, title, content string, authorID int64) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	post.AuthorID = authorID
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("post updated", "id", post.ID, "author_id", post.AuthorID)
	return post, nil
}

// DeletePost removes a single post.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", "id", id)
	return nil
}

// ListPosts returns all posts with their owning author resolved.
func (s *PostService) ListPosts(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	return s.postRepo.ListWithAuthors(ctx)
}

func (s *PostService) checkAuthorExists(ctx context.Context, authorID int64) error {
	_, err := s.authorRepo.FindByID(ctx, authorID)
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidReference
	}
	if err != nil {
		return fmt.Errorf("failed to check author: %w", err)
	}
	return nil
}
