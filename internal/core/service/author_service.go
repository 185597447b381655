package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/martijn/postboard/internal/core/domain"
	"github.com/martijn/postboard/internal/core/repository"
)

type AuthorService struct {
	authorRepo repository.AuthorRepository
	logger     *slog.Logger
}

func NewAuthorService(authorRepo repository.AuthorRepository, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		authorRepo: authorRepo,
		logger:     logger,
	}
}

// CreateAuthor inserts a new author after checking that neither the
// username nor the email is taken.
func (s *AuthorService) CreateAuthor(ctx context.Context, username, email, password string) (*domain.Author, error) {
	conflict, err := s.authorRepo.FindConflicting(ctx, username, email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing author: %w", err)
	}
	if conflict != nil {
		return nil, ErrDuplicateIdentity
	}

	author := domain.NewAuthor(username, email, password)
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	s.logger.Info("author created", "id", author.ID, "username", author.Username)
	return author, nil
}

// GetAuthor retrieves an author by ID.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	return s.authorRepo.FindByID(ctx, id)
}

// UpdateAuthor overwrites username and email. The stored password is
// kept unless a non-empty replacement is supplied. The duplicate search
// skips the author being edited, so saving an unchanged form succeeds.
func (s *AuthorService) UpdateAuthor(ctx context.Context, id int64, username, email, password string) (*domain.Author, error) {
	author, err := s.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	conflict, err := s.authorRepo.FindConflicting(ctx, username, email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing author: %w", err)
	}
	if conflict != nil {
		return nil, ErrDuplicateIdentity
	}

	author.Username = username
	author.Email = email
	if password != "" {
		author.Password = password
	}
	author.UpdatedAt = time.Now()

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	s.logger.Info("author updated", "id", author.ID, "username", author.Username)
	return author, nil
}

// DeleteAuthor removes an author together with all posts it owns. The
// repository runs both deletes in one session, so no orphaned post
// survives a partial failure.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	if _, err := s.authorRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.authorRepo.DeleteWithPosts(ctx, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	s.logger.Info("author deleted with posts", "id", id)
	return nil
}

// ListAuthors returns all authors in insertion order.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.authorRepo.List(ctx)
}
