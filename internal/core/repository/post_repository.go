package repository

import (
	"context"

	"github.com/martijn/postboard/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Post, error)
	// ListWithAuthors resolves each post's owning author for display.
	ListWithAuthors(ctx context.Context) ([]*domain.PostWithAuthor, error)
}
