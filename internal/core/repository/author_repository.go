package repository

import (
	"context"

	"github.com/martijn/postboard/internal/core/domain"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	FindByID(ctx context.Context, id int64) (*domain.Author, error)
	// FindConflicting returns an author whose username or email matches,
	// skipping excludeID so edits do not collide with themselves.
	// Returns nil when there is no conflict.
	FindConflicting(ctx context.Context, username, email string, excludeID int64) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	// DeleteWithPosts removes the author and every post it owns in a
	// single session, so neither half is visible without the other.
	DeleteWithPosts(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Author, error)
}
