package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/martijn/postboard/internal/core/domain"
	"github.com/martijn/postboard/internal/core/repository"
	"github.com/martijn/postboard/internal/core/service"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO post (title, content, author_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, query,
			post.Title,
			post.Content,
			post.AuthorID,
			post.CreatedAt,
			post.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		post.ID = id

		return nil
	})
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM post
		WHERE id = ?
	`
	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE post
			SET title = ?, content = ?, author_id = ?, updated_at = ?
			WHERE id = ?
		`
		result, err := tx.ExecContext(ctx, query,
			post.Title,
			post.Content,
			post.AuthorID,
			post.UpdatedAt,
			post.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return service.ErrNotFound
		}

		return nil
	})
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM post WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return service.ErrNotFound
		}

		return nil
	})
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM post
		ORDER BY id ASC
	`
	var posts []*domain.Post
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListWithAuthors(ctx context.Context) ([]*domain.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
			a.username AS author_username
		FROM post p
		JOIN author a ON a.id = p.author_id
		ORDER BY p.id ASC
	`
	var posts []*domain.PostWithAuthor
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts with authors: %w", err)
	}
	return posts, nil
}
