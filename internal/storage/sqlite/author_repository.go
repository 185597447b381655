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

type authorRepository struct {
	db *DB
}

func NewAuthorRepository(db *DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *domain.Author) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO author (username, email, password, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, query,
			author.Username,
			author.Email,
			author.Password,
			author.CreatedAt,
			author.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		author.ID = id

		return nil
	})
}

func (r *authorRepository) FindByID(ctx context.Context, id int64) (*domain.Author, error) {
	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM author
		WHERE id = ?
	`
	var author domain.Author
	err := r.db.GetContext(ctx, &author, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find author: %w", err)
	}
	return &author, nil
}

func (r *authorRepository) FindConflicting(ctx context.Context, username, email string, excludeID int64) (*domain.Author, error) {
	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM author
		WHERE (username = ? OR email = ?) AND id != ?
		LIMIT 1
	`
	var author domain.Author
	err := r.db.GetContext(ctx, &author, query, username, email, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conflicting author: %w", err)
	}
	return &author, nil
}

func (r *authorRepository) Update(ctx context.Context, author *domain.Author) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE author
			SET username = ?, email = ?, password = ?, updated_at = ?
			WHERE id = ?
		`
		result, err := tx.ExecContext(ctx, query,
			author.Username,
			author.Email,
			author.Password,
			author.UpdatedAt,
			author.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update author: %w", err)
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

// DeleteWithPosts removes the author's posts and then the author inside
// one session, so the cascade is atomic.
func (r *authorRepository) DeleteWithPosts(ctx context.Context, id int64) error {
	return r.db.WithSession(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM post WHERE author_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete posts of author: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM author WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
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

func (r *authorRepository) List(ctx context.Context) ([]*domain.Author, error) {
	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM author
		ORDER BY id ASC
	`
	var authors []*domain.Author
	if err := r.db.SelectContext(ctx, &authors, query); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}
