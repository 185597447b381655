package domain

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	AuthorID  int64     `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PostWithAuthor is a Post joined with its owning author's identity,
// fetched explicitly for list views.
type PostWithAuthor struct {
	Post
	AuthorUsername string `db:"author_username"`
}

func NewPost(title, content string, authorID int64) *Post {
	now := time.Now()
	return &Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
