// Package form holds the form-binding structs that coerce and check
// submitted fields before any record operation runs.
package form

type CreateAuthor struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// EditAuthor leaves the password optional: an empty value keeps the
// stored one.
type EditAuthor struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password"`
}

type Post struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	AuthorID int64  `form:"author_id" binding:"required"`
}
