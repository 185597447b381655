package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/web/form"
)

type AuthorHandler struct {
	authorService *service.AuthorService
}

func NewAuthorHandler(authorService *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// List handles GET /users/
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "users", gin.H{
		"Title":   "Authors",
		"Authors": authors,
	})
}

// CreateForm handles GET /users/create/
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_create", gin.H{
		"Title": "New author",
		"Form":  form.CreateAuthor{},
	})
}

// Create handles POST /users/create/
func (h *AuthorHandler) Create(c *gin.Context) {
	var f form.CreateAuthor
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "user_create", gin.H{
			"Title": "New author",
			"Error": "Username, email and password are all required.",
			"Form":  f,
		})
		return
	}

	_, err := h.authorService.CreateAuthor(c.Request.Context(), f.Username, f.Email, f.Password)
	if errors.Is(err, service.ErrDuplicateIdentity) {
		c.HTML(http.StatusOK, "user_create", gin.H{
			"Title": "New author",
			"Error": err.Error(),
			"Form":  f,
		})
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/")
}

// EditForm handles GET /users/edit/:id/
func (h *AuthorHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid author id.")
		return
	}

	author, err := h.authorService.GetAuthor(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Author not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "user_edit", gin.H{
		"Title":  "Edit author",
		"Author": author,
		"Form": form.EditAuthor{
			Username: author.Username,
			Email:    author.Email,
		},
	})
}

// Edit handles POST /users/edit/:id/
func (h *AuthorHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid author id.")
		return
	}

	author, err := h.authorService.GetAuthor(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Author not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	var f form.EditAuthor
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "user_edit", gin.H{
			"Title":  "Edit author",
			"Author": author,
			"Error":  "Username and email are required.",
			"Form":   f,
		})
		return
	}

	_, err = h.authorService.UpdateAuthor(c.Request.Context(), id, f.Username, f.Email, f.Password)
	if errors.Is(err, service.ErrDuplicateIdentity) {
		c.HTML(http.StatusOK, "user_edit", gin.H{
			"Title":  "Edit author",
			"Author": author,
			"Error":  err.Error(),
			"Form":   f,
		})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Author not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/")
}

// Delete handles POST /users/delete/:id/
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid author id.")
		return
	}

	err := h.authorService.DeleteAuthor(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Author not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/")
}
