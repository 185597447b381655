package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/postboard/internal/core/service"
	"github.com/martijn/postboard/internal/web/form"
)

type PostHandler struct {
	postService   *service.PostService
	authorService *service.AuthorService
}

func NewPostHandler(postService *service.PostService, authorService *service.AuthorService) *PostHandler {
	return &PostHandler{
		postService:   postService,
		authorService: authorService,
	}
}

// List handles GET /posts/
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "posts", gin.H{
		"Title": "Posts",
		"Posts": posts,
	})
}

// CreateForm handles GET /posts/create/
func (h *PostHandler) CreateForm(c *gin.Context) {
	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "post_create", gin.H{
		"Title":   "New post",
		"Authors": authors,
		"Form":    form.Post{},
	})
}

// Create handles POST /posts/create/
func (h *PostHandler) Create(c *gin.Context) {
	var f form.Post
	bindErr := c.ShouldBind(&f)

	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	if bindErr != nil {
		c.HTML(http.StatusOK, "post_create", gin.H{
			"Title":   "New post",
			"Authors": authors,
			"Error":   "Title, content and author are all required.",
			"Form":    f,
		})
		return
	}

	_, err = h.postService.CreatePost(c.Request.Context(), f.Title, f.Content, f.AuthorID)
	if errors.Is(err, service.ErrInvalidReference) {
		c.HTML(http.StatusOK, "post_create", gin.H{
			"Title":   "New post",
			"Authors": authors,
			"Error":   err.Error(),
			"Form":    f,
		})
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/posts/")
}

// EditForm handles GET /posts/edit/:id/
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid post id.")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Post not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "post_edit", gin.H{
		"Title":   "Edit post",
		"Post":    post,
		"Authors": authors,
		"Form": form.Post{
			Title:    post.Title,
			Content:  post.Content,
			AuthorID: post.AuthorID,
		},
	})
}

// Edit handles POST /posts/edit/:id/
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid post id.")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Post not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	var f form.Post
	bindErr := c.ShouldBind(&f)

	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		renderServerError(c)
		return
	}

	if bindErr != nil {
		c.HTML(http.StatusOK, "post_edit", gin.H{
			"Title":   "Edit post",
			"Post":    post,
			"Authors": authors,
			"Error":   "Title, content and author are all required.",
			"Form":    f,
		})
		return
	}

	_, err = h.postService.UpdatePost(c.Request.Context(), id, f.Title, f.Content, f.AuthorID)
	if errors.Is(err, service.ErrInvalidReference) {
		c.HTML(http.StatusOK, "post_edit", gin.H{
			"Title":   "Edit post",
			"Post":    post,
			"Authors": authors,
			"Error":   err.Error(),
			"Form":    f,
		})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Post not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/posts/")
}

// Delete handles POST /posts/delete/:id/
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c, "Invalid post id.")
		return
	}

	err := h.postService.DeletePost(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, "Post not found.")
		return
	}
	if err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/posts/")
}
