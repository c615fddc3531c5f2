package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgBlogNotFound = "Blog post not found"

// BlogHandler handles blog post requests.
type BlogHandler struct {
	blogs service.BlogServiceInterface
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogs service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// Register mounts the blog routes on rg.
func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/blogs", h.List)
	rg.GET("/blogs/categories", h.Categories)
	rg.GET("/blogs/:id", h.Get)
	rg.POST("/blogs", h.Create)
	rg.PUT("/blogs/:id", h.Update)
	rg.DELETE("/blogs/:id", h.Delete)
}

// List handles GET /api/blogs
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogs.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Categories handles GET /api/blogs/categories
func (h *BlogHandler) Categories(c *gin.Context) {
	cats, err := h.blogs.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Get handles GET /api/blogs/:id, where id may also be a slug.
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogs.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch blog post")
		return
	}
	if post == nil {
		respondNotFound(c, msgBlogNotFound)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var in domain.NewBlogPost
	if !bindJSON(c, &in) {
		return
	}
	post, err := h.blogs.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch domain.BlogPostPatch
	if !bindJSON(c, &patch) {
		return
	}
	post, err := h.blogs.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Failed to update blog post")
		return
	}
	if post == nil {
		respondNotFound(c, msgBlogNotFound)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.blogs.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete blog post")
		return
	}
	respondDeleted(c, deleted, msgBlogNotFound)
}
