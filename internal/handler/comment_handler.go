package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgCommentNotFound = "Comment not found"

// CommentHandler exposes the comment moderation queue.
type CommentHandler struct {
	comments service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Register mounts the comment routes on rg.
func (h *CommentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/comments", h.List)
	rg.GET("/comments/:id", h.Get)
	rg.POST("/comments/:id/approve", h.Approve)
	rg.POST("/comments/:id/reject", h.Reject)
	rg.DELETE("/comments/:id", h.Delete)
}

// List handles GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Get handles GET /api/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	h.respondComment(c, h.comments.Get, "Failed to fetch comment")
}

// Approve handles POST /api/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	h.respondComment(c, h.comments.Approve, "Failed to approve comment")
}

// Reject handles POST /api/comments/:id/reject. Rejected comments are
// marked as spam.
func (h *CommentHandler) Reject(c *gin.Context) {
	h.respondComment(c, h.comments.Reject, "Failed to reject comment")
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.comments.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}
	respondDeleted(c, deleted, msgCommentNotFound)
}

func (h *CommentHandler) respondComment(c *gin.Context, fn func(context.Context, int64) (*domain.Comment, error), fallback string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	comment, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	if comment == nil {
		respondNotFound(c, msgCommentNotFound)
		return
	}
	c.JSON(http.StatusOK, comment)
}
