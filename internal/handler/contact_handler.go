package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgMessageNotFound = "Message not found"

// ContactSubmitResponse acknowledges a contact form submission.
type ContactSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	contact service.ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contact service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Register mounts the contact routes on rg.
func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
	rg.GET("/contact", h.List)
	rg.GET("/contact/:id", h.Get)
	rg.POST("/contact/:id/read", h.MarkRead)
	rg.DELETE("/contact/:id", h.Delete)
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var in domain.NewContactMessage
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.contact.Submit(c.Request.Context(), in); err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, ContactSubmitResponse{Success: true, Message: "Message sent successfully"})
}

// List handles GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contact.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get handles GET /api/contact/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.contact.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch message")
		return
	}
	if m == nil {
		respondNotFound(c, msgMessageNotFound)
		return
	}
	c.JSON(http.StatusOK, m)
}

// MarkRead handles POST /api/contact/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.contact.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to update message")
		return
	}
	if m == nil {
		respondNotFound(c, msgMessageNotFound)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.contact.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete message")
		return
	}
	respondDeleted(c, deleted, msgMessageNotFound)
}
