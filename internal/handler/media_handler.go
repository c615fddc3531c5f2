package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

const msgMediaNotFound = "Media not found"

// UploadResponse lists the public URLs of stored files in upload order.
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// MediaHandler handles image uploads and the media library.
type MediaHandler struct {
	media   service.MediaServiceInterface
	maxBody int64
}

// NewMediaHandler creates a new MediaHandler. Upload bodies larger than
// maxBody are refused before parsing; zero disables the cap.
func NewMediaHandler(media service.MediaServiceInterface, maxBody int64) *MediaHandler {
	return &MediaHandler{media: media, maxBody: maxBody}
}

// UploadBodyLimit is the largest upload body accepted for maxFiles files of
// at most maxBytes each, with room for multipart framing.
func UploadBodyLimit(maxFiles int, maxBytes int64) int64 {
	const framing = 1 << 20
	return int64(maxFiles)*maxBytes + framing
}

// Register mounts the upload and media routes on rg.
func (h *MediaHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
	rg.GET("/media", h.List)
	rg.GET("/media/:id", h.Get)
	rg.PATCH("/media/:id", h.Update)
	rg.DELETE("/media/:id", h.Delete)
}

// Upload handles POST /api/upload with multipart field "images".
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.maxBody > 0 {
		if c.Request.ContentLength > h.maxBody {
			respondError(c, service.ErrFileTooLarge, "Failed to upload files")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}

	form, err := c.MultipartForm()
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		respondError(c, service.ErrFileTooLarge, "Failed to upload files")
		return
	case err != nil && !errors.Is(err, http.ErrNotMultipart):
		respondMessage(c, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	var files []*multipart.FileHeader
	if form != nil {
		files = form.File[service.UploadField]
	}

	urls, err := h.media.Upload(c.Request.Context(), files)
	if err != nil {
		respondError(c, err, "Failed to upload files")
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{URLs: urls})
}

// List handles GET /api/media
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.media.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch media")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.media.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch media")
		return
	}
	if item == nil {
		respondNotFound(c, msgMediaNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update handles PATCH /api/media/:id
func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch domain.MediaPatch
	if !bindJSON(c, &patch) {
		return
	}
	item, err := h.media.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "Failed to update media")
		return
	}
	if item == nil {
		respondNotFound(c, msgMediaNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.media.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete media")
		return
	}
	respondDeleted(c, deleted, msgMediaNotFound)
}
