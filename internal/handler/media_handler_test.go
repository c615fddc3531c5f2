package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/service"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

func newMediaRouter(t *testing.T, maxBody int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := filepath.Join(t.TempDir(), "uploads")
	media, err := service.NewMediaService(service.MediaConfig{
		Dir:      dir,
		MaxFiles: 2,
		MaxBytes: 1 << 20,
	}, validator.NewValidator())
	require.NoError(t, err)

	router := gin.New()
	NewMediaHandler(media, maxBody).Register(router.Group("/api"))
	return router, dir
}

func TestUploadBodyLimit(t *testing.T) {
	want := int64(1<<20 + 50)
	assert.Equal(t, want, UploadBodyLimit(5, 10))
}

func TestMediaHandler_UploadRejectsOversizedBody(t *testing.T) {
	router, dir := newMediaRouter(t, 4<<10)

	t.Run("declared length", func(t *testing.T) {
		req := multipartUpload(t, map[string][]byte{"big.png": bytes.Repeat([]byte("x"), 16<<10)})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unknown length", func(t *testing.T) {
		req := multipartUpload(t, map[string][]byte{"big.png": bytes.Repeat([]byte("x"), 16<<10)})
		// Hide the length so only the body reader enforces the cap.
		req.Body = io.NopCloser(req.Body)
		req.ContentLength = -1
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMediaHandler_UploadWithinLimit(t *testing.T) {
	router, dir := newMediaRouter(t, UploadBodyLimit(2, 1<<20))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(service.UploadField, "door.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decode[UploadResponse](t, w).URLs, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
