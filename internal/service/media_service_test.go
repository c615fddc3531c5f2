package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/service"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// fileHeaders builds multipart file headers for name -> content pairs.
func fileHeaders(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := w.CreateFormFile(service.UploadField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[service.UploadField]
}

func newMediaService(t *testing.T) (*service.MediaService, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	svc, err := service.NewMediaService(service.MediaConfig{
		Dir:       dir,
		URLPrefix: "/uploads",
		MaxFiles:  2,
		MaxBytes:  16,
	}, validator.NewValidator())
	require.NoError(t, err)
	return svc, dir
}

func TestMediaService_UploadRejects(t *testing.T) {
	ctx := context.Background()
	svc, dir := newMediaService(t)

	_, err := svc.Upload(ctx, nil)
	assert.ErrorIs(t, err, service.ErrNoFiles)

	_, err = svc.Upload(ctx, fileHeaders(t, map[string]string{"a.png": "a", "b.png": "b", "c.png": "c"}))
	assert.ErrorIs(t, err, service.ErrTooManyFiles)

	_, err = svc.Upload(ctx, fileHeaders(t, map[string]string{"a.png": "a", "notes.txt": "b"}))
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)

	_, err = svc.Upload(ctx, fileHeaders(t, map[string]string{"big.jpg": strings.Repeat("x", 17)}))
	assert.ErrorIs(t, err, service.ErrFileTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not leave files behind")
}

func TestMediaService_UploadAndLibrary(t *testing.T) {
	ctx := context.Background()
	svc, dir := newMediaService(t)

	urls, err := svc.Upload(ctx, fileHeaders(t, map[string]string{"Photo.JPG": "jpeg-bytes"}))
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Regexp(t, `^/uploads/images-\d+-\d+\.JPG$`, urls[0])

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(urls[0])))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, urls[0], item.URL)
	assert.Equal(t, "image/jpeg", item.Type)
	assert.Equal(t, int64(len("jpeg-bytes")), item.Size)
	assert.Equal(t, domain.MediaStatusApproved, item.Status)

	status := domain.MediaStatusPending
	updated, err := svc.Update(ctx, item.ID, domain.MediaPatch{Name: ptr("Front panel"), Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Front panel", updated.Name)
	assert.Equal(t, domain.MediaStatusPending, updated.Status)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Front panel", got.Name)
	assert.Equal(t, item.URL, got.URL)

	bad := domain.MediaStatus("spam")
	_, err = svc.Update(ctx, item.ID, domain.MediaPatch{Status: &bad})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	ok, err := svc.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMediaService_PicksUpExistingFiles(t *testing.T) {
	ctx := context.Background()
	svc, dir := newMediaService(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))

	item, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "legacy.png", item.Name)
	assert.Equal(t, "image/png", item.Type)

	missing, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
