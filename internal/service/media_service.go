package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// UploadField is the multipart field carrying uploaded images.
const UploadField = "images"

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaConfig configures the uploads directory.
type MediaConfig struct {
	Dir       string
	URLPrefix string
	MaxFiles  int
	MaxBytes  int64
}

type mediaOverlay struct {
	name   *string
	status *domain.MediaStatus
}

// MediaService stores uploads on disk and serves the media library from a
// directory scan. Display names and statuses are kept in process; ids are
// assigned the first time a file is seen.
type MediaService struct {
	cfg       MediaConfig
	validator *validator.Validator
	now       func() time.Time

	mu      sync.Mutex
	ids     map[string]int64
	files   map[int64]string
	overlay map[int64]mediaOverlay
	nextID  int64
}

var _ MediaServiceInterface = (*MediaService)(nil)

// NewMediaService creates the uploads directory if needed.
func NewMediaService(cfg MediaConfig, v *validator.Validator) (*MediaService, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = "/uploads"
	}
	return &MediaService{
		cfg:       cfg,
		validator: v,
		now:       time.Now,
		ids:       make(map[string]int64),
		files:     make(map[int64]string),
		overlay:   make(map[int64]mediaOverlay),
		nextID:    1,
	}, nil
}

// Upload validates every file before writing any of them and returns their
// public URLs in request order.
func (s *MediaService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := s.checkUpload(files); err != nil {
		metrics.ObserveUpload("rejected", len(files), 0)
		return nil, err
	}

	urls := make([]string, 0, len(files))
	written := make([]string, 0, len(files))
	var total int64
	for _, fh := range files {
		if err := ctx.Err(); err != nil {
			s.removeAll(written)
			return nil, err
		}

		name := s.fileName(fh.Filename)
		n, err := s.save(fh, name)
		if err != nil {
			s.removeAll(written)
			metrics.ObserveUpload(metrics.ResultError, len(files), 0)
			return nil, err
		}
		written = append(written, name)
		total += n
		urls = append(urls, s.cfg.URLPrefix+"/"+name)
	}

	metrics.ObserveUpload(metrics.ResultSuccess, len(files), total)
	componentLogger(ctx, "media").Info("Files uploaded",
		slog.Int("count", len(files)),
		slog.Int64("bytes", total))
	return urls, nil
}

func (s *MediaService) checkUpload(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	if s.cfg.MaxFiles > 0 && len(files) > s.cfg.MaxFiles {
		return fmt.Errorf("%w: at most %d allowed", ErrTooManyFiles, s.cfg.MaxFiles)
	}
	for _, fh := range files {
		if !allowedImageExts[strings.ToLower(filepath.Ext(fh.Filename))] {
			return fmt.Errorf("%w: %s", ErrUnsupportedFileType, fh.Filename)
		}
		if s.cfg.MaxBytes > 0 && fh.Size > s.cfg.MaxBytes {
			return fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
		}
	}
	return nil
}

// fileName builds images-{unixMillis}-{random}{ext}.
func (s *MediaService) fileName(original string) string {
	return fmt.Sprintf("%s-%d-%d%s", UploadField, s.now().UnixMilli(), rand.IntN(1e9), filepath.Ext(original))
}

func (s *MediaService) save(fh *multipart.FileHeader, name string) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	path := filepath.Join(s.cfg.Dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}

func (s *MediaService) removeAll(names []string) {
	for _, name := range names {
		_ = os.Remove(filepath.Join(s.cfg.Dir, name))
	}
}

// List scans the uploads directory. Items are ordered by id.
func (s *MediaService) List(ctx context.Context) ([]domain.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scan()
}

func (s *MediaService) Get(ctx context.Context, id int64) (*domain.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

// Update changes the display name or status of a file. The file itself is
// not renamed.
func (s *MediaService) Update(ctx context.Context, id int64, patch domain.MediaPatch) (*domain.MediaItem, error) {
	if err := s.validator.ValidateMediaPatch(&patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.find(id)
	if err != nil || item == nil {
		return nil, err
	}

	o := s.overlay[id]
	if patch.Name != nil {
		name := *patch.Name
		o.name = &name
		item.Name = name
	}
	if patch.Status != nil {
		status := *patch.Status
		o.status = &status
		item.Status = status
	}
	s.overlay[id] = o
	return item, nil
}

// Delete removes the file and forgets its metadata.
func (s *MediaService) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.files[id]
	if !ok {
		// The file may predate the last scan.
		if _, err := s.scan(); err != nil {
			return false, err
		}
		if name, ok = s.files[id]; !ok {
			return false, nil
		}
	}

	err := os.Remove(filepath.Join(s.cfg.Dir, name))
	s.forget(id, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", name, err)
	}

	componentLogger(ctx, "media").Info("Media deleted", slog.Int64("id", id), slog.String("file", name))
	return true, nil
}

func (s *MediaService) find(id int64) (*domain.MediaItem, error) {
	items, err := s.scan()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// scan lists regular files in the uploads directory, assigning ids to new
// files in modification order and dropping files that disappeared. Callers
// hold mu.
func (s *MediaService) scan() ([]domain.MediaItem, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read upload directory: %w", err)
	}

	type file struct {
		name string
		info fs.FileInfo
	}
	found := make([]file, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		found = append(found, file{name: e.Name(), info: info})
	}
	sort.Slice(found, func(i, j int) bool {
		mi, mj := found[i].info.ModTime(), found[j].info.ModTime()
		if !mi.Equal(mj) {
			return mi.Before(mj)
		}
		return found[i].name < found[j].name
	})

	present := make(map[string]bool, len(found))
	items := make([]domain.MediaItem, 0, len(found))
	for _, f := range found {
		present[f.name] = true
		id, ok := s.ids[f.name]
		if !ok {
			id = s.nextID
			s.nextID++
			s.ids[f.name] = id
			s.files[id] = f.name
		}
		items = append(items, s.item(id, f.name, f.info))
	}
	for name, id := range s.ids {
		if !present[name] {
			s.forget(id, name)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MediaService) item(id int64, name string, info fs.FileInfo) domain.MediaItem {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	item := domain.MediaItem{
		ID:         id,
		Name:       name,
		URL:        s.cfg.URLPrefix + "/" + name,
		Type:       contentType,
		Size:       info.Size(),
		UploadedAt: info.ModTime().UTC(),
		Status:     domain.MediaStatusApproved,
	}
	if o, ok := s.overlay[id]; ok {
		if o.name != nil {
			item.Name = *o.name
		}
		if o.status != nil {
			item.Status = *o.status
		}
	}
	return item
}

func (s *MediaService) forget(id int64, name string) {
	delete(s.ids, name)
	delete(s.files, id)
	delete(s.overlay, id)
}
