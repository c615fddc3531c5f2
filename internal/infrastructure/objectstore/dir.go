package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const tmpPrefix = ".tmp-"

// DirBucket stores one file per object below a base directory. Object keys
// map onto relative file paths.
type DirBucket struct {
	base string
}

var _ Bucket = (*DirBucket)(nil)

// OpenDir creates the base directory if needed.
func OpenDir(base string) (*DirBucket, error) {
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	base = filepath.Clean(base)
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory %s: %w", base, err)
	}
	return &DirBucket{base: base}, nil
}

// Driver implements Bucket.
func (d *DirBucket) Driver() string { return DriverDir }

// Get implements Bucket.
func (d *DirBucket) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := d.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return data, nil
}

// Put writes to a temporary file and renames it over the target so readers
// never see a partial object.
func (d *DirBucket) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := d.path(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tmpPrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp object: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write object %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close object %s: %w", key, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("rename object %s: %w", key, err)
	}
	return nil
}

// Delete implements Bucket.
func (d *DirBucket) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := d.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// List walks the directory holding prefix and returns matching keys.
func (d *DirBucket) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := d.base
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		root = filepath.Join(d.base, filepath.FromSlash(prefix[:i]))
	}

	keys := []string{}
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == root {
				return filepath.SkipDir
			}
			return err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), tmpPrefix) {
			return nil
		}
		rel, err := filepath.Rel(d.base, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list objects %q: %w", prefix, err)
	}

	sort.Strings(keys)
	return keys, nil
}

// Ping implements Bucket.
func (d *DirBucket) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(d.base)
	if err != nil {
		return fmt.Errorf("stat storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", d.base)
	}
	return nil
}

// Close implements Bucket. There is nothing to release.
func (d *DirBucket) Close() error { return nil }

func (d *DirBucket) path(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(d.base, filepath.FromSlash(key)), nil
}
