// Package objectstore provides flat key/value buckets for JSON documents.
// Keys are slash separated object names such as "blogs/1.json".
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrObjectNotFound is returned when a key has no object.
var ErrObjectNotFound = errors.New("object not found")

// Drivers understood by Open.
const (
	DriverBolt = "bolt"
	DriverDir  = "dir"
)

// Bucket stores opaque objects by key.
type Bucket interface {
	// Get returns the object stored under key or ErrObjectNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put creates or replaces the object stored under key.
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes the object stored under key or returns ErrObjectNotFound.
	Delete(ctx context.Context, key string) error
	// List returns the keys starting with prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Ping reports whether the bucket is usable.
	Ping(ctx context.Context) error
	// Driver names the implementation.
	Driver() string
	Close() error
}

// Open opens a bucket with the named driver. For bolt the path is the
// database file; for dir it is the base directory.
func Open(driver, location string) (Bucket, error) {
	switch driver {
	case DriverBolt:
		return OpenBolt(location)
	case DriverDir:
		return OpenDir(location)
	default:
		return nil, fmt.Errorf("unknown object store driver %q", driver)
	}
}

// validateKey rejects empty, absolute and escaping keys.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("object key is required")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return fmt.Errorf("invalid object key %q", key)
	}
	if clean := path.Clean(key); clean != key || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("invalid object key %q", key)
	}
	return nil
}
