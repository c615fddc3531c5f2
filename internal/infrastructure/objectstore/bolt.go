package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const objectsBucket = "objects"

// BoltBucket keeps every object in one bbolt bucket keyed by object name.
type BoltBucket struct {
	db *bbolt.DB
}

var _ Bucket = (*BoltBucket)(nil)

// OpenBolt opens or creates the bbolt database at path.
func OpenBolt(path string) (*BoltBucket, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	b := &BoltBucket{db: db}
	if err := b.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

// Driver implements Bucket.
func (b *BoltBucket) Driver() string { return DriverBolt }

// Get implements Bucket.
func (b *BoltBucket) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(objectsBucket))
		if bucket == nil {
			return fmt.Errorf("objects bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return ErrObjectNotFound
		}
		// bbolt memory is only valid inside the transaction.
		out = bytes.Clone(payload)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put implements Bucket.
func (b *BoltBucket) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(objectsBucket))
		if bucket == nil {
			return fmt.Errorf("objects bucket is missing")
		}
		return bucket.Put([]byte(key), data)
	})
}

// Delete implements Bucket.
func (b *BoltBucket) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(objectsBucket))
		if bucket == nil {
			return fmt.Errorf("objects bucket is missing")
		}
		if bucket.Get([]byte(key)) == nil {
			return ErrObjectNotFound
		}
		return bucket.Delete([]byte(key))
	})
}

// List implements Bucket.
func (b *BoltBucket) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys := []string{}
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(objectsBucket))
		if bucket == nil {
			return fmt.Errorf("objects bucket is missing")
		}
		p := []byte(prefix)
		c := bucket.Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Ping implements Bucket.
func (b *BoltBucket) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(objectsBucket)) == nil {
			return fmt.Errorf("objects bucket is missing")
		}
		return nil
	})
}

// Close closes the underlying database.
func (b *BoltBucket) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func (b *BoltBucket) ensureBucket() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(objectsBucket)); err != nil {
			return fmt.Errorf("create objects bucket: %w", err)
		}
		return nil
	})
}
