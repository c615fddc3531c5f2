package objectstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBuckets(t *testing.T) map[string]Bucket {
	t.Helper()

	bolt, err := OpenBolt(filepath.Join(t.TempDir(), "objects.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	dir, err := OpenDir(filepath.Join(t.TempDir(), "objects"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dir.Close() })

	return map[string]Bucket{DriverBolt: bolt, DriverDir: dir}
}

func TestBucketContract(t *testing.T) {
	for name, bucket := range openBuckets(t) {
		bucket := bucket
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			assert.Equal(t, name, bucket.Driver())
			require.NoError(t, bucket.Ping(ctx))

			t.Run("get missing", func(t *testing.T) {
				_, err := bucket.Get(ctx, "blogs/404.json")
				assert.True(t, errors.Is(err, ErrObjectNotFound))
			})

			t.Run("put get overwrite", func(t *testing.T) {
				require.NoError(t, bucket.Put(ctx, "blogs/1.json", []byte(`{"id":1}`)))
				data, err := bucket.Get(ctx, "blogs/1.json")
				require.NoError(t, err)
				assert.JSONEq(t, `{"id":1}`, string(data))

				require.NoError(t, bucket.Put(ctx, "blogs/1.json", []byte(`{"id":1,"title":"x"}`)))
				data, err = bucket.Get(ctx, "blogs/1.json")
				require.NoError(t, err)
				assert.JSONEq(t, `{"id":1,"title":"x"}`, string(data))
			})

			t.Run("list by prefix", func(t *testing.T) {
				require.NoError(t, bucket.Put(ctx, "blogs/2.json", []byte(`{}`)))
				require.NoError(t, bucket.Put(ctx, "products/1.json", []byte(`{}`)))
				require.NoError(t, bucket.Put(ctx, "counters.json", []byte(`{}`)))

				keys, err := bucket.List(ctx, "blogs/")
				require.NoError(t, err)
				assert.Equal(t, []string{"blogs/1.json", "blogs/2.json"}, keys)

				keys, err = bucket.List(ctx, "services/")
				require.NoError(t, err)
				assert.Empty(t, keys)
			})

			t.Run("delete", func(t *testing.T) {
				require.NoError(t, bucket.Delete(ctx, "blogs/2.json"))
				assert.True(t, errors.Is(bucket.Delete(ctx, "blogs/2.json"), ErrObjectNotFound))

				keys, err := bucket.List(ctx, "blogs/")
				require.NoError(t, err)
				assert.Equal(t, []string{"blogs/1.json"}, keys)
			})

			t.Run("rejects unsafe keys", func(t *testing.T) {
				for _, key := range []string{"", "/etc/passwd", "../escape.json", "blogs/../../x", "a\\b"} {
					assert.Error(t, bucket.Put(ctx, key, []byte(`{}`)), key)
				}
			})

			t.Run("honours cancelled context", func(t *testing.T) {
				cctx, cancel := context.WithCancel(ctx)
				cancel()
				_, err := bucket.Get(cctx, "blogs/1.json")
				assert.ErrorIs(t, err, context.Canceled)
			})
		})
	}
}

func TestBoltBucketPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.db")
	ctx := context.Background()

	b, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, b.Put(ctx, "users/1.json", []byte(`{"username":"admin"}`)))
	require.NoError(t, b.Close())

	b, err = OpenBolt(path)
	require.NoError(t, err)
	defer b.Close()

	data, err := b.Get(ctx, "users/1.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"admin"}`, string(data))
}

func TestDirBucketIgnoresTempFiles(t *testing.T) {
	base := t.TempDir()
	d, err := OpenDir(base)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, d.Put(ctx, "services/1.json", []byte(`{}`)))
	require.NoError(t, os.WriteFile(filepath.Join(base, "services", tmpPrefix+"123"), []byte("partial"), 0o644))

	keys, err := d.List(ctx, "services/")
	require.NoError(t, err)
	assert.Equal(t, []string{"services/1.json"}, keys)
}

func TestOpen(t *testing.T) {
	b, err := Open(DriverDir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DriverDir, b.Driver())

	_, err = Open("s3", "bucket")
	assert.Error(t, err)

	_, err = OpenBolt("  ")
	assert.Error(t, err)
}
