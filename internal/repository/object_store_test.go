package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/infrastructure/objectstore"
	"github.com/rdevrajsinh/totalenc/internal/repository"
)

func TestObjectStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	bucket, err := objectstore.OpenBolt(path)
	require.NoError(t, err)
	s := repository.NewObjectStore(bucket)

	first, err := s.CreateContactMessage(ctx, domain.NewContactMessage{Name: "A", Email: "a@example.com", Message: "m"})
	require.NoError(t, err)
	_, err = s.DeleteContactMessage(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	bucket, err = objectstore.OpenBolt(path)
	require.NoError(t, err)
	s = repository.NewObjectStore(bucket)
	defer s.Close()

	// Counters survive the reopen, so ids are never reused.
	second, err := s.CreateContactMessage(ctx, domain.NewContactMessage{Name: "B", Email: "b@example.com", Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestObjectStore_DocumentLayout(t *testing.T) {
	ctx := context.Background()
	bucket, err := objectstore.OpenDir(t.TempDir())
	require.NoError(t, err)
	s := repository.NewObjectStore(bucket)

	_, err = s.CreateUser(ctx, domain.NewUser{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	_, err = s.CreateBlogPost(ctx, domain.NewBlogPost{Title: "T", Slug: "t", Content: "c"})
	require.NoError(t, err)

	keys, err := bucket.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"blogs/1.json", "counters.json", "users/1.json"}, keys)

	// The password is kept in the document even though the API hides it.
	data, err := bucket.Get(ctx, "users/1.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"password":"admin123"`)

	assert.Equal(t, repository.BackendObject, s.Backend())
	assert.Equal(t, objectstore.DriverDir, s.Driver())
}
