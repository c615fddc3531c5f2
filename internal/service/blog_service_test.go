package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/service"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

func ptr[T any](v T) *T { return &v }

func newBlogService(seed bool) *service.BlogService {
	store := repository.NewMemoryStore(repository.WithSeedData(seed))
	return service.NewBlogService(store, validator.NewValidator())
}

func TestBlogService_Lookup(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(false)

	byNumber, err := svc.Create(ctx, domain.NewBlogPost{Title: "Numbered", Slug: "2024", Content: "c"})
	require.NoError(t, err)
	first, err := svc.Create(ctx, domain.NewBlogPost{Title: "First", Slug: "first", Content: "c"})
	require.NoError(t, err)

	t.Run("numeric id wins", func(t *testing.T) {
		got, err := svc.Lookup(ctx, "2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("falls back to slug", func(t *testing.T) {
		got, err := svc.Lookup(ctx, "first")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("numeric slug when no such id", func(t *testing.T) {
		got, err := svc.Lookup(ctx, "2024")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, byNumber.ID, got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		got, err := svc.Lookup(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestBlogService_CreateValidates(t *testing.T) {
	svc := newBlogService(false)

	_, err := svc.Create(context.Background(), domain.NewBlogPost{Title: "No slug"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"content", "slug"}, fields)
}

func TestBlogService_UpdateValidates(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(false)
	post, err := svc.Create(ctx, domain.NewBlogPost{Title: "T", Slug: "t", Content: "c"})
	require.NoError(t, err)

	status := domain.BlogStatus("archived")
	_, err = svc.Update(ctx, post.ID, domain.BlogPostPatch{Status: &status})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	updated, err := svc.Update(ctx, post.ID, domain.BlogPostPatch{Status: ptr(domain.BlogStatusPublished)})
	require.NoError(t, err)
	assert.Equal(t, domain.BlogStatusPublished, updated.Status)
}

func TestBlogService_Categories(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(false)

	_, err := svc.Create(ctx, domain.NewBlogPost{Title: "A", Slug: "a", Content: "c", Categories: []string{"Industry", "Guides", "Industry"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.NewBlogPost{Title: "B", Slug: "b", Content: "c", Categories: []string{"Industry"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.NewBlogPost{Title: "C", Slug: "c", Content: "c"})
	require.NoError(t, err)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{
		{Name: "Guides", Count: 1},
		{Name: "Industry", Count: 2},
	}, cats)
}

func TestBlogService_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(true)

	_, err := svc.Create(ctx, domain.NewBlogPost{Title: "Dup", Slug: "choosing-right-enclosure", Content: "c"})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
}
