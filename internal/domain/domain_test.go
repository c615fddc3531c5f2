package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidBlogStatus(t *testing.T) {
	tests := []struct {
		status BlogStatus
		valid  bool
	}{
		{"draft", true},
		{"published", true},
		{"scheduled", true},
		{"archived", false},
		{"", false},
		{"DRAFT", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := IsValidBlogStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidBlogStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidMediaStatus(t *testing.T) {
	assert.True(t, IsValidMediaStatus(MediaStatusApproved))
	assert.True(t, IsValidMediaStatus(MediaStatusPending))
	assert.True(t, IsValidMediaStatus(MediaStatusRejected))
	assert.False(t, IsValidMediaStatus("spam"))
}

func TestNewBlogPost_Build(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("applies defaults", func(t *testing.T) {
		post := NewBlogPost{Title: "T", Slug: "t", Content: "c"}.Build(7, now)

		assert.Equal(t, int64(7), post.ID)
		assert.Equal(t, DefaultAuthor, post.Author)
		assert.Equal(t, BlogStatusDraft, post.Status)
		assert.Equal(t, now, post.PublishDate)
		assert.Equal(t, now, post.CreatedAt)
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
		assert.NotNil(t, post.Images)
		assert.NotNil(t, post.Categories)
		assert.NotNil(t, post.Tags)
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		author := "Jane"
		status := BlogStatusPublished
		published := now.Add(-24 * time.Hour)
		post := NewBlogPost{
			Title:       "T",
			Slug:        "t",
			Content:     "c",
			Author:      &author,
			Status:      &status,
			PublishDate: &published,
			Tags:        []string{"a"},
		}.Build(1, now)

		assert.Equal(t, "Jane", post.Author)
		assert.Equal(t, BlogStatusPublished, post.Status)
		assert.Equal(t, published, post.PublishDate)
		assert.Equal(t, []string{"a"}, post.Tags)
	})
}

func TestBlogPostPatch_Apply(t *testing.T) {
	now := time.Now()
	post := NewBlogPost{Title: "Original", Slug: "original", Content: "body"}.Build(1, now)

	status := BlogStatusPublished
	tags := []string{"x", "y"}
	BlogPostPatch{Status: &status, Tags: &tags}.Apply(&post)

	assert.Equal(t, "Original", post.Title)
	assert.Equal(t, "original", post.Slug)
	assert.Equal(t, "body", post.Content)
	assert.Equal(t, BlogStatusPublished, post.Status)
	assert.Equal(t, []string{"x", "y"}, post.Tags)
}

func TestProductPatch_Apply(t *testing.T) {
	p := NewProduct{Name: "Box", Slug: "box", Description: "a box"}.Build(1, time.Now())
	assert.False(t, p.Featured)

	featured := true
	desc := "a better box"
	ProductPatch{Featured: &featured, Description: &desc}.Apply(&p)

	assert.Equal(t, "Box", p.Name)
	assert.Equal(t, "a better box", p.Description)
	assert.True(t, p.Featured)
}

func TestNewService_Build(t *testing.T) {
	s := NewService{Name: "S", Slug: "s", Description: "d"}.Build(3, time.Now())

	assert.True(t, s.IsMain())
	assert.Equal(t, 0, s.Order)
	assert.False(t, s.Featured)
	assert.NotNil(t, s.Features)
	assert.NotNil(t, s.Benefits)
	assert.NotNil(t, s.Applications)
	assert.NotNil(t, s.Specifications)
	assert.NotNil(t, s.RelatedServices)
}

func TestServicePatch_ParentID(t *testing.T) {
	parent := int64(1)

	t.Run("absent key keeps parent", func(t *testing.T) {
		var patch ServicePatch
		require.NoError(t, json.Unmarshal([]byte(`{"name":"renamed"}`), &patch))

		s := Service{Name: "old", ParentID: &parent}
		patch.Apply(&s)

		assert.Equal(t, "renamed", s.Name)
		require.NotNil(t, s.ParentID)
		assert.Equal(t, int64(1), *s.ParentID)
	})

	t.Run("explicit null promotes to main service", func(t *testing.T) {
		var patch ServicePatch
		require.NoError(t, json.Unmarshal([]byte(`{"parentId":null}`), &patch))
		assert.True(t, patch.ParentID.Set)

		s := Service{ParentID: &parent}
		patch.Apply(&s)

		assert.True(t, s.IsMain())
	})

	t.Run("number reparents", func(t *testing.T) {
		var patch ServicePatch
		require.NoError(t, json.Unmarshal([]byte(`{"parentId":4}`), &patch))

		s := Service{}
		patch.Apply(&s)

		require.NotNil(t, s.ParentID)
		assert.Equal(t, int64(4), *s.ParentID)
	})

	t.Run("rejects non numeric parent", func(t *testing.T) {
		var patch ServicePatch
		err := json.Unmarshal([]byte(`{"parentId":"abc"}`), &patch)
		assert.Error(t, err)
	})
}

func TestContactMessage_Build(t *testing.T) {
	m := NewContactMessage{Name: "A", Email: "a@example.com", Message: "hi"}.Build(2, time.Now())
	assert.False(t, m.Read)

	read := true
	ContactMessagePatch{Read: &read}.Apply(&m)
	assert.True(t, m.Read)
	assert.Equal(t, "hi", m.Message)
}

func TestUserPasswordNotSerialised(t *testing.T) {
	data, err := json.Marshal(NewUser{Username: "admin", Password: "secret"}.Build(1))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "admin")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "slug", Reason: "slug_required"},
		{Field: "title", Reason: "title_required"},
	}}
	assert.Equal(t, "validation failed: slug: slug_required; title: title_required", err.Error())
}
