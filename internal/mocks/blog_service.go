package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

// BlogService is a testify mock of service.BlogServiceInterface.
type BlogService struct {
	mock.Mock
}

// NewBlogService creates a mock that asserts its expectations on cleanup.
func NewBlogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogService {
	m := &BlogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BlogService) List(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.BlogPost)
	return posts, args.Error(1)
}

func (m *BlogService) Lookup(ctx context.Context, key string) (*domain.BlogPost, error) {
	args := m.Called(ctx, key)
	p, _ := args.Get(0).(*domain.BlogPost)
	return p, args.Error(1)
}

func (m *BlogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.CategoryCount)
	return c, args.Error(1)
}

func (m *BlogService) Create(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*domain.BlogPost)
	return p, args.Error(1)
}

func (m *BlogService) Update(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(*domain.BlogPost)
	return p, args.Error(1)
}

func (m *BlogService) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
