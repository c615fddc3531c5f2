package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// BlogService handles blog posts and their derived categories.
type BlogService struct {
	repo      repository.BlogRepository
	validator *validator.Validator
}

var _ BlogServiceInterface = (*BlogService)(nil)

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, v *validator.Validator) *BlogService {
	return &BlogService{repo: repo, validator: v}
}

// List returns every post, newest publish date first.
func (s *BlogService) List(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.ListBlogPosts(ctx)
}

// Lookup implements BlogServiceInterface.
func (s *BlogService) Lookup(ctx context.Context, key string) (*domain.BlogPost, error) {
	return lookupByIDOrSlug(ctx, key, s.repo.GetBlogPost, s.repo.GetBlogPostBySlug)
}

// Categories counts posts per category name, ordered by name.
func (s *BlogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	posts, err := s.repo.ListBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	counts := make(map[string]int)
	for _, p := range posts {
		seen := make(map[string]bool, len(p.Categories))
		for _, c := range p.Categories {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			counts[c]++
		}
	}

	out := make([]domain.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Create validates and stores a new post.
func (s *BlogService) Create(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	if err := s.validator.ValidateNewBlogPost(&in); err != nil {
		return nil, err
	}
	post, err := s.repo.CreateBlogPost(ctx, in)
	if err != nil {
		return nil, err
	}
	componentLogger(ctx, "blog").Info("Blog post created",
		slog.Int64("id", post.ID),
		slog.String("slug", post.Slug))
	return post, nil
}

// Update validates and applies a partial update.
func (s *BlogService) Update(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	if err := s.validator.ValidateBlogPostPatch(&patch); err != nil {
		return nil, err
	}
	return s.repo.UpdateBlogPost(ctx, id, patch)
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteBlogPost(ctx, id)
	if err == nil && ok {
		componentLogger(ctx, "blog").Info("Blog post deleted", slog.Int64("id", id))
	}
	return ok, err
}
