package repository

import (
	"context"
	"errors"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
)

// InstrumentedStore records a storage metric for every call it forwards.
type InstrumentedStore struct {
	next Store
}

var _ Store = (*InstrumentedStore)(nil)

// Instrument wraps next with storage metrics.
func Instrument(next Store) *InstrumentedStore {
	return &InstrumentedStore{next: next}
}

// Unwrap returns the decorated store.
func (s *InstrumentedStore) Unwrap() Store { return s.next }

func resultOf(err error, found bool) string {
	switch {
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrDuplicateUsername):
		return metrics.ResultConflict
	case err != nil:
		return metrics.ResultError
	case !found:
		return metrics.ResultNotFound
	}
	return metrics.ResultSuccess
}

func observe[T any](s *InstrumentedStore, entity, op string, call func() (T, error), found func(T) bool) (T, error) {
	timer := metrics.NewTimer()
	v, err := call()
	hit := err != nil || found == nil || found(v)
	metrics.ObserveStorageOperation(s.next.Backend(), entity, op, resultOf(err, hit), timer.Elapsed())
	return v, err
}

func present[T any](v *T) bool { return v != nil }
func deleted(ok bool) bool     { return ok }

// Backend implements Store.
func (s *InstrumentedStore) Backend() string { return s.next.Backend() }

// Ping implements Store.
func (s *InstrumentedStore) Ping(ctx context.Context) error { return s.next.Ping(ctx) }

// Close implements Store.
func (s *InstrumentedStore) Close() error { return s.next.Close() }

func (s *InstrumentedStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return observe(s, "user", "list", func() ([]domain.User, error) { return s.next.ListUsers(ctx) }, nil)
}

func (s *InstrumentedStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return observe(s, "user", "get", func() (*domain.User, error) { return s.next.GetUser(ctx, id) }, present[domain.User])
}

func (s *InstrumentedStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return observe(s, "user", "get_by_username", func() (*domain.User, error) { return s.next.GetUserByUsername(ctx, username) }, present[domain.User])
}

func (s *InstrumentedStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return observe(s, "user", "create", func() (*domain.User, error) { return s.next.CreateUser(ctx, in) }, nil)
}

func (s *InstrumentedStore) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return observe(s, "blog_post", "list", func() ([]domain.BlogPost, error) { return s.next.ListBlogPosts(ctx) }, nil)
}

func (s *InstrumentedStore) GetBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	return observe(s, "blog_post", "get", func() (*domain.BlogPost, error) { return s.next.GetBlogPost(ctx, id) }, present[domain.BlogPost])
}

func (s *InstrumentedStore) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return observe(s, "blog_post", "get_by_slug", func() (*domain.BlogPost, error) { return s.next.GetBlogPostBySlug(ctx, slug) }, present[domain.BlogPost])
}

func (s *InstrumentedStore) CreateBlogPost(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	return observe(s, "blog_post", "create", func() (*domain.BlogPost, error) { return s.next.CreateBlogPost(ctx, in) }, nil)
}

func (s *InstrumentedStore) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	return observe(s, "blog_post", "update", func() (*domain.BlogPost, error) { return s.next.UpdateBlogPost(ctx, id, patch) }, present[domain.BlogPost])
}

func (s *InstrumentedStore) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	return observe(s, "blog_post", "delete", func() (bool, error) { return s.next.DeleteBlogPost(ctx, id) }, deleted)
}

func (s *InstrumentedStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return observe(s, "product", "list", func() ([]domain.Product, error) { return s.next.ListProducts(ctx) }, nil)
}

func (s *InstrumentedStore) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return observe(s, "product", "list_featured", func() ([]domain.Product, error) { return s.next.ListFeaturedProducts(ctx) }, nil)
}

func (s *InstrumentedStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return observe(s, "product", "get", func() (*domain.Product, error) { return s.next.GetProduct(ctx, id) }, present[domain.Product])
}

func (s *InstrumentedStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return observe(s, "product", "get_by_slug", func() (*domain.Product, error) { return s.next.GetProductBySlug(ctx, slug) }, present[domain.Product])
}

func (s *InstrumentedStore) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	return observe(s, "product", "create", func() (*domain.Product, error) { return s.next.CreateProduct(ctx, in) }, nil)
}

func (s *InstrumentedStore) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	return observe(s, "product", "update", func() (*domain.Product, error) { return s.next.UpdateProduct(ctx, id, patch) }, present[domain.Product])
}

func (s *InstrumentedStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return observe(s, "product", "delete", func() (bool, error) { return s.next.DeleteProduct(ctx, id) }, deleted)
}

func (s *InstrumentedStore) ListServices(ctx context.Context) ([]domain.Service, error) {
	return observe(s, "service", "list", func() ([]domain.Service, error) { return s.next.ListServices(ctx) }, nil)
}

func (s *InstrumentedStore) ListFeaturedServices(ctx context.Context) ([]domain.Service, error) {
	return observe(s, "service", "list_featured", func() ([]domain.Service, error) { return s.next.ListFeaturedServices(ctx) }, nil)
}

func (s *InstrumentedStore) ListServicesByParent(ctx context.Context, parentID *int64) ([]domain.Service, error) {
	return observe(s, "service", "list_by_parent", func() ([]domain.Service, error) { return s.next.ListServicesByParent(ctx, parentID) }, nil)
}

func (s *InstrumentedStore) ServiceHierarchy(ctx context.Context) ([]domain.ServiceNode, error) {
	return observe(s, "service", "hierarchy", func() ([]domain.ServiceNode, error) { return s.next.ServiceHierarchy(ctx) }, nil)
}

func (s *InstrumentedStore) RelatedServices(ctx context.Context, id int64) ([]domain.Service, error) {
	return observe(s, "service", "related", func() ([]domain.Service, error) { return s.next.RelatedServices(ctx, id) }, nil)
}

func (s *InstrumentedStore) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return observe(s, "service", "get", func() (*domain.Service, error) { return s.next.GetService(ctx, id) }, present[domain.Service])
}

func (s *InstrumentedStore) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return observe(s, "service", "get_by_slug", func() (*domain.Service, error) { return s.next.GetServiceBySlug(ctx, slug) }, present[domain.Service])
}

func (s *InstrumentedStore) CreateService(ctx context.Context, in domain.NewService) (*domain.Service, error) {
	return observe(s, "service", "create", func() (*domain.Service, error) { return s.next.CreateService(ctx, in) }, nil)
}

func (s *InstrumentedStore) UpdateService(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	return observe(s, "service", "update", func() (*domain.Service, error) { return s.next.UpdateService(ctx, id, patch) }, present[domain.Service])
}

func (s *InstrumentedStore) DeleteService(ctx context.Context, id int64) (bool, error) {
	return observe(s, "service", "delete", func() (bool, error) { return s.next.DeleteService(ctx, id) }, deleted)
}

func (s *InstrumentedStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return observe(s, "contact_message", "list", func() ([]domain.ContactMessage, error) { return s.next.ListContactMessages(ctx) }, nil)
}

func (s *InstrumentedStore) GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return observe(s, "contact_message", "get", func() (*domain.ContactMessage, error) { return s.next.GetContactMessage(ctx, id) }, present[domain.ContactMessage])
}

func (s *InstrumentedStore) CreateContactMessage(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error) {
	return observe(s, "contact_message", "create", func() (*domain.ContactMessage, error) { return s.next.CreateContactMessage(ctx, in) }, nil)
}

func (s *InstrumentedStore) UpdateContactMessage(ctx context.Context, id int64, patch domain.ContactMessagePatch) (*domain.ContactMessage, error) {
	return observe(s, "contact_message", "update", func() (*domain.ContactMessage, error) { return s.next.UpdateContactMessage(ctx, id, patch) }, present[domain.ContactMessage])
}

func (s *InstrumentedStore) DeleteContactMessage(ctx context.Context, id int64) (bool, error) {
	return observe(s, "contact_message", "delete", func() (bool, error) { return s.next.DeleteContactMessage(ctx, id) }, deleted)
}
