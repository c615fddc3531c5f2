package repository

import (
	"context"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

// Lookups return (nil, nil) when the row does not exist. Updates behave the
// same way for a missing id. Deletes report whether a row was removed.

// UserRepository defines methods for user data access.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error)
}

// BlogRepository defines methods for blog post data access.
type BlogRepository interface {
	ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, p domain.NewBlogPost) (*domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) (bool, error)
}

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p domain.NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}

// ServiceRepository defines methods for service data access, including the
// one-level hierarchy and related-service resolution.
type ServiceRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListFeaturedServices(ctx context.Context) ([]domain.Service, error)
	// ListServicesByParent returns top-level services for a nil parent,
	// otherwise the direct children of parentID, ordered by Order.
	ListServicesByParent(ctx context.Context, parentID *int64) ([]domain.Service, error)
	ServiceHierarchy(ctx context.Context) ([]domain.ServiceNode, error)
	// RelatedServices resolves relatedServices in listed order, dropping
	// ids that no longer exist. Never nil.
	RelatedServices(ctx context.Context, id int64) ([]domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	CreateService(ctx context.Context, s domain.NewService) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) (bool, error)
}

// ContactRepository defines methods for contact message data access.
type ContactRepository interface {
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error)
	CreateContactMessage(ctx context.Context, m domain.NewContactMessage) (*domain.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id int64, patch domain.ContactMessagePatch) (*domain.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id int64) (bool, error)
}

// Store combines every repository with backend lifecycle methods.
type Store interface {
	UserRepository
	BlogRepository
	ProductRepository
	ServiceRepository
	ContactRepository

	// Backend names the implementation: memory, object or postgres.
	Backend() string
	Ping(ctx context.Context) error
	Close() error
}
