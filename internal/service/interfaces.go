package service

import (
	"context"
	"mime/multipart"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

// Lookups return (nil, nil) when the entity does not exist.

// BlogServiceInterface defines the blog operations used by the HTTP layer.
type BlogServiceInterface interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	// Lookup resolves key as a numeric id first, then as a slug.
	Lookup(ctx context.Context, key string) (*domain.BlogPost, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Create(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductServiceInterface defines the product catalogue operations.
type ProductServiceInterface interface {
	List(ctx context.Context) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Lookup(ctx context.Context, key string) (*domain.Product, error)
	Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ServiceCatalogInterface defines the service catalogue operations.
type ServiceCatalogInterface interface {
	List(ctx context.Context) ([]domain.Service, error)
	Featured(ctx context.Context) ([]domain.Service, error)
	Hierarchy(ctx context.Context) ([]domain.ServiceNode, error)
	ByParent(ctx context.Context, parentID *int64) ([]domain.Service, error)
	Related(ctx context.Context, id int64) ([]domain.Service, error)
	// Detail resolves key like Lookup and attaches direct children.
	Detail(ctx context.Context, key string) (*domain.ServiceDetail, error)
	Create(ctx context.Context, in domain.NewService) (*domain.Service, error)
	Update(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactServiceInterface defines the contact form and inbox operations.
type ContactServiceInterface interface {
	Submit(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Get(ctx context.Context, id int64) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserServiceInterface defines admin account operations.
type UserServiceInterface interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in domain.NewUser) (*domain.User, error)
}

// AuthServiceInterface defines the admin login.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

// CommentServiceInterface defines the comment moderation queue.
type CommentServiceInterface interface {
	List(ctx context.Context) ([]domain.Comment, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	Approve(ctx context.Context, id int64) (*domain.Comment, error)
	Reject(ctx context.Context, id int64) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MediaServiceInterface defines uploads and the media library.
type MediaServiceInterface interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
	List(ctx context.Context) ([]domain.MediaItem, error)
	Get(ctx context.Context, id int64) (*domain.MediaItem, error)
	Update(ctx context.Context, id int64, patch domain.MediaPatch) (*domain.MediaItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
