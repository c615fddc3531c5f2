package service

import (
	"context"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// ProductService handles the product catalogue.
type ProductService struct {
	repo      repository.ProductRepository
	validator *validator.Validator
}

var _ ProductServiceInterface = (*ProductService)(nil)

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, v *validator.Validator) *ProductService {
	return &ProductService{repo: repo, validator: v}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *ProductService) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeaturedProducts(ctx)
}

func (s *ProductService) Lookup(ctx context.Context, key string) (*domain.Product, error) {
	return lookupByIDOrSlug(ctx, key, s.repo.GetProduct, s.repo.GetProductBySlug)
}

func (s *ProductService) Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	if err := s.validator.ValidateNewProduct(&in); err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, in)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if err := s.validator.ValidateProductPatch(&patch); err != nil {
		return nil, err
	}
	return s.repo.UpdateProduct(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProduct(ctx, id)
}
