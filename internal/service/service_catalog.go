package service

import (
	"context"
	"fmt"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// ServiceCatalog handles the two-level service hierarchy.
type ServiceCatalog struct {
	repo      repository.ServiceRepository
	validator *validator.Validator
}

var _ ServiceCatalogInterface = (*ServiceCatalog)(nil)

// NewServiceCatalog creates a new ServiceCatalog.
func NewServiceCatalog(repo repository.ServiceRepository, v *validator.Validator) *ServiceCatalog {
	return &ServiceCatalog{repo: repo, validator: v}
}

func (s *ServiceCatalog) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *ServiceCatalog) Featured(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListFeaturedServices(ctx)
}

func (s *ServiceCatalog) Hierarchy(ctx context.Context) ([]domain.ServiceNode, error) {
	return s.repo.ServiceHierarchy(ctx)
}

func (s *ServiceCatalog) ByParent(ctx context.Context, parentID *int64) ([]domain.Service, error) {
	return s.repo.ListServicesByParent(ctx, parentID)
}

func (s *ServiceCatalog) Related(ctx context.Context, id int64) ([]domain.Service, error) {
	return s.repo.RelatedServices(ctx, id)
}

// Detail implements ServiceCatalogInterface. SubServices stays empty for a
// service without children so it is omitted from JSON.
func (s *ServiceCatalog) Detail(ctx context.Context, key string) (*domain.ServiceDetail, error) {
	svc, err := lookupByIDOrSlug(ctx, key, s.repo.GetService, s.repo.GetServiceBySlug)
	if err != nil || svc == nil {
		return nil, err
	}

	children, err := s.repo.ListServicesByParent(ctx, &svc.ID)
	if err != nil {
		return nil, fmt.Errorf("list sub-services of %d: %w", svc.ID, err)
	}

	detail := &domain.ServiceDetail{Service: *svc}
	if len(children) > 0 {
		detail.SubServices = children
	}
	return detail, nil
}

func (s *ServiceCatalog) Create(ctx context.Context, in domain.NewService) (*domain.Service, error) {
	if err := s.validator.ValidateNewService(&in); err != nil {
		return nil, err
	}
	return s.repo.CreateService(ctx, in)
}

func (s *ServiceCatalog) Update(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	if err := s.validator.ValidateServicePatch(&patch); err != nil {
		return nil, err
	}
	return s.repo.UpdateService(ctx, id, patch)
}

func (s *ServiceCatalog) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteService(ctx, id)
}
