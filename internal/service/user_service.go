package service

import (
	"context"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// UserService handles admin accounts. Users are never updated or deleted.
type UserService struct {
	repo      repository.UserRepository
	validator *validator.Validator
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, v *validator.Validator) *UserService {
	return &UserService{repo: repo, validator: v}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if err := s.validator.ValidateNewUser(&in); err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, in)
}
