package service

import (
	"context"
	"log/slog"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

// ContactService handles contact form submissions and the admin inbox.
type ContactService struct {
	repo      repository.ContactRepository
	validator *validator.Validator
}

var _ ContactServiceInterface = (*ContactService)(nil)

// NewContactService creates a new ContactService.
func NewContactService(repo repository.ContactRepository, v *validator.Validator) *ContactService {
	return &ContactService{repo: repo, validator: v}
}

// Submit validates and stores a message. It is always stored unread.
func (s *ContactService) Submit(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error) {
	if err := s.validator.ValidateNewContactMessage(&in); err != nil {
		return nil, err
	}
	msg, err := s.repo.CreateContactMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	componentLogger(ctx, "contact").Info("Contact message received", slog.Int64("id", msg.ID))
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return s.repo.GetContactMessage(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	read := true
	return s.repo.UpdateContactMessage(ctx, id, domain.ContactMessagePatch{Read: &read})
}

func (s *ContactService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteContactMessage(ctx, id)
}
