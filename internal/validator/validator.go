package validator

import (
	"errors"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	validStatus   = []interface{}{domain.BlogStatusDraft, domain.BlogStatusPublished, domain.BlogStatusScheduled}
	validMedia    = []interface{}{domain.MediaStatusApproved, domain.MediaStatusPending, domain.MediaStatusRejected}
)

// Validator provides validation methods for create and update payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewUser validates a user creation payload.
func (v *Validator) ValidateNewUser(u *domain.NewUser) error {
	return toValidationError(validation.ValidateStruct(u,
		validation.Field(&u.Username,
			validation.Required.Error("username_required"),
			validation.Length(3, 64).Error("username_length"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&u.Password,
			validation.Required.Error("password_required"),
		),
	))
}

// ValidateNewBlogPost validates a blog post creation payload.
func (v *Validator) ValidateNewBlogPost(p *domain.NewBlogPost) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Author,
			validation.NilOrNotEmpty.Error("author_empty"),
		),
		validation.Field(&p.Status,
			validation.NilOrNotEmpty.Error("status_empty"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	))
}

// ValidateBlogPostPatch validates a partial blog post update.
func (v *Validator) ValidateBlogPostPatch(p *domain.BlogPostPatch) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.NilOrNotEmpty.Error("title_required"),
		),
		validation.Field(&p.Slug,
			validation.NilOrNotEmpty.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Content,
			validation.NilOrNotEmpty.Error("content_required"),
		),
		validation.Field(&p.Author,
			validation.NilOrNotEmpty.Error("author_empty"),
		),
		validation.Field(&p.Status,
			validation.NilOrNotEmpty.Error("status_empty"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	))
}

// ValidateNewProduct validates a product creation payload.
func (v *Validator) ValidateNewProduct(p *domain.NewProduct) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Description,
			validation.Required.Error("description_required"),
		),
	))
}

// ValidateProductPatch validates a partial product update.
func (v *Validator) ValidateProductPatch(p *domain.ProductPatch) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.NilOrNotEmpty.Error("name_required"),
		),
		validation.Field(&p.Slug,
			validation.NilOrNotEmpty.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Description,
			validation.NilOrNotEmpty.Error("description_required"),
		),
	))
}

// ValidateNewService validates a service creation payload.
func (v *Validator) ValidateNewService(s *domain.NewService) error {
	return toValidationError(validation.ValidateStruct(s,
		validation.Field(&s.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&s.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&s.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&s.ParentID,
			validation.By(parentIDRule),
		),
		validation.Field(&s.RelatedServices,
			validation.By(relatedIDsRule),
		),
	))
}

// ValidateServicePatch validates a partial service update.
func (v *Validator) ValidateServicePatch(s *domain.ServicePatch) error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.Name,
			validation.NilOrNotEmpty.Error("name_required"),
		),
		validation.Field(&s.Slug,
			validation.NilOrNotEmpty.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&s.Description,
			validation.NilOrNotEmpty.Error("description_required"),
		),
		validation.Field(&s.RelatedServices,
			validation.By(relatedIDsRule),
		),
	)
	if err != nil {
		return toValidationError(err)
	}

	if s.ParentID.Set && s.ParentID.Value != nil && *s.ParentID.Value < 1 {
		return toValidationError(validation.Errors{
			"parentId": validation.NewError("invalid_parent_id", "invalid_parent_id"),
		})
	}

	return nil
}

// ValidateNewContactMessage validates a contact form submission.
func (v *Validator) ValidateNewContactMessage(m *domain.NewContactMessage) error {
	return toValidationError(validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&m.Message,
			validation.Required.Error("message_required"),
		),
	))
}

// ValidateMediaPatch validates a media metadata update.
func (v *Validator) ValidateMediaPatch(p *domain.MediaPatch) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.NilOrNotEmpty.Error("name_required"),
		),
		validation.Field(&p.Status,
			validation.NilOrNotEmpty.Error("status_empty"),
			validation.In(validMedia...).Error("invalid_status"),
		),
	))
}

// parentIDRule rejects non-positive parent ids. ozzo's threshold rules skip
// zero values, so this is checked by hand.
func parentIDRule(value interface{}) error {
	id, ok := value.(*int64)
	if !ok || id == nil {
		return nil
	}
	if *id < 1 {
		return validation.NewError("invalid_parent_id", "invalid_parent_id")
	}
	return nil
}

// relatedIDsRule checks every id of a related-services list.
func relatedIDsRule(value interface{}) error {
	var ids []int64
	switch v := value.(type) {
	case []int64:
		ids = v
	case *[]int64:
		if v == nil {
			return nil
		}
		ids = *v
	}
	for _, id := range ids {
		if id < 1 {
			return validation.NewError("invalid_related_service_id", "invalid_related_service_id")
		}
	}
	return nil
}

// toValidationError converts ozzo validation errors to a domain.ValidationError
// with fields sorted by name. Internal rule errors are returned unchanged.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fieldErrors := make([]domain.FieldError, 0, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:  field,
			Reason: fieldErr.Error(),
		})
	}
	if len(fieldErrors) == 0 {
		return nil
	}

	sort.Slice(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Field < fieldErrors[j].Field
	})

	return &domain.ValidationError{Errors: fieldErrors}
}
