package domain

import "time"

// Service represents an offering on the services pages. Services form a
// one-level forest: a service with a nil ParentID is a main service and its
// children point at it. Deeper nesting is never resolved.
type Service struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	FullDescription *string           `json:"fullDescription"`
	Image           *string           `json:"image"`
	Featured        bool              `json:"featured"`
	ParentID        *int64            `json:"parentId"`
	Order           int               `json:"order"`
	Features        []string          `json:"features"`
	Benefits        []string          `json:"benefits"`
	Applications    []string          `json:"applications"`
	Specifications  map[string]string `json:"specifications"`
	RelatedServices []int64           `json:"relatedServices"`
	MetaTitle       *string           `json:"metaTitle"`
	MetaDescription *string           `json:"metaDescription"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// IsMain reports whether the service sits at the top of the hierarchy.
func (s Service) IsMain() bool {
	return s.ParentID == nil
}

// ServiceNode is a main service with its direct children.
type ServiceNode struct {
	Service
	Children []Service `json:"children"`
}

// ServiceDetail is a service with its sub-services, omitted when empty.
type ServiceDetail struct {
	Service
	SubServices []Service `json:"subServices,omitempty"`
}

// NewService holds the fields accepted when creating a service.
type NewService struct {
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	FullDescription *string           `json:"fullDescription"`
	Image           *string           `json:"image"`
	Featured        *bool             `json:"featured"`
	ParentID        *int64            `json:"parentId"`
	Order           *int              `json:"order"`
	Features        []string          `json:"features"`
	Benefits        []string          `json:"benefits"`
	Applications    []string          `json:"applications"`
	Specifications  map[string]string `json:"specifications"`
	RelatedServices []int64           `json:"relatedServices"`
	MetaTitle       *string           `json:"metaTitle"`
	MetaDescription *string           `json:"metaDescription"`
}

// Build materialises the service with defaults applied.
func (n NewService) Build(id int64, now time.Time) Service {
	s := Service{
		ID:              id,
		Name:            n.Name,
		Slug:            n.Slug,
		Description:     n.Description,
		FullDescription: n.FullDescription,
		Image:           n.Image,
		ParentID:        n.ParentID,
		Features:        nonNil(n.Features),
		Benefits:        nonNil(n.Benefits),
		Applications:    nonNil(n.Applications),
		Specifications:  nonNilMap(n.Specifications),
		RelatedServices: nonNil(n.RelatedServices),
		MetaTitle:       n.MetaTitle,
		MetaDescription: n.MetaDescription,
		CreatedAt:       now,
	}
	setIf(&s.Featured, n.Featured)
	setIf(&s.Order, n.Order)
	return s
}

// ServicePatch is a partial update. Nil fields are left untouched; ParentID
// distinguishes an absent key from an explicit null.
type ServicePatch struct {
	Name            *string            `json:"name"`
	Slug            *string            `json:"slug"`
	Description     *string            `json:"description"`
	FullDescription *string            `json:"fullDescription"`
	Image           *string            `json:"image"`
	Featured        *bool              `json:"featured"`
	ParentID        OptionalID         `json:"parentId"`
	Order           *int               `json:"order"`
	Features        *[]string          `json:"features"`
	Benefits        *[]string          `json:"benefits"`
	Applications    *[]string          `json:"applications"`
	Specifications  *map[string]string `json:"specifications"`
	RelatedServices *[]int64           `json:"relatedServices"`
	MetaTitle       *string            `json:"metaTitle"`
	MetaDescription *string            `json:"metaDescription"`
}

// Apply merges the patch into s.
func (p ServicePatch) Apply(s *Service) {
	setIf(&s.Name, p.Name)
	setIf(&s.Slug, p.Slug)
	setIf(&s.Description, p.Description)
	if p.FullDescription != nil {
		s.FullDescription = p.FullDescription
	}
	if p.Image != nil {
		s.Image = p.Image
	}
	setIf(&s.Featured, p.Featured)
	if p.ParentID.Set {
		s.ParentID = p.ParentID.Value
	}
	setIf(&s.Order, p.Order)
	if p.Features != nil {
		s.Features = nonNil(*p.Features)
	}
	if p.Benefits != nil {
		s.Benefits = nonNil(*p.Benefits)
	}
	if p.Applications != nil {
		s.Applications = nonNil(*p.Applications)
	}
	if p.Specifications != nil {
		s.Specifications = nonNilMap(*p.Specifications)
	}
	if p.RelatedServices != nil {
		s.RelatedServices = nonNil(*p.RelatedServices)
	}
	if p.MetaTitle != nil {
		s.MetaTitle = p.MetaTitle
	}
	if p.MetaDescription != nil {
		s.MetaDescription = p.MetaDescription
	}
}
