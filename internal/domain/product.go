package domain

import "time"

// Product represents a catalogue product.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProduct holds the fields accepted when creating a product.
type NewProduct struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Featured    *bool   `json:"featured"`
}

// Build materialises the product with defaults applied.
func (n NewProduct) Build(id int64, now time.Time) Product {
	p := Product{
		ID:          id,
		Name:        n.Name,
		Slug:        n.Slug,
		Description: n.Description,
		Image:       n.Image,
		Category:    n.Category,
		CreatedAt:   now,
	}
	setIf(&p.Featured, n.Featured)
	return p
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Featured    *bool   `json:"featured"`
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	setIf(&p.Name, pp.Name)
	setIf(&p.Slug, pp.Slug)
	setIf(&p.Description, pp.Description)
	if pp.Image != nil {
		p.Image = pp.Image
	}
	if pp.Category != nil {
		p.Category = pp.Category
	}
	setIf(&p.Featured, pp.Featured)
}
