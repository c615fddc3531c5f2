package domain

import "time"

// ContactMessage represents a submission of the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// NewContactMessage holds the fields accepted from the contact form.
// The read flag is not settable on create.
type NewContactMessage struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// Build materialises the message, unread.
func (n NewContactMessage) Build(id int64, now time.Time) ContactMessage {
	return ContactMessage{
		ID:        id,
		Name:      n.Name,
		Email:     n.Email,
		Phone:     n.Phone,
		Message:   n.Message,
		CreatedAt: now,
		Read:      false,
	}
}

// ContactMessagePatch only allows flipping the read flag.
type ContactMessagePatch struct {
	Read *bool `json:"read"`
}

// Apply merges the patch into m.
func (p ContactMessagePatch) Apply(m *ContactMessage) {
	setIf(&m.Read, p.Read)
}
