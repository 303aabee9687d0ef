package model

import "time"

// Contact message statuses. A message starts as "new" and becomes "answered"
// when an admin replies; the transition is one-directional in normal flow.
const (
	StatusNew      = "new"
	StatusAnswered = "answered"
)

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Answer    string    `json:"answer,omitempty"`
	Status    string    `json:"status"` // "new" | "answered"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
