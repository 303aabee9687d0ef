package model

import "time"

// Project is a single portfolio entry. Image holds the stored filename only;
// it is set once at creation and never changed by an update.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
