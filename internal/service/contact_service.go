package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// ContactService defines the business logic for contact messages.
type ContactService interface {
	// List returns all contact messages, most recent first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// Submit stores a new visitor message with status "new".
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// Answer stores the admin reply and flips the status to "answered".
	Answer(ctx context.Context, id int64, answer string) error

	// Delete removes a message. Deleting a nonexistent id succeeds as a no-op.
	Delete(ctx context.Context, id int64) error
}
