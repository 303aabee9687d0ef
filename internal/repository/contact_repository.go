package repository

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// ContactRepository defines persistence for contact messages.
type ContactRepository interface {
	List(ctx context.Context) ([]*model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) error
	Answer(ctx context.Context, id int64, answer, status string) error
	Delete(ctx context.Context, id int64) error
}
