package service

import (
	"context"

	"github.com/mhagelund/folio/internal/model"
)

// FaqService defines the business logic for the FAQ.
type FaqService interface {
	// List returns all questions, most recently asked first.
	List(ctx context.Context) ([]*model.Question, error)

	// Ask stores a new visitor question with no answer.
	Ask(ctx context.Context, question string) error

	// Answer sets (or overwrites) the admin answer for a question.
	Answer(ctx context.Context, id int64, answer string) error

	// Delete removes a question. Deleting a nonexistent id succeeds as a no-op.
	Delete(ctx context.Context, id int64) error
}
